package genconfig

import (
	"os"
	"path/filepath"

	"github.com/arthur-debert/arbitrator/pkg/config"
	"github.com/arthur-debert/arbitrator/pkg/errors"
	"github.com/arthur-debert/arbitrator/pkg/logging"
)

// GenConfigOptions holds options for GenConfig.
type GenConfigOptions struct {
	// Dir receives the project config when Write is set. Defaults to ".".
	Dir   string
	Write bool
}

// GenConfigResult holds the default config and any file written.
type GenConfigResult struct {
	ConfigContent string
	FilesWritten  []string
}

// GenConfig returns the built-in defaults and, with Write, stores them as the
// project config. An existing project config is left alone.
func GenConfig(opts GenConfigOptions) (*GenConfigResult, error) {
	logger := logging.GetLogger("core.commands.genconfig")

	result := &GenConfigResult{
		ConfigContent: config.DefaultConfigContent(),
		FilesWritten:  []string{},
	}

	if !opts.Write {
		logger.Debug().Msg("Outputting config to stdout")
		return result, nil
	}

	dir := opts.Dir
	if dir == "" {
		dir = "."
	}
	targetPath := filepath.Join(dir, config.ProjectConfigNames[0])

	if _, err := os.Stat(targetPath); err == nil {
		logger.Warn().Str("path", targetPath).Msg("Config file already exists, skipping")
		return result, nil
	}

	if err := os.WriteFile(targetPath, []byte(result.ConfigContent), 0644); err != nil {
		return result, errors.Wrapf(err, errors.ErrOutputWrite,
			"failed to write config to %s", targetPath).
			WithDetail("path", targetPath)
	}

	logger.Info().Str("path", targetPath).Msg("Written config file")
	result.FilesWritten = append(result.FilesWritten, targetPath)
	return result, nil
}
