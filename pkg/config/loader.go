package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/arbitrator/pkg/errors"
	"github.com/arthur-debert/arbitrator/pkg/logging"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	// AppName names the user config directory.
	AppName = "arbitrator"
	// EnvPrefix marks environment variables read as configuration.
	EnvPrefix = "ARBITRATOR_"
)

// ProjectConfigNames are tried, in order, in the working directory.
var ProjectConfigNames = []string{".arbitrator.toml", ".arbitrator.yaml", ".arbitrator.yml"}

// LoadOptions tells Load where to look.
type LoadOptions struct {
	// WorkDir holds the project config. Defaults to ".".
	WorkDir string
	// UserConfigDir holds config.toml. Defaults to UserConfigDir().
	UserConfigDir string
	// Overrides are flattened keys ("rewrite.mode") applied last.
	Overrides map[string]interface{}
}

// UserConfigDir returns the per-user configuration directory. It respects
// XDG_CONFIG_HOME if set, otherwise falls back to the xdg default.
func UserConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		configHome = xdg.ConfigHome
	}
	return filepath.Join(configHome, AppName)
}

// Load merges, in increasing precedence: embedded defaults, the user config,
// the project config, ARBITRATOR_* environment variables and opts.Overrides.
func Load(opts LoadOptions) (*Config, error) {
	logger := logging.GetLogger("config")

	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to load defaults")
	}

	// 2. User config
	userDir := opts.UserConfigDir
	if userDir == "" {
		userDir = UserConfigDir()
	}
	userPath := filepath.Join(userDir, "config.toml")
	if _, err := os.Stat(userPath); err == nil {
		if err := k.Load(file.Provider(userPath), toml.Parser()); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse,
				"failed to load user config from %s", userPath).
				WithDetail("path", userPath)
		}
		logger.Debug().Str("path", userPath).Msg("Loaded user config")
	}

	// 3. Project config
	workDir := opts.WorkDir
	if workDir == "" {
		workDir = "."
	}
	for _, name := range ProjectConfigNames {
		path := filepath.Join(workDir, name)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		var parser koanf.Parser = toml.Parser()
		if strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml") {
			parser = yaml.Parser()
		}
		if err := k.Load(file.Provider(path), parser); err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigParse,
				"failed to load project config from %s", path).
				WithDetail("path", path)
		}
		logger.Debug().Str("path", path).Msg("Loaded project config")
		break
	}

	// 4. Environment
	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment")
	}

	// 5. Explicit overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	var cfg Config
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToSliceHookFunc(","),
			),
		},
	}
	if err := k.UnmarshalWithConf("", &cfg, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to unmarshal configuration")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger.Debug().
		Str("mode", cfg.Rewrite.Mode).
		Strs("rules", cfg.Rewrite.Rules).
		Bool("logFile", cfg.Log.File).
		Msg("Configuration loaded")

	return &cfg, nil
}

// envKey maps ARBITRATOR_REWRITE_MODE to rewrite.mode.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.Replace(key, "_", ".", 1)
}
