package sources

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/arbitrator/pkg/errors"
	"github.com/arthur-debert/arbitrator/pkg/logging"
	"github.com/arthur-debert/arbitrator/pkg/ruleset"
)

// Format identifies a rule file syntax.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// FormatFor picks the parser for path from its extension. Unknown extensions
// are read as JSON.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Load reads every file in order, then applies every pair, and returns the
// merged mapping.
func Load(files []string, pairs []string) (*ruleset.Mapping, error) {
	logger := logging.GetLogger("sources")
	done := logging.LogOperationStart(logger, "load rule sources")
	defer done()

	merged := &ruleset.Mapping{}

	for _, path := range files {
		m, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		merged.Merge(m)
		logger.Debug().
			Str("path", path).
			Int("rules", m.Len()).
			Int("total", merged.Len()).
			Msg("Merged rule file")
	}

	if len(pairs) > 0 {
		m, err := ParsePairs(pairs)
		if err != nil {
			return nil, err
		}
		merged.Merge(m)
		logger.Debug().
			Int("pairs", m.Len()).
			Int("total", merged.Len()).
			Msg("Merged command-line rules")
	}

	logger.Info().
		Int("files", len(files)).
		Int("pairs", len(pairs)).
		Int("rules", merged.Len()).
		Msg("Loaded rule sources")

	return merged, nil
}

// LoadFile reads one rule file.
func LoadFile(path string) (*ruleset.Mapping, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrapf(err, errors.ErrRuleSourceNotFound,
				"rule file %s was not found", path).
				WithDetail("path", path)
		}
		return nil, errors.Wrapf(err, errors.ErrRuleSourceParse,
			"cannot read rule file %s", path).
			WithDetail("path", path)
	}

	var m *ruleset.Mapping
	switch FormatFor(path) {
	case FormatTOML:
		m, err = ParseTOML(data)
	case FormatYAML:
		m, err = ParseDocument(data)
	default:
		m, err = ParseJSON(data)
	}
	if err != nil {
		if arbErr, ok := err.(*errors.ArbitratorError); ok {
			return nil, arbErr.WithDetail("path", path)
		}
		return nil, err
	}
	return m, nil
}
