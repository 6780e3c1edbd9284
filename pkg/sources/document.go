package sources

import (
	"github.com/arthur-debert/arbitrator/pkg/errors"
	"github.com/arthur-debert/arbitrator/pkg/logging"
	"github.com/arthur-debert/arbitrator/pkg/ruleset"
	"gopkg.in/yaml.v3"
)

// ParseDocument parses a YAML mapping, keeping key order. A document
// whose top level is not an object contributes no rules.
func ParseDocument(data []byte) (*ruleset.Mapping, error) {
	logger := logging.GetLogger("sources")
	m := &ruleset.Mapping{}

	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, errors.ErrRuleSourceParse, "malformed rule document")
	}

	if doc.Kind == 0 {
		return m, nil
	}

	root := &doc
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return m, nil
		}
		root = root.Content[0]
	}

	if root.Kind != yaml.MappingNode {
		logger.Warn().
			Int("line", root.Line).
			Msg("Rule document is not an object, skipping")
		return m, nil
	}

	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]
		if value.Kind == yaml.AliasNode && value.Alias != nil {
			value = value.Alias
		}
		if value.Kind != yaml.ScalarNode || value.Tag != "!!str" {
			return nil, errors.Newf(errors.ErrRuleSourceParse,
				"template for pattern %q must be a string (line %d)", key.Value, value.Line).
				WithDetail("pattern", key.Value).
				WithDetail("line", value.Line)
		}
		m.Set(key.Value, value.Value)
	}

	return m, nil
}
