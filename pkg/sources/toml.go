package sources

import (
	"strings"

	"github.com/arthur-debert/arbitrator/pkg/errors"
	"github.com/arthur-debert/arbitrator/pkg/ruleset"
	"github.com/pelletier/go-toml/v2/unstable"
)

// ParseTOML reads top-level string key/value pairs in file order. Tables are
// rejected since they would make key order ambiguous.
func ParseTOML(data []byte) (*ruleset.Mapping, error) {
	m := &ruleset.Mapping{}

	p := unstable.Parser{}
	p.Reset(data)

	for p.NextExpression() {
		expr := p.Expression()

		switch expr.Kind {
		case unstable.KeyValue:
			pattern := tomlKey(expr.Key())
			value := expr.Value()
			if value.Kind != unstable.String {
				return nil, errors.Newf(errors.ErrRuleSourceParse,
					"template for pattern %q must be a string, got %s", pattern, value.Kind).
					WithDetail("pattern", pattern)
			}
			m.Set(pattern, string(value.Data))
		case unstable.Table, unstable.ArrayTable:
			return nil, errors.Newf(errors.ErrRuleSourceParse,
				"rule files may not contain tables (found [%s])", tomlKey(expr.Key()))
		}
	}

	if err := p.Error(); err != nil {
		return nil, errors.Wrap(err, errors.ErrRuleSourceParse, "malformed TOML rule file")
	}

	return m, nil
}

func tomlKey(it unstable.Iterator) string {
	var parts []string
	for it.Next() {
		parts = append(parts, string(it.Node().Data))
	}
	return strings.Join(parts, ".")
}
