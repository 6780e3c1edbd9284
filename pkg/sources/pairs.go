package sources

import (
	"strings"

	"github.com/arthur-debert/arbitrator/pkg/errors"
	"github.com/arthur-debert/arbitrator/pkg/ruleset"
)

// ParsePair parses "[pattern,template]". The brackets are optional.
func ParsePair(s string) (ruleset.Entry, error) {
	body := strings.TrimPrefix(s, "[")
	body = strings.TrimSuffix(body, "]")

	pattern, template, ok := strings.Cut(body, ",")
	if !ok {
		return ruleset.Entry{}, errors.Newf(errors.ErrRulePairInvalid,
			"rule %q must have the form [pattern,template]", s).
			WithDetail("pair", s)
	}
	return ruleset.Entry{Pattern: pattern, Template: template}, nil
}

// ParsePairs parses pairs in order into one mapping.
func ParsePairs(pairs []string) (*ruleset.Mapping, error) {
	m := &ruleset.Mapping{}
	for _, s := range pairs {
		e, err := ParsePair(s)
		if err != nil {
			return nil, err
		}
		m.Set(e.Pattern, e.Template)
	}
	return m, nil
}
