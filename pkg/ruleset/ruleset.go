package ruleset

import (
	"regexp"
	"regexp/syntax"
	"strings"

	"github.com/arthur-debert/arbitrator/pkg/errors"
	"github.com/arthur-debert/arbitrator/pkg/logging"
)

// PlaceholderMarker is the slot marker inside templates.
const PlaceholderMarker = "{}"

// Rule is a compiled pattern with its template.
type Rule struct {
	Pattern          string
	Template         string
	PlaceholderCount int

	re *regexp.Regexp
	// literal is set when the whole pattern is a plain substring.
	literal string
}

// RuleSet is an ordered, immutable collection of compiled rules.
type RuleSet struct {
	rules     []Rule
	prefilter *literalPrefilter
}

// CountPlaceholders returns the number of non-overlapping {} markers.
func CountPlaceholders(template string) int {
	return strings.Count(template, PlaceholderMarker)
}

// Compile compiles every pattern of m, in order. The first pattern that is
// not a valid regular expression aborts compilation with ErrInvalidPattern.
func Compile(m *Mapping) (*RuleSet, error) {
	logger := logging.GetLogger("ruleset")

	entries := m.Entries()
	rs := &RuleSet{rules: make([]Rule, 0, len(entries))}

	var literals []string
	for i, e := range entries {
		re, err := regexp.Compile(e.Pattern)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrInvalidPattern,
				"invalid pattern %q", e.Pattern).
				WithDetail("pattern", e.Pattern).
				WithDetail("index", i)
		}

		rule := Rule{
			Pattern:          e.Pattern,
			Template:         e.Template,
			PlaceholderCount: CountPlaceholders(e.Template),
			re:               re,
		}
		if lit, ok := plainLiteral(e.Pattern); ok {
			rule.literal = lit
			literals = append(literals, lit)
		}

		logger.Trace().
			Int("index", i).
			Str("pattern", e.Pattern).
			Int("placeholders", rule.PlaceholderCount).
			Bool("literal", rule.literal != "").
			Msg("Compiled rule")

		rs.rules = append(rs.rules, rule)
	}

	rs.prefilter = newLiteralPrefilter(literals)

	logger.Debug().
		Int("rules", len(rs.rules)).
		Int("literals", len(literals)).
		Msg("Compiled rule set")

	return rs, nil
}

// plainLiteral reports whether pattern matches exactly one case-sensitive,
// unanchored, non-empty string.
func plainLiteral(pattern string) (string, bool) {
	re, err := syntax.Parse(pattern, syntax.Perl)
	if err != nil {
		return "", false
	}
	re = re.Simplify()
	if re.Op != syntax.OpLiteral || re.Flags&syntax.FoldCase != 0 || len(re.Rune) == 0 {
		return "", false
	}
	return string(re.Rune), true
}

// Match returns the index of the first rule whose pattern matches anywhere
// in unit.
func (rs *RuleSet) Match(unit string) (int, bool) {
	if rs == nil || len(rs.rules) == 0 {
		return 0, false
	}

	literalPossible := rs.prefilter.mayMatch(unit)
	for i := range rs.rules {
		r := &rs.rules[i]
		if r.literal != "" {
			if literalPossible && strings.Contains(unit, r.literal) {
				return i, true
			}
			continue
		}
		if r.re.MatchString(unit) {
			return i, true
		}
	}
	return 0, false
}

// Len returns the number of rules.
func (rs *RuleSet) Len() int {
	if rs == nil {
		return 0
	}
	return len(rs.rules)
}

// Rule returns the rule at index i.
func (rs *RuleSet) Rule(i int) Rule {
	return rs.rules[i]
}

// Template returns the template of rule i.
func (rs *RuleSet) Template(i int) string {
	return rs.rules[i].Template
}

// PlaceholderCount returns the placeholder count of rule i.
func (rs *RuleSet) PlaceholderCount(i int) int {
	return rs.rules[i].PlaceholderCount
}

// Rules returns a copy of the rules in order.
func (rs *RuleSet) Rules() []Rule {
	if rs == nil {
		return nil
	}
	out := make([]Rule, len(rs.rules))
	copy(out, rs.rules)
	return out
}
