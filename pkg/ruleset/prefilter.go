package ruleset

import (
	ac "github.com/petar-dambovaliev/aho-corasick"
)

// literalPrefilter answers, in one scan, whether any pure-literal rule can
// match a unit. It never decides which rule wins.
type literalPrefilter struct {
	automaton *ac.AhoCorasick
	patterns  int
}

func newLiteralPrefilter(literals []string) *literalPrefilter {
	if len(literals) == 0 {
		return nil
	}

	builder := ac.NewAhoCorasickBuilder(ac.Opts{
		MatchKind: ac.LeftMostLongestMatch,
	})
	automaton := builder.Build(literals)

	return &literalPrefilter{
		automaton: &automaton,
		patterns:  len(literals),
	}
}

// mayMatch reports whether at least one literal occurs in unit.
func (p *literalPrefilter) mayMatch(unit string) bool {
	if p == nil {
		return true
	}
	return len(p.automaton.FindAll(unit)) > 0
}
