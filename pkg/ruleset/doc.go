// Package ruleset compiles an ordered set of (pattern, template) pairs into an
// immutable matcher.
//
// # Rule Order
//
// Rules keep the order in which they were first defined. When more than one
// pattern matches a unit, the rule with the lowest index wins, however general
// its pattern is:
//
//	m := ruleset.NewMapping(
//		ruleset.Entry{Pattern: "^# ", Template: ".SH"},
//		ruleset.Entry{Pattern: "^#", Template: ".SS"},
//	)
//	rs, _ := ruleset.Compile(m)
//	rs.Match("# Title") // 0, true
//
// # Merging
//
// A Mapping merged from several sources keeps the position of the first
// definition of a pattern and the template of the last one.
//
// # Placeholders
//
// Every occurrence of the two-character marker {} in a template is a slot the
// rewriter fills with an input unit. The count is computed once, at compile
// time.
package ruleset
