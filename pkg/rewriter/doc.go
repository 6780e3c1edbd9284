// Package rewriter walks a sequence of input units and applies a compiled
// rule set to each of them.
//
// A unit that matches no rule is copied through. A unit that matches a rule
// without placeholders is replaced by the template, or dropped when the
// template is empty. A unit that matches a rule with k placeholders fills the
// first slot itself and pulls the next k-1 units into the remaining slots; if
// the input runs out, the missing slots are left out and the rest of the
// template is kept as is.
package rewriter
