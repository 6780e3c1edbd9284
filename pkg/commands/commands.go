// Package commands provides high-level command implementations for arbitrator.
//
// This package contains the orchestration layer between the CLI and the
// rule engine. Each command lives in its own subdirectory:
//   - rewrite/  - RewriteDocument command
//   - rules/    - ListRules command
//   - genconfig/ - GenConfig command
//   - internal/ - rule loading shared by rewrite and rules
package commands

import (
	"github.com/arthur-debert/arbitrator/pkg/commands/genconfig"
	"github.com/arthur-debert/arbitrator/pkg/commands/rewrite"
	"github.com/arthur-debert/arbitrator/pkg/commands/rules"
)

// RewriteDocument rewrites a document with the configured rules.
type RewriteOptions = rewrite.RewriteOptions

type RewriteResult = rewrite.RewriteResult

func RewriteDocument(opts RewriteOptions) (*RewriteResult, error) {
	return rewrite.RewriteDocument(opts)
}

// ListRules compiles the configured rules and returns them in match order.
type ListRulesOptions = rules.ListRulesOptions

type ListRulesResult = rules.ListRulesResult

func ListRules(opts ListRulesOptions) (*ListRulesResult, error) {
	return rules.ListRules(opts)
}

// GenConfig returns the default configuration, optionally writing it.
type GenConfigOptions = genconfig.GenConfigOptions

type GenConfigResult = genconfig.GenConfigResult

func GenConfig(opts GenConfigOptions) (*GenConfigResult, error) {
	return genconfig.GenConfig(opts)
}
