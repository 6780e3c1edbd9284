package rules

import (
	"github.com/arthur-debert/arbitrator/pkg/commands/internal"
	"github.com/arthur-debert/arbitrator/pkg/logging"
	"github.com/arthur-debert/arbitrator/pkg/ruleset"
)

// ListRulesOptions holds options for ListRules.
type ListRulesOptions struct {
	RuleFiles []string
	Pairs     []string
}

// ListRulesResult holds the compiled rules in match order.
type ListRulesResult struct {
	Rules []ruleset.Rule
}

// ListRules compiles the configured rules without touching any document.
func ListRules(opts ListRulesOptions) (*ListRulesResult, error) {
	logger := logging.GetLogger("core.commands.rules")

	rs, err := internal.CompileRules(internal.RuleOptions{
		Files: opts.RuleFiles,
		Pairs: opts.Pairs,
	})
	if err != nil {
		return nil, err
	}

	logger.Info().Int("rules", rs.Len()).Msg("Rules compiled")
	return &ListRulesResult{Rules: rs.Rules()}, nil
}
