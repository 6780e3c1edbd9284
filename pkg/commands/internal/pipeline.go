package internal

import (
	"github.com/arthur-debert/arbitrator/pkg/logging"
	"github.com/arthur-debert/arbitrator/pkg/ruleset"
	"github.com/arthur-debert/arbitrator/pkg/sources"
)

// RuleOptions names the rule sources shared by every command.
type RuleOptions struct {
	Files []string
	Pairs []string
}

// CompileRules loads the rule files and pairs in order and compiles them.
func CompileRules(opts RuleOptions) (*ruleset.RuleSet, error) {
	logger := logging.GetLogger("core.commands")
	logger.Debug().
		Strs("files", opts.Files).
		Strs("pairs", opts.Pairs).
		Msg("Compiling rules")

	mapping, err := sources.Load(opts.Files, opts.Pairs)
	if err != nil {
		return nil, err
	}

	return ruleset.Compile(mapping)
}
