package rewrite

import (
	"github.com/arthur-debert/arbitrator/pkg/commands/internal"
	"github.com/arthur-debert/arbitrator/pkg/document"
	"github.com/arthur-debert/arbitrator/pkg/logging"
	"github.com/arthur-debert/arbitrator/pkg/rewriter"
)

// RewriteOptions holds options for RewriteDocument.
type RewriteOptions struct {
	// RuleFiles are loaded in order before Pairs.
	RuleFiles []string
	// Pairs are "[pattern,template]" rules given on the command line.
	Pairs []string
	Mode  rewriter.Mode
	// Input and Output are paths; empty or "-" uses the streams in IO.
	Input  string
	Output string
	IO     document.IO
}

// RewriteResult summarises a completed rewrite.
type RewriteResult struct {
	Rules int
	Lines []string
	Stats rewriter.Stats
}

// RewriteDocument reads the input, rewrites every unit and writes the result.
// Nothing is written when the rules fail to load or compile.
func RewriteDocument(opts RewriteOptions) (*RewriteResult, error) {
	logger := logging.GetLogger("core.commands.rewrite")
	done := logging.LogOperationStart(logger, "rewrite")
	defer done()

	rs, err := internal.CompileRules(internal.RuleOptions{
		Files: opts.RuleFiles,
		Pairs: opts.Pairs,
	})
	if err != nil {
		return nil, err
	}

	text, err := opts.IO.Read(opts.Input)
	if err != nil {
		return nil, err
	}

	mode := opts.Mode
	if mode == "" {
		mode = rewriter.ModeLine
	}
	result := rewriter.New(rs).Run(mode.Split(text))

	if err := opts.IO.Write(opts.Output, result.Lines); err != nil {
		return nil, err
	}

	logger.Info().
		Str("mode", string(mode)).
		Int("rules", rs.Len()).
		Int("units", result.Stats.Units).
		Int("matched", result.Stats.Matched).
		Int("emitted", result.Stats.Emitted).
		Msg("Rewrite complete")

	return &RewriteResult{
		Rules: rs.Len(),
		Lines: result.Lines,
		Stats: result.Stats,
	}, nil
}
