package rewriter

import (
	"strings"

	"github.com/arthur-debert/arbitrator/pkg/logging"
	"github.com/arthur-debert/arbitrator/pkg/ruleset"
	"github.com/rs/zerolog"
)

// Stats summarises one pass.
type Stats struct {
	Units      int // input units
	Matched    int // units that fired a rule
	Suppressed int // matches whose empty template emitted nothing
	Consumed   int // follow-up units pulled into placeholders
	Emitted    int // output lines
}

// Result is the output of a pass.
type Result struct {
	Lines []string
	Stats Stats
}

// Rewriter applies one rule set. It holds no per-run state and can be reused.
type Rewriter struct {
	rules  *ruleset.RuleSet
	logger zerolog.Logger
}

// New creates a rewriter for rs.
func New(rs *ruleset.RuleSet) *Rewriter {
	return &Rewriter{
		rules:  rs,
		logger: logging.GetLogger("rewriter"),
	}
}

// Rewrite applies rs to units and returns the output lines.
func Rewrite(rs *ruleset.RuleSet, units []string) []string {
	return New(rs).Run(units).Lines
}

// Run processes units front to back with a single forward cursor.
func (r *Rewriter) Run(units []string) Result {
	res := Result{
		Lines: make([]string, 0, len(units)),
		Stats: Stats{Units: len(units)},
	}

	for cursor := 0; cursor < len(units); {
		unit := units[cursor]

		idx, ok := r.rules.Match(unit)
		if !ok {
			res.Lines = append(res.Lines, unit)
			cursor++
			continue
		}
		res.Stats.Matched++

		k := r.rules.PlaceholderCount(idx)
		template := r.rules.Template(idx)

		if k == 0 {
			if template == "" {
				res.Stats.Suppressed++
			} else {
				res.Lines = append(res.Lines, template)
			}
			cursor++
			continue
		}

		end := cursor + k
		if end > len(units) {
			end = len(units)
		}
		values := units[cursor:end]

		if len(values) < k {
			r.logger.Debug().
				Int("unit", cursor).
				Int("rule", idx).
				Int("placeholders", k).
				Int("available", len(values)).
				Msg("Input exhausted before all placeholders were filled")
		}

		res.Lines = append(res.Lines, Interleave(template, values))
		res.Stats.Consumed += len(values) - 1
		cursor = end
	}

	res.Stats.Emitted = len(res.Lines)

	r.logger.Debug().
		Int("units", res.Stats.Units).
		Int("matched", res.Stats.Matched).
		Int("suppressed", res.Stats.Suppressed).
		Int("consumed", res.Stats.Consumed).
		Int("emitted", res.Stats.Emitted).
		Msg("Rewrite completed")

	return res
}

// Interleave splits template on {} and alternates the pieces with values:
// seg[0] values[0] seg[1] values[1] ... Slots without a value are left out;
// every segment is kept.
func Interleave(template string, values []string) string {
	segments := strings.Split(template, ruleset.PlaceholderMarker)

	var b strings.Builder
	for i, seg := range segments {
		b.WriteString(seg)
		if i < len(values) && i < len(segments)-1 {
			b.WriteString(values[i])
		}
	}
	return b.String()
}
