package style

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/arthur-debert/arbitrator/pkg/errors"
	"github.com/arthur-debert/arbitrator/pkg/ruleset"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/pterm/pterm"
)

// Renderer formats diagnostics and rule listings for one output stream.
type Renderer struct {
	lg     *lipgloss.Renderer
	styles Styles
}

// NewRenderer detects the colour profile of w.
func NewRenderer(w io.Writer) *Renderer {
	return newRenderer(lipgloss.NewRenderer(w))
}

// NewPlainRenderer never emits colour.
func NewPlainRenderer(w io.Writer) *Renderer {
	lg := lipgloss.NewRenderer(w)
	lg.SetColorProfile(termenv.Ascii)
	return newRenderer(lg)
}

func newRenderer(lg *lipgloss.Renderer) *Renderer {
	return &Renderer{lg: lg, styles: newStyles(lg)}
}

// Colored reports whether output carries ANSI colour.
func (r *Renderer) Colored() bool {
	return r.lg.ColorProfile() != termenv.Ascii
}

// RenderError formats err with its pattern or path detail when present.
func (r *Renderer) RenderError(err error) string {
	var b strings.Builder
	b.WriteString(r.styles.Error.Render(fmt.Sprintf("Error: %v", err)))

	details := errors.GetErrorDetails(err)
	for _, key := range []string{"pattern", "path", "pair"} {
		if v, ok := details[key]; ok {
			b.WriteString("\n")
			b.WriteString(r.styles.Muted.Render(fmt.Sprintf("  %s: ", key)))
			b.WriteString(r.styles.Code.Render(fmt.Sprint(v)))
		}
	}
	return b.String()
}

// RenderRules lays out rules as a table: index, pattern, quoted template and
// placeholder count.
func (r *Renderer) RenderRules(rules []ruleset.Rule) (string, error) {
	if len(rules) == 0 {
		return r.styles.Muted.Render("No rules configured."), nil
	}

	data := pterm.TableData{{"#", "Pattern", "Template", "Slots"}}
	for i, rule := range rules {
		data = append(data, []string{
			strconv.Itoa(i),
			rule.Pattern,
			strconv.Quote(rule.Template),
			strconv.Itoa(rule.PlaceholderCount),
		})
	}

	table := pterm.DefaultTable.WithHasHeader().WithData(data)
	if !r.Colored() {
		table = table.WithHeaderStyle(pterm.NewStyle()).WithSeparatorStyle(pterm.NewStyle())
	}
	out, err := table.Srender()
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "cannot render rule table")
	}
	return r.styles.Title.Render(fmt.Sprintf("%d rules", len(rules))) + "\n" + out, nil
}
