package arbitrator

import (
	"os"
	"strings"
	"sync"
	"text/template"

	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var registerTemplateFuncs sync.Once

// stdoutIsTerminal reports whether help text goes to a terminal.
func stdoutIsTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// formatBold makes s bold on a terminal and leaves it alone otherwise.
func formatBold(s string) string {
	if !stdoutIsTerminal() {
		return s
	}
	return pterm.Bold.Sprint(s)
}

func formatBoldUpper(s string) string {
	return formatBold(strings.ToUpper(s))
}

// initTemplateFormatting makes bold, upper and boldUpper available to the
// usage template. Cobra keeps template functions globally.
func initTemplateFormatting() {
	registerTemplateFuncs.Do(func() {
		cobra.AddTemplateFuncs(template.FuncMap{
			"bold":      formatBold,
			"upper":     strings.ToUpper,
			"boldUpper": formatBoldUpper,
		})
	})
}
