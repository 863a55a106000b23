package persistmake

import (
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/arthur-debert/persist-make/pkg/ui/styles"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// isTerminal reports whether w is an interactive terminal
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// styled renders text with the named style when w is a terminal
func styled(w io.Writer, name, text string) string {
	if !isTerminal(w) {
		return text
	}
	return styles.Render(name, text)
}

// formatBold returns the string formatted as bold
func formatBold(s string) string {
	return styled(os.Stdout, "Bold", s)
}

// formatUpper returns the string in uppercase
func formatUpper(s string) string {
	return strings.ToUpper(s)
}

// formatBoldUpper returns the string in uppercase and bold
func formatBoldUpper(s string) string {
	return formatBold(strings.ToUpper(s))
}

// initTemplateFormatting adds custom formatting functions to Cobra templates
func initTemplateFormatting() {
	cobra.AddTemplateFuncs(template.FuncMap{
		"bold":      formatBold,
		"upper":     formatUpper,
		"boldUpper": formatBoldUpper,
	})
}
