package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/Punkwe1ght/modsync/pkg/diagnostics"
)

// Markdown builds the detail page of d.
func Markdown(d diagnostics.Diagnostic) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", d.Title)
	fmt.Fprintf(&b, "**%s** · `%s`\n\n", d.Severity, d.ID)
	if s := d.FormatSummary(); s != "" {
		b.WriteString(s)
		b.WriteString("\n\n")
	}
	if s := d.FormatDetails(); s != "" {
		b.WriteString(s)
		b.WriteString("\n")
	}
	return b.String()
}

// RenderDetails writes the detail page of d. With styled set the markdown
// goes through glamour; otherwise, or if glamour fails, it is written raw.
func RenderDetails(w io.Writer, d diagnostics.Diagnostic, styled bool, width int) error {
	content := Markdown(d)
	if styled {
		content = renderMarkdown(content, width)
	}
	_, err := io.WriteString(w, content)
	return err
}

func renderMarkdown(content string, width int) string {
	options := []glamour.TermRendererOption{glamour.WithAutoStyle()}
	if width > 0 {
		options = append(options, glamour.WithWordWrap(width))
	}
	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return content
	}
	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
