package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/Punkwe1ght/modsync/pkg/diagnostics"
)

type textRenderer struct {
	w      io.Writer
	styles *Styles
}

func (r *textRenderer) RenderDiagnostics(diags []diagnostics.Diagnostic) error {
	if len(diags) == 0 {
		return r.RenderMessage(NoDiagnosticsMessage)
	}
	var b strings.Builder
	for _, d := range diags {
		fmt.Fprintf(&b, "%s %s %s\n",
			r.styles.Severity(d.Severity),
			r.styles.Render("Title", d.Title),
			r.styles.Render("ID", "("+d.ID.String()+")"),
		)
		b.WriteString(r.styles.Render("Details", d.FormatSummary()))
		b.WriteString("\n\n")
	}
	b.WriteString(summaryLine(diags))
	b.WriteString("\n")
	_, err := io.WriteString(r.w, b.String())
	return err
}

func (r *textRenderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.w, msg)
	return err
}

// summaryLine counts diagnostics by severity, worst first.
func summaryLine(diags []diagnostics.Diagnostic) string {
	counts := diagnostics.CountBySeverity(diags)
	var parts []string
	for _, sev := range []diagnostics.Severity{diagnostics.Critical, diagnostics.Warning, diagnostics.Suggestion} {
		if n := counts[sev]; n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, strings.ToLower(sev.String())))
		}
	}
	return fmt.Sprintf("%d diagnostic(s): %s", len(diags), strings.Join(parts, ", "))
}
