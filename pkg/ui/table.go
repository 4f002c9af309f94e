package ui

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"

	"github.com/Punkwe1ght/modsync/pkg/diagnostics"
)

type tableRenderer struct {
	w      io.Writer
	styles *Styles
}

func (r *tableRenderer) RenderDiagnostics(diags []diagnostics.Diagnostic) error {
	if len(diags) == 0 {
		return r.RenderMessage(NoDiagnosticsMessage)
	}
	data := pterm.TableData{{"Severity", "ID", "Title", "Summary"}}
	for _, d := range diags {
		data = append(data, []string{
			r.styles.Severity(d.Severity),
			r.styles.Render("ID", d.ID.String()),
			d.Title,
			d.FormatSummary(),
		})
	}
	out, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintln(r.w, out); err != nil {
		return err
	}
	_, err = fmt.Fprintln(r.w, r.styles.Render("Muted", summaryLine(diags)))
	return err
}

func (r *tableRenderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.w, r.styles.Render("Success", msg))
	return err
}
