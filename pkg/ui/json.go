package ui

import (
	"encoding/json"
	"io"

	"github.com/Punkwe1ght/modsync/pkg/diagnostics"
)

// Record is the JSON form of one diagnostic, with parameters substituted.
type Record struct {
	Severity diagnostics.Severity `json:"severity"`
	ID       diagnostics.ID       `json:"id"`
	Title    string               `json:"title"`
	Summary  string               `json:"summary"`
	Details  string               `json:"details"`
}

// NewRecord flattens d for serialisation.
func NewRecord(d diagnostics.Diagnostic) Record {
	return Record{
		Severity: d.Severity,
		ID:       d.ID,
		Title:    d.Title,
		Summary:  d.FormatSummary(),
		Details:  d.FormatDetails(),
	}
}

type jsonRenderer struct {
	encoder *json.Encoder
}

func newJSONRenderer(w io.Writer) *jsonRenderer {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return &jsonRenderer{encoder: encoder}
}

// RenderDiagnostics writes a JSON array; an empty scan is [].
func (r *jsonRenderer) RenderDiagnostics(diags []diagnostics.Diagnostic) error {
	records := make([]Record, 0, len(diags))
	for _, d := range diags {
		records = append(records, NewRecord(d))
	}
	return r.encoder.Encode(records)
}

func (r *jsonRenderer) RenderMessage(msg string) error {
	return r.encoder.Encode(map[string]string{"message": msg})
}
