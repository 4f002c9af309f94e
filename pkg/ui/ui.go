// Package ui renders diagnostics and load orders for the terminal or for
// machines. It supports table (pterm), styled text (lipgloss) and JSON
// output, plus markdown detail pages rendered with glamour.
package ui

import (
	"io"

	"github.com/Punkwe1ght/modsync/pkg/diagnostics"
	"github.com/Punkwe1ght/modsync/pkg/errors"
)

// NoDiagnosticsMessage is printed by the human renderers for a clean scan.
const NoDiagnosticsMessage = "No diagnostics found. Health check passed."

// Renderer is the common interface for all output renderers.
type Renderer interface {
	// RenderDiagnostics renders the result of one scan.
	RenderDiagnostics(diags []diagnostics.Diagnostic) error

	// RenderMessage renders a simple message
	RenderMessage(msg string) error
}

// NewRenderer creates a new renderer based on the specified format.
// FormatAuto inspects w.
func NewRenderer(format Format, w io.Writer) (Renderer, error) {
	switch format {
	case FormatAuto:
		return NewRenderer(DetectFormat(w), w)
	case FormatTable:
		return &tableRenderer{w: w, styles: NewStyles(w, ColorEnabled(w))}, nil
	case FormatText:
		return &textRenderer{w: w, styles: NewStyles(w, ColorEnabled(w))}, nil
	case FormatJSON:
		return newJSONRenderer(w), nil
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown format: %v", format)
	}
}
