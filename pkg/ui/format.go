package ui

import (
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/Punkwe1ght/modsync/pkg/errors"
)

// Format represents the output format type
type Format int

const (
	// FormatAuto picks table on a colour terminal and text otherwise
	FormatAuto Format = iota
	// FormatTable renders a pterm table
	FormatTable
	// FormatText renders one styled block per diagnostic
	FormatText
	// FormatJSON renders machine-readable JSON output
	FormatJSON
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatAuto:
		return "auto"
	case FormatTable:
		return "table"
	case FormatText:
		return "text"
	case FormatJSON:
		return "json"
	default:
		return "unknown"
	}
}

// ParseFormat parses a string into a Format value
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "auto", "":
		return FormatAuto, nil
	case "table":
		return FormatTable, nil
	case "text", "plain":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	default:
		return FormatAuto, errors.Newf(errors.ErrInvalidInput, "unknown format: %s", s).
			WithDetail("known", []string{"auto", "table", "text", "json"})
	}
}

// ColorEnabled reports whether w is a terminal that should get colour.
// NO_COLOR disables colour everywhere.
func ColorEnabled(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		return false
	}
	return termenv.NewOutput(f).ColorProfile() != termenv.Ascii
}

// DetectFormat determines the output format for w
func DetectFormat(w io.Writer) Format {
	if ColorEnabled(w) {
		return FormatTable
	}
	return FormatText
}
