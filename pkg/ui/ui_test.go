package ui

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Punkwe1ght/modsync/pkg/diagnostics"
	"github.com/Punkwe1ght/modsync/pkg/errors"
	"github.com/Punkwe1ght/modsync/pkg/loadorder"
)

var (
	limitTmpl = diagnostics.Template{
		ID:       diagnostics.ID{Source: "modsync.fnv", Number: 3},
		Title:    "Approaching Plugin Limit",
		Severity: diagnostics.Warning,
		Summary:  "{PluginCount} plugins are active.",
		Details:  "Keep it under {HardLimit}.",
	}
	hintTmpl = diagnostics.Template{
		ID:       diagnostics.ID{Source: "modsync.fnv", Number: 13},
		Title:    "Unreadable Plugin",
		Severity: diagnostics.Suggestion,
		Summary:  "{PluginName} is unreadable.",
	}
)

func sampleDiags() []diagnostics.Diagnostic {
	return []diagnostics.Diagnostic{
		limitTmpl.New(diagnostics.With("PluginCount", 130), diagnostics.With("HardLimit", 255)),
		hintTmpl.New(diagnostics.With("PluginName", "Bad.esp")),
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"", FormatAuto},
		{"TABLE", FormatTable},
		{"plain", FormatText},
		{"json", FormatJSON},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseFormat(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.NotEqual(t, "unknown", got.String())
		})
	}

	_, err := ParseFormat("xml")
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestDetectFormat_NonTerminal(t *testing.T) {
	var buf bytes.Buffer
	assert.False(t, ColorEnabled(&buf))
	assert.Equal(t, FormatText, DetectFormat(&buf))
}

func TestTextRenderer(t *testing.T) {
	var buf bytes.Buffer
	r, err := NewRenderer(FormatText, &buf)
	require.NoError(t, err)
	require.NoError(t, r.RenderDiagnostics(sampleDiags()))

	out := buf.String()
	assert.Contains(t, out, "Warning Approaching Plugin Limit (modsync.fnv#3)")
	assert.Contains(t, out, "130 plugins are active.")
	assert.Contains(t, out, "Bad.esp is unreadable.")
	assert.Contains(t, out, "2 diagnostic(s): 1 warning, 1 suggestion")
	assert.NotContains(t, out, "\x1b[", "no escape codes for a non-terminal writer")
}

func TestTableRenderer(t *testing.T) {
	var buf bytes.Buffer
	r, err := NewRenderer(FormatTable, &buf)
	require.NoError(t, err)
	require.NoError(t, r.RenderDiagnostics(sampleDiags()))

	out := buf.String()
	for _, want := range []string{"Severity", "Approaching Plugin Limit", "modsync.fnv#13", "Bad.esp is unreadable."} {
		assert.Contains(t, out, want)
	}
}

func TestEmptyScan(t *testing.T) {
	for _, f := range []Format{FormatTable, FormatText} {
		var buf bytes.Buffer
		r, err := NewRenderer(f, &buf)
		require.NoError(t, err)
		require.NoError(t, r.RenderDiagnostics(nil))
		assert.Contains(t, buf.String(), NoDiagnosticsMessage, f.String())
	}

	var buf bytes.Buffer
	r, err := NewRenderer(FormatJSON, &buf)
	require.NoError(t, err)
	require.NoError(t, r.RenderDiagnostics(nil))
	assert.Equal(t, "[]", strings.TrimSpace(buf.String()))
}

func TestJSONRenderer(t *testing.T) {
	var buf bytes.Buffer
	r, err := NewRenderer(FormatJSON, &buf)
	require.NoError(t, err)
	require.NoError(t, r.RenderDiagnostics(sampleDiags()))

	var got []map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, map[string]string{
		"severity": "Warning",
		"id":       "modsync.fnv#3",
		"title":    "Approaching Plugin Limit",
		"summary":  "130 plugins are active.",
		"details":  "Keep it under 255.",
	}, got[0])
}

func TestRenderDetails_Plain(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderDetails(&buf, sampleDiags()[0], false, 0))
	assert.Equal(t,
		"# Approaching Plugin Limit\n\n**Warning** · `modsync.fnv#3`\n\n130 plugins are active.\n\nKeep it under 255.\n",
		buf.String())
}

func TestRenderDetails_Styled(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderDetails(&buf, sampleDiags()[0], true, 60))
	assert.Contains(t, buf.String(), "Approaching Plugin Limit")
}

func TestRenderOrder(t *testing.T) {
	resolved := []loadorder.Resolved{
		{Item: loadorder.Item{Key: "FalloutNV.esm", Owner: "Base"}, Index: 0},
		{Item: loadorder.Item{Key: "New.esp", Owner: "Mod"}, Index: 1},
	}
	delta := loadorder.Delta{
		Removed: []string{"Old.esp"},
		Added:   []loadorder.Entry{{Key: "New.esp", Index: 1}},
	}
	var buf bytes.Buffer
	require.NoError(t, RenderOrder(&buf, resolved, delta))

	out := buf.String()
	assert.Contains(t, out, "FalloutNV.esm")
	assert.Contains(t, out, "new")
	assert.Contains(t, out, "removed: Old.esp")
}

func TestStyles(t *testing.T) {
	cfg, err := ParseStyles(embeddedStyles)
	require.NoError(t, err)
	for _, name := range []string{"Critical", "Warning", "Suggestion"} {
		assert.Contains(t, cfg.Styles, name)
	}

	var buf bytes.Buffer
	s := NewStyles(&buf, false)
	assert.Equal(t, "plain", s.Render("Unknown", "plain"))
	assert.Equal(t, "Critical", s.Severity(diagnostics.Critical))

	_, err = ParseStyles([]byte("colors: ["))
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
}
