package diagnostics

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Punkwe1ght/modsync/pkg/errors"
)

func TestSeverity(t *testing.T) {
	assert.Equal(t, "Warning", Warning.String())
	assert.Equal(t, "Severity(9)", Severity(9).String())
	assert.True(t, Critical > Warning && Warning > Suggestion)

	data, err := json.Marshal(map[string]Severity{"s": Critical})
	require.NoError(t, err)
	assert.JSONEq(t, `{"s":"Critical"}`, string(data))

	var s Severity
	require.NoError(t, s.UnmarshalText([]byte("warning")))
	assert.Equal(t, Warning, s)
	assert.True(t, errors.IsErrorCode(s.UnmarshalText([]byte("fatal")), errors.ErrInvalidInput))
}

func TestID(t *testing.T) {
	id := ID{Source: "modsync.fnv", Number: 7}
	assert.Equal(t, "modsync.fnv#7", id.String())

	parsed, err := ParseID("modsync.fnv#7")
	require.NoError(t, err)
	assert.Equal(t, id, parsed)

	for _, bad := range []string{"", "#1", "src#", "src#x", "nohash"} {
		_, err := ParseID(bad)
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput), bad)
	}
}

func TestTemplateNew(t *testing.T) {
	tmpl := Template{
		ID:       ID{Source: "test", Number: 1},
		Title:    "Too Many Plugins",
		Severity: Warning,
		Summary:  "Loadout has {PluginCount} plugins",
		Details:  "With {PluginCount} plugins and {Unknown} things",
	}

	d := tmpl.New(With("PluginCount", 130))
	assert.Equal(t, tmpl.ID, d.ID)
	assert.Equal(t, Warning, d.Severity)
	assert.Equal(t, "Too Many Plugins", d.Title)
	assert.Equal(t, "Loadout has {PluginCount} plugins", d.Summary, "raw text keeps placeholders")
	assert.Equal(t, "Loadout has 130 plugins", d.FormatSummary())
	assert.Equal(t, "With 130 plugins and {Unknown} things", d.FormatDetails())

	v, ok := d.Param("PluginCount")
	assert.True(t, ok)
	assert.Equal(t, 130, v)

	assert.Nil(t, tmpl.New().Params)
	assert.Equal(t, tmpl.Summary, tmpl.New().FormatSummary())
}

func TestSubstitute(t *testing.T) {
	params := map[string]any{"A": "x", "B": 2}
	tests := []struct {
		in   string
		want string
	}{
		{"{A}{B}", "x2"},
		{"no placeholders", "no placeholders"},
		{"unclosed {A", "unclosed {A"},
		{"{} and {A}", "{} and x"},
		{"nested {{A}}", "nested {x}"},
		{"{{unknown}} {B}", "{{unknown}} 2"},
		{"stray } then {A}", "stray } then x"},
		{"{A} {", "x {"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, substitute(tt.in, params), tt.in)
	}
}
