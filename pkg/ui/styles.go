package ui

import (
	_ "embed"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"gopkg.in/yaml.v3"

	"github.com/Punkwe1ght/modsync/pkg/diagnostics"
	"github.com/Punkwe1ght/modsync/pkg/errors"
)

// ColorDef is an adaptive colour in styles.yaml
type ColorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// StyleDef is a style in styles.yaml
type StyleDef struct {
	Bold       bool   `yaml:"bold,omitempty"`
	Italic     bool   `yaml:"italic,omitempty"`
	Foreground string `yaml:"foreground,omitempty"`
	MarginLeft int    `yaml:"marginLeft,omitempty"`
}

// StylesConfig is the parsed styles.yaml
type StylesConfig struct {
	Colors map[string]ColorDef `yaml:"colors"`
	Styles map[string]StyleDef `yaml:"styles"`
}

//go:embed styles.yaml
var embeddedStyles []byte

// ParseStyles decodes a styles document.
func ParseStyles(data []byte) (*StylesConfig, error) {
	var cfg StylesConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to parse styles")
	}
	return &cfg, nil
}

// Styles maps semantic names to lipgloss styles bound to one writer.
type Styles struct {
	registry map[string]lipgloss.Style
}

// NewStyles builds the embedded styles for w. Colour is dropped when
// color is false.
func NewStyles(w io.Writer, color bool) *Styles {
	r := lipgloss.NewRenderer(w)
	if !color {
		r.SetColorProfile(termenv.Ascii)
	}
	s := &Styles{registry: map[string]lipgloss.Style{}}
	cfg, err := ParseStyles(embeddedStyles)
	if err != nil {
		return s
	}
	for name, def := range cfg.Styles {
		s.registry[name] = buildStyle(r, cfg.Colors, def)
	}
	return s
}

func buildStyle(r *lipgloss.Renderer, colors map[string]ColorDef, def StyleDef) lipgloss.Style {
	style := r.NewStyle()
	if def.Bold {
		style = style.Bold(true)
	}
	if def.Italic {
		style = style.Italic(true)
	}
	if c, ok := colors[def.Foreground]; ok {
		style = style.Foreground(lipgloss.AdaptiveColor{Light: c.Light, Dark: c.Dark})
	}
	if def.MarginLeft > 0 {
		style = style.MarginLeft(def.MarginLeft)
	}
	return style
}

// Render applies the named style; unknown names render text unchanged.
func (s *Styles) Render(name, text string) string {
	style, ok := s.registry[name]
	if !ok {
		return text
	}
	return style.Render(text)
}

// Severity renders a severity label in its own style.
func (s *Styles) Severity(sev diagnostics.Severity) string {
	return s.Render(sev.String(), sev.String())
}
