package topics

import (
	"github.com/charmbracelet/glamour"
)

// Renderer formats raw topic content for the terminal.
type Renderer interface {
	Render(content string, format string) string
}

// PlainRenderer returns content unchanged.
type PlainRenderer struct{}

func (PlainRenderer) Render(content string, format string) string {
	return content
}

// GlamourRenderer renders markdown topics with glamour. Other formats pass
// through.
type GlamourRenderer struct {
	Width int // 0 leaves glamour's default
}

func (r GlamourRenderer) Render(content string, format string) string {
	if format != ".md" {
		return content
	}
	options := []glamour.TermRendererOption{glamour.WithAutoStyle()}
	if r.Width > 0 {
		options = append(options, glamour.WithWordWrap(r.Width))
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
