package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/markprompt/markprompt/internal/document"
	"github.com/markprompt/markprompt/internal/theme"
)

// Styles binds lipgloss styles to a theme. Rebuilt whenever the user
// picks a different theme; never mutated by playback.
type Styles struct {
	Theme theme.Theme

	// Span styles
	Text   lipgloss.Style
	Bold   lipgloss.Style
	Italic lipgloss.Style
	Code   lipgloss.Style

	// One style per heading level
	Heading [6]lipgloss.Style

	// Chrome
	Title  lipgloss.Style
	Muted  lipgloss.Style
	Footer lipgloss.Style
	Error  lipgloss.Style
}

// NewStyles builds the style set for a theme.
func NewStyles(t theme.Theme) *Styles {
	text := lipgloss.Color(t.Text.Hex())
	bg := lipgloss.Color(t.Background.Hex())
	codeBg := lipgloss.Color(t.Background.Lighten(0.18).Hex())

	s := &Styles{Theme: t}
	s.Text = lipgloss.NewStyle().Foreground(text).Background(bg)
	s.Bold = s.Text.Bold(true)
	s.Italic = s.Text.Italic(true)
	s.Code = lipgloss.NewStyle().Foreground(text).Background(codeBg)

	for i := 0; i < 6; i++ {
		s.Heading[i] = lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Headings[i].Hex())).
			Background(bg).
			Bold(true)
	}

	s.Title = lipgloss.NewStyle().Foreground(lipgloss.Color(t.Headings[0].Hex())).Bold(true)
	s.Muted = lipgloss.NewStyle().Foreground(text).Faint(true)
	s.Footer = lipgloss.NewStyle().Foreground(text).Faint(true)
	s.Error = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	return s
}

// DefaultStyles uses the first built-in theme.
func DefaultStyles() *Styles {
	return NewStyles(theme.Defaults()[0])
}

// RenderBlock renders a block's spans with the theme applied. Headings
// take the level color for the whole line; paragraphs style span by
// span.
func (s *Styles) RenderBlock(b document.Block) string {
	if b.IsHeading() {
		return s.Heading[b.Level-1].Render(b.Text())
	}
	var sb strings.Builder
	for _, sp := range b.Spans {
		switch sp.Style {
		case document.StyleBold:
			sb.WriteString(s.Bold.Render(sp.Text))
		case document.StyleItalic:
			sb.WriteString(s.Italic.Render(sp.Text))
		case document.StyleCode:
			sb.WriteString(s.Code.Render(sp.Text))
		default:
			sb.WriteString(s.Text.Render(sp.Text))
		}
	}
	return sb.String()
}
