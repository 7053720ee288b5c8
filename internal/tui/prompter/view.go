package prompter

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/mattn/go-runewidth"
)

// View renders the frame
func (m *Model) View() string {
	if m.pickingTheme {
		return m.viewThemePicker()
	}

	var b strings.Builder

	title := filepath.Base(m.path)
	b.WriteString(" " + m.styles.Title.Render(title) + "\n")

	contentRows := m.height - 3 // title, footer, help
	if contentRows < 1 {
		contentRows = 1
	}

	if len(m.lay.Lines) == 0 {
		b.WriteString(m.styles.Muted.Render(" (empty document)") + "\n")
		contentRows--
	} else {
		start := m.lay.LineAt(m.ctrl.Position())
		for i := start; i < len(m.lay.Lines) && i < start+contentRows; i++ {
			b.WriteString(" " + m.lay.Lines[i].Text + "\n")
			contentRows--
		}
	}
	for ; contentRows > 0; contentRows-- {
		b.WriteString("\n")
	}

	b.WriteString(m.viewFooter() + "\n")
	b.WriteString(m.viewHelp())
	return b.String()
}

func (m *Model) viewFooter() string {
	c := m.ctrl

	pct := 0.0
	if m.lay.ContentHeight > 0 {
		pct = 100 * c.Position() / m.lay.ContentHeight
	}

	parts := []string{
		c.State().String(),
		fmt.Sprintf("%.0f px/s", c.Speed()),
		fmt.Sprintf("%.0f%%", pct),
	}
	if c.PauseAtHeadings() {
		parts = append(parts, fmt.Sprintf("heading pause %.1fs", c.PauseDuration()))
	}
	if c.AutoRestart() {
		parts = append(parts, "auto restart")
	}
	if m.store != nil {
		parts = append(parts, m.store.SelectedName())
	}
	if m.notice != "" {
		parts = append(parts, m.notice)
	}

	line := " " + strings.Join(parts, "  |  ")
	if pad := m.width - runewidth.StringWidth(line); pad > 0 {
		line += strings.Repeat(" ", pad)
	}
	return m.styles.Footer.Render(line)
}

func (m *Model) viewHelp() string {
	var parts []string
	for _, binding := range m.keyMap.ShortHelp() {
		h := binding.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return m.styles.Muted.Render(" " + strings.Join(parts, "  "))
}

func (m *Model) viewThemePicker() string {
	var b strings.Builder
	b.WriteString(" " + m.styles.Title.Render("Themes") + "\n\n")

	for i, t := range m.store.Themes() {
		cursor := "  "
		if i == m.themeCursor {
			cursor = "> "
		}
		mark := " "
		if t.Name == m.store.SelectedName() {
			mark = "*"
		}
		line := fmt.Sprintf(" %s%s %s", cursor, mark, t.Name)
		if i == m.themeCursor {
			b.WriteString(m.styles.Title.Render(line) + "\n")
		} else {
			b.WriteString(m.styles.Text.Render(line) + "\n")
		}
	}

	b.WriteString("\n" + m.styles.Muted.Render(" enter select  esc back") + "\n")
	return b.String()
}
