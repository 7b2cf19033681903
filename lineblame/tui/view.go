package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

var (
	lineNumberStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	cursorLineStyle = lipgloss.NewStyle().
			Bold(true)

	blameStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")).
			Italic(true)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("238"))
)

func (m Model) View() string {
	b := &strings.Builder{}
	width := len(fmt.Sprint(len(m.Lines)))
	end := m.Offset + m.Height
	if end > len(m.Lines) {
		end = len(m.Lines)
	}
	for i := m.Offset; i < end; i++ {
		num := lineNumberStyle.Render(fmt.Sprintf("%*d ", width, i+1))
		content := m.Lines[i]
		if i == m.Cursor {
			content = cursorLineStyle.Render(content)
		}
		b.WriteString(num + content)
		if text, ok := m.deco.lines[i]; ok {
			b.WriteString(blameStyle.Render(text))
		}
		b.WriteString("\n")
	}
	status := fmt.Sprintf("%v  %v:%v", m.path, m.Cursor+1, len(m.Lines))
	if m.Status != "" {
		status += "  " + m.Status
	}
	b.WriteString(statusStyle.Render(status) + "\n")
	help := []string{}
	for _, k := range []key.Binding{keys.Up, keys.Down, keys.Insert, keys.Normal, keys.Write, keys.Quit} {
		help = append(help, k.Help().Key+" "+k.Help().Desc)
	}
	b.WriteString(helpStyle.Render(strings.Join(help, " • ")))
	return b.String()
}
