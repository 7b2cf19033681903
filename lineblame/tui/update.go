package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pinpt/lineblame/lineblame/session"
)

// Update handles events. Session is only used from here, so all blame work happens on one goroutine.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height - 2 // status and help lines
		if m.Height < 1 {
			m.Height = 1
		}
		m.scroll()
		return m, nil

	case MsgLoad:
		res := m.session.BufRead(m.ctx, viewerBuf, m.path)
		m.Status = loadStatus(res)
		m.session.CursorMoved(viewerBuf, m.Cursor+1)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, keys.ForceQuit) {
			m.session.BufUnload(viewerBuf)
			return m, tea.Quit
		}
		if m.Inserting {
			if key.Matches(msg, keys.Normal) {
				m.Inserting = false
				m.session.InsertLeave(viewerBuf, m.Cursor+1)
				m.Status = ""
			}
			return m, nil
		}
		switch {
		case key.Matches(msg, keys.Quit):
			m.session.BufUnload(viewerBuf)
			return m, tea.Quit
		case key.Matches(msg, keys.Up):
			m.move(m.Cursor - 1)
		case key.Matches(msg, keys.Down):
			m.move(m.Cursor + 1)
		case key.Matches(msg, keys.Top):
			m.move(0)
		case key.Matches(msg, keys.Bottom):
			m.move(len(m.Lines) - 1)
		case key.Matches(msg, keys.Insert):
			m.Inserting = true
			m.session.InsertEnter(viewerBuf)
			m.Status = "-- INSERT --"
		case key.Matches(msg, keys.Write):
			res := m.session.BufWrite(m.ctx, viewerBuf, m.path)
			m.Status = loadStatus(res)
		}
		return m, nil
	}
	return m, nil
}

func (m *Model) move(line int) {
	if line < 0 {
		line = 0
	}
	if line > len(m.Lines)-1 {
		line = len(m.Lines) - 1
	}
	if line == m.Cursor {
		return
	}
	m.Cursor = line
	m.scroll()
	m.session.CursorMoved(viewerBuf, m.Cursor+1)
}

func (m *Model) scroll() {
	if m.Cursor < m.Offset {
		m.Offset = m.Cursor
	}
	if m.Cursor >= m.Offset+m.Height {
		m.Offset = m.Cursor - m.Height + 1
	}
}

func loadStatus(res session.LoadResult) string {
	switch res {
	case session.Loaded:
		return "blame loaded"
	case session.Unchanged:
		return "blame unchanged"
	default:
		return "no blame available"
	}
}
