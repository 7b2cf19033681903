// Package tui is a terminal viewer that shows blame for the line under cursor, the same way the editor plugin does.
package tui

import (
	"context"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pinpt/lineblame/lineblame/bufcache"
	"github.com/pinpt/lineblame/lineblame/session"
	"github.com/pkg/errors"
)

// viewerBuf is the buffer id used for the single file shown by the viewer.
const viewerBuf bufcache.BufferID = 1

type Opts struct {
	// Path of the file to show.
	Path string
	// Session is used to create the session. Renderer is replaced by the viewer.
	Session session.Opts
}

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Top    key.Binding
	Bottom key.Binding
	Insert key.Binding
	Normal key.Binding
	Write  key.Binding
	Quit   key.Binding
	// ForceQuit works in insert mode too.
	ForceQuit key.Binding
}

var keys = keyMap{
	Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Top:    key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "top")),
	Bottom: key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "bottom")),
	Insert: key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "insert")),
	Normal: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "normal")),
	Write:  key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "reload")),
	Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),

	ForceQuit: key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
}

// decorations keeps blame text set by the session. Shared by all copies of Model.
type decorations struct {
	lines map[int]string
}

func (s *decorations) Clear(buf bufcache.BufferID) {
	s.lines = map[int]string{}
}

func (s *decorations) SetText(buf bufcache.BufferID, line int, text string) {
	s.lines[line] = text
}

// Model holds the viewer state.
type Model struct {
	ctx     context.Context
	path    string
	session *session.Session
	deco    *decorations

	Lines     []string
	Cursor    int
	Offset    int
	Height    int
	Width     int
	Inserting bool
	Status    string
}

// New creates the viewer model for file content. Blame is loaded when the program starts.
func New(ctx context.Context, path string, content []byte, sopts session.Opts) Model {
	deco := &decorations{lines: map[int]string{}}
	sopts.Renderer = deco
	lines := strings.Split(strings.TrimSuffix(string(content), "\n"), "\n")
	return Model{
		ctx:     ctx,
		path:    path,
		session: session.New(sopts),
		deco:    deco,
		Lines:   lines,
		Height:  20,
	}
}

// Run starts the viewer and blocks until user quits.
func Run(ctx context.Context, opts Opts) error {
	content, err := os.ReadFile(opts.Path)
	if err != nil {
		return errors.Wrap(err, "could not read file")
	}
	m := New(ctx, opts.Path, content, opts.Session)
	_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}

// MsgLoad asks the model to load blame, as the editor does when the file is opened.
type MsgLoad struct{}

func (m Model) Init() tea.Cmd {
	return func() tea.Msg {
		return MsgLoad{}
	}
}
