package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jmallove/vigil/internal/state"
)

// tickInterval bounds how often the dashboard re-reads the shared buffers.
const tickInterval = 100 * time.Millisecond

type viewMode int

const (
	viewLogs viewMode = iota
	viewErrors
)

// tickMsg triggers a buffer re-snapshot and redraw.
type tickMsg time.Time

// sourceFrame is the point-in-time view of one source used to draw a frame.
// Snapshots are taken once per tick; the tailers keep writing behind them
// without invalidating what is on screen.
type sourceFrame struct {
	name       string
	path       string
	lines      []state.LogLine
	errorCount int
}

// Model is the root Bubble Tea model for the dashboard.
type Model struct {
	dash  *state.Dashboard
	theme Theme
	keys  keyMap

	view   viewMode
	width  int
	height int

	frames      []sourceFrame
	errors      []state.ErrorEntry
	totalErrors int
}

func newModel(dash *state.Dashboard, theme Theme) Model {
	m := Model{
		dash:  dash,
		theme: theme,
		keys:  defaultKeyMap(),
	}
	m.refresh()
	return m
}

// Init schedules the first tick.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(), tea.SetWindowTitle("vigil"))
}

func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update applies state transitions. Only two keys do anything: q quits,
// e toggles between the log and error views.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		m.refresh()
		return m, tickCmd()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Toggle):
			if m.view == viewLogs {
				m.view = viewErrors
			} else {
				m.view = viewLogs
			}
			return m, nil
		}
		return m, nil
	}
	return m, nil
}

// refresh re-snapshots every source's buffers for the next frame.
func (m *Model) refresh() {
	sources := m.dash.Sources()
	frames := make([]sourceFrame, 0, len(sources))
	for _, src := range sources {
		frames = append(frames, sourceFrame{
			name:       src.Name,
			path:       src.Path,
			lines:      src.Lines.Snapshot(),
			errorCount: src.Errors.Len(),
		})
	}
	m.frames = frames
	m.errors = m.dash.AllErrors()
	m.totalErrors = len(m.errors)
}
