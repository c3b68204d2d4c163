package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderLogs draws one bordered panel per source, splitting the vertical
// space below the header evenly.
func (m Model) renderLogs() string {
	if len(m.frames) == 0 {
		return m.theme.Muted.Render("no sources configured")
	}

	panelHeight := (m.height - 4) / len(m.frames)
	if panelHeight < 3 || m.width < 4 {
		return m.theme.Muted.Render("terminal too small")
	}

	panels := make([]string, 0, len(m.frames))
	for _, frame := range m.frames {
		panels = append(panels, m.renderSourcePanel(frame, panelHeight))
	}
	return lipgloss.JoinVertical(lipgloss.Left, panels...)
}

// renderSourcePanel draws a single source: a title row with name, path, and
// error badge, then the most recent lines that fit.
func (m Model) renderSourcePanel(frame sourceFrame, panelHeight int) string {
	interiorWidth := m.width - 2

	title := m.theme.Title.Render(fmt.Sprintf(" %s - %s ", frame.name, frame.path))
	if frame.errorCount > 0 {
		title += m.theme.Badge.Render(fmt.Sprintf(" %d errors ", frame.errorCount))
	}

	// One interior row goes to the title; borders take two more.
	visible := panelHeight - 3
	lines := frame.lines
	if len(lines) > visible {
		lines = lines[len(lines)-visible:]
	}

	rows := make([]string, 0, len(lines)+1)
	rows = append(rows, clipLine(title, interiorWidth))
	for _, line := range lines {
		rows = append(rows, clipLine(m.formatLine(line.When, line.Text, line.IsError), interiorWidth))
	}

	return m.theme.Border.
		Width(interiorWidth).
		Height(panelHeight - 2).
		Render(strings.Join(rows, "\n"))
}
