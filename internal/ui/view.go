package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

const (
	headerTitle = " Log File Monitor "

	// stampFormat is the display timestamp. The merged error view sorts on
	// this literal string, so entries spanning midnight sort out of order;
	// a known limitation inherited from the display format itself.
	stampFormat = "15:04:05"
)

// View renders the current frame. Content that does not fit the terminal is
// clipped, never an error; drawing must not be able to fail.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "loading..."
	}

	header := lipgloss.PlaceHorizontal(m.width, lipgloss.Center, m.theme.Header.Render(headerTitle))
	status := m.renderStatusLine()

	var body string
	if m.view == viewLogs {
		body = m.renderLogs()
	} else {
		body = m.renderErrors()
	}

	frame := lipgloss.JoinVertical(lipgloss.Left, header, status, body)
	return lipgloss.NewStyle().MaxWidth(m.width).MaxHeight(m.height).Render(frame)
}

// renderStatusLine draws the monitored-file count on the left and the key
// hints on the right of one row.
func (m Model) renderStatusLine() string {
	left := m.theme.Status.Render(fmt.Sprintf("Monitoring %d files", len(m.frames)))
	right := m.theme.Hint.Render("Press 'q' to quit | 'e' to toggle error view")

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 4
	if gap < 1 {
		return clipLine("  "+left, m.width)
	}
	return "  " + left + strings.Repeat(" ", gap) + right
}

// formatLine renders one log line as "[HH:MM:SS] text" with error emphasis.
func (m Model) formatLine(when time.Time, text string, isError bool) string {
	stamp := m.theme.Timestamp.Render("[" + when.Format(stampFormat) + "]")
	if isError {
		return stamp + " " + m.theme.Error.Render(text)
	}
	return stamp + " " + m.theme.Text.Render(text)
}

// clipLine truncates a (possibly styled) line to the given display width.
func clipLine(line string, width int) string {
	if width <= 0 {
		return ""
	}
	return lipgloss.NewStyle().MaxWidth(width).Render(line)
}
