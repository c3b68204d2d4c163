package ui

import (
	"fmt"
	"sort"
	"strings"
)

// renderErrors draws the merged error feed from every source in a single
// bordered panel.
func (m Model) renderErrors() string {
	panelHeight := m.height - 3
	if panelHeight < 3 || m.width < 4 {
		return m.theme.Muted.Render("terminal too small")
	}
	interiorWidth := m.width - 2

	title := m.theme.Error.Render(fmt.Sprintf(" Error Summary (Total: %d) ", m.totalErrors))

	// Entries sort newest-first on their rendered text, which starts with
	// the [HH:MM:SS] stamp. The comparison is purely lexical, matching the
	// display format rather than the underlying clock.
	entries := make([]string, 0, len(m.errors))
	for _, e := range m.errors {
		entries = append(entries, fmt.Sprintf("[%s] %s: %s", e.When.Format(stampFormat), e.Source, e.Text))
	}
	sort.Sort(sort.Reverse(sort.StringSlice(entries)))

	visible := panelHeight - 3
	if len(entries) > visible {
		entries = entries[:visible]
	}

	rows := make([]string, 0, len(entries)+1)
	rows = append(rows, clipLine(title, interiorWidth))
	for _, entry := range entries {
		rows = append(rows, clipLine(m.theme.Error.UnsetBold().Render(entry), interiorWidth))
	}

	return m.theme.Border.
		Width(interiorWidth).
		Height(panelHeight - 2).
		Render(strings.Join(rows, "\n"))
}
