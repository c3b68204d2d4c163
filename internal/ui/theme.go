package ui

import "github.com/charmbracelet/lipgloss"

// Theme groups the styles used by the dashboard.
type Theme struct {
	Header    lipgloss.Style // centered title bar
	Status    lipgloss.Style // source count, left of the status line
	Hint      lipgloss.Style // keybinding hints, right of the status line
	Title     lipgloss.Style // panel titles (source name and path)
	Border    lipgloss.Style // panel frame
	Text      lipgloss.Style // ordinary log lines
	Timestamp lipgloss.Style // the [HH:MM:SS] prefix
	Error     lipgloss.Style // error lines and the error panel title
	Badge     lipgloss.Style // per-source error count badge
	Muted     lipgloss.Style // placeholder text (empty buffers, tiny terminals)
}

// themes maps preference names to themes. Unknown names fall back to classic.
var themes = map[string]Theme{
	"classic": {
		Header:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2")),
		Status:    lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		Hint:      lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		Title:     lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		Border:    lipgloss.NewStyle().Border(lipgloss.NormalBorder()),
		Text:      lipgloss.NewStyle(),
		Timestamp: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Error:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1")),
		Badge:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("1")),
		Muted:     lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	},
	"mono": {
		Header:    lipgloss.NewStyle().Bold(true),
		Status:    lipgloss.NewStyle(),
		Hint:      lipgloss.NewStyle().Faint(true),
		Title:     lipgloss.NewStyle().Bold(true),
		Border:    lipgloss.NewStyle().Border(lipgloss.NormalBorder()),
		Text:      lipgloss.NewStyle(),
		Timestamp: lipgloss.NewStyle().Faint(true),
		Error:     lipgloss.NewStyle().Bold(true).Reverse(true),
		Badge:     lipgloss.NewStyle().Bold(true).Reverse(true),
		Muted:     lipgloss.NewStyle().Faint(true),
	},
}

// themeByName resolves a preference value to a theme.
func themeByName(name string) Theme {
	if t, ok := themes[name]; ok {
		return t
	}
	return themes["classic"]
}
