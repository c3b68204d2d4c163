package ui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jmallove/vigil/internal/state"
)

// Options configure the UI runtime.
type Options struct {
	Dashboard *state.Dashboard
	ThemeName string // empty or unknown falls back to the classic theme
}

// Run starts the dashboard and blocks until the user quits or ctx is
// cancelled. A context cancellation is a clean shutdown, not an error.
func Run(ctx context.Context, opts Options) error {
	if opts.Dashboard == nil {
		return fmt.Errorf("ui requires a dashboard")
	}

	model := newModel(opts.Dashboard, themeByName(opts.ThemeName))
	program := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	if _, err := program.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
