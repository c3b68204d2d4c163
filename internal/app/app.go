package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/jmallove/vigil/internal/classify"
	"github.com/jmallove/vigil/internal/config"
	"github.com/jmallove/vigil/internal/prefs"
	"github.com/jmallove/vigil/internal/state"
	"github.com/jmallove/vigil/internal/tail"
	"github.com/jmallove/vigil/internal/ui"
)

// Options configure the vigil application.
type Options struct {
	ConfigPath     string // required: path to the monitor configuration
	PrefsPath      string // empty uses default ~/.config/vigil/prefs.toml
	MatcherPattern string // empty uses the default "error" matcher
	DebugLogPath   string // empty disables debug logging
}

// Run boots the dashboard until the context is cancelled or the user quits.
// Only configuration problems can make it fail; everything after a
// successful load is absorbed into dashboard content.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	matcher := classify.Default()
	if opts.MatcherPattern != "" {
		matcher, err = classify.Regexp(opts.MatcherPattern)
		if err != nil {
			return err
		}
	}

	logger, closeLog, err := newLogger(opts.DebugLogPath)
	if err != nil {
		return err
	}
	defer closeLog()

	userPrefs := prefs.Load(opts.PrefsPath)
	dash := state.NewDashboard(cfg)

	// One tailer goroutine per source. They all share the run context;
	// cancelling it is the only shutdown signal they need.
	tailCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	var wg sync.WaitGroup
	for _, src := range dash.Sources() {
		tailer := tail.New(src, tail.Options{Matcher: matcher, Logger: logger})
		wg.Add(1)
		go func() {
			defer wg.Done()
			tailer.Run(tailCtx)
		}()
	}

	err = ui.Run(ctx, ui.Options{Dashboard: dash, ThemeName: userPrefs.Theme})

	// The UI is gone; stop the tailers and wait for them before returning
	// so no goroutine outlives Run.
	cancel()
	wg.Wait()

	logger.Info("shutdown complete")
	return err
}

// newLogger builds the debug logger. With no path configured all records are
// discarded; a TUI owns the terminal, so logs can only go to a file.
func newLogger(path string) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.DiscardHandler), func() {}, nil
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open debug log: %w", err)
	}
	handler := slog.NewJSONHandler(file, nil)
	return slog.New(handler), func() { file.Close() }, nil
}
