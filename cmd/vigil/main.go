package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jmallove/vigil/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	flag.Usage = usage
	matcher := flag.String("matcher", "", "override the error pattern (case-insensitive regexp)")
	prefsPath := flag.String("prefs", "", "override preferences path (optional)")
	debugLog := flag.String("debug-log", "", "write a JSON debug log to this file (optional)")
	flag.Parse()

	if flag.NArg() != 1 {
		usage()
		return 1
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	opts := app.Options{
		ConfigPath:     flag.Arg(0),
		PrefsPath:      *prefsPath,
		MatcherPattern: *matcher,
		DebugLogPath:   *debugLog,
	}
	if err := app.Run(ctx, opts); err != nil {
		fmt.Fprintf(os.Stderr, "vigil: %v\n", err)
		return 1
	}
	return 0
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: vigil [flags] <config.toml>")
	flag.PrintDefaults()
}
