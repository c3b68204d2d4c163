package tail

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/jmallove/vigil/internal/classify"
	"github.com/jmallove/vigil/internal/state"
)

const (
	// DefaultInterval is the cadence between reads of an existing file.
	DefaultInterval = 100 * time.Millisecond
	// DefaultBackoff is the retry delay after a missing file or read error.
	DefaultBackoff = time.Second
)

// Options configure a Tailer. Zero values use defaults.
type Options struct {
	Matcher  classify.Matcher // nil uses classify.Default()
	Logger   *slog.Logger     // nil discards
	Interval time.Duration
	Backoff  time.Duration
}

// Tailer incrementally reads one monitored file and feeds its source's
// buffers. Each Tailer exclusively owns its read offset; the buffers it
// writes are shared with the renderer through their own synchronization.
type Tailer struct {
	src      *state.Source
	matcher  classify.Matcher
	logger   *slog.Logger
	interval time.Duration
	backoff  time.Duration

	offset int64
}

// New creates a tailer for src starting at offset 0.
func New(src *state.Source, opts Options) *Tailer {
	if opts.Matcher == nil {
		opts.Matcher = classify.Default()
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	if opts.Interval <= 0 {
		opts.Interval = DefaultInterval
	}
	if opts.Backoff <= 0 {
		opts.Backoff = DefaultBackoff
	}
	return &Tailer{
		src:      src,
		matcher:  opts.Matcher,
		logger:   opts.Logger.With("source", src.Name),
		interval: opts.Interval,
		backoff:  opts.Backoff,
	}
}

// Run polls the file until ctx is cancelled. It never returns an error:
// every failure is contained to this source and surfaced through its
// buffers, so one broken file cannot take down the dashboard.
func (t *Tailer) Run(ctx context.Context) {
	t.logger.Info("tailing started", "path", t.src.Path)
	defer t.logger.Info("tailing stopped")

	timer := time.NewTimer(0)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
		}
		timer.Reset(t.poll())
	}
}

// poll performs one read cycle and returns how long to wait before the next.
func (t *Tailer) poll() time.Duration {
	info, err := os.Stat(t.src.Path)
	if err != nil {
		if os.IsNotExist(err) {
			// Waiting for the file to appear. Not an error: nothing to
			// show until it exists.
			return t.backoff
		}
		t.reportReadError(err)
		return t.backoff
	}

	if t.offset > info.Size() {
		// Truncation or rotation: start over from the top.
		t.logger.Info("file truncated, resetting offset", "size", info.Size(), "offset", t.offset)
		t.offset = 0
	}

	file, err := os.Open(t.src.Path)
	if err != nil {
		t.reportReadError(err)
		return t.backoff
	}
	defer file.Close()

	if _, err := file.Seek(t.offset, io.SeekStart); err != nil {
		t.reportReadError(err)
		return t.backoff
	}
	data, err := io.ReadAll(file)
	if err != nil {
		t.reportReadError(err)
		return t.backoff
	}

	// Consume only complete lines. A trailing partial line stays in the
	// file until its terminator arrives; the offset advances past the last
	// newline actually read.
	end := bytes.LastIndexByte(data, '\n')
	if end < 0 {
		return t.interval
	}
	for _, raw := range bytes.Split(data[:end], []byte{'\n'}) {
		t.ingest(string(raw))
	}
	t.offset += int64(end + 1)
	return t.interval
}

// ingest stamps, classifies, and buffers one complete line.
func (t *Tailer) ingest(raw string) {
	text := strings.TrimSpace(raw)
	now := time.Now()
	isError := t.matcher.Match(raw)

	t.src.Lines.Push(state.LogLine{When: now, Text: text, IsError: isError})
	if isError {
		t.src.Errors.Push(state.ErrorEntry{When: now, Source: t.src.Name, Text: text})
	}
}

// reportReadError surfaces an I/O failure as dashboard content for this
// source rather than terminating anything.
func (t *Tailer) reportReadError(cause error) {
	t.logger.Error("read failed", "path", t.src.Path, "error", cause)

	now := time.Now()
	text := fmt.Sprintf("Error reading file: %v", cause)
	t.src.Lines.Push(state.LogLine{When: now, Text: text, IsError: true})
	t.src.Errors.Push(state.ErrorEntry{When: now, Source: t.src.Name, Text: text})
}
