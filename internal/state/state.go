package state

import (
	"time"

	"github.com/jmallove/vigil/internal/config"
	"github.com/jmallove/vigil/internal/ring"
)

// Buffer capacities match the amount of history worth keeping on screen:
// enough log lines to scroll back through, a shorter window for errors.
const (
	LogBufferCap   = 1000
	ErrorBufferCap = 500
)

// LogLine is one line read from a monitored file. Immutable once created.
type LogLine struct {
	When    time.Time // wall-clock time of the read, not of the original event
	Text    string    // trimmed raw content
	IsError bool
}

// ErrorEntry is a classified error line tagged with its source, so the
// merged error view can disambiguate origin. Immutable once created.
type ErrorEntry struct {
	When   time.Time
	Source string
	Text   string
}

// Source is one monitored log file with its two buffers. The buffers are
// written only by the source's tailer and read only by the renderer.
type Source struct {
	Name   string
	Path   string
	Lines  *ring.Buffer[LogLine]
	Errors *ring.Buffer[ErrorEntry]
}

// Dashboard is the process-wide collection of sources. It is built once from
// the loaded configuration and never grows or shrinks during a run.
type Dashboard struct {
	sources []*Source
}

// NewDashboard builds one Source per configured name, in Names() order.
func NewDashboard(cfg config.Config) *Dashboard {
	d := &Dashboard{}
	for _, name := range cfg.Names() {
		d.sources = append(d.sources, &Source{
			Name:   name,
			Path:   cfg.Sources[name],
			Lines:  ring.New[LogLine](LogBufferCap),
			Errors: ring.New[ErrorEntry](ErrorBufferCap),
		})
	}
	return d
}

// Sources returns the sources in stable display order.
func (d *Dashboard) Sources() []*Source {
	return d.sources
}

// TotalErrors sums the current error counts across all sources.
func (d *Dashboard) TotalErrors() int {
	total := 0
	for _, src := range d.sources {
		total += src.Errors.Len()
	}
	return total
}

// AllErrors concatenates a point-in-time snapshot of every source's error
// buffer. Order across sources is unspecified; callers sort for display.
func (d *Dashboard) AllErrors() []ErrorEntry {
	var all []ErrorEntry
	for _, src := range d.sources {
		all = append(all, src.Errors.Snapshot()...)
	}
	return all
}
