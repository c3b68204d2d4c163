package state

import (
	"testing"
	"time"

	"github.com/jmallove/vigil/internal/config"
)

func testConfig() config.Config {
	return config.Config{Sources: map[string]string{
		"db":  "/var/log/db.log",
		"app": "/var/log/app.log",
	}}
}

func TestNewDashboard_SourcesInSortedOrder(t *testing.T) {
	d := NewDashboard(testConfig())

	sources := d.Sources()
	if len(sources) != 2 {
		t.Fatalf("len(Sources()) = %d, want 2", len(sources))
	}
	if sources[0].Name != "app" || sources[1].Name != "db" {
		t.Fatalf("source order = [%s %s], want [app db]", sources[0].Name, sources[1].Name)
	}
	if sources[0].Path != "/var/log/app.log" {
		t.Fatalf("app path = %q", sources[0].Path)
	}
	if sources[0].Lines.Cap() != LogBufferCap {
		t.Fatalf("log buffer cap = %d, want %d", sources[0].Lines.Cap(), LogBufferCap)
	}
	if sources[0].Errors.Cap() != ErrorBufferCap {
		t.Fatalf("error buffer cap = %d, want %d", sources[0].Errors.Cap(), ErrorBufferCap)
	}
}

func TestDashboard_ErrorAggregation(t *testing.T) {
	d := NewDashboard(testConfig())

	if d.TotalErrors() != 0 {
		t.Fatalf("TotalErrors() = %d on a fresh dashboard", d.TotalErrors())
	}
	if got := d.AllErrors(); got != nil {
		t.Fatalf("AllErrors() = %v on a fresh dashboard", got)
	}

	now := time.Now()
	app, db := d.Sources()[0], d.Sources()[1]
	app.Errors.Push(ErrorEntry{When: now, Source: "app", Text: "ERROR one"})
	app.Errors.Push(ErrorEntry{When: now, Source: "app", Text: "ERROR two"})
	db.Errors.Push(ErrorEntry{When: now, Source: "db", Text: "ERROR three"})

	if d.TotalErrors() != 3 {
		t.Fatalf("TotalErrors() = %d, want 3", d.TotalErrors())
	}
	all := d.AllErrors()
	if len(all) != 3 {
		t.Fatalf("len(AllErrors()) = %d, want 3", len(all))
	}
	seen := map[string]bool{}
	for _, e := range all {
		seen[e.Text] = true
	}
	for _, want := range []string{"ERROR one", "ERROR two", "ERROR three"} {
		if !seen[want] {
			t.Fatalf("AllErrors() missing %q: %v", want, all)
		}
	}
}
