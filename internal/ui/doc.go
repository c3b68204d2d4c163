// Package ui implements the terminal dashboard.
//
// # Overview
//
// The dashboard is a Bubble Tea program with two views: a per-source log
// view and a merged error feed. A 100ms tick drives both input polling and
// redrawing, so the loop stays responsive while the tailers mutate the
// shared buffers in the background.
//
// # Render Loop
//
// Each tick the model re-snapshots every source's buffers into plain slices
// (sourceFrame values) and schedules the next tick. View then renders purely
// from those frames. Because ring.Buffer snapshots are atomic copies, a
// frame can never show a half-applied push, and the tailers keep appending
// behind the frame without affecting what is on screen.
//
// # Layout
//
// Row 0 is the centered title, row 1 the status line (source count left,
// key hints right). The log view splits the remaining height evenly into
// one bordered panel per source:
//
//	panelHeight = (height - 4) / len(sources)
//
// Inside each panel the first row is the title (name, path, and an error
// badge when the source has buffered errors) and the rest show the tail of
// the log buffer, oldest visible line at the top. The error view is one
// panel titled with the total error count, entries newest first.
//
// # Error Ordering
//
// The merged error feed sorts entries descending on their rendered text,
// which begins with the literal [HH:MM:SS] stamp. Entries that span
// midnight therefore sort incorrectly relative to each other. This is a
// known, documented limitation of sorting on the display format; the model
// keeps real time.Time values should that ever change.
//
// # Overflow
//
// Rendering never fails on content that exceeds the terminal. Lines are
// clipped to the panel width, panels to the terminal height, and degenerate
// sizes collapse to a "terminal too small" placeholder.
//
// # Input
//
// Two bindings: q (or ctrl+c) quits, e toggles the view. Everything else is
// ignored. Quitting stops the program; the caller then cancels the shared
// context, which the tailers observe within one poll interval.
package ui
