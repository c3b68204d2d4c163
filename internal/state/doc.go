// Package state holds the shared data model between tailers and the UI.
//
// # Overview
//
// A Dashboard is built once at startup from the loaded configuration: one
// Source per configured name, each with a log buffer and an error buffer.
// Sources are never added or removed during a run.
//
// # Concurrency Model
//
// The package follows a per-source single-producer/single-consumer pattern:
//
//	Producer (tail.Tailer):        Consumer (UI render loop):
//	┌──────────────────┐          ┌──────────────────────┐
//	│ read new lines   │          │                      │
//	│      ↓           │          │ Lines.Snapshot()     │
//	│ Lines.Push()     │─────────→│ Errors.Snapshot()    │
//	│ Errors.Push()    │ (buffer  │      ↓               │
//	│      ↓           │  mutex)  │ render frame         │
//	│  repeat...       │          │                      │
//	└──────────────────┘          └──────────────────────┘
//
// Each buffer is written by exactly one tailer goroutine and read by exactly
// one renderer. Synchronization lives inside ring.Buffer: Push and Snapshot
// are atomic with respect to each other, so the renderer never observes a
// half-applied push. There is no cross-source locking and no global lock.
//
// The Dashboard struct itself is immutable after construction (the slice of
// sources is created once and only read), so it needs no synchronization of
// its own.
//
// # Timestamps
//
// LogLine.When and ErrorEntry.When record when the line was read, not when
// it was originally written by the producing process. Each tailer stamps
// lines with its own local read time; there is no shared clock tick across
// sources.
package state
