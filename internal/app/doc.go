// Package app provides the orchestration layer for the vigil application.
//
// # Overview
//
// This package wires configuration, the shared dashboard state, the tailer
// goroutines, and the UI into the complete program. It is the composition
// root: everything is constructed here and connected through plain values.
//
// # Startup Sequence
//
//  1. Load and validate the monitor configuration (fatal on any error)
//  2. Build the line matcher (default or the -matcher override)
//  3. Open the optional debug log (slog JSON handler)
//  4. Load user preferences (never fatal)
//  5. Build the Dashboard: one Source with two ring buffers per config entry
//  6. Start one tailer goroutine per source
//  7. Run the UI and block until quit or signal
//
// # Data Flow
//
//	┌────────────────────┐
//	│ tail.Tailer (xN)   │  one goroutine per source
//	│  read new lines    │
//	│  classify, stamp   │
//	│  push to buffers   │
//	└─────────┬──────────┘
//	          │  ring.Buffer (mutex per buffer)
//	┌─────────▼──────────┐
//	│ ui.Model           │  single goroutine
//	│  snapshot per tick │
//	│  render frame      │
//	└────────────────────┘
//
// # Shutdown
//
// There are two ways out: the user presses q (the UI returns) or the
// process receives SIGINT/SIGTERM (the signal context cancels, which also
// stops the UI). Either way Run cancels the tailer context, waits for every
// tailer goroutine to observe it, and only then returns. No goroutine
// outlives Run, and nothing is persisted: a restart tails every file from
// offset 0.
package app
