// Package config handles loading and validating the vigil monitor configuration.
//
// # Overview
//
// This package reads a TOML document that maps source names to log file paths.
// The mapping is the only input vigil needs: every named file becomes one
// monitored source with its own tailer and buffers.
//
// # TOML Format
//
// Example configuration:
//
//	[sources]
//	app = "~/logs/app.log"
//	db = "/var/log/db.log"
//
// Source names must be non-empty and unique (TOML table keys are unique by
// construction). Paths may use a leading ~ for the home directory and are
// resolved to absolute paths before use.
//
// # Failure Semantics
//
// Unlike optional preference files, the monitor configuration is mandatory.
// Load returns an error for:
//
//   - an unreadable or missing file
//   - malformed TOML
//   - an empty or absent [sources] table
//   - an empty source name or path
//
// Callers treat any Load error as fatal: vigil prints the diagnostic and
// exits before any monitoring starts. There are no defaults to fall back to,
// because a dashboard with zero sources has nothing to show.
//
// # Path Expansion
//
// Paths are expanded the same way throughout vigil:
//
//  1. Surrounding whitespace is trimmed
//  2. A leading ~ is replaced with the user's home directory
//  3. The result is made absolute relative to the working directory
//
// # Ordering
//
// TOML tables decode into Go maps, which have no iteration order. Names()
// returns the source names sorted so that panel layout is stable from frame
// to frame and run to run.
package config
