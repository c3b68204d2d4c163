// Package tail implements the per-source file polling engine.
//
// # Overview
//
// One Tailer runs per configured source, as its own goroutine. Each cycle it
// checks whether the file exists, detects truncation, reads whatever bytes
// were appended since the last cycle, and pushes the resulting lines into
// the source's log buffer (and, for lines the matcher classifies as errors,
// its error buffer).
//
// # Poll Cycle
//
// The loop body, each iteration:
//
//  1. If the context is cancelled, stop.
//  2. If the file does not exist, sleep the backoff (1s) and retry.
//  3. If the recorded offset exceeds the file's current size, the file was
//     truncated or rotated: reset the offset to 0.
//  4. Seek to the offset and read to EOF. Only complete lines are consumed;
//     a trailing partial line without a terminator is left for a later
//     cycle, and the offset advances only past the last newline read.
//  5. Each consumed line is trimmed, stamped with the read time, classified,
//     and pushed. Error lines are additionally pushed to the error buffer,
//     tagged with the source name.
//  6. Sleep the read interval (100ms) and loop.
//
// # Failure Containment
//
// Any I/O error after the existence check (permission change, device error,
// seek failure) is absorbed locally: a synthetic "Error reading file: ..."
// line is pushed into both of the source's buffers so the failure is visible
// on the dashboard, and the tailer retries after the backoff. A failing
// source never affects another source's tailer or the renderer; Run has no
// error return at all.
//
// # Offsets
//
// The offset is the byte position already consumed. It only moves forward,
// except on detected truncation where it resets to 0. Offsets live in memory
// only; a restart re-reads every file from the beginning.
package tail
