// SPDX-License-Identifier: EPL-2.0

// Package trigger locates a stable phase reference in a continuous
// signal so the displayed trace does not drift between frames.
//
// The Engine is a three-state machine:
//
//   - Idle: triggering disabled; the display free-runs on the most
//     recent samples.
//   - Armed: the sample history is scanned oldest-first for an edge
//     crossing of the configured level. A hit selects the window start
//     so the edge lands at the pretrigger point; no hit falls back to
//     the same free-run window as Idle, so the display never freezes.
//   - Holdoff: after a trigger fires, further edges are suppressed for
//     a fixed number of samples to avoid retriggering on noise around
//     the same crossing.
//
// Settings changes (edge polarity, level, enable) are latched when the
// engine enters Armed, never retroactively into a scan in progress.
// The engine steps exactly once per extraction call and holds no
// reference to the history between calls.
package trigger
