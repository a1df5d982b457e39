// SPDX-License-Identifier: EPL-2.0

package goscope

import (
	"github.com/ik5/goscope/scale"
	"github.com/ik5/goscope/trigger"
)

// Frame is one immutable display snapshot: the extracted window plus
// the settings that produced it. A Frame is never mutated after
// Publish returns it; the next Publish supersedes it with a new value.
// Consumers may hold on to a Frame across ticks and read it from any
// goroutine.
type Frame struct {
	// Samples is the display window, oldest first, in normalized
	// amplitude units [-1, 1].
	Samples []float32

	// Scale and Trigger are the settings in force when the frame was
	// extracted.
	Scale   scale.Settings
	Trigger trigger.Settings

	// Triggered reports whether the trigger engine located an edge for
	// this frame; false means the free-run fallback window is shown.
	Triggered bool

	// Stable is false while the capture history cannot yet cover the
	// whole window, i.e. the leading samples are padding. It is a
	// display hint, not an error.
	Stable bool

	// SampleRate is the capture rate the window was extracted at.
	SampleRate int

	// Seq increases by one for every newly computed frame. Two Publish
	// calls returning the same Seq returned the very same snapshot.
	Seq uint64
}
