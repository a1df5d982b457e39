// SPDX-License-Identifier: EPL-2.0

package waveform

import (
	"github.com/ik5/goscope/channel"
	"github.com/ik5/goscope/scale"
	"github.com/ik5/goscope/trigger"
)

// DefaultMaxPoints bounds the output length to a generous display
// width; windows wider than this are decimated.
const DefaultMaxPoints = 4096

// Extractor owns the sample history and produces one display window
// per frame. It runs entirely in the processing context; the only
// shared structure it touches is the sample channel's consumer side.
type Extractor struct {
	ring   *channel.Ring
	hist   *History
	engine *trigger.Engine

	sampleRate int
	maxPoints  int
	drainBuf   []float32
}

// NewExtractor wires the consumer side of ring to a fresh History of
// historyLen samples. maxPoints <= 0 selects DefaultMaxPoints.
func NewExtractor(ring *channel.Ring, engine *trigger.Engine, sampleRate, historyLen, maxPoints int) *Extractor {
	if maxPoints <= 0 {
		maxPoints = DefaultMaxPoints
	}
	return &Extractor{
		ring:       ring,
		hist:       NewHistory(historyLen),
		engine:     engine,
		sampleRate: sampleRate,
		maxPoints:  maxPoints,
		drainBuf:   make([]float32, 1024),
	}
}

// SampleRate reports the capture rate the extractor converts with.
func (x *Extractor) SampleRate() int { return x.sampleRate }

// SetSampleRate adopts a new capture rate, applied to the next frame.
func (x *Extractor) SetSampleRate(rate int) {
	if rate > 0 {
		x.sampleRate = rate
	}
}

// History exposes the sample history read-only for measurements.
func (x *Extractor) History() *History { return x.hist }

// Drain moves everything currently queued in the sample channel into
// the history and reports how many samples arrived. It never blocks;
// zero is a normal result when the producer is quiet.
func (x *Extractor) Drain() int {
	fresh := 0
	for {
		n := x.ring.Drain(x.drainBuf)
		if n == 0 {
			return fresh
		}
		x.hist.Write(x.drainBuf[:n])
		fresh += n
	}
}

// Result is one extracted display window.
type Result struct {
	// Samples is the window, oldest first, length WindowLen or less
	// after decimation. Always freshly allocated; the caller owns it.
	Samples []float32
	// Triggered reports whether the trigger engine located an edge for
	// this window.
	Triggered bool
	// Stable reports whether the history fully covered the window; a
	// false value means the leading samples are padding and the display
	// is still settling.
	Stable bool
}

// Extract produces the window for the current scale settings. fresh is
// the sample count returned by the preceding Drain call; it advances
// the trigger holdoff. Settings take effect here, at frame granularity.
func (x *Extractor) Extract(sc scale.Settings, fresh int) Result {
	windowLen := sc.WindowLen(x.sampleRate)
	start, triggered := x.engine.Select(x.hist, windowLen, fresh)

	n := x.hist.Len()
	// Keep the right edge of the window inside the valid region; a
	// trigger too close to "now" slides left rather than running past
	// the newest sample.
	if start+windowLen > n {
		start = n - windowLen
	}
	stable := start >= 0

	out := make([]float32, windowLen)
	var pad float32
	if n > 0 {
		pad = x.hist.At(0)
	}
	for i := range out {
		j := start + i
		if j < 0 {
			out[i] = pad
		} else {
			out[i] = x.hist.At(j)
		}
	}

	if windowLen > x.maxPoints {
		out = decimate(out, x.maxPoints)
	}

	return Result{Samples: out, Triggered: triggered, Stable: stable}
}

// decimate reduces src to points output values, each the arithmetic
// mean of the raw samples mapped onto it.
func decimate(src []float32, points int) []float32 {
	out := make([]float32, points)
	for i := range out {
		lo := i * len(src) / points
		hi := (i + 1) * len(src) / points
		if hi <= lo {
			hi = lo + 1
		}
		var sum float32
		for _, s := range src[lo:hi] {
			sum += s
		}
		out[i] = sum / float32(hi-lo)
	}
	return out
}
