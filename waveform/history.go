// SPDX-License-Identifier: EPL-2.0

package waveform

// History is a fixed-capacity circular buffer of the most recent
// samples. Capacity never changes after construction; the write
// position wraps and old samples are overwritten in place. It is owned
// by a single goroutine and is not safe for concurrent use.
type History struct {
	buf   []float32
	pos   int    // next write index
	total uint64 // samples ever written
}

// NewHistory returns a History holding the most recent capacity
// samples. Capacity below 1 is raised to 1.
func NewHistory(capacity int) *History {
	if capacity < 1 {
		capacity = 1
	}
	return &History{buf: make([]float32, capacity)}
}

// Write appends samples, overwriting the oldest when full.
func (h *History) Write(samples []float32) {
	for _, s := range samples {
		h.buf[h.pos] = s
		h.pos++
		if h.pos == len(h.buf) {
			h.pos = 0
		}
	}
	h.total += uint64(len(samples))
}

// Len reports how many valid samples the history holds, at most Cap.
func (h *History) Len() int {
	if h.total < uint64(len(h.buf)) {
		return int(h.total)
	}
	return len(h.buf)
}

// Cap reports the fixed capacity.
func (h *History) Cap() int { return len(h.buf) }

// Total reports how many samples were ever written, including ones
// already overwritten.
func (h *History) Total() uint64 { return h.total }

// At returns the i-th oldest valid sample. i must be in [0, Len).
func (h *History) At(i int) float32 {
	if h.total < uint64(len(h.buf)) {
		return h.buf[i]
	}
	j := h.pos + i
	if j >= len(h.buf) {
		j -= len(h.buf)
	}
	return h.buf[j]
}
