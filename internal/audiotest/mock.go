// SPDX-License-Identifier: EPL-2.0

// Package audiotest generates deterministic test signals for the
// acquisition pipeline tests.
package audiotest

import (
	"io"
	"math"
)

// Sine returns n samples of a sine wave at the given frequency and
// sample rate, full scale [-1, 1], starting at phase zero.
func Sine(sampleRate int, frequency float64, n int) []float32 {
	out := make([]float32, n)
	for i := range out {
		t := float64(i) / float64(sampleRate)
		out[i] = float32(math.Sin(2 * math.Pi * frequency * t))
	}
	return out
}

// Ramp returns n samples rising (or falling) linearly from `from` to
// `to` inclusive.
func Ramp(from, to float32, n int) []float32 {
	out := make([]float32, n)
	if n == 0 {
		return out
	}
	if n == 1 {
		out[0] = from
		return out
	}
	step := (to - from) / float32(n-1)
	for i := range out {
		out[i] = from + step*float32(i)
	}
	return out
}

// Constant returns n samples all holding v.
func Constant(v float32, n int) []float32 {
	out := make([]float32, n)
	for i := range out {
		out[i] = v
	}
	return out
}

// Square returns n samples of a square wave with the given period in
// samples and duty cycle in [0, 1]. High is +1, low is -1.
func Square(period int, duty float64, n int) []float32 {
	out := make([]float32, n)
	high := int(duty * float64(period))
	for i := range out {
		if i%period < high {
			out[i] = 1
		} else {
			out[i] = -1
		}
	}
	return out
}

// MockSource is a test helper that streams a fixed sample slice as
// interleaved frames. It implements the replay.Source interface
// (without importing it to avoid cycles).
type MockSource struct {
	sampleRate int
	channels   int
	samples    []float32
	pos        int
	closed     bool
}

// NewMockSource creates a source that plays back samples (interleaved
// when channels > 1) and then reports io.EOF.
func NewMockSource(sampleRate, channels int, samples []float32) *MockSource {
	return &MockSource{
		sampleRate: sampleRate,
		channels:   channels,
		samples:    samples,
	}
}

func (m *MockSource) SampleRate() int { return m.sampleRate }
func (m *MockSource) Channels() int   { return m.channels }

// Closed reports whether Close was called, letting tests verify the
// pipeline releases its source.
func (m *MockSource) Closed() bool { return m.closed }

func (m *MockSource) Close() error {
	m.closed = true
	return nil
}

// Reset rewinds playback to the first sample.
func (m *MockSource) Reset() { m.pos = 0 }

func (m *MockSource) ReadSamples(dst []float32) (int, error) {
	if m.pos >= len(m.samples) {
		return 0, io.EOF
	}
	n := copy(dst, m.samples[m.pos:])
	m.pos += n
	if m.pos >= len(m.samples) {
		return n, io.EOF
	}
	return n, nil
}
