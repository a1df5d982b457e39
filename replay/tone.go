// SPDX-License-Identifier: EPL-2.0

package replay

import "math"

// ToneSource is an endless mono sine generator, useful for exercising
// the scope without any input hardware or files.
type ToneSource struct {
	sampleRate int
	frequency  float64
	amplitude  float64
	pos        int
}

// NewToneSource returns a sine source at the given frequency and
// amplitude (0 to 1, clamped). A zero or negative sample rate selects
// 48kHz; a non-positive frequency selects 440Hz.
func NewToneSource(sampleRate int, frequency, amplitude float64) *ToneSource {
	if sampleRate <= 0 {
		sampleRate = 48000
	}
	if frequency <= 0 {
		frequency = 440
	}
	if amplitude < 0 {
		amplitude = 0
	}
	if amplitude > 1 {
		amplitude = 1
	}
	return &ToneSource{
		sampleRate: sampleRate,
		frequency:  frequency,
		amplitude:  amplitude,
	}
}

func (s *ToneSource) SampleRate() int { return s.sampleRate }
func (s *ToneSource) Channels() int   { return 1 }
func (s *ToneSource) Close() error    { return nil }

// ReadSamples always fills dst completely; the tone never ends.
func (s *ToneSource) ReadSamples(dst []float32) (int, error) {
	step := 2 * math.Pi * s.frequency / float64(s.sampleRate)
	for i := range dst {
		dst[i] = float32(s.amplitude * math.Sin(step*float64(s.pos)))
		s.pos++
	}
	return len(dst), nil
}
