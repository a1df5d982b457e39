// SPDX-License-Identifier: EPL-2.0

package scale

import (
	"math"
	"time"
)

// Direction selects which way an adjustment steps.
type Direction int

const (
	// Inc steps to the next larger value in the 1-2-5 sequence.
	Inc Direction = iota
	// Dec steps to the next smaller value.
	Dec
)

// Settings describes the display grid in physical units. Values are
// plain data; all methods are pure and return derived values or a new
// Settings. Changes take effect on the next frame, never mid-frame.
type Settings struct {
	TimePerDiv  time.Duration
	VoltsPerDiv float64
	DivisionsH  int
	DivisionsV  int
}

// timeSteps is the 1-2-5 decade sequence of legal time/div values,
// 10µs up to 5s.
var timeSteps = []time.Duration{
	10 * time.Microsecond, 20 * time.Microsecond, 50 * time.Microsecond,
	100 * time.Microsecond, 200 * time.Microsecond, 500 * time.Microsecond,
	1 * time.Millisecond, 2 * time.Millisecond, 5 * time.Millisecond,
	10 * time.Millisecond, 20 * time.Millisecond, 50 * time.Millisecond,
	100 * time.Millisecond, 200 * time.Millisecond, 500 * time.Millisecond,
	1 * time.Second, 2 * time.Second, 5 * time.Second,
}

// voltSteps is the 1-2-5 decade sequence of legal volts/div values,
// 10mV up to 5V.
var voltSteps = []float64{
	0.01, 0.02, 0.05,
	0.1, 0.2, 0.5,
	1, 2, 5,
}

// Default grid dimensions.
const (
	DefaultDivisionsH = 10
	DefaultDivisionsV = 8
)

// Default returns the power-on scale: 1ms/div, 0.5V/div, 10x8 grid.
func Default() Settings {
	return Settings{
		TimePerDiv:  time.Millisecond,
		VoltsPerDiv: 0.5,
		DivisionsH:  DefaultDivisionsH,
		DivisionsV:  DefaultDivisionsV,
	}
}

// SamplesPerDiv converts time/div to a sample count at the given
// capture rate, rounded to the nearest whole sample.
func (s Settings) SamplesPerDiv(sampleRate int) int {
	n := int(math.Round(s.TimePerDiv.Seconds() * float64(sampleRate)))
	if n < 1 {
		n = 1
	}
	return n
}

// WindowLen reports how many raw samples span the whole display.
func (s Settings) WindowLen(sampleRate int) int {
	return s.SamplesPerDiv(sampleRate) * s.DivisionsH
}

// WindowDuration reports the wall-clock time spanned by the display.
func (s Settings) WindowDuration() time.Duration {
	return s.TimePerDiv * time.Duration(s.DivisionsH)
}

// FullScale reports the total voltage range covered by the vertical
// grid. Amplitude samples are already normalized, so volts/div maps to
// the vertical axis without further conversion.
func (s Settings) FullScale() float64 {
	return s.VoltsPerDiv * float64(s.DivisionsV)
}

// StepTime returns a copy of s with time/div moved one 1-2-5 step in
// the given direction, clamped at 10µs and 5s.
func (s Settings) StepTime(d Direction) Settings {
	i := nearestTimeStep(s.TimePerDiv)
	i = stepIndex(i, d, len(timeSteps))
	s.TimePerDiv = timeSteps[i]
	return s
}

// StepVolts returns a copy of s with volts/div moved one 1-2-5 step in
// the given direction, clamped at 10mV and 5V.
func (s Settings) StepVolts(d Direction) Settings {
	i := nearestVoltStep(s.VoltsPerDiv)
	i = stepIndex(i, d, len(voltSteps))
	s.VoltsPerDiv = voltSteps[i]
	return s
}

// Clamp snaps both scales onto the nearest legal step and forces sane
// division counts. Used when settings arrive from configuration rather
// than from stepping.
func (s Settings) Clamp() Settings {
	s.TimePerDiv = timeSteps[nearestTimeStep(s.TimePerDiv)]
	s.VoltsPerDiv = voltSteps[nearestVoltStep(s.VoltsPerDiv)]
	if s.DivisionsH < 1 {
		s.DivisionsH = Default().DivisionsH
	}
	if s.DivisionsV < 1 {
		s.DivisionsV = Default().DivisionsV
	}
	return s
}

func stepIndex(i int, d Direction, n int) int {
	switch d {
	case Inc:
		if i < n-1 {
			i++
		}
	case Dec:
		if i > 0 {
			i--
		}
	}
	return i
}

func nearestTimeStep(v time.Duration) int {
	if v <= 0 {
		return 0
	}
	best, bestDiff := 0, math.MaxFloat64
	for i, step := range timeSteps {
		// Compare on a log scale so 1.5ms snaps between 1ms and 2ms
		// rather than being dominated by the absolute gap.
		diff := math.Abs(math.Log(float64(v)) - math.Log(float64(step)))
		if diff < bestDiff {
			best, bestDiff = i, diff
		}
	}
	return best
}

func nearestVoltStep(v float64) int {
	if v <= 0 {
		return 0
	}
	best, bestDiff := 0, math.MaxFloat64
	for i, step := range voltSteps {
		diff := math.Abs(math.Log(v) - math.Log(step))
		if diff < bestDiff {
			best, bestDiff = i, diff
		}
	}
	return best
}
