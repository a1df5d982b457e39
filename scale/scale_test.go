// SPDX-License-Identifier: EPL-2.0

package scale

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSamplesPerDiv(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		timePerDiv time.Duration
		sampleRate int
		want       int
	}{
		{"1ms at 48kHz", time.Millisecond, 48000, 48},
		{"10us at 48kHz", 10 * time.Microsecond, 48000, 1}, // 0.48 rounds up to minimum 1
		{"5s at 48kHz", 5 * time.Second, 48000, 240000},
		{"1ms at 44.1kHz", time.Millisecond, 44100, 44},
		{"2ms at 8kHz", 2 * time.Millisecond, 8000, 16},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := Default()
			s.TimePerDiv = tt.timePerDiv
			require.Equal(t, tt.want, s.SamplesPerDiv(tt.sampleRate))
		})
	}
}

func TestWindowLen(t *testing.T) {
	t.Parallel()

	// 48kHz, 1ms/div, 10 divisions => 480 samples.
	s := Default()
	require.Equal(t, 480, s.WindowLen(48000))
	require.Equal(t, 10*time.Millisecond, s.WindowDuration())
}

func TestFullScale(t *testing.T) {
	t.Parallel()

	s := Default()
	require.InDelta(t, 4.0, s.FullScale(), 1e-12) // 0.5 V/div * 8 divisions
}

func TestStepTime_Sequence(t *testing.T) {
	t.Parallel()

	s := Default() // 1ms
	s = s.StepTime(Inc)
	require.Equal(t, 2*time.Millisecond, s.TimePerDiv)
	s = s.StepTime(Inc)
	require.Equal(t, 5*time.Millisecond, s.TimePerDiv)
	s = s.StepTime(Inc)
	require.Equal(t, 10*time.Millisecond, s.TimePerDiv)

	s = s.StepTime(Dec)
	s = s.StepTime(Dec)
	s = s.StepTime(Dec)
	require.Equal(t, time.Millisecond, s.TimePerDiv)
}

func TestStepTime_ClampsAtBounds(t *testing.T) {
	t.Parallel()

	s := Default()
	s.TimePerDiv = 10 * time.Microsecond
	s = s.StepTime(Dec)
	require.Equal(t, 10*time.Microsecond, s.TimePerDiv, "lower bound must clamp")

	s.TimePerDiv = 5 * time.Second
	s = s.StepTime(Inc)
	require.Equal(t, 5*time.Second, s.TimePerDiv, "upper bound must clamp")
}

func TestStepVolts_Sequence(t *testing.T) {
	t.Parallel()

	s := Default() // 0.5 V/div
	s = s.StepVolts(Inc)
	require.InDelta(t, 1.0, s.VoltsPerDiv, 1e-12)
	s = s.StepVolts(Dec)
	s = s.StepVolts(Dec)
	require.InDelta(t, 0.2, s.VoltsPerDiv, 1e-12)
}

func TestStepVolts_ClampsAtBounds(t *testing.T) {
	t.Parallel()

	s := Default()
	s.VoltsPerDiv = 0.01
	s = s.StepVolts(Dec)
	require.InDelta(t, 0.01, s.VoltsPerDiv, 1e-12)

	s.VoltsPerDiv = 5
	s = s.StepVolts(Inc)
	require.InDelta(t, 5.0, s.VoltsPerDiv, 1e-12)
}

// TestStep_RoundTrip checks that Inc then Dec returns the original
// value everywhere except at the domain boundaries.
func TestStep_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, start := range timeSteps[:len(timeSteps)-1] {
		s := Default()
		s.TimePerDiv = start
		got := s.StepTime(Inc).StepTime(Dec)
		require.Equal(t, start, got.TimePerDiv, "time round-trip from %v", start)
	}

	for _, start := range voltSteps[1:] {
		s := Default()
		s.VoltsPerDiv = start
		got := s.StepVolts(Dec).StepVolts(Inc)
		require.InDelta(t, start, got.VoltsPerDiv, 1e-12, "volt round-trip from %v", start)
	}
}

func TestClamp_SnapsOntoSequence(t *testing.T) {
	t.Parallel()

	s := Settings{
		TimePerDiv:  1500 * time.Microsecond, // between 1ms and 2ms
		VoltsPerDiv: 0.3,                     // between 0.2 and 0.5
	}
	s = s.Clamp()

	require.Contains(t, timeSteps, s.TimePerDiv)
	require.Contains(t, voltSteps, s.VoltsPerDiv)
	require.Equal(t, Default().DivisionsH, s.DivisionsH)
	require.Equal(t, Default().DivisionsV, s.DivisionsV)
}

func TestClamp_OutOfRange(t *testing.T) {
	t.Parallel()

	s := Settings{TimePerDiv: time.Nanosecond, VoltsPerDiv: 1000}
	s = s.Clamp()
	require.Equal(t, 10*time.Microsecond, s.TimePerDiv)
	require.InDelta(t, 5.0, s.VoltsPerDiv, 1e-12)
}
