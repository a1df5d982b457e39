// SPDX-License-Identifier: EPL-2.0

package trigger

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ik5/goscope/internal/audiotest"
)

// series adapts a plain slice to the Series interface for tests.
type series []float32

func (s series) Len() int         { return len(s) }
func (s series) At(i int) float32 { return s[i] }

func TestEngine_RisingRampExactIndex(t *testing.T) {
	t.Parallel()

	// Ramp from -1 to +1 over 200 samples; level 0.25 is crossed once.
	ramp := series(audiotest.Ramp(-1, 1, 200))
	e := NewEngine(Settings{Enabled: true, Edge: Rising, Level: 0.25}, 0)

	const windowLen = 100
	start, triggered := e.Select(ramp, windowLen, 200)
	require.True(t, triggered)
	require.Equal(t, Holdoff, e.State())

	// Locate the crossing the way the contract states it:
	// s[i-1] < level <= s[i].
	var want int
	for i := 1; i < len(ramp); i++ {
		if ramp[i-1] < 0.25 && ramp[i] >= 0.25 {
			want = i
			break
		}
	}
	require.Equal(t, want-windowLen/2, start, "edge must land at the pretrigger point")
}

func TestEngine_FallingEdge(t *testing.T) {
	t.Parallel()

	sig := series([]float32{1, 0.5, 0, -0.5, -1, -0.5, 0, 0.5})
	e := NewEngine(Settings{Enabled: true, Edge: Falling, Level: 0.25}, 0)

	start, triggered := e.Select(sig, 4, len(sig))
	require.True(t, triggered)
	// First pair with prev > 0.25 >= cur is (0.5, 0) at index 2.
	require.Equal(t, 2-2, start)
}

func TestEngine_FlatSignalStaysArmed(t *testing.T) {
	t.Parallel()

	flat := series(audiotest.Constant(0.1, 500))
	e := NewEngine(Settings{Enabled: true, Edge: Rising, Level: 0.9}, 0)

	for i := 0; i < 5; i++ {
		start, triggered := e.Select(flat, 100, 0)
		require.False(t, triggered)
		require.Equal(t, Armed, e.State(), "no edge must leave the engine armed")
		require.Equal(t, 400, start, "fallback must be the right-aligned free-run window")
	}
}

func TestEngine_DisabledFreeRuns(t *testing.T) {
	t.Parallel()

	sig := series(audiotest.Sine(48000, 1000, 480))
	e := NewEngine(Settings{Enabled: false}, 0)

	start, triggered := e.Select(sig, 480, 480)
	require.False(t, triggered)
	require.Equal(t, Idle, e.State())
	require.Equal(t, 0, start)
}

func TestEngine_DisableWhileArmed(t *testing.T) {
	t.Parallel()

	sig := series(audiotest.Sine(48000, 1000, 480))
	e := NewEngine(DefaultSettings(), 0)

	_, triggered := e.Select(sig, 100, 480)
	require.True(t, triggered)

	s := e.Settings()
	s.Enabled = false
	e.SetSettings(s)

	_, triggered = e.Select(sig, 100, 0)
	require.False(t, triggered)
	require.Equal(t, Idle, e.State())
}

func TestEngine_HoldoffSuppressesRetrigger(t *testing.T) {
	t.Parallel()

	sig := series(audiotest.Sine(48000, 1000, 960))
	e := NewEngine(DefaultSettings(), 100)

	_, triggered := e.Select(sig, 480, 960)
	require.True(t, triggered)
	require.Equal(t, Holdoff, e.State())

	// Fewer fresh samples than the holdoff: suppressed.
	_, triggered = e.Select(sig, 480, 40)
	require.False(t, triggered)
	require.Equal(t, Holdoff, e.State())

	_, triggered = e.Select(sig, 480, 40)
	require.False(t, triggered)

	// Holdoff elapsed: rearms and fires again on the same history.
	_, triggered = e.Select(sig, 480, 40)
	require.True(t, triggered)
	require.Equal(t, Holdoff, e.State())
}

func TestEngine_HoldoffKeepsTriggerAlignment(t *testing.T) {
	t.Parallel()

	// One rising crossing in a ramp, then flat: the edge never moves
	// while fresh flat samples arrive during holdoff.
	sig := append(audiotest.Ramp(-1, 1, 200), audiotest.Constant(1, 100)...)
	e := NewEngine(Settings{Enabled: true, Edge: Rising, Level: 0}, 1000)

	const windowLen = 40
	first, triggered := e.Select(series(sig[:200]), windowLen, 200)
	require.True(t, triggered)

	// 50 more samples arrive; the history grew but the trigger sample
	// kept its index, so the window must not move.
	start, triggered := e.Select(series(sig[:250]), windowLen, 50)
	require.False(t, triggered)
	require.Equal(t, first, start, "holdoff must keep the trace on the trigger point")

	start, triggered = e.Select(series(sig[:300]), windowLen, 50)
	require.False(t, triggered)
	require.Equal(t, first, start)
}

func TestEngine_HoldoffFreeRunsWhenEdgeLeavesHistory(t *testing.T) {
	t.Parallel()

	ramp := series(audiotest.Ramp(-1, 1, 100))
	e := NewEngine(Settings{Enabled: true, Edge: Rising, Level: 0}, 10000)

	_, triggered := e.Select(ramp, 20, 100)
	require.True(t, triggered)

	// Report far more fresh samples than the history holds: the
	// trigger sample has been overwritten, so the engine falls back to
	// the right-aligned window.
	start, triggered := e.Select(ramp, 20, 500)
	require.False(t, triggered)
	require.Equal(t, len(ramp)-20, start)
}

func TestEngine_SettingsLatchDuringHoldoff(t *testing.T) {
	t.Parallel()

	// Signal crosses 0.0 rising early and 0.8 rising later.
	sig := make([]float32, 0, 300)
	sig = append(sig, audiotest.Ramp(-1, 1, 300)...)
	e := NewEngine(DefaultSettings(), 1000)

	_, triggered := e.Select(series(sig), 10, 300)
	require.True(t, triggered)

	// Raise the level mid-holdoff; the engine must keep reporting the
	// request but not act on it until it rearms.
	e.SetSettings(Settings{Enabled: true, Edge: Rising, Level: 0.8})
	require.InDelta(t, 0.8, e.Settings().Level, 1e-12)

	_, triggered = e.Select(series(sig), 10, 0)
	require.False(t, triggered, "holdoff must suppress the new level too")
	require.Equal(t, Holdoff, e.State())

	// Complete the holdoff; the new level is latched on rearm and the
	// 0.8 crossing is found.
	start, triggered := e.Select(series(sig), 10, 1000)
	require.True(t, triggered)

	var want int
	for i := 1; i < len(sig); i++ {
		if sig[i-1] < 0.8 && sig[i] >= 0.8 {
			want = i
			break
		}
	}
	require.Equal(t, want-5, start)
}

func TestEngine_LevelClamped(t *testing.T) {
	t.Parallel()

	e := NewEngine(Settings{Enabled: true, Level: 5}, 0)
	require.InDelta(t, 1.0, e.Settings().Level, 1e-12)

	e.SetSettings(Settings{Enabled: true, Level: -3})
	require.InDelta(t, -1.0, e.Settings().Level, 1e-12)
}

func TestEngine_ShortHistory(t *testing.T) {
	t.Parallel()

	e := NewEngine(DefaultSettings(), 0)

	start, triggered := e.Select(series(nil), 100, 0)
	require.False(t, triggered)
	require.Equal(t, -100, start)

	start, triggered = e.Select(series([]float32{0.5}), 100, 1)
	require.False(t, triggered)
	require.Equal(t, 1-100, start)
}
