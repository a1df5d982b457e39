// SPDX-License-Identifier: EPL-2.0

package trigger

// Edge selects which direction a level crossing must take to qualify.
type Edge int

const (
	Rising Edge = iota
	Falling
)

func (e Edge) String() string {
	switch e {
	case Rising:
		return "rising"
	case Falling:
		return "falling"
	}
	return "unknown"
}

// State is the engine's current mode.
type State int

const (
	Idle State = iota
	Armed
	Holdoff
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Armed:
		return "armed"
	case Holdoff:
		return "holdoff"
	}
	return "unknown"
}

// Settings configures edge detection. Level is expressed in the same
// normalized amplitude units as the samples.
type Settings struct {
	Enabled bool
	Edge    Edge
	Level   float64
}

// DefaultSettings matches the power-on state of the instrument:
// rising edge at the zero crossing, enabled.
func DefaultSettings() Settings {
	return Settings{Enabled: true, Edge: Rising, Level: 0}
}

// Clamped returns a copy with the level forced into the normalized
// [-1, 1] amplitude range.
func (s Settings) Clamped() Settings {
	s.Level = clampLevel(s.Level)
	return s
}

// Series is a read-only view of the sample history, oldest first.
// waveform.History satisfies it.
type Series interface {
	// Len reports the number of valid samples.
	Len() int
	// At returns the i-th oldest valid sample. i must be in [0, Len).
	At(i int) float32
}

// DefaultHoldoff is the number of fresh samples that must arrive after
// a trigger before the engine rearms. Roughly 21ms at 48kHz.
const DefaultHoldoff = 1024

// Engine is the trigger state machine. It is not safe for concurrent
// use; the processing context owns it and drives it once per frame.
type Engine struct {
	state   State
	active  Settings // settings the current scan uses
	pending Settings // latest requested settings, latched on (re)arm

	holdoff   int // configured holdoff length in samples
	remaining int // fresh samples left before Holdoff completes

	// sinceTrigger is the distance from the newest sample back to the
	// last trigger sample, maintained through Holdoff so the window
	// stays aligned to that edge between triggers.
	sinceTrigger int
}

// NewEngine returns an Engine with the given settings in force.
// holdoffSamples <= 0 selects DefaultHoldoff.
func NewEngine(s Settings, holdoffSamples int) *Engine {
	if holdoffSamples <= 0 {
		holdoffSamples = DefaultHoldoff
	}
	s = s.Clamped()
	e := &Engine{
		active:  s,
		pending: s,
		holdoff: holdoffSamples,
	}
	if s.Enabled {
		e.state = Armed
	}
	return e
}

// SetSettings records new settings to take effect the next time the
// engine (re)enters Armed. Level is clamped to the normalized [-1, 1]
// amplitude range; there is no invalid input.
func (e *Engine) SetSettings(s Settings) {
	e.pending = s.Clamped()
}

// Settings returns the most recently requested settings, which may not
// yet be in force for an in-progress scan.
func (e *Engine) Settings() Settings { return e.pending }

// State reports the engine's current state.
func (e *Engine) State() State { return e.state }

// Select drives the state machine one step and picks the start offset
// of the next displayed window. series is the sample history, windowLen
// the number of samples the display covers, and fresh the number of
// samples appended to the history since the previous call.
//
// The returned start is an index into series and may be negative or
// extend past the end when the history cannot fully cover the window;
// the extractor applies its padding policy in that case. triggered
// reports whether an edge was located this call.
func (e *Engine) Select(series Series, windowLen, fresh int) (start int, triggered bool) {
	if !e.pending.Enabled {
		e.state = Idle
	}

	switch e.state {
	case Idle:
		if !e.pending.Enabled {
			return freeRun(series, windowLen), false
		}
		e.arm()

	case Holdoff:
		e.remaining -= fresh
		e.sinceTrigger += fresh
		if e.remaining > 0 {
			// Keep showing the window around the last trigger so the
			// trace stays phase-stable until the engine rearms. The
			// distance-from-end bookkeeping holds whether or not the
			// history has started overwriting old samples.
			if idx := series.Len() - 1 - e.sinceTrigger; idx >= 0 {
				return idx - pretrigger(windowLen), false
			}
			return freeRun(series, windowLen), false
		}
		e.arm()

	case Armed:
		// Each call starts a fresh scan, so requested settings can be
		// latched here without touching a scan in progress.
		e.active = e.pending
	}

	idx, ok := e.scan(series)
	if !ok {
		// Free-run fallback: no qualifying edge anywhere in history.
		return freeRun(series, windowLen), false
	}

	e.state = Holdoff
	e.remaining = e.holdoff
	e.sinceTrigger = series.Len() - 1 - idx
	return idx - pretrigger(windowLen), true
}

// arm latches pending settings and enters Armed.
func (e *Engine) arm() {
	e.active = e.pending
	e.state = Armed
}

// scan walks the history oldest-first for the first qualifying pair.
// It returns the index of the sample that crossed the level.
func (e *Engine) scan(series Series) (int, bool) {
	n := series.Len()
	if n < 2 {
		return 0, false
	}

	level := float32(e.active.Level)
	prev := series.At(0)
	for i := 1; i < n; i++ {
		cur := series.At(i)
		switch e.active.Edge {
		case Rising:
			if prev < level && cur >= level {
				return i, true
			}
		case Falling:
			if prev > level && cur <= level {
				return i, true
			}
		}
		prev = cur
	}
	return 0, false
}

// pretrigger places half the window before the trigger point so the
// edge appears centered on the display.
func pretrigger(windowLen int) int { return windowLen / 2 }

// freeRun right-aligns the window to the newest sample.
func freeRun(series Series, windowLen int) int {
	return series.Len() - windowLen
}

func clampLevel(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < -1 {
		return -1
	}
	return v
}
