// SPDX-License-Identifier: EPL-2.0

package goscope

import (
	"sync/atomic"
	"time"

	"github.com/ik5/goscope/channel"
	"github.com/ik5/goscope/scale"
	"github.com/ik5/goscope/trigger"
	"github.com/ik5/goscope/waveform"
)

// DefaultSampleRate is assumed until the capture callback reports the
// device's real rate.
const DefaultSampleRate = 48000

// Options configures a Scope. Zero values select the documented
// defaults, so Options{} and DefaultOptions() behave the same.
type Options struct {
	// SampleRate is the expected capture rate in Hz. The rate reported
	// by OnSamples overrides it once samples arrive. Default 48000.
	SampleRate int

	// ChannelCapacity is the sample channel size in samples.
	// Default channel.DefaultCapacity.
	ChannelCapacity int

	// HistoryLen is the sample history size in samples. The default
	// covers the widest window: 5s/div across the horizontal divisions
	// at SampleRate, which is also the fixed capacity for the process
	// lifetime.
	HistoryLen int

	// MaxPoints bounds the published window length; wider windows are
	// decimated. Default waveform.DefaultMaxPoints.
	MaxPoints int

	// HoldoffSamples suppresses retriggering for this many samples
	// after a trigger. Default trigger.DefaultHoldoff.
	HoldoffSamples int

	// Scale is the initial grid; zero value selects scale.Default().
	Scale scale.Settings

	// Trigger is the initial trigger setup; the zero value disables
	// triggering, DefaultOptions enables a rising zero crossing.
	Trigger trigger.Settings
}

// DefaultOptions returns the power-on configuration.
func DefaultOptions() Options {
	return Options{
		SampleRate: DefaultSampleRate,
		Scale:      scale.Default(),
		Trigger:    trigger.DefaultSettings(),
	}
}

// Scope owns the full acquisition pipeline. Exactly one goroutine (the
// audio callback) may call OnSamples and exactly one (the render loop)
// may call Publish; every other method is safe from the UI context.
type Scope struct {
	ring   *channel.Ring
	engine *trigger.Engine
	ext    *waveform.Extractor

	// Settings are written by the UI context and snapshotted whole by
	// the processing context once per frame, so reads are torn-free.
	scaleSet atomic.Pointer[scale.Settings]
	trigSet  atomic.Pointer[trigger.Settings]
	dirty    atomic.Bool

	frame   atomic.Pointer[Frame]
	seq     uint64
	rate    atomic.Int64
	stopped atomic.Bool
}

// New builds a Scope from opts.
func New(opts Options) *Scope {
	if opts.SampleRate <= 0 {
		opts.SampleRate = DefaultSampleRate
	}
	if opts.ChannelCapacity <= 0 {
		opts.ChannelCapacity = channel.DefaultCapacity
	}
	sc := opts.Scale
	if sc == (scale.Settings{}) {
		sc = scale.Default()
	}
	sc = sc.Clamp()
	if opts.HistoryLen <= 0 {
		widest := sc
		widest.TimePerDiv = 5 * time.Second // top of the 1-2-5 range
		opts.HistoryLen = widest.WindowLen(opts.SampleRate)
	}

	ring := channel.New(opts.ChannelCapacity)
	engine := trigger.NewEngine(opts.Trigger, opts.HoldoffSamples)

	s := &Scope{
		ring:   ring,
		engine: engine,
		ext:    waveform.NewExtractor(ring, engine, opts.SampleRate, opts.HistoryLen, opts.MaxPoints),
	}
	s.scaleSet.Store(&sc)
	ts := engine.Settings()
	s.trigSet.Store(&ts)

	// Seed an all-padding frame so CurrentFrame never returns nil.
	res := s.ext.Extract(sc, 0)
	s.frame.Store(&Frame{
		Samples:    res.Samples,
		Scale:      sc,
		Trigger:    ts,
		Stable:     false,
		SampleRate: opts.SampleRate,
	})
	return s
}

// OnSamples is the producer entry point, invoked once per hardware
// buffer from the audio callback context with mono samples normalized
// to [-1, 1]. It never blocks and never fails; when the channel is
// full the oldest queued samples are displaced and counted as
// overruns. After Close it becomes a no-op.
func (s *Scope) OnSamples(buf []float32, sampleRate uint32) {
	if s.stopped.Load() || len(buf) == 0 {
		return
	}
	if sampleRate != 0 {
		s.rate.Store(int64(sampleRate))
	}
	s.ring.PushAll(buf)
}

// Publish drains the sample channel and returns the current display
// frame. It is called from the render loop at up to 60Hz, never
// blocks, and is idempotent within a tick: when no new samples arrived
// and no setting changed, the previous Frame is returned unchanged.
func (s *Scope) Publish() *Frame {
	fresh := s.ext.Drain()
	dirty := s.dirty.Swap(false)
	if fresh == 0 && !dirty {
		if prev := s.frame.Load(); prev != nil {
			return prev
		}
	}

	if r := s.rate.Load(); r != 0 {
		s.ext.SetSampleRate(int(r))
	}
	ts := *s.trigSet.Load()
	s.engine.SetSettings(ts)
	sc := *s.scaleSet.Load()

	res := s.ext.Extract(sc, fresh)
	s.seq++
	f := &Frame{
		Samples:    res.Samples,
		Scale:      sc,
		Trigger:    ts,
		Triggered:  res.Triggered,
		Stable:     res.Stable,
		SampleRate: s.ext.SampleRate(),
		Seq:        s.seq,
	}
	s.frame.Store(f)
	return f
}

// CurrentFrame returns the most recently published frame without
// recomputing anything. Safe from any goroutine.
func (s *Scope) CurrentFrame() *Frame { return s.frame.Load() }

// Overruns reports the total number of samples dropped because the
// processing side fell behind the capture side.
func (s *Scope) Overruns() uint64 { return s.ring.Overruns() }

// ScaleSettings returns the grid settings the next frame will use.
func (s *Scope) ScaleSettings() scale.Settings { return *s.scaleSet.Load() }

// TriggerSettings returns the trigger setup the next frame will use.
func (s *Scope) TriggerSettings() trigger.Settings { return *s.trigSet.Load() }

// StepTimePerDiv moves the time base one 1-2-5 step, clamped to the
// legal range. The change applies to the next published frame.
func (s *Scope) StepTimePerDiv(d scale.Direction) {
	next := s.scaleSet.Load().StepTime(d)
	s.scaleSet.Store(&next)
	s.dirty.Store(true)
}

// StepVoltsPerDiv moves the vertical scale one 1-2-5 step, clamped to
// the legal range. The change applies to the next published frame.
func (s *Scope) StepVoltsPerDiv(d scale.Direction) {
	next := s.scaleSet.Load().StepVolts(d)
	s.scaleSet.Store(&next)
	s.dirty.Store(true)
}

// SetTrigger replaces the trigger setup. The level is clamped to the
// normalized amplitude range; the engine latches the new values when
// it next (re)arms.
func (s *Scope) SetTrigger(t trigger.Settings) {
	t = t.Clamped()
	s.trigSet.Store(&t)
	s.dirty.Store(true)
}

// Close marks the capture session stopped: further OnSamples calls are
// ignored and a final drain folds any queued samples into the history.
// The producer does not need to cooperate; an audio backend may keep
// calling OnSamples harmlessly while it shuts down. Publish keeps
// working on whatever was captured.
func (s *Scope) Close() {
	if s.stopped.Swap(true) {
		return
	}
	s.ext.Drain()
	s.dirty.Store(true)
}

// Closed reports whether Close was called.
func (s *Scope) Closed() bool { return s.stopped.Load() }
