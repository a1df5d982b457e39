// SPDX-License-Identifier: EPL-2.0

// Package goscope implements the acquisition core of a real-time
// digital oscilloscope: it takes a live audio input stream, extracts a
// display-ready waveform and detects trigger events to stabilize the
// displayed signal, at a sustained 60Hz refresh rate.
//
// The pipeline is
//
//	capture callback → channel.Ring → waveform.Extractor ⇄ trigger.Engine → Frame
//
// and the package wires it behind two small surfaces: OnSamples for the
// producer (the audio callback) and Publish/CurrentFrame for the
// consumer (the render loop). The two sides share nothing but the
// lock-free sample channel, so the audio callback is never blocked by
// rendering and vice versa.
//
// # Quick Start
//
//	scope := goscope.New(goscope.DefaultOptions())
//
//	// audio callback context, e.g. via the capture package:
//	scope.OnSamples(buf, 48000)
//
//	// render loop, up to 60Hz:
//	frame := scope.Publish()
//	draw(frame.Samples)
//
// Frames are immutable snapshots: a later Publish supersedes, never
// mutates, an earlier Frame, so a renderer may keep one as long as it
// likes.
//
// # Controls
//
// Scale and trigger adjustments mirror the front panel of a bench
// instrument:
//
//	scope.StepTimePerDiv(scale.Inc)  // 1-2-5 sequence, clamped
//	scope.StepVoltsPerDiv(scale.Dec)
//	scope.SetTrigger(trigger.Settings{Enabled: true, Edge: trigger.Rising, Level: 0.1})
//
// Changes take effect on the next published frame, never mid-frame.
//
// # Signal Input
//
// Live capture from a microphone lives in the capture package; file
// replay (WAV, AIFF, MP3, Ogg Vorbis) and synthetic test tones live in
// the replay package. Both feed OnSamples and are interchangeable from
// the core's point of view.
package goscope
