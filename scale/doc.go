// SPDX-License-Identifier: EPL-2.0

// Package scale models the time and voltage scale of the oscilloscope
// display the way a physical instrument does.
//
// A Settings value describes the grid: seconds per horizontal division,
// volts per vertical division, and the division counts. All conversions
// from physical units to sample counts are pure functions of a Settings
// value and the capture sample rate:
//
//	s := scale.Default()
//	perDiv := s.SamplesPerDiv(48000) // 48 samples at 1ms/div
//	window := s.WindowLen(48000)     // 480 samples across 10 divisions
//
// Adjustments step through the standard 1-2-5 decade sequence instead of
// arbitrary continuous values, matching the detented knobs of a bench
// scope. Steps past either end of the legal range clamp silently; there
// is no invalid input.
package scale
