// SPDX-License-Identifier: EPL-2.0

// Package waveform turns the raw capture stream into a fixed-length
// displayable window.
//
// History is a fixed-capacity circular buffer holding the most recent
// samples, owned exclusively by the Extractor. The Extractor drains the
// sample channel into the History once per frame, asks the trigger
// engine where the window should begin, and copies that window out:
//
//	hist →  [............edge..............]
//	                 └── window ──┘
//
// Two policies keep the output deterministic when the signal cannot
// fill the window:
//
//   - Insufficient history (right after start-up, or after zooming the
//     time base out): the leading shortfall is padded with the earliest
//     valid sample, or with zeros when nothing was captured yet.
//   - Window wider than the display: samples are decimated by taking
//     the arithmetic mean of the raw samples mapped to each output
//     point, which aliases less than picking one representative value.
package waveform
