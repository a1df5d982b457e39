// SPDX-License-Identifier: EPL-2.0

// Package measure computes the readout values a scope shows next to
// the trace: signal frequency, peak-to-peak amplitude, RMS level and
// duty cycle.
//
// All functions operate on one display window of normalized samples
// and report an ok flag instead of an error: a window can simply be
// too short, too flat or too aperiodic for a given measurement, and
// the instrument then shows a blank readout rather than failing.
package measure
