// SPDX-License-Identifier: EPL-2.0

package measure

import "math"

// flatness below which a window has no measurable amplitude
// structure.
const minSwing = 1e-4

// PeakToPeak reports the amplitude swing of the window. A flat window
// has no swing to report; use RMS for its DC level instead.
func PeakToPeak(samples []float32) (float64, bool) {
	if len(samples) == 0 {
		return 0, false
	}
	lo, hi := minMax(samples)
	if float64(hi-lo) < minSwing {
		return 0, false
	}
	return float64(hi - lo), true
}

// RMS reports the root-mean-square level of the window.
func RMS(samples []float32) (float64, bool) {
	if len(samples) == 0 {
		return 0, false
	}
	var sum float64
	for _, s := range samples {
		sum += float64(s) * float64(s)
	}
	return math.Sqrt(sum / float64(len(samples))), true
}

// Frequency estimates the dominant frequency in Hz from the rising
// crossings of the window's mid level. It needs at least two crossings
// (one full period) and a non-flat signal.
func Frequency(samples []float32, sampleRate int) (float64, bool) {
	if sampleRate <= 0 {
		return 0, false
	}
	crossings := risingCrossings(samples)
	if len(crossings) < 2 {
		return 0, false
	}
	// Average period between the first and last crossing; the
	// sub-sample interpolation in the crossing positions keeps the
	// estimate tight even over few periods.
	span := crossings[len(crossings)-1] - crossings[0]
	period := span / float64(len(crossings)-1)
	if period <= 0 {
		return 0, false
	}
	return float64(sampleRate) / period, true
}

// DutyCycle reports the fraction of each period the signal spends
// above its mid level, in [0, 1].
func DutyCycle(samples []float32) (float64, bool) {
	if len(samples) == 0 {
		return 0, false
	}
	lo, hi := minMax(samples)
	if float64(hi-lo) < minSwing {
		return 0, false
	}
	mid := (hi + lo) / 2
	above := 0
	for _, s := range samples {
		if s > mid {
			above++
		}
	}
	return float64(above) / float64(len(samples)), true
}

// risingCrossings returns the interpolated positions, in samples,
// where the signal crosses its mid level upward.
func risingCrossings(samples []float32) []float64 {
	if len(samples) < 2 {
		return nil
	}
	lo, hi := minMax(samples)
	if float64(hi-lo) < minSwing {
		return nil
	}
	mid := (hi + lo) / 2

	var out []float64
	for i := 1; i < len(samples); i++ {
		prev, cur := samples[i-1], samples[i]
		if prev < mid && cur >= mid {
			// Linear interpolation between the straddling pair.
			frac := float64(mid-prev) / float64(cur-prev)
			out = append(out, float64(i-1)+frac)
		}
	}
	return out
}

func minMax(samples []float32) (lo, hi float32) {
	lo, hi = samples[0], samples[0]
	for _, s := range samples[1:] {
		if s < lo {
			lo = s
		}
		if s > hi {
			hi = s
		}
	}
	return lo, hi
}
