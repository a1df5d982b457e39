// SPDX-License-Identifier: EPL-2.0

// Package utils holds small numeric helpers shared by the signal
// input paths.
package utils

// MixMono folds interleaved multi-channel samples into mono by
// averaging each frame's channels into dst. It returns the number of
// whole frames written; a trailing partial frame in src is ignored.
// dst must hold at least len(src)/channels values.
func MixMono(dst, src []float32, channels int) int {
	if channels <= 1 {
		return copy(dst, src)
	}

	frames := len(src) / channels
	inv := 1 / float32(channels)

	switch channels {
	case 2: // the common stereo capture layout
		for f := 0; f < frames; f++ {
			i := f * 2
			dst[f] = (src[i] + src[i+1]) * 0.5
		}
	default:
		for f := 0; f < frames; f++ {
			base := f * channels
			var sum float32
			for c := 0; c < channels; c++ {
				sum += src[base+c]
			}
			dst[f] = sum * inv
		}
	}
	return frames
}
