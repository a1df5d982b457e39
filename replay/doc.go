// SPDX-License-Identifier: EPL-2.0

// Package replay feeds recorded or synthetic signals into the scope
// instead of a live capture device.
//
// A Source streams normalized float32 samples; decoders exist for WAV,
// AIFF, MP3 and Ogg Vorbis files, plus an endless test tone for
// working without any input hardware:
//
//	src, err := replay.Open("capture.wav")
//	if err != nil {
//	    return err
//	}
//	defer src.Close()
//
//	scope := goscope.New(goscope.DefaultOptions())
//	go replay.Feed(ctx, src, scope) // paced at the file's sample rate
//
// Feed mixes multi-channel material down to mono and paces pushes at
// the source's sample rate, so trigger behavior matches a live
// session. Pump does the same without pacing, for offline analysis of
// a whole file.
//
// Replay is signal input only; the package does not write files.
package replay
