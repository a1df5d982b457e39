// SPDX-License-Identifier: EPL-2.0

// Package capture feeds microphone or line-in audio into a scope.
//
// A Session owns a miniaudio capture device (via malgo) configured for
// 32-bit float samples. Each hardware buffer is mixed down to mono and
// handed to the Sink from the audio callback context, so the sink must
// not block; goscope.Scope.OnSamples satisfies that contract.
//
//	scope := goscope.New(goscope.DefaultOptions())
//	sess, err := capture.Open(capture.Config{}, scope)
//	if err != nil {
//		return err
//	}
//	defer sess.Close()
//	if err := sess.Start(); err != nil {
//		return err
//	}
//
// Building this package requires cgo, as miniaudio is a C library.
package capture
