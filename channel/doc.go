// SPDX-License-Identifier: EPL-2.0

// Package channel provides the lock-free hand-off between the audio
// capture callback and the processing thread.
//
// The Ring is a fixed-capacity single-producer/single-consumer queue of
// float32 samples. The producer side (Push) is safe to call from a
// real-time audio callback: it never blocks, never allocates, and never
// fails in a way the producer has to handle. The consumer side (Drain)
// pulls all currently available samples in arrival order.
//
// # Overrun Policy
//
// When the ring is full, Push drops the oldest unread sample rather than
// the incoming one. A real-time producer must never stall, so drops are
// counted and reported through Overruns rather than surfaced as a fatal
// error:
//
//	ring := channel.New(8192)
//	// audio callback context:
//	_ = ring.Push(sample)
//	// processing context:
//	n := ring.Drain(buf)
//	dropped := ring.Overruns()
//
// # Concurrency
//
// Exactly one goroutine may call Push and exactly one may call Drain.
// Head and tail are atomic indices; the only cross-thread coordination is
// a compare-and-swap on the head when the producer drops an old sample,
// which the consumer detects and retries.
package channel
