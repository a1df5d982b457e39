// SPDX-License-Identifier: EPL-2.0

package channel

import "sync/atomic"

// Ring is a bounded single-producer/single-consumer queue of samples.
// Capacity is rounded up to a power of two so index arithmetic reduces
// to a mask. The backing buffer is allocated once and never grows.
type Ring struct {
	buf  []float32
	mask uint64

	// head is the next index to read, tail the next index to write.
	// Both only ever increase; the difference is the fill level.
	head     atomic.Uint64
	tail     atomic.Uint64
	overruns atomic.Uint64
}

// DefaultCapacity holds about 170ms of audio at 48kHz, enough to absorb
// a few missed render ticks without dropping samples.
const DefaultCapacity = 8192

// New returns a Ring holding at least capacity samples.
// A capacity below 2 is raised to 2.
func New(capacity int) *Ring {
	size := uint64(2)
	for size < uint64(capacity) {
		size <<= 1
	}
	return &Ring{
		buf:  make([]float32, size),
		mask: size - 1,
	}
}

// Push stores s, called only from the producer (audio callback) context.
// It never blocks and never allocates. When the ring is full the oldest
// unread sample is displaced to make room and ErrOverrun is returned;
// the push itself always succeeds.
func (r *Ring) Push(s float32) error {
	tail := r.tail.Load()

	var err error
	if head := r.head.Load(); tail-head > r.mask {
		// Full. Advance head past the oldest sample; if the CAS loses
		// to a concurrent Drain the consumer already made room.
		if r.head.CompareAndSwap(head, head+1) {
			r.overruns.Add(1)
			err = ErrOverrun
		}
	}

	r.buf[tail&r.mask] = s
	r.tail.Store(tail + 1)
	return err
}

// PushAll pushes every sample of buf in order and reports how many
// pushes displaced an old sample.
func (r *Ring) PushAll(buf []float32) (dropped int) {
	for _, s := range buf {
		if r.Push(s) != nil {
			dropped++
		}
	}
	return dropped
}

// Drain copies all currently available samples into dst in arrival
// order, called only from the consumer context. It returns the number
// of samples copied, 0 when the ring is empty or dst is empty. It never
// blocks; when more samples are available than fit in dst, the rest
// stay queued for the next call.
func (r *Ring) Drain(dst []float32) int {
	for {
		head := r.head.Load()
		tail := r.tail.Load()

		n := int(tail - head)
		if n <= 0 || len(dst) == 0 {
			return 0
		}
		if n > len(dst) {
			n = len(dst)
		}

		for i := 0; i < n; i++ {
			dst[i] = r.buf[(head+uint64(i))&r.mask]
		}

		// The producer may have displaced samples we just read. The CAS
		// fails in that case and the copy is redone from the new head.
		if r.head.CompareAndSwap(head, head+uint64(n)) {
			return n
		}
	}
}

// Len reports how many samples are currently queued.
func (r *Ring) Len() int {
	return int(r.tail.Load() - r.head.Load())
}

// Cap reports the fixed capacity of the ring.
func (r *Ring) Cap() int { return len(r.buf) }

// Overruns reports the total number of samples dropped since creation.
func (r *Ring) Overruns() uint64 { return r.overruns.Load() }
