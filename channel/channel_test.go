// SPDX-License-Identifier: EPL-2.0

package channel

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRing_PushDrainOrder(t *testing.T) {
	t.Parallel()

	r := New(64)
	for i := 0; i < 50; i++ {
		require.NoError(t, r.Push(float32(i)))
	}
	require.Equal(t, 50, r.Len())

	dst := make([]float32, 64)
	n := r.Drain(dst)
	require.Equal(t, 50, n)
	for i := 0; i < n; i++ {
		require.Equal(t, float32(i), dst[i], "sample %d out of order", i)
	}
	require.Equal(t, uint64(0), r.Overruns())
}

func TestRing_DrainEmpty(t *testing.T) {
	t.Parallel()

	r := New(16)
	dst := make([]float32, 16)
	require.Equal(t, 0, r.Drain(dst))

	// A drain yielding nothing must be repeatable.
	require.Equal(t, 0, r.Drain(dst))
}

func TestRing_CapacityRoundsToPowerOfTwo(t *testing.T) {
	t.Parallel()

	require.Equal(t, 16, New(9).Cap())
	require.Equal(t, 16, New(16).Cap())
	require.Equal(t, 2, New(0).Cap())
}

func TestRing_OverrunDropsOldest(t *testing.T) {
	t.Parallel()

	const k = 24
	r := New(16) // capacity exactly 16
	for i := 0; i < 16+k; i++ {
		err := r.Push(float32(i))
		if i < 16 {
			require.NoError(t, err)
		} else {
			require.ErrorIs(t, err, ErrOverrun)
		}
	}

	require.Equal(t, uint64(k), r.Overruns())

	// Only the most recent 16 samples survive, still in order.
	dst := make([]float32, 32)
	n := r.Drain(dst)
	require.Equal(t, 16, n)
	for i := 0; i < n; i++ {
		require.Equal(t, float32(k+i), dst[i])
	}
}

func TestRing_PushAllCountsDrops(t *testing.T) {
	t.Parallel()

	r := New(8)
	buf := make([]float32, 20)
	for i := range buf {
		buf[i] = float32(i)
	}

	dropped := r.PushAll(buf)
	require.Equal(t, 12, dropped)
	require.Equal(t, uint64(12), r.Overruns())
}

func TestRing_PartialDrain(t *testing.T) {
	t.Parallel()

	r := New(32)
	for i := 0; i < 10; i++ {
		require.NoError(t, r.Push(float32(i)))
	}

	dst := make([]float32, 4)
	require.Equal(t, 4, r.Drain(dst))
	require.Equal(t, []float32{0, 1, 2, 3}, dst)

	require.Equal(t, 4, r.Drain(dst))
	require.Equal(t, []float32{4, 5, 6, 7}, dst)

	require.Equal(t, 2, r.Drain(dst))
	require.Equal(t, []float32{8, 9}, dst[:2])
}

// TestRing_ConcurrentPushDrain exercises the producer and consumer on
// separate goroutines. Samples are a strictly increasing sequence, so
// any reordering or duplication shows up as a non-monotonic drain.
func TestRing_ConcurrentPushDrain(t *testing.T) {
	t.Parallel()

	const total = 200000
	r := New(1024)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < total; i++ {
			_ = r.Push(float32(i))
		}
	}()

	var drained int
	last := float32(-1)
	dst := make([]float32, 256)
	for drained+int(r.Overruns()) < total {
		n := r.Drain(dst)
		for i := 0; i < n; i++ {
			require.Greater(t, dst[i], last, "drained sample went backwards")
			last = dst[i]
		}
		drained += n
	}
	wg.Wait()

	// Final drain after the producer stopped.
	for {
		n := r.Drain(dst)
		if n == 0 {
			break
		}
		for i := 0; i < n; i++ {
			require.Greater(t, dst[i], last)
			last = dst[i]
		}
		drained += n
	}

	require.Equal(t, total, drained+int(r.Overruns()))
}

func BenchmarkRing_Push(b *testing.B) {
	r := New(DefaultCapacity)
	for i := 0; i < b.N; i++ {
		_ = r.Push(float32(i))
	}
}

func BenchmarkRing_PushDrain(b *testing.B) {
	r := New(DefaultCapacity)
	dst := make([]float32, 512)
	for i := 0; i < b.N; i++ {
		_ = r.Push(float32(i))
		if i%512 == 511 {
			r.Drain(dst)
		}
	}
}
