// SPDX-License-Identifier: EPL-2.0

package waveform

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHistory_FillBelowCapacity(t *testing.T) {
	t.Parallel()

	h := NewHistory(8)
	require.Equal(t, 0, h.Len())
	require.Equal(t, 8, h.Cap())

	h.Write([]float32{1, 2, 3})
	require.Equal(t, 3, h.Len())
	require.Equal(t, uint64(3), h.Total())
	for i, want := range []float32{1, 2, 3} {
		require.Equal(t, want, h.At(i))
	}
}

func TestHistory_WrapKeepsNewest(t *testing.T) {
	t.Parallel()

	h := NewHistory(4)
	h.Write([]float32{1, 2, 3, 4, 5, 6})

	require.Equal(t, 4, h.Len())
	require.Equal(t, uint64(6), h.Total())

	// Oldest-first view over the surviving samples.
	for i, want := range []float32{3, 4, 5, 6} {
		require.Equal(t, want, h.At(i))
	}
}

func TestHistory_WrapAcrossManyWrites(t *testing.T) {
	t.Parallel()

	h := NewHistory(5)
	for i := 0; i < 100; i++ {
		h.Write([]float32{float32(i)})
	}

	for i, want := range []float32{95, 96, 97, 98, 99} {
		require.Equal(t, want, h.At(i))
	}
}

func TestHistory_MinimumCapacity(t *testing.T) {
	t.Parallel()

	h := NewHistory(0)
	require.Equal(t, 1, h.Cap())
	h.Write([]float32{7})
	require.Equal(t, float32(7), h.At(0))
}
