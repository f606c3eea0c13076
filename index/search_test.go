package index

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBinarySearch(t *testing.T) {
	sorted := []float64{10, 20, 30, 40}

	tests := []struct {
		name string
		v    float64
		want int
	}{
		{"exact first", 10, 0},
		{"exact middle", 30, 2},
		{"exact last", 40, 3},
		{"before first", 5, -1},
		{"between", 25, 1},
		{"just after first", 10.0001, 0},
		{"after last", 99, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, BinarySearch(sorted, tt.v))
		})
	}
}

func TestBinarySearch_Empty(t *testing.T) {
	require.Equal(t, -1, BinarySearch(nil, 1))
	require.Equal(t, -1, BinarySearch([]float64{}, 0))
}

func TestBinarySearch_Duplicates(t *testing.T) {
	sorted := []float64{1, 2, 2, 2, 3}

	i := BinarySearch(sorted, 2)
	require.Equal(t, 2.0, sorted[i])
	// deterministic for identical input
	require.Equal(t, i, BinarySearch(sorted, 2))
}

func TestBinarySearch_RandomBracketing(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))

	for range 200 {
		n := 1 + rng.IntN(64)
		sorted := make([]float64, n)
		for i := range sorted {
			sorted[i] = rng.Float64() * 1000
		}
		slices.Sort(sorted)

		for range 20 {
			v := sorted[0] + rng.Float64()*(sorted[n-1]-sorted[0])
			i := BinarySearch(sorted, v)

			require.GreaterOrEqual(t, i, 0)
			require.LessOrEqual(t, sorted[i], v)
			if i+1 < n {
				require.Less(t, v, sorted[i+1]+1e-12)
			}
		}
	}
}
