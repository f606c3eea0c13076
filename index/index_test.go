package index

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/hoverline/geom"
	"github.com/arloliu/hoverline/internal/hash"
)

// ==============================================================================
// Helper Functions
// ==============================================================================

func linearSeries(name string, xs ...float64) Series {
	pts := make([]DataPoint, len(xs))
	for i, x := range xs {
		pts[i] = DataPoint{X: x, Y: x * 2}
	}

	return Series{Name: name, Points: pts}
}

// identityAxis maps data x to the same render x.
var identityAxis = geom.NewAxis(0, 100, 0, 100)

// ==============================================================================
// Build Tests
// ==============================================================================

func TestBuild_ProjectsPositions(t *testing.T) {
	axis := geom.NewAxis(0, 10, 50, 200)
	set := Build([]Series{linearSeries("a", 0, 5, 10)}, axis)
	defer set.Release()

	require.Equal(t, 1, set.Len())
	ix := set.At(0)
	require.Equal(t, hash.ID("a"), ix.ID)
	require.Equal(t, 3, ix.Len())
	require.InDeltaSlice(t, []float64{50, 150, 250}, ix.Positions, 1e-9)
}

func TestBuild_KeepsInputOrder(t *testing.T) {
	// not sorted on purpose; the builder must not reorder
	set := Build([]Series{linearSeries("a", 30, 10, 20)}, identityAxis)
	defer set.Release()

	require.InDeltaSlice(t, []float64{30, 10, 20}, set.At(0).Positions, 1e-9)
}

func TestSet_Rebuild(t *testing.T) {
	set := Build([]Series{linearSeries("a", 1, 2), linearSeries("b", 3)}, identityAxis)
	require.Equal(t, 2, set.Len())

	set.Rebuild([]Series{linearSeries("c", 5, 6, 7)}, geom.NewAxis(0, 10, 0, 1000))
	require.Equal(t, 1, set.Len())

	_, ok := set.ByName("a")
	require.False(t, ok)

	ix, ok := set.ByName("c")
	require.True(t, ok)
	require.InDeltaSlice(t, []float64{500, 600, 700}, ix.Positions, 1e-9)
	require.Equal(t, 1000.0, set.XAxis().Length)

	set.Release()
	require.Equal(t, 0, set.Len())
}

func TestSet_All(t *testing.T) {
	set := Build([]Series{linearSeries("a"), linearSeries("b"), linearSeries("c")}, identityAxis)
	defer set.Release()

	var names []string
	for i, ix := range set.All() {
		require.Equal(t, set.At(i), ix)
		names = append(names, ix.Series.Name)
	}
	require.Equal(t, []string{"a", "b", "c"}, names)

	count := 0
	for range set.All() {
		count++
		break
	}
	require.Equal(t, 1, count)
}

func TestSet_DuplicateNames(t *testing.T) {
	set := Build([]Series{linearSeries("a", 1), linearSeries("a", 2, 3), linearSeries("")}, identityAxis)
	defer set.Release()

	require.Equal(t, 3, set.Len())
	require.False(t, set.HasCollision())

	ix, ok := set.ByName("a")
	require.True(t, ok)
	require.Same(t, set.At(0), ix)

	_, ok = set.ByName("missing")
	require.False(t, ok)
}

// ==============================================================================
// Locate Tests
// ==============================================================================

func TestLocate_Interior(t *testing.T) {
	set := Build([]Series{linearSeries("a", 0, 10, 20, 30)}, identityAxis)
	defer set.Release()
	ix := set.At(0)

	b := ix.Locate(15)
	require.NotNil(t, b.Left)
	require.NotNil(t, b.Right)
	require.Equal(t, 10.0, b.Left.X)
	require.Equal(t, 20.0, b.Right.X)
}

func TestLocate_ExactMatch(t *testing.T) {
	set := Build([]Series{linearSeries("a", 0, 10, 20, 30)}, identityAxis)
	defer set.Release()
	ix := set.At(0)

	for i := range 3 {
		b := ix.Locate(ix.Positions[i])
		require.Same(t, &ix.Series.Points[i], b.Left)
		require.Same(t, &ix.Series.Points[i+1], b.Right)

		// repeated calls are deterministic
		require.Equal(t, b, ix.Locate(ix.Positions[i]))
	}
}

func TestLocate_Boundaries(t *testing.T) {
	set := Build([]Series{linearSeries("a", 10, 20, 30)}, identityAxis)
	defer set.Release()
	ix := set.At(0)

	// before the first sample: clamped to the first pair
	b := ix.Locate(2)
	require.Equal(t, 10.0, b.Left.X)
	require.Equal(t, 20.0, b.Right.X)

	// at or after the last sample: right side absent
	b = ix.Locate(30)
	require.Equal(t, 30.0, b.Left.X)
	require.Nil(t, b.Right)

	b = ix.Locate(95)
	require.Equal(t, 30.0, b.Left.X)
	require.Nil(t, b.Right)
}

func TestLocate_SinglePoint(t *testing.T) {
	set := Build([]Series{linearSeries("a", 42)}, identityAxis)
	defer set.Release()

	b := set.At(0).Locate(0)
	require.Equal(t, 42.0, b.Left.X)
	require.Nil(t, b.Right)
	require.False(t, b.Empty())
}

func TestLocate_EmptySeries(t *testing.T) {
	set := Build([]Series{{Name: "empty"}}, identityAxis)
	defer set.Release()

	b := set.At(0).Locate(10)
	require.True(t, b.Empty())
	require.Nil(t, b.Left)
	require.Nil(t, b.Right)
}

func TestLocate_RandomSeriesBracketsQuery(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	axis := geom.NewAxis(0, 1000, 30, 640)

	for range 100 {
		n := 2 + rng.IntN(100)
		xs := make([]float64, n)
		for i := range xs {
			xs[i] = rng.Float64() * 1000
		}
		slices.Sort(xs)

		set := Build([]Series{linearSeries("r", xs...)}, axis)
		ix := set.At(0)

		for range 25 {
			q := xs[0] + rng.Float64()*(xs[n-1]-xs[0])
			b := ix.Locate(axis.ToRenderX(q))

			require.NotNil(t, b.Left)
			require.LessOrEqual(t, axis.ToRenderX(b.Left.X), axis.ToRenderX(q))
			if b.Right != nil {
				require.GreaterOrEqual(t, axis.ToRenderX(b.Right.X), axis.ToRenderX(q))
			} else {
				require.Equal(t, xs[n-1], b.Left.X)
			}
		}
		set.Release()
	}
}
