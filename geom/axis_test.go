package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/hoverline/errs"
)

// ==============================================================================
// Projection Tests
// ==============================================================================

func TestAxis_ToRenderX(t *testing.T) {
	axis := NewAxis(0, 100, 40, 600)

	require.InDelta(t, 40.0, axis.ToRenderX(0), 1e-9)
	require.InDelta(t, 190.0, axis.ToRenderX(25), 1e-9)
	require.InDelta(t, 640.0, axis.ToRenderX(100), 1e-9)
	// Values outside the bounds extrapolate linearly.
	require.InDelta(t, -20.0, axis.ToRenderX(-10), 1e-9)
}

func TestAxis_ToRenderY_GrowsDownward(t *testing.T) {
	axis := NewAxis(0, 10, 300, 200)

	require.InDelta(t, 300.0, axis.ToRenderY(0), 1e-9)
	require.InDelta(t, 100.0, axis.ToRenderY(10), 1e-9)
	require.Less(t, axis.ToRenderY(8), axis.ToRenderY(2))
}

func TestAxis_RoundTrip(t *testing.T) {
	axes := []Axis{
		NewAxis(0, 100, 40, 600),
		NewAxis(-50, 50, 0, 1),
		NewAxis(1.6e9, 1.7e9, 12.5, 833.25),
		NewAxis(-1e-6, 1e-6, 3, 97),
	}

	for _, axis := range axes {
		for i := 0; i <= 20; i++ {
			x := axis.Min + (axis.Max-axis.Min)*float64(i)/20
			tol := math.Abs(axis.Max-axis.Min) * 1e-12

			require.InDelta(t, x, axis.ToDataX(axis.ToRenderX(x)), tol)
			require.InDelta(t, x, axis.ToDataY(axis.ToRenderY(x)), tol)
		}
	}
}

func TestAxis_ExplicitRangeOverridesBounds(t *testing.T) {
	axis := Axis{Min: 0, Max: 10, Range: 20, Origin: 0, Length: 100}

	require.InDelta(t, 20.0, axis.Span(), 1e-9)
	require.InDelta(t, 50.0, axis.ToRenderX(10), 1e-9)
}

// ==============================================================================
// Degenerate Axis Tests
// ==============================================================================

func TestAxis_ZeroRangeFallsBackToOrigin(t *testing.T) {
	axis := NewAxis(5, 5, 40, 600)

	require.True(t, axis.Degenerate())
	require.Equal(t, 40.0, axis.ToRenderX(5))
	require.Equal(t, 40.0, axis.ToRenderX(1000))
	require.Equal(t, 40.0, axis.ToRenderY(5))
	require.Equal(t, 5.0, axis.ToDataX(333))
	require.Equal(t, 5.0, axis.ToDataY(333))

	err := axis.Validate()
	require.ErrorIs(t, err, errs.ErrZeroAxisRange)
}

func TestAxis_NonFiniteRange(t *testing.T) {
	axis := Axis{Min: 0, Max: math.Inf(1), Origin: 10, Length: 100}

	require.True(t, axis.Degenerate())
	require.ErrorIs(t, axis.Validate(), errs.ErrZeroAxisRange)
	require.Equal(t, 10.0, axis.ToRenderX(3))
}

func TestAxis_ZeroLengthDataFallback(t *testing.T) {
	axis := NewAxis(0, 10, 20, 0)

	require.NoError(t, axis.Validate())
	require.Equal(t, 20.0, axis.ToRenderX(7))
	require.Equal(t, 0.0, axis.ToDataX(20))
}

func TestAxis_Validate(t *testing.T) {
	require.NoError(t, NewAxis(0, 1, 0, 100).Validate())
	require.ErrorIs(t, NewAxis(0, 1, 0, -1).Validate(), errs.ErrInvalidAxisLength)
	require.ErrorIs(t, NewAxis(0, 1, math.NaN(), 10).Validate(), errs.ErrInvalidAxisLength)
}
