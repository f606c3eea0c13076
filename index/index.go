package index

import (
	"github.com/arloliu/hoverline/geom"
	"github.com/arloliu/hoverline/internal/hash"
	"github.com/arloliu/hoverline/internal/pool"
)

// DataPoint is a single data-space sample of a series.
type DataPoint struct {
	X, Y float64
}

// Series is one plotted line as handed over by the host at render time.
type Series struct {
	// Name identifies the series. It's hashed into the index ID.
	Name string
	// Points are the samples in ascending X order.
	Points []DataPoint
	// Handle is the host's graphical representation of the series, opaque to
	// this package. The driver passes it back to the host for highlighting.
	Handle any
}

// Bracket is the pair of samples around a query position.
//
// Both sides are set in the interior of a series, one side is nil at either
// end, and both are nil for an empty series.
type Bracket struct {
	Left, Right *DataPoint
}

// Empty reports whether neither side of the bracket is present.
func (b Bracket) Empty() bool {
	return b.Left == nil && b.Right == nil
}

// Index is the lookup structure of one series: the render-space x position of
// every sample, index-aligned with Series.Points.
type Index struct {
	// ID is the xxHash64 of the series name.
	ID uint64
	// Series is the indexed series.
	Series Series
	// Positions[i] is the render-space x of Series.Points[i].
	Positions []float64

	release func()
}

// newIndex projects every sample x of s through the x axis.
// Samples keep their input order; nothing is sorted here.
func newIndex(s Series, xAxis geom.Axis) *Index {
	positions, release := pool.GetFloat64Slice(len(s.Points))
	for i, p := range s.Points {
		positions[i] = xAxis.ToRenderX(p.X)
	}

	return &Index{
		ID:        hash.ID(s.Name),
		Series:    s,
		Positions: positions,
		release:   release,
	}
}

// Len returns the number of indexed samples.
func (ix *Index) Len() int {
	return len(ix.Positions)
}

// Locate returns the samples bracketing a render-space x position.
//
// It binary-searches Positions for the last sample at or before queryX and
// returns it as Left along with its successor as Right. A query before the
// first sample is clamped to the first sample, so Left is always present for
// a non-empty series.
//
// Runs in O(log n).
func (ix *Index) Locate(queryX float64) Bracket {
	n := len(ix.Positions)
	if n == 0 {
		return Bracket{}
	}

	i := max(0, BinarySearch(ix.Positions, queryX))

	b := Bracket{Left: &ix.Series.Points[i]}
	if i+1 < n {
		b.Right = &ix.Series.Points[i+1]
	}

	return b
}

func (ix *Index) free() {
	if ix.release != nil {
		ix.release()
		ix.release = nil
	}
	ix.Positions = nil
}
