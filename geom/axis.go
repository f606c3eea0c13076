package geom

import (
	"fmt"
	"math"

	"github.com/arloliu/hoverline/errs"
)

// Axis is the projection state of one chart axis: its data bounds and the
// render-space segment the bounds are drawn onto.
//
// Axis values are rebuilt on every chart render and are read-only while
// pointer events are processed.
type Axis struct {
	// Min and Max are the data-space bounds of the axis.
	Min, Max float64
	// Range is the data-space span. When zero, Max - Min is used.
	Range float64
	// Origin is the render-space coordinate of Min.
	// For X axes it's the left edge of the plot area, for Y axes the bottom edge.
	Origin float64
	// Length is the render-space length of the axis.
	Length float64
}

// NewAxis creates an axis from data bounds and a render segment.
func NewAxis(minVal, maxVal, origin, length float64) Axis {
	return Axis{
		Min:    minVal,
		Max:    maxVal,
		Range:  maxVal - minVal,
		Origin: origin,
		Length: length,
	}
}

// Span returns the effective data-space span of the axis.
func (a Axis) Span() float64 {
	if a.Range != 0 {
		return a.Range
	}

	return a.Max - a.Min
}

// Degenerate reports whether projecting through the axis would divide by
// zero or produce a non-finite value.
func (a Axis) Degenerate() bool {
	span := a.Span()

	return span == 0 || !isFinite(span) || !isFinite(a.Min) || !isFinite(a.Origin) || !isFinite(a.Length)
}

// Validate returns an error when the axis can't be used for projection.
//
// Returns:
//   - errs.ErrZeroAxisRange: the data span is zero or non-finite
//   - errs.ErrInvalidAxisLength: the render length is negative or non-finite
func (a Axis) Validate() error {
	span := a.Span()
	if span == 0 || !isFinite(span) || !isFinite(a.Min) {
		return fmt.Errorf("%w: min=%v max=%v range=%v", errs.ErrZeroAxisRange, a.Min, a.Max, a.Range)
	}

	if a.Length < 0 || !isFinite(a.Length) || !isFinite(a.Origin) {
		return fmt.Errorf("%w: origin=%v length=%v", errs.ErrInvalidAxisLength, a.Origin, a.Length)
	}

	return nil
}

// ToRenderX projects a data-space x value onto the render-space x axis.
//
// A degenerate axis maps every value to Origin.
func (a Axis) ToRenderX(dataX float64) float64 {
	if a.Degenerate() {
		return a.Origin
	}

	return a.Origin + a.Length*(dataX-a.Min)/a.Span()
}

// ToDataX is the inverse of ToRenderX.
//
// A degenerate axis, or one with zero render length, maps every position to Min.
func (a Axis) ToDataX(renderX float64) float64 {
	if a.Degenerate() || a.Length == 0 {
		return a.Min
	}

	return (renderX-a.Origin)*a.Span()/a.Length + a.Min
}

// ToRenderY projects a data-space y value onto the render-space y axis.
// Render y grows downward, so larger values land closer to the top.
//
// A degenerate axis maps every value to Origin.
func (a Axis) ToRenderY(dataY float64) float64 {
	if a.Degenerate() {
		return a.Origin
	}

	return a.Origin - a.Length*(dataY-a.Min)/a.Span()
}

// ToDataY is the inverse of ToRenderY.
func (a Axis) ToDataY(renderY float64) float64 {
	if a.Degenerate() || a.Length == 0 {
		return a.Min
	}

	return a.Min + (a.Origin-renderY)*a.Span()/a.Length
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
