// Package geom converts between the three coordinate systems a chart overlay
// deals with: screen coordinates reported by the pointer, chart-local render
// coordinates of the drawn surface, and data-space values of the series.
//
// # Axes
//
// An Axis carries the data bounds and render segment computed by the host at
// render time. X axes grow to the right; Y axes grow upward in data space and
// downward in render space:
//
//	x := geom.NewAxis(0, 100, 40, 600) // data [0,100] drawn from x=40 to x=640
//	px := x.ToRenderX(25)              // 190
//	v := x.ToDataX(px)                 // 25
//
// A degenerate axis (max == min) never yields NaN or Inf: every value maps to
// the axis origin, and Validate reports errs.ErrZeroAxisRange so the caller
// can surface it at render time.
//
// # Screen transforms
//
// Transform is the affine matrix from chart-local to screen space. The
// inverse is recomputed for every ScreenToLocal call since scrolling or
// zooming the host container changes it between events.
package geom
