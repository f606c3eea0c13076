// Package hoverline tracks the pointer over a line chart and shows the values
// of every series under it in a tooltip.
//
// hoverline is host-agnostic: the chart surface is anything implementing
// tooltip.Host (create a tooltip element and markers, report the screen
// transform). The driver keeps a sorted position index per series, finds the
// samples bracketing the pointer with a binary search and merges them into
// one value per series with a configurable policy.
//
// # Core Features
//
//   - O(log n) lookup per series and pointer move
//   - Merge policies: left, right, nearest and linear interpolation
//   - Pointer moves coalesced to one lookup per frame
//   - Crosshair markers and point highlighting
//   - Pan, zoom and scroll handled through an affine screen transform
//
// # Basic Usage
//
//	sched := tooltip.NewManualScheduler()
//	driver, _ := hoverline.New(host, sched, tooltip.WithMergeType(format.MergeInterpolate))
//
//	// after every chart render
//	driver.Rendered(tooltip.RenderEvent{XAxis: xAxis, YAxis: yAxis, Series: series})
//
//	// from the host's event loop
//	driver.PointerEnter()
//	driver.PointerMove(tooltip.Pointer{X: 120, Y: 48})
//	sched.Flush() // at the frame boundary
//
//	fmt.Println(driver.Tooltip().Text)
//
// # Package Structure
//
// This package provides top-level wrappers around the tooltip package. The
// term package implements a terminal host, and dataset loads series from CSV,
// XLSX and YAML files.
package hoverline

import (
	"github.com/arloliu/hoverline/format"
	"github.com/arloliu/hoverline/index"
	"github.com/arloliu/hoverline/internal/hash"
	"github.com/arloliu/hoverline/tooltip"
)

// New creates a tooltip driver with custom options.
//
// Parameters:
//   - host: chart surface receiving the tooltip element and markers
//   - scheduler: frame scheduler running the coalesced pointer lookups
//   - opts: driver options, see the tooltip package
//
// Returns:
//   - *tooltip.Driver: the driver, waiting for its first Rendered call
//   - error: nil host or scheduler, or an invalid option
func New(host tooltip.Host, scheduler tooltip.Scheduler, opts ...tooltip.Option) (*tooltip.Driver, error) {
	return tooltip.New(host, scheduler, opts...)
}

// NewDefault creates a driver with the default settings: nearest merge,
// point highlighting on, offset (0, -15) and no horizontal crosshair.
func NewDefault(host tooltip.Host, scheduler tooltip.Scheduler) (*tooltip.Driver, error) {
	return tooltip.New(host, scheduler)
}

// NewWithMerge creates a driver using the named merge policy
// (left, right, nearest or interpolate).
//
// Returns errs.ErrUnknownMergePolicy for other names.
func NewWithMerge(host tooltip.Host, scheduler tooltip.Scheduler, merge string, opts ...tooltip.Option) (*tooltip.Driver, error) {
	opts = append([]tooltip.Option{tooltip.WithMergeName(merge)}, opts...)

	return tooltip.New(host, scheduler, opts...)
}

// SeriesID returns the 64-bit identifier of a series name, the same value as
// index.Index.ID.
func SeriesID(name string) uint64 {
	return hash.ID(name)
}

// MergePolicies returns the names of the built-in merge policies.
func MergePolicies() []string {
	types := []format.MergeType{format.MergeLeft, format.MergeRight, format.MergeNearest, format.MergeInterpolate}
	names := make([]string, len(types))
	for i, mt := range types {
		names[i] = mt.String()
	}

	return names
}

// Series is a convenience constructor for a named series from parallel x and
// y slices. Extra values of the longer slice are ignored.
func Series(name string, xs, ys []float64) index.Series {
	n := min(len(xs), len(ys))
	points := make([]index.DataPoint, n)
	for i := range n {
		points[i] = index.DataPoint{X: xs[i], Y: ys[i]}
	}

	return index.Series{Name: name, Points: points}
}
