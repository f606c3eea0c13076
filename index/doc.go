// Package index maintains the per-series lookup structures used to find the
// samples under the pointer.
//
// On every chart render the host hands over its series; Build projects each
// sample's x value into render space and stores the positions in input order.
// Pointer handling then runs Locate, a binary search over those positions,
// once per series per processed pointer move:
//
//	set := index.Build(series, xAxis)
//	for _, ix := range set.All() {
//	    b := ix.Locate(pointerX)
//	    // b.Left, b.Right bracket pointerX
//	}
//
// Series must be x-ascending. Unsorted input is not detected or repaired and
// yields undefined lookup results.
package index
