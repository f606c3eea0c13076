// Package merge reduces the pair of samples bracketing the pointer to the
// single value reported for a series.
//
// A policy receives the left and right samples (either may be nil at the ends
// of a series) and the query position in data space. It returns false only
// when both samples are absent, in which case the series contributes nothing.
package merge

import (
	"fmt"
	"math"

	"github.com/arloliu/hoverline/errs"
	"github.com/arloliu/hoverline/format"
	"github.com/arloliu/hoverline/index"
)

// Func merges a bracketing pair into one data-space value.
type Func func(left, right *index.DataPoint, queryX float64) (index.DataPoint, bool)

// oneSided handles the cases where at most one side is present.
// The bool reports whether the caller still has to decide between two samples.
func oneSided(left, right *index.DataPoint) (index.DataPoint, bool, bool) {
	switch {
	case left == nil && right == nil:
		return index.DataPoint{}, false, false
	case left == nil:
		return *right, true, false
	case right == nil:
		return *left, true, false
	default:
		return index.DataPoint{}, false, true
	}
}

// Left returns the left sample, or the right one when left is absent.
func Left(left, right *index.DataPoint, _ float64) (index.DataPoint, bool) {
	if left == nil {
		left = right
	}
	if left == nil {
		return index.DataPoint{}, false
	}

	return *left, true
}

// Right returns the right sample, or the left one when right is absent.
func Right(left, right *index.DataPoint, _ float64) (index.DataPoint, bool) {
	if right == nil {
		right = left
	}
	if right == nil {
		return index.DataPoint{}, false
	}

	return *right, true
}

// Nearest returns the sample whose x is closest to queryX.
// Equal distances resolve to the right sample.
func Nearest(left, right *index.DataPoint, queryX float64) (index.DataPoint, bool) {
	if p, ok, both := oneSided(left, right); !both {
		return p, ok
	}

	if math.Abs(left.X-queryX) < math.Abs(right.X-queryX) {
		return *left, true
	}

	return *right, true
}

// Interpolate linearly interpolates y between the two samples at queryX.
//
// The right sample is weighted by the query's normalized distance from the
// left sample and vice versa, so the result equals the left y at left.X and
// the right y at right.X. The returned x is queryX itself. When only one
// sample is present it is returned unchanged; coincident samples return left.
func Interpolate(left, right *index.DataPoint, queryX float64) (index.DataPoint, bool) {
	if p, ok, both := oneSided(left, right); !both {
		return p, ok
	}

	span := right.X - left.X
	if span == 0 {
		return *left, true
	}

	fromLeft := math.Abs(left.X-queryX) / span
	fromRight := math.Abs(right.X-queryX) / span

	return index.DataPoint{
		X: queryX,
		Y: right.Y*fromLeft + left.Y*fromRight,
	}, true
}

var builtins = map[format.MergeType]Func{
	format.MergeLeft:        Left,
	format.MergeRight:       Right,
	format.MergeNearest:     Nearest,
	format.MergeInterpolate: Interpolate,
}

// ForType returns the built-in policy for a merge type.
func ForType(mt format.MergeType) (Func, error) {
	fn, ok := builtins[mt]
	if !ok {
		return nil, fmt.Errorf("%w: %s", errs.ErrUnknownMergePolicy, mt)
	}

	return fn, nil
}

// Resolve returns the built-in policy with the given name.
//
// Unknown names fail with errs.ErrUnknownMergePolicy instead of resolving to
// a no-op policy.
func Resolve(name string) (Func, error) {
	mt, ok := format.ParseMergeType(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", errs.ErrUnknownMergePolicy, name)
	}

	return ForType(mt)
}

// Builtins returns the built-in policies keyed by name.
// The returned map is a fresh copy.
func Builtins() map[string]Func {
	m := make(map[string]Func, len(builtins))
	for mt, fn := range builtins {
		m[mt.String()] = fn
	}

	return m
}
