package index

import "cmp"

// BinarySearch searches an ascending slice for v using a three-way comparison.
//
// It returns the index of an element equal to v if there is one (any of them
// when duplicates exist), otherwise the insertion point of v minus one. The
// result is therefore -1 when v sorts before every element and len(sorted)-1
// when it sorts after every element.
//
// The result is undefined if sorted isn't ascending.
func BinarySearch(sorted []float64, v float64) int {
	lo, hi := 0, len(sorted)-1
	for lo <= hi {
		mid := int(uint(lo+hi) >> 1)
		switch c := cmp.Compare(v, sorted[mid]); {
		case c > 0:
			lo = mid + 1
		case c < 0:
			hi = mid - 1
		default:
			return mid
		}
	}

	return lo - 1
}
