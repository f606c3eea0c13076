package hash

import "github.com/cespare/xxhash/v2"

// ID computes the xxHash64 of a series name.
//
// Series are identified by this hash when looking up their graphical handles,
// so renaming a series changes its identity.
func ID(name string) uint64 {
	return xxhash.Sum64String(name)
}

// IDs computes the IDs of several series names, preserving order.
func IDs(names []string) []uint64 {
	ids := make([]uint64, len(names))
	for i, name := range names {
		ids[i] = ID(name)
	}

	return ids
}
