package index

import (
	"iter"

	"github.com/arloliu/hoverline/geom"
	"github.com/arloliu/hoverline/internal/collision"
	"github.com/arloliu/hoverline/internal/hash"
)

// Set holds the indexes of every series of a chart render.
//
// A Set is rebuilt wholesale on every render; indexes are never patched.
// It isn't safe for concurrent use: rebuilds and lookups are expected to run
// on the same event loop.
type Set struct {
	xAxis   geom.Axis
	indexes []*Index
	byID    map[uint64]*Index
	names   *collision.Tracker
}

// Build creates a Set for the given series projected through xAxis.
func Build(series []Series, xAxis geom.Axis) *Set {
	s := &Set{}
	s.Rebuild(series, xAxis)

	return s
}

// Rebuild discards all indexes and builds new ones.
//
// The position arrays of the previous build are returned to the pool, so any
// Index obtained before the call must not be used afterwards.
func (s *Set) Rebuild(series []Series, xAxis geom.Axis) {
	s.Release()

	s.xAxis = xAxis
	s.indexes = make([]*Index, len(series))
	s.byID = make(map[uint64]*Index, len(series))
	if s.names == nil {
		s.names = collision.NewTracker()
	}
	s.names.Reset()
	for i, ser := range series {
		ix := newIndex(ser, xAxis)
		s.indexes[i] = ix
		// Duplicate and empty names are the host's business; the first one wins lookups.
		_ = s.names.Track(ser.Name, ix.ID)
		if _, taken := s.byID[ix.ID]; !taken {
			s.byID[ix.ID] = ix
		}
	}
}

// Release frees all indexes of the set.
func (s *Set) Release() {
	for _, ix := range s.indexes {
		ix.free()
	}
	s.indexes = nil
	s.byID = nil
}

// XAxis returns the axis the set was built against.
func (s *Set) XAxis() geom.Axis {
	return s.xAxis
}

// Len returns the number of series in the set.
func (s *Set) Len() int {
	return len(s.indexes)
}

// At returns the index of the i-th series in render order.
func (s *Set) At(i int) *Index {
	return s.indexes[i]
}

// ByName returns the index of the named series.
//
// Lookups go through the name hash; when two names of the set collide, the
// series are scanned instead.
func (s *Set) ByName(name string) (*Index, bool) {
	ix, ok := s.byID[hash.ID(name)]
	if ok && ix.Series.Name == name {
		return ix, true
	}
	if !ok || s.names == nil || !s.names.HasCollision() {
		return nil, false
	}

	for _, ix := range s.indexes {
		if ix.Series.Name == name {
			return ix, true
		}
	}

	return nil, false
}

// HasCollision reports whether two series names of the set share a hash.
func (s *Set) HasCollision() bool {
	return s.names != nil && s.names.HasCollision()
}

// All returns an iterator over (position, index) in render order.
func (s *Set) All() iter.Seq2[int, *Index] {
	return func(yield func(int, *Index) bool) {
		for i, ix := range s.indexes {
			if !yield(i, ix) {
				return
			}
		}
	}
}
