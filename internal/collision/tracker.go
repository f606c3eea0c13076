package collision

import (
	"github.com/arloliu/hoverline/errs"
)

// Tracker tracks series names and detects hash collisions between them.
// It maintains a hash-to-name mapping and the ordered list of names.
type Tracker struct {
	ids          map[uint64]string   // Hash → first name seen with it
	names        map[string]struct{} // Every tracked name
	nameList     []string            // Tracking order
	hasCollision bool                // Whether two different names share a hash
}

// NewTracker creates a new collision tracker.
func NewTracker() *Tracker {
	return &Tracker{
		ids:      make(map[uint64]string),
		names:    make(map[string]struct{}),
		nameList: make([]string, 0),
	}
}

// Track tracks a series name with its hash.
//
// Returns error if:
//   - The name is empty (ErrInvalidSeriesName)
//   - The same name is tracked twice (ErrDuplicateSeries)
//
// Hash collisions (different names, same hash) are NOT errors. The collision
// flag is set instead so lookups by ID can fall back to comparing names.
func (t *Tracker) Track(name string, hash uint64) error {
	if name == "" {
		return errs.ErrInvalidSeriesName
	}
	if _, dup := t.names[name]; dup {
		return errs.ErrDuplicateSeries
	}

	if existing, exists := t.ids[hash]; exists && existing != name {
		t.hasCollision = true
	} else {
		t.ids[hash] = name
	}
	t.names[name] = struct{}{}
	t.nameList = append(t.nameList, name)

	return nil
}

// HasCollision returns true if a collision has been detected.
func (t *Tracker) HasCollision() bool {
	return t.hasCollision
}

// Names returns the tracked names in tracking order.
func (t *Tracker) Names() []string {
	return t.nameList
}

// Count returns the number of tracked names.
func (t *Tracker) Count() int {
	return len(t.nameList)
}

// Reset clears all tracked names and collision state.
func (t *Tracker) Reset() {
	// keep capacity for the next render
	clear(t.ids)
	clear(t.names)
	t.nameList = t.nameList[:0]
	t.hasCollision = false
}
