package pool

import "sync"

// Slice pools for the render-position arrays of series indexes.
// Indexes are discarded wholesale on every chart render, so the arrays of the
// previous render are handed back here and picked up by the next build.
var float64SlicePool = sync.Pool{
	New: func() any { return &[]float64{} },
}

// GetFloat64Slice retrieves a float64 slice of the given length from the pool.
//
// If the pooled slice has insufficient capacity, a new slice is allocated.
// The caller must call the returned release function once the slice is no
// longer referenced; after that the slice contents must not be read.
//
// Parameters:
//   - size: The desired length of the slice
//
// Returns:
//   - []float64: A slice with length equal to size
//   - func(): Release function returning the slice to the pool
//
// Example:
//
//	positions, release := pool.GetFloat64Slice(len(points))
//	defer release()
func GetFloat64Slice(size int) ([]float64, func()) {
	ptr, _ := float64SlicePool.Get().(*[]float64)
	slice := (*ptr)[:0]

	if cap(slice) < size {
		slice = make([]float64, size)
	} else {
		slice = slice[:size]
	}
	*ptr = slice

	return slice, func() { float64SlicePool.Put(ptr) }
}

// Pool is a typed sync.Pool for per-frame scratch slices.
//
// The driver accumulates one entry per series on every processed frame; the
// slice is recycled between frames instead of being reallocated.
type Pool[T any] struct {
	pool sync.Pool
}

// NewPool creates a slice pool whose fresh slices have the given capacity.
func NewPool[T any](capacity int) *Pool[T] {
	return &Pool[T]{
		pool: sync.Pool{
			New: func() any {
				s := make([]T, 0, capacity)
				return &s
			},
		},
	}
}

// Get returns an empty slice from the pool.
func (p *Pool[T]) Get() *[]T {
	ptr, _ := p.pool.Get().(*[]T)
	*ptr = (*ptr)[:0]

	return ptr
}

// Put clears the slice and returns it to the pool.
func (p *Pool[T]) Put(ptr *[]T) {
	if ptr == nil {
		return
	}
	clear(*ptr)
	*ptr = (*ptr)[:0]
	p.pool.Put(ptr)
}
