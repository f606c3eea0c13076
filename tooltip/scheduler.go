package tooltip

// Scheduler defers a callback to the next frame boundary.
//
// The driver keeps at most one request outstanding, so implementations never
// see more than one pending callback from the same driver.
type Scheduler interface {
	RequestFrame(fn func())
}

// SchedulerFunc adapts a function to the Scheduler interface.
type SchedulerFunc func(fn func())

// RequestFrame calls f(fn).
func (f SchedulerFunc) RequestFrame(fn func()) {
	f(fn)
}

// ManualScheduler queues frame callbacks until Flush is called.
//
// It suits event loops that own their frame boundary, such as a terminal UI
// tick, and tests.
type ManualScheduler struct {
	queue []func()
}

var _ Scheduler = (*ManualScheduler)(nil)

// NewManualScheduler creates an empty ManualScheduler.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

// RequestFrame queues fn for the next Flush.
func (s *ManualScheduler) RequestFrame(fn func()) {
	s.queue = append(s.queue, fn)
}

// Pending returns the number of queued callbacks.
func (s *ManualScheduler) Pending() int {
	return len(s.queue)
}

// Flush runs the callbacks queued before the call and returns how many ran.
// Callbacks requested while flushing wait for the next Flush.
func (s *ManualScheduler) Flush() int {
	queue := s.queue
	s.queue = nil
	for _, fn := range queue {
		fn()
	}

	return len(queue)
}
