package tooltip

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestManualScheduler(t *testing.T) {
	s := NewManualScheduler()
	require.Equal(t, 0, s.Flush())

	var calls []int
	s.RequestFrame(func() { calls = append(calls, 1) })
	s.RequestFrame(func() {
		calls = append(calls, 2)
		// requested while flushing: runs on the next flush
		s.RequestFrame(func() { calls = append(calls, 3) })
	})
	require.Equal(t, 2, s.Pending())

	require.Equal(t, 2, s.Flush())
	require.Equal(t, []int{1, 2}, calls)
	require.Equal(t, 1, s.Pending())

	require.Equal(t, 1, s.Flush())
	require.Equal(t, []int{1, 2, 3}, calls)
}

func TestSchedulerFunc(t *testing.T) {
	ran := false
	var s Scheduler = SchedulerFunc(func(fn func()) { fn() })
	s.RequestFrame(func() { ran = true })
	require.True(t, ran)
}

func TestDriver_ImmediateScheduler(t *testing.T) {
	host := newFakeHost()
	d, err := New(host, SchedulerFunc(func(fn func()) { fn() }))
	require.NoError(t, err)
	require.NoError(t, d.Rendered(renderEvent(cpuSeries())))
	d.PointerEnter()

	d.PointerMove(Pointer{X: 12, Y: 50})
	d.PointerMove(Pointer{X: 22, Y: 50})

	require.Equal(t, 2, d.Frames())
	require.Equal(t, "20\nCpu: 30", host.tooltip.text)
}
