package collision

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/hoverline/errs"
)

func TestNewTracker(t *testing.T) {
	tracker := NewTracker()

	require.NotNil(t, tracker)
	require.Equal(t, 0, tracker.Count())
	require.False(t, tracker.HasCollision())
	require.Empty(t, tracker.Names())
}

func TestTracker_Track_Success(t *testing.T) {
	tracker := NewTracker()

	require.NoError(t, tracker.Track("cpu", 0x1234567890abcdef))
	require.NoError(t, tracker.Track("mem", 0xfedcba0987654321))

	require.Equal(t, 2, tracker.Count())
	require.False(t, tracker.HasCollision())
	require.Equal(t, []string{"cpu", "mem"}, tracker.Names())
}

func TestTracker_Track_EmptyName(t *testing.T) {
	tracker := NewTracker()

	err := tracker.Track("", 0x1234567890abcdef)

	require.ErrorIs(t, err, errs.ErrInvalidSeriesName)
	require.Equal(t, 0, tracker.Count())
}

func TestTracker_Track_Collision(t *testing.T) {
	tracker := NewTracker()

	require.NoError(t, tracker.Track("cpu", 0x1234567890abcdef))
	// same hash, different name: tracked, flagged
	require.NoError(t, tracker.Track("cpu.idle", 0x1234567890abcdef))

	require.True(t, tracker.HasCollision())
	require.Equal(t, 2, tracker.Count())

	// the first name still counts as a duplicate after the collision
	require.ErrorIs(t, tracker.Track("cpu", 0x1234567890abcdef), errs.ErrDuplicateSeries)
	require.ErrorIs(t, tracker.Track("cpu.idle", 0x1), errs.ErrDuplicateSeries)
}

func TestTracker_Reset(t *testing.T) {
	tracker := NewTracker()
	require.NoError(t, tracker.Track("cpu", 1))
	require.NoError(t, tracker.Track("mem", 1))
	require.True(t, tracker.HasCollision())

	tracker.Reset()

	require.Equal(t, 0, tracker.Count())
	require.False(t, tracker.HasCollision())
	require.NoError(t, tracker.Track("cpu", 1))
}
