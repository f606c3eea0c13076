package hash

import (
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/require"
)

func TestID(t *testing.T) {
	require.Equal(t, xxhash.Sum64String("cpu"), ID("cpu"))
	require.Equal(t, ID("cpu"), ID("cpu"))
	require.NotEqual(t, ID("cpu"), ID("mem"))
}

func TestIDs(t *testing.T) {
	ids := IDs([]string{"a", "b", "a"})
	require.Len(t, ids, 3)
	require.Equal(t, ids[0], ids[2])
	require.Equal(t, ID("b"), ids[1])
	require.Empty(t, IDs(nil))
}
