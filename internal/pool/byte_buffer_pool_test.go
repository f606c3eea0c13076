package pool

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestByteBuffer_Write(t *testing.T) {
	bb := NewByteBuffer(4)

	n, err := bb.Write([]byte("x,a\n"))
	require.NoError(t, err)
	require.Equal(t, 4, n)

	_, _ = bb.Write([]byte("1,2\n"))
	require.Equal(t, "x,a\n1,2\n", string(bb.Bytes()))
	require.Equal(t, 8, bb.Len())

	bb.Reset()
	require.Equal(t, 0, bb.Len())
}

func TestExportBuffer_GetPut(t *testing.T) {
	bb := GetExportBuffer()
	require.NotNil(t, bb)
	require.Equal(t, 0, bb.Len())

	_, _ = bb.Write([]byte("data"))
	PutExportBuffer(bb)
	PutExportBuffer(nil)

	again := GetExportBuffer()
	require.Equal(t, 0, again.Len())
	PutExportBuffer(again)
}

func TestByteBufferPool_MaxThreshold_Discard(t *testing.T) {
	p := NewByteBufferPool(8, 16)

	bb := p.Get()
	_, _ = bb.Write(make([]byte, 64))
	p.Put(bb)

	// whatever comes back must be empty
	got := p.Get()
	require.Equal(t, 0, got.Len())
}
