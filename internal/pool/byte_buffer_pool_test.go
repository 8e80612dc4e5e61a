package pool

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestByteBuffer_Basics(t *testing.T) {
	bb := NewByteBuffer(16)
	require.Zero(t, bb.Len())
	require.Equal(t, 16, bb.Cap())
	require.Equal(t, 16, bb.Free())

	bb.MustWrite([]byte("pack"))
	require.Equal(t, 4, bb.Len())
	require.Equal(t, []byte("pack"), bb.Bytes())

	bb.Reset()
	require.Zero(t, bb.Len())
	require.Equal(t, 16, bb.Cap())
}

func TestByteBuffer_Grow(t *testing.T) {
	bb := NewByteBuffer(8)
	bb.MustWrite([]byte{1, 2, 3, 4})

	bb.Grow(1024)
	require.GreaterOrEqual(t, bb.Free(), 1024)
	require.Equal(t, []byte{1, 2, 3, 4}, bb.Bytes())

	// Sufficient capacity: no reallocation.
	capBefore := bb.Cap()
	bb.Grow(1)
	require.Equal(t, capBefore, bb.Cap())
}

func TestByteBuffer_WriteTo(t *testing.T) {
	bb := NewByteBuffer(8)
	bb.MustWrite([]byte{0xA8, 0x4D, 0x00})

	var sink bytes.Buffer
	n, err := bb.WriteTo(&sink)
	require.NoError(t, err)
	require.Equal(t, int64(3), n)
	require.Equal(t, []byte{0xA8, 0x4D, 0x00}, sink.Bytes())
}

func TestByteBufferPool_Reuse(t *testing.T) {
	p := NewByteBufferPool(32, 64)

	bb := p.Get()
	require.NotNil(t, bb)
	bb.MustWrite([]byte("stale"))
	p.Put(bb)

	got := p.Get()
	require.Zero(t, got.Len(), "pooled buffer must come back reset")
}

func TestByteBufferPool_DiscardsOversized(t *testing.T) {
	p := NewByteBufferPool(8, 16)

	bb := p.Get()
	bb.Grow(1024)
	p.Put(bb) // over threshold, dropped

	got := p.Get()
	require.LessOrEqual(t, got.Cap(), 1024)
	require.Zero(t, got.Len())
}

func TestDefaultPool(t *testing.T) {
	bb := GetPackBuffer()
	require.NotNil(t, bb)
	require.GreaterOrEqual(t, bb.Cap(), PackBufferDefaultSize)
	PutPackBuffer(bb)
	PutPackBuffer(nil) // must not panic
}
