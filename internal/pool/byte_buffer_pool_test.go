package pool

import (
	"bytes"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// ByteBuffer Tests
// =============================================================================

func TestNewByteBuffer(t *testing.T) {
	bb := NewByteBuffer(64)

	require.NotNil(t, bb)
	assert.Equal(t, 0, bb.Len())
	assert.Equal(t, 64, bb.Cap())
}

func TestByteBuffer_Write(t *testing.T) {
	bb := NewByteBuffer(4)

	n, err := bb.Write([]byte("héllo"))
	require.NoError(t, err)
	require.Equal(t, 6, n)

	require.NoError(t, bb.WriteByte('!'))
	bb.MustWrite([]byte(" 😀"))

	require.Equal(t, []byte("héllo! 😀"), bb.Bytes())
}

func TestByteBuffer_Reset(t *testing.T) {
	bb := NewByteBuffer(16)
	bb.MustWrite([]byte("some data"))

	bb.Reset()

	assert.Equal(t, 0, bb.Len())
	assert.Equal(t, 16, bb.Cap(), "Reset should preserve capacity")
}

func TestByteBuffer_Grow(t *testing.T) {
	t.Run("sufficient capacity", func(t *testing.T) {
		bb := NewByteBuffer(32)
		bb.Grow(32)
		require.Equal(t, 32, bb.Cap())
	})

	t.Run("doubles capacity", func(t *testing.T) {
		bb := NewByteBuffer(8)
		bb.MustWrite([]byte("12345678"))
		bb.Grow(1)
		require.Equal(t, 16, bb.Cap())
	})

	t.Run("grows to required size", func(t *testing.T) {
		bb := NewByteBuffer(8)
		bb.MustWrite([]byte("1234"))
		bb.Grow(100)
		require.GreaterOrEqual(t, bb.Cap(), 104)
	})

	t.Run("preserves data", func(t *testing.T) {
		bb := NewByteBuffer(2)
		bb.MustWrite([]byte("ab"))
		bb.Grow(10)
		require.Equal(t, []byte("ab"), bb.Bytes())
	})

	t.Run("zero capacity buffer", func(t *testing.T) {
		bb := NewByteBuffer(0)
		bb.Grow(0)
		require.Equal(t, 0, bb.Cap())
		bb.Grow(3)
		require.GreaterOrEqual(t, bb.Cap(), 3)
	})
}

func TestByteBuffer_Clone(t *testing.T) {
	bb := NewByteBuffer(64)
	bb.MustWrite([]byte("data"))

	out := bb.Clone()
	bb.Reset()
	bb.MustWrite([]byte("XXXX"))

	require.Equal(t, []byte("data"), out)
	require.Equal(t, 4, cap(out))
}

func TestByteBuffer_WriteTo(t *testing.T) {
	bb := NewByteBuffer(16)
	bb.MustWrite([]byte("payload"))

	var out bytes.Buffer
	n, err := bb.WriteTo(&out)

	require.NoError(t, err)
	require.Equal(t, int64(7), n)
	require.Equal(t, "payload", out.String())
}

// =============================================================================
// ByteBufferPool Tests
// =============================================================================

func TestByteBufferPool_GetPut(t *testing.T) {
	p := NewByteBufferPool(128, 1024)

	bb := p.Get()
	require.NotNil(t, bb)
	require.Equal(t, 0, bb.Len())
	require.GreaterOrEqual(t, bb.Cap(), 128)

	bb.MustWrite([]byte("stale"))
	p.Put(bb)

	again := p.Get()
	require.Equal(t, 0, again.Len(), "pooled buffers must come back empty")
}

func TestByteBufferPool_PutNil(t *testing.T) {
	p := NewByteBufferPool(16, 0)
	require.NotPanics(t, func() { p.Put(nil) })
}

func TestByteBufferPool_MaxThreshold(t *testing.T) {
	p := NewByteBufferPool(16, 64)

	big := NewByteBuffer(128)
	big.MustWrite([]byte("oversized"))
	p.Put(big)

	// the oversized buffer is never handed out again
	for range 10 {
		bb := p.Get()
		require.LessOrEqual(t, bb.Cap(), 64)
	}
}

func TestDefaultPools(t *testing.T) {
	scratch := GetScratchBuffer()
	require.GreaterOrEqual(t, scratch.Cap(), ScratchBufferDefaultSize)
	PutScratchBuffer(scratch)

	blob := GetBlobBuffer()
	require.GreaterOrEqual(t, blob.Cap(), BlobBufferDefaultSize)
	PutBlobBuffer(blob)
}

func TestByteBufferPool_ConcurrentAccess(t *testing.T) {
	p := NewByteBufferPool(32, 1024)

	var wg sync.WaitGroup
	for i := range 16 {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for range 100 {
				bb := p.Get()
				bb.MustWrite([]byte{byte(id)})
				if bb.Len() != 1 {
					t.Errorf("expected fresh buffer, got len %d", bb.Len())
				}
				p.Put(bb)
			}
		}(i)
	}
	wg.Wait()
}
