package mem

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/memkit/internal/memutil"
)

func TestBumpCarving(t *testing.T) {
	buf := make([]byte, 4096)
	b, err := NewBump(buf, 256)
	require.NoError(t, err)

	r1, err := b.Alloc(100)
	require.NoError(t, err)
	require.Equal(t, uintptr(100), r1.Size())

	r2, err := b.Alloc(100)
	require.NoError(t, err)
	require.GreaterOrEqual(t, r2.Base(), r1.End())
	require.True(t, memutil.IsAligned(r2.Base(), 8))

	// Regions never overlap.
	require.False(t, r1.Contains(r2.Base()))
}

func TestBumpFrameAlignment(t *testing.T) {
	buf := make([]byte, 8192)
	b, err := NewBump(buf, 512)
	require.NoError(t, err)
	require.Equal(t, uintptr(512), b.FrameSize())

	// Skew the bump pointer so the frame needs padding.
	_, err = b.Alloc(10)
	require.NoError(t, err)

	f, err := b.AllocFrame()
	require.NoError(t, err)
	require.Equal(t, uintptr(512), f.Size())
	require.True(t, memutil.IsAligned(f.Base(), 512))
}

func TestBumpExhaustion(t *testing.T) {
	buf := make([]byte, 128)
	b, err := NewBump(buf, 64)
	require.NoError(t, err)

	_, err = b.Alloc(100)
	require.NoError(t, err)
	_, err = b.Alloc(100)
	require.ErrorIs(t, err, ErrOutOfMemory)

	_, err = b.Alloc(0)
	require.ErrorIs(t, err, ErrBadSize)
}

func TestBumpDeallocNoOp(t *testing.T) {
	buf := make([]byte, 256)
	b, err := NewBump(buf, 64)
	require.NoError(t, err)

	r, err := b.Alloc(64)
	require.NoError(t, err)
	require.NoError(t, b.Dealloc(r))

	// Freed memory is not reused.
	r2, err := b.Alloc(64)
	require.NoError(t, err)
	require.NotEqual(t, r.Base(), r2.Base())
}

func TestBumpStats(t *testing.T) {
	buf := make([]byte, 1024)
	b, err := NewBump(buf, 64)
	require.NoError(t, err)

	_, err = b.Alloc(10)
	require.NoError(t, err)
	_, err = b.AllocFrame()
	require.NoError(t, err)

	st := b.Stats()
	require.Equal(t, 1, st.AllocCalls)
	require.Equal(t, 1, st.FrameCalls)
	require.Equal(t, uintptr(74), st.BytesAllocated)
	require.Equal(t, st.HighWater, uintptr(len(buf))-b.Remaining())
}

func TestBumpBadConfig(t *testing.T) {
	buf := make([]byte, 64)
	_, err := NewBump(buf, 48) // not a power of two
	require.ErrorIs(t, err, ErrBadSize)
	_, err = NewBump(buf, 128) // larger than the buffer
	require.ErrorIs(t, err, ErrBadSize)
}
