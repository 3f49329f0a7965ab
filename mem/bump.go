package mem

import (
	"github.com/joshuapare/memkit/internal/memutil"
)

// bumpAlign is the minimum alignment of regions carved by a BumpAllocator.
const bumpAlign = 8

// BumpAllocator is an append-only region source that carves allocations
// off a single caller-supplied buffer with a bump pointer.
//
// Key characteristics:
//   - O(1) allocation: pure pointer bump, no bookkeeping structures
//   - Dealloc is a no-op: memory is reclaimed only when the whole buffer
//     is discarded
//   - Zero memory overhead beyond the buffer itself
//
// This is the bootstrap-time allocator: it needs nothing but a static
// buffer, so it can serve as the region source for a slab allocator
// before any real frame supply exists. It doubles as a FrameAllocator by
// carving frame-size-aligned spans.
type BumpAllocator struct {
	buf       []byte
	base      uintptr // address of buf[0]
	next      uintptr // offset of the next free byte within buf
	frameSize uintptr

	stats BumpStats
}

// BumpStats holds counters for a BumpAllocator.
type BumpStats struct {
	AllocCalls     int     // Alloc() calls that succeeded
	FrameCalls     int     // AllocFrame() calls that succeeded
	BytesAllocated uintptr // total bytes handed out
	BytesPadding   uintptr // bytes lost to alignment
	HighWater      uintptr // highest offset reached within the buffer
}

// NewBump returns a BumpAllocator carving from buf. frameSize sets the
// size and alignment of frames produced by AllocFrame and must be a
// power of two no larger than the buffer.
func NewBump(buf []byte, frameSize uintptr) (*BumpAllocator, error) {
	if !memutil.IsPowerOfTwo(frameSize) || frameSize > uintptr(len(buf)) {
		return nil, ErrBadSize
	}
	return &BumpAllocator{
		buf:       buf,
		base:      RegionOf(buf).Base(),
		frameSize: frameSize,
	}, nil
}

// Alloc carves size bytes off the buffer, 8-byte aligned.
func (b *BumpAllocator) Alloc(size uintptr) (Region, error) {
	return b.carve(size, bumpAlign, &b.stats.AllocCalls)
}

// Dealloc is a no-op: a bump allocator never reuses freed memory. Always
// returns nil so bump-backed compositions still observe the Allocator
// contract.
func (b *BumpAllocator) Dealloc(Region) error { return nil }

// FrameSize returns the configured frame size.
func (b *BumpAllocator) FrameSize() uintptr { return b.frameSize }

// AllocFrame carves one frame, aligned to the frame size.
func (b *BumpAllocator) AllocFrame() (Region, error) {
	return b.carve(b.frameSize, b.frameSize, &b.stats.FrameCalls)
}

// DeallocFrame is a no-op, as Dealloc.
func (b *BumpAllocator) DeallocFrame(Region) error { return nil }

// Remaining returns the number of bytes not yet carved, before any
// alignment padding a future request may need.
func (b *BumpAllocator) Remaining() uintptr {
	return uintptr(len(b.buf)) - b.next
}

// Stats returns a copy of the allocator's counters.
func (b *BumpAllocator) Stats() BumpStats { return b.stats }

func (b *BumpAllocator) carve(size, align uintptr, counter *int) (Region, error) {
	if size == 0 {
		return Region{}, ErrBadSize
	}
	// Alignment is relative to the absolute address, not the buffer
	// offset, so frames land on true frameSize boundaries.
	start := memutil.AlignUp(b.base+b.next, align) - b.base
	if start+size > uintptr(len(b.buf)) {
		return Region{}, ErrOutOfMemory
	}
	*counter++
	b.stats.BytesPadding += start - b.next
	b.stats.BytesAllocated += size
	b.next = start + size
	if b.next > b.stats.HighWater {
		b.stats.HighWater = b.next
	}
	return RegionOf(b.buf[start : start+size]), nil
}
