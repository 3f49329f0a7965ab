//go:build !unix

package mem

import (
	"os"

	"github.com/joshuapare/memkit/internal/memutil"
)

// MmapAllocator on platforms without anonymous mmap support falls back to
// heap-backed buffers, over-allocating to honor the alignment guarantee.
// The allocator pins each buffer until it is deallocated.
type MmapAllocator struct {
	frameSize uintptr
	pageSize  uintptr
	mapped    map[uintptr][]byte
}

// NewMmap returns an MmapAllocator producing frames of frameSize bytes.
// frameSize must be a power of two; it is rounded up to the page size.
func NewMmap(frameSize uintptr) (*MmapAllocator, error) {
	page := uintptr(os.Getpagesize())
	if frameSize == 0 || !memutil.IsPowerOfTwo(frameSize) {
		return nil, ErrBadSize
	}
	if frameSize < page {
		frameSize = page
	}
	return &MmapAllocator{
		frameSize: frameSize,
		pageSize:  page,
		mapped:    make(map[uintptr][]byte),
	}, nil
}

// FrameSize returns the configured frame size.
func (m *MmapAllocator) FrameSize() uintptr { return m.frameSize }

// AllocFrame returns one frame, aligned to the frame size.
func (m *MmapAllocator) AllocFrame() (Region, error) {
	return m.allocAligned(m.frameSize, m.frameSize)
}

// DeallocFrame releases a frame previously produced by AllocFrame.
func (m *MmapAllocator) DeallocFrame(r Region) error { return m.Dealloc(r) }

// Alloc returns at least size bytes, page-aligned.
func (m *MmapAllocator) Alloc(size uintptr) (Region, error) {
	if size == 0 {
		return Region{}, ErrBadSize
	}
	return m.allocAligned(memutil.AlignUp(size, m.pageSize), m.pageSize)
}

// Dealloc releases a region previously produced by this allocator.
func (m *MmapAllocator) Dealloc(r Region) error {
	if _, ok := m.mapped[r.Base()]; !ok {
		return ErrForeignRegion
	}
	delete(m.mapped, r.Base())
	return nil
}

// Live returns the number of outstanding allocations.
func (m *MmapAllocator) Live() int { return len(m.mapped) }

func (m *MmapAllocator) allocAligned(size, align uintptr) (Region, error) {
	buf := make([]byte, size+align)
	base := RegionOf(buf).Base()
	start := memutil.AlignUp(base, align) - base
	m.mapped[base+start] = buf
	return RegionOf(buf[start : start+size : start+size]), nil
}
