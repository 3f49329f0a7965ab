//go:build unix

package mem

import (
	"os"

	"golang.org/x/sys/unix"

	"github.com/joshuapare/memkit/internal/memutil"
)

// MmapAllocator supplies regions backed by anonymous memory mappings.
// Frames are FrameSize-aligned even when the frame size exceeds the page
// size, by over-mapping and trimming the misaligned head and tail.
//
// Not thread-safe; wrap in LockedAlloc/LockedFrames to share.
type MmapAllocator struct {
	frameSize uintptr
	pageSize  uintptr

	// Live mappings keyed by region base, holding the mapped slices so
	// Dealloc can unmap exactly what was kept.
	mapped map[uintptr][]byte
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

// AllocFrame maps one frame, aligned to the frame size.
func (m *MmapAllocator) AllocFrame() (Region, error) {
	return m.mapAligned(m.frameSize, m.frameSize)
}

// DeallocFrame unmaps a frame previously produced by AllocFrame.
func (m *MmapAllocator) DeallocFrame(r Region) error { return m.Dealloc(r) }

// Alloc maps at least size bytes, page-aligned.
func (m *MmapAllocator) Alloc(size uintptr) (Region, error) {
	if size == 0 {
		return Region{}, ErrBadSize
	}
	return m.mapAligned(memutil.AlignUp(size, m.pageSize), m.pageSize)
}

// Dealloc unmaps a region previously produced by this allocator.
// Returns ErrForeignRegion for a base this instance does not have live;
// mapping provenance is an O(1) lookup here, so it is checked.
func (m *MmapAllocator) Dealloc(r Region) error {
	buf, ok := m.mapped[r.Base()]
	if !ok {
		return ErrForeignRegion
	}
	delete(m.mapped, r.Base())
	return unix.Munmap(buf)
}

// Live returns the number of outstanding mappings.
func (m *MmapAllocator) Live() int { return len(m.mapped) }

func (m *MmapAllocator) mapAligned(size, align uintptr) (Region, error) {
	// mmap only guarantees page alignment; for larger alignments map
	// enough slack to find an aligned span inside, then trim.
	total := size
	if align > m.pageSize {
		total += align - m.pageSize
	}
	buf, err := unix.Mmap(-1, 0, int(total),
		unix.PROT_READ|unix.PROT_WRITE, unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		return Region{}, ErrOutOfMemory
	}

	base := RegionOf(buf).Base()
	start := memutil.AlignUp(base, align)
	head := start - base
	tail := total - head - size

	if head > 0 {
		if err := unix.Munmap(buf[:head]); err != nil {
			_ = unix.Munmap(buf)
			return Region{}, ErrOutOfMemory
		}
	}
	if tail > 0 {
		if err := unix.Munmap(buf[head+size:]); err != nil {
			_ = unix.Munmap(buf[head : head+size])
			return Region{}, ErrOutOfMemory
		}
	}

	kept := buf[head : head+size : head+size]
	m.mapped[start] = kept
	return RegionOf(kept), nil
}
