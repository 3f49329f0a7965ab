package mem

import "errors"

var (
	// ErrOutOfMemory indicates the allocator could not satisfy a region
	// request. It is always reported through the error return, never by
	// panicking, and is never retried internally.
	ErrOutOfMemory = errors.New("mem: out of memory")

	// ErrCacheFull indicates a FrameCache was asked to take back a frame
	// while all of its slots are occupied.
	ErrCacheFull = errors.New("mem: frame cache is full")

	// ErrForeignRegion indicates a Dealloc of a region that was not
	// produced by this allocator instance, reported only by
	// implementations that can check provenance cheaply.
	ErrForeignRegion = errors.New("mem: region not allocated by this allocator")

	// ErrBadSize indicates a size or alignment parameter the allocator
	// cannot honor (zero, unaligned, or not a supported multiple).
	ErrBadSize = errors.New("mem: unsupported size or alignment")
)
