package mem

// Allocator is the capability through which raw memory regions are
// acquired and released.
//
// Implementations:
//   - BumpAllocator: append-only carving from a fixed buffer
//   - MmapAllocator: anonymous page mappings
//   - FrameCache: fixed three-frame cache
//   - slab.Allocator: fixed-size blocks over any of the above
//
// This interface is how allocators compose: a slab allocator takes any
// Allocator as its region source and is itself an Allocator, so it can be
// substituted wherever a generic allocator is expected.
type Allocator interface {
	// Alloc returns a Region of at least size bytes, or ErrOutOfMemory
	// if the request cannot be satisfied. There is no partial
	// allocation: either a usable Region is returned or an error is.
	Alloc(size uintptr) (Region, error)

	// Dealloc returns a Region to the allocator.
	//
	// The Region must be exactly one previously produced by this
	// allocator instance and not already freed. Passing a foreign or
	// stale Region is a precondition violation; implementations are
	// allowed to assume the precondition rather than check it.
	Dealloc(r Region) error
}

// FrameAllocator is an Allocator specialized to fixed-size regions
// ("frames") whose base addresses are aligned to the frame size.
type FrameAllocator interface {
	// FrameSize returns the fixed size of frames produced by this
	// allocator, in bytes. Always a power of two.
	FrameSize() uintptr

	// AllocFrame returns one frame: a Region of exactly FrameSize bytes
	// whose base address is FrameSize-aligned.
	AllocFrame() (Region, error)

	// DeallocFrame returns a frame previously produced by AllocFrame.
	// Same precondition discipline as Allocator.Dealloc.
	DeallocFrame(r Region) error
}
