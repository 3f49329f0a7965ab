// Package mem defines the region and allocator primitives that the rest of
// memkit is built from.
//
// # Overview
//
// A Region is a contiguous span of raw memory described by base address and
// length. Regions are produced by implementations of the Allocator
// capability and handed around by value; whoever holds a Region owns it
// until it is deallocated or lent out (see memkit/mem/lend).
//
// # Allocator capability
//
// The core abstraction is the Allocator interface:
//
//   - Alloc(size): obtain a Region of at least size bytes
//   - Dealloc(region): return a Region previously produced by the same
//     allocator instance
//
// FrameAllocator specializes it to fixed-size, alignment-guaranteed
// regions ("frames", typically physical pages).
//
// Implementations:
//
//   - BumpAllocator: carves aligned frames off a caller-supplied buffer;
//     the bootstrap-time region source
//   - MmapAllocator: page-aligned frames from anonymous mappings
//   - FrameCache: a fixed three-frame cache for use when no real
//     allocator is available
//   - slab.Allocator: fixed-size blocks recycled through intrusive free
//     lists (package memkit/mem/slab)
//
// LockedAlloc serializes any of the above behind a mutual-exclusion
// capability so a single instance can be shared across concurrent callers.
//
// # Failure model
//
// Exhaustion is always reported as ErrOutOfMemory through the error
// return, never by panicking; retry policy belongs to the caller.
// Deallocating a foreign or already-freed Region is a documented
// precondition violation, not a runtime-checked error, except where an
// implementation can check it for free.
//
// # Thread safety
//
// Allocator implementations in this package are not thread-safe unless
// wrapped in LockedAlloc. No operation blocks or suspends internally.
package mem
