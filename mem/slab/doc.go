// Package slab implements a fixed-size-block allocator over any region
// source.
//
// # Overview
//
// A slab allocator carves the regions it obtains from an underlying
// mem.Allocator into equal-size blocks and recycles freed blocks through
// intrusive free lists threaded through the blocks themselves, so the
// allocator needs no auxiliary heap for its bookkeeping. This is the
// classic design for fixed-size kernel object pools (page-table entries,
// task structures, and the like).
//
// # Design
//
//   - One Slab per region: the region subdivided into RegionSize/BlockSize
//     blocks, with a free Stack threaded through the free blocks.
//   - Slabs are kept on a most-recently-used list. Allocation scans
//     MRU-first, which favors cache-warm slabs and lets idle slabs drift
//     toward the tail where the reclamation policy finds them.
//   - Allocation pops a free block in O(1) once a slab is chosen; the
//     scan is O(number of slabs). When no slab has a free block, one new
//     region is requested upstream and carved.
//   - Freeing locates the owning slab by address bounds and pushes the
//     block back in O(1).
//
// # Reclamation
//
// A slab whose blocks are all free is not returned upstream immediately;
// bursts of free-then-allocate would otherwise churn the region source.
// Instead the allocator keeps up to Config.ReclamationSlack fully-empty
// slabs around and returns the least recently used surplus ones.
//
// # Composition
//
// Allocator itself implements mem.Allocator for requests of exactly one
// block, so slab allocators stack transparently on top of each other or
// behind mem.LockedAlloc. The lock of an outer LockedAlloc is never held
// while the slab allocator is inside its region source: the slab layer
// calls upstream only to fetch or return whole regions, never while
// manipulating its own free lists under a caller's lock.
//
// # Thread safety
//
// Not thread-safe; wrap in mem.LockedAlloc to share an instance.
package slab
