package slab

import "errors"

var (
	// ErrBadConfig indicates a Config that cannot describe a slab: block
	// size too small or misaligned, or a region size that is not a
	// non-zero multiple of the block size.
	ErrBadConfig = errors.New("slab: invalid configuration")

	// ErrForeignBlock indicates a FreeBlock whose address lies in no
	// live slab of this allocator, or is not on a block boundary.
	ErrForeignBlock = errors.New("slab: block does not belong to this allocator")

	// ErrUnalignedRegion indicates the region source produced a region
	// whose base cannot hold the free-list links.
	ErrUnalignedRegion = errors.New("slab: region source returned an unaligned region")
)
