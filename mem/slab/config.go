package slab

import (
	"unsafe"

	"github.com/joshuapare/memkit/internal/memutil"
)

// minBlockSize is the smallest usable block: a free block must hold the
// intrusive free-list link threaded through it.
const minBlockSize = unsafe.Sizeof(freeBlock{})

// linkAlign is the alignment the free-list link imposes on block
// addresses.
const linkAlign = unsafe.Alignof(freeBlock{})

// Config describes one slab allocator instance.
type Config struct {
	// BlockSize is the fixed unit of allocation, in bytes. Must be at
	// least minBlockSize and a multiple of the link alignment.
	BlockSize uintptr

	// RegionSize is how large a region to request from the underlying
	// allocator per new slab; a non-zero multiple of BlockSize. Larger
	// regions amortize the per-request overhead of the region source.
	RegionSize uintptr

	// ReclamationSlack is how many fully-empty slabs may sit idle
	// before the least recently used one is returned upstream. Zero
	// reclaims eagerly; larger values trade idle memory for less churn
	// on the region source.
	ReclamationSlack int
}

// DefaultConfig serves 64-byte objects from page-sized slabs and keeps
// one empty slab in reserve.
var DefaultConfig = Config{
	BlockSize:        64,
	RegionSize:       4096,
	ReclamationSlack: 1,
}

func (c Config) validate() error {
	if c.BlockSize < minBlockSize || !memutil.IsAligned(c.BlockSize, linkAlign) {
		return ErrBadConfig
	}
	if c.RegionSize == 0 || c.RegionSize%c.BlockSize != 0 {
		return ErrBadConfig
	}
	if c.ReclamationSlack < 0 {
		return ErrBadConfig
	}
	return nil
}

// blocksPerSlab returns how many blocks one region yields.
func (c Config) blocksPerSlab() int {
	return int(c.RegionSize / c.BlockSize)
}
