package slab

import (
	"unsafe"

	"github.com/joshuapare/memkit/mem"
)

// Block is an owned handle for one allocated block. It is minted by
// AllocBlock and consumed by FreeBlock; holding a Block means holding the
// sole right to the block's bytes. The zero Block holds nothing.
type Block struct {
	ptr  unsafe.Pointer
	size uintptr
}

// Addr returns the block's start address, or 0 for the zero Block.
func (b Block) Addr() uintptr { return uintptr(b.ptr) }

// Size returns the block's length in bytes.
func (b Block) Size() uintptr { return b.size }

// IsZero reports whether b holds no block.
func (b Block) IsZero() bool { return b.ptr == nil }

// Bytes returns the block's memory as a byte slice. The slice aliases the
// block and must not be used after the block is freed.
func (b Block) Bytes() []byte {
	if b.ptr == nil {
		return nil
	}
	return unsafe.Slice((*byte)(b.ptr), b.size)
}

// Region describes the block as a mem.Region.
func (b Block) Region() mem.Region {
	return mem.NewRegion(b.ptr, b.size)
}
