package mem

import (
	"fmt"
	"unsafe"
)

// Region is a contiguous span of memory described by a base address and a
// length in bytes. Regions are handed by value; they carry no ownership
// bookkeeping of their own. The zero Region is empty.
//
// A Region does not keep its backing memory alive: whoever produced the
// Region (the allocator's backing buffer, a mapping, ...) is responsible
// for that, for as long as the Region is outstanding.
type Region struct {
	base unsafe.Pointer
	size uintptr
}

// NewRegion describes the size bytes starting at base.
func NewRegion(base unsafe.Pointer, size uintptr) Region {
	return Region{base: base, size: size}
}

// RegionOf describes the memory backing buf. An empty buf yields the zero
// Region.
func RegionOf(buf []byte) Region {
	if len(buf) == 0 {
		return Region{}
	}
	return Region{base: unsafe.Pointer(&buf[0]), size: uintptr(len(buf))}
}

// Base returns the region's start address.
func (r Region) Base() uintptr { return uintptr(r.base) }

// Size returns the region's length in bytes.
func (r Region) Size() uintptr { return r.size }

// End returns the address one past the region's last byte.
func (r Region) End() uintptr { return uintptr(r.base) + r.size }

// IsZero reports whether r is the zero Region.
func (r Region) IsZero() bool { return r.base == nil && r.size == 0 }

// Contains reports whether addr falls within the region.
func (r Region) Contains(addr uintptr) bool {
	return addr >= r.Base() && addr < r.End()
}

// Equal reports whether two regions describe the identical span: same
// base and same length.
func (r Region) Equal(o Region) bool { return r == o }

// Offset returns a pointer to the byte at off within the region.
// off must be < Size.
func (r Region) Offset(off uintptr) unsafe.Pointer {
	return unsafe.Add(r.base, off)
}

// Bytes returns the region's memory as a byte slice. The slice aliases
// the region: it is only valid while the caller owns the region.
func (r Region) Bytes() []byte {
	if r.size == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(r.base), r.size)
}

func (r Region) String() string {
	return fmt.Sprintf("Region{base: %#x, size: %d}", r.Base(), r.size)
}
