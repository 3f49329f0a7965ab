// Package memutil provides alignment arithmetic shared by the allocator
// packages. All helpers operate on raw addresses and sizes; none of them
// touch memory.
package memutil

// AlignUp rounds v up to the next multiple of align.
// align must be a power of two.
func AlignUp(v, align uintptr) uintptr {
	return (v + align - 1) &^ (align - 1)
}

// AlignDown rounds v down to the previous multiple of align.
// align must be a power of two.
func AlignDown(v, align uintptr) uintptr {
	return v &^ (align - 1)
}

// IsAligned reports whether v is a multiple of align.
// align must be a power of two.
func IsAligned(v, align uintptr) bool {
	return v&(align-1) == 0
}

// IsPowerOfTwo reports whether v is a non-zero power of two.
func IsPowerOfTwo(v uintptr) bool {
	return v != 0 && v&(v-1) == 0
}
