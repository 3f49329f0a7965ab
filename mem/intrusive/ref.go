package intrusive

// Ref is an owning reference to a detached element of type T.
//
// Exactly one Ref (or one collection slot) claims ownership of a given
// element at any instant. Inserting into a collection consumes the Ref:
// the collection empties the handle and becomes the element's owner until
// a pop or cursor removal mints a fresh Ref for it.
//
// A Ref must not be copied while full; pass it by pointer to the insert
// operations, which empty it in place. The zero Ref is empty.
type Ref[T any] struct {
	ptr *T
}

// AdoptRef takes ownership of the element at p and returns the owning
// handle for it. p must point to an element that is not currently linked
// into any collection and is not owned by another Ref.
func AdoptRef[T any](p *T) Ref[T] {
	return Ref[T]{ptr: p}
}

// Take consumes the Ref, returning the owned element and leaving the
// handle empty. Returns nil if the Ref is already empty. The caller
// becomes responsible for the element's storage.
func (r *Ref[T]) Take() *T {
	p := r.ptr
	r.ptr = nil
	return p
}

// Ptr returns a non-owning observer pointer to the element, or nil if the
// Ref is empty. The observer may be copied freely but grants no ownership.
func (r Ref[T]) Ptr() *T {
	return r.ptr
}

// IsNil reports whether the Ref is empty.
func (r Ref[T]) IsNil() bool {
	return r.ptr == nil
}
