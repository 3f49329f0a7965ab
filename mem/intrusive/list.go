package intrusive

import "iter"

// List is an intrusive doubly linked list. It stores only head and tail
// pointers and a length; the elements themselves carry the links.
//
// The zero List is empty and ready to use.
//
// Invariants maintained by every operation: the head has no predecessor,
// the tail has no successor, a forward walk visits every member exactly
// once, and the reversed forward walk equals the backward walk.
type List[T any, PT listNode[T]] struct {
	head *T
	tail *T
	len  int
}

func (l *List[T, PT]) links(n *T) *Links[T] {
	return PT(n).ListLinks()
}

// Len returns the number of elements in the list.
func (l *List[T, PT]) Len() int { return l.len }

// IsEmpty reports whether the list has no elements.
func (l *List[T, PT]) IsEmpty() bool { return l.len == 0 }

// Front returns a non-owning pointer to the first element, or nil if the
// list is empty.
func (l *List[T, PT]) Front() *T { return l.head }

// Back returns a non-owning pointer to the last element, or nil if the
// list is empty.
func (l *List[T, PT]) Back() *T { return l.tail }

// PushFront links the element owned by r at the head of the list,
// consuming the handle. Returns ErrEmptyRef if r holds nothing.
func (l *List[T, PT]) PushFront(r *Ref[T]) error {
	node := r.Take()
	if node == nil {
		return ErrEmptyRef
	}
	ln := l.links(node)
	ln.next = l.head
	ln.prev = nil
	if l.head == nil {
		l.tail = node
	} else {
		l.links(l.head).prev = node
	}
	l.head = node
	l.len++
	return nil
}

// PushBack links the element owned by r at the tail of the list,
// consuming the handle. Returns ErrEmptyRef if r holds nothing.
func (l *List[T, PT]) PushBack(r *Ref[T]) error {
	node := r.Take()
	if node == nil {
		return ErrEmptyRef
	}
	ln := l.links(node)
	ln.prev = l.tail
	ln.next = nil
	if l.tail == nil {
		l.head = node
	} else {
		l.links(l.tail).next = node
	}
	l.tail = node
	l.len++
	return nil
}

// PopFront detaches the first element and returns an owning Ref for it.
// The element's links are cleared before it is handed back, so it can be
// reused immediately. Returns an empty Ref if the list is empty.
func (l *List[T, PT]) PopFront() Ref[T] {
	node := l.head
	if node == nil {
		return Ref[T]{}
	}
	ln := l.links(node)
	l.head = ln.next
	if l.head == nil {
		l.tail = nil
	} else {
		l.links(l.head).prev = nil
	}
	ln.clear()
	l.len--
	return AdoptRef(node)
}

// PopBack detaches the last element and returns an owning Ref for it,
// with its links cleared. Returns an empty Ref if the list is empty.
func (l *List[T, PT]) PopBack() Ref[T] {
	node := l.tail
	if node == nil {
		return Ref[T]{}
	}
	ln := l.links(node)
	l.tail = ln.prev
	if l.tail == nil {
		l.head = nil
	} else {
		l.links(l.tail).next = nil
	}
	ln.clear()
	l.len--
	return AdoptRef(node)
}

// Extend appends the owned elements in refs to the back of the list in
// order, consuming each handle. Stops at the first empty Ref and reports
// it; handles before that point have already been consumed.
func (l *List[T, PT]) Extend(refs []Ref[T]) error {
	for i := range refs {
		if err := l.PushBack(&refs[i]); err != nil {
			return err
		}
	}
	return nil
}

// All returns a forward iterator over non-owning pointers to the current
// elements. The list must not be mutated while iterating.
func (l *List[T, PT]) All() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for n := l.head; n != nil; n = l.links(n).next {
			if !yield(n) {
				return
			}
		}
	}
}

// Cursor returns a read-only cursor positioned on the first element, or
// off-list if the list is empty.
func (l *List[T, PT]) Cursor() Cursor[T, PT] {
	return Cursor[T, PT]{list: l, cur: l.head}
}

// CursorMut returns a mutating cursor positioned on the first element, or
// off-list if the list is empty. The list must not be accessed through
// other paths while the cursor is in use.
func (l *List[T, PT]) CursorMut() CursorMut[T, PT] {
	return CursorMut[T, PT]{list: l, cur: l.head}
}
