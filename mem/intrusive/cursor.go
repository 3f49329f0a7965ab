package intrusive

// Cursor is a read-only position within a List: either on an element or
// off-list (a single sentinel position past both ends). Advancing from
// off-list re-enters at the head; retreating re-enters at the tail, so a
// full pass can be restarted without re-deriving the cursor.
type Cursor[T any, PT listNode[T]] struct {
	list *List[T, PT]
	cur  *T
}

// Current returns a non-owning pointer to the element under the cursor,
// or nil if the cursor is off-list.
func (c *Cursor[T, PT]) Current() *T { return c.cur }

// Advance moves the cursor one element forward. From the last element it
// moves off-list; from off-list it re-enters at the head.
func (c *Cursor[T, PT]) Advance() *Cursor[T, PT] {
	if c.cur == nil {
		c.cur = c.list.head
	} else {
		c.cur = c.list.links(c.cur).next
	}
	return c
}

// Retreat moves the cursor one element back. From the first element it
// moves off-list; from off-list it re-enters at the tail.
func (c *Cursor[T, PT]) Retreat() *Cursor[T, PT] {
	if c.cur == nil {
		c.cur = c.list.tail
	} else {
		c.cur = c.list.links(c.cur).prev
	}
	return c
}

// Seek moves the cursor n elements forward.
func (c *Cursor[T, PT]) Seek(n int) *Cursor[T, PT] {
	for range n {
		c.Advance()
	}
	return c
}

// SeekBack moves the cursor n elements back.
func (c *Cursor[T, PT]) SeekBack(n int) *Cursor[T, PT] {
	for range n {
		c.Retreat()
	}
	return c
}

// PeekNext returns the element after the cursor without moving it, or nil.
func (c *Cursor[T, PT]) PeekNext() *T {
	if c.cur == nil {
		return nil
	}
	return c.list.links(c.cur).next
}

// PeekPrev returns the element before the cursor without moving it, or nil.
func (c *Cursor[T, PT]) PeekPrev() *T {
	if c.cur == nil {
		return nil
	}
	return c.list.links(c.cur).prev
}

// CursorMut is a position within a List through which the list may be
// mutated. It supports O(1) splice-in and splice-out at the current
// position. After any mutation the list's head, tail and link invariants
// hold; a fresh Cursor derived from the list observes the mutation.
type CursorMut[T any, PT listNode[T]] struct {
	list *List[T, PT]
	cur  *T
}

// Current returns a non-owning pointer to the element under the cursor,
// or nil if the cursor is off-list.
func (c *CursorMut[T, PT]) Current() *T { return c.cur }

// Advance moves the cursor one element forward, re-entering at the head
// from off-list.
func (c *CursorMut[T, PT]) Advance() *CursorMut[T, PT] {
	if c.cur == nil {
		c.cur = c.list.head
	} else {
		c.cur = c.list.links(c.cur).next
	}
	return c
}

// Retreat moves the cursor one element back, re-entering at the tail from
// off-list.
func (c *CursorMut[T, PT]) Retreat() *CursorMut[T, PT] {
	if c.cur == nil {
		c.cur = c.list.tail
	} else {
		c.cur = c.list.links(c.cur).prev
	}
	return c
}

// Seek moves the cursor n elements forward.
func (c *CursorMut[T, PT]) Seek(n int) *CursorMut[T, PT] {
	for range n {
		c.Advance()
	}
	return c
}

// SeekBack moves the cursor n elements back.
func (c *CursorMut[T, PT]) SeekBack(n int) *CursorMut[T, PT] {
	for range n {
		c.Retreat()
	}
	return c
}

// PeekNext returns the element after the cursor without moving it, or nil.
func (c *CursorMut[T, PT]) PeekNext() *T {
	if c.cur == nil {
		return nil
	}
	return c.list.links(c.cur).next
}

// PeekPrev returns the element before the cursor without moving it, or nil.
func (c *CursorMut[T, PT]) PeekPrev() *T {
	if c.cur == nil {
		return nil
	}
	return c.list.links(c.cur).prev
}

// Remove splices the element under the cursor out of the list, relinking
// its neighbors in O(1), and returns an owning Ref for it with links
// cleared. The cursor advances to the following element (off-list if the
// removed element was last). Returns an empty Ref if the cursor is
// off-list.
func (c *CursorMut[T, PT]) Remove() Ref[T] {
	node := c.cur
	if node == nil {
		return Ref[T]{}
	}
	ln := c.list.links(node)
	next, prev := ln.next, ln.prev

	if next != nil {
		c.list.links(next).prev = prev
	}
	if prev != nil {
		c.list.links(prev).next = next
	}
	if c.list.head == node {
		c.list.head = next
	}
	if c.list.tail == node {
		c.list.tail = prev
	}
	ln.clear()
	c.list.len--
	c.cur = next
	return AdoptRef(node)
}

// InsertBefore splices the element owned by r in before the cursor's
// position in O(1), consuming the handle. When the cursor is off-list the
// element is appended at the tail (inserting before the sentinel). The
// cursor stays on its current element.
func (c *CursorMut[T, PT]) InsertBefore(r *Ref[T]) error {
	if c.cur == nil {
		return c.list.PushBack(r)
	}
	node := r.Take()
	if node == nil {
		return ErrEmptyRef
	}
	ln := c.list.links(node)
	cln := c.list.links(c.cur)
	prev := cln.prev

	ln.next = c.cur
	ln.prev = prev
	cln.prev = node
	if prev != nil {
		c.list.links(prev).next = node
	} else {
		c.list.head = node
	}
	c.list.len++
	return nil
}

// InsertAfter splices the element owned by r in after the cursor's
// position in O(1), consuming the handle. When the cursor is off-list the
// element is pushed at the head (inserting after the sentinel). The
// cursor stays on its current element.
func (c *CursorMut[T, PT]) InsertAfter(r *Ref[T]) error {
	if c.cur == nil {
		return c.list.PushFront(r)
	}
	node := r.Take()
	if node == nil {
		return ErrEmptyRef
	}
	ln := c.list.links(node)
	cln := c.list.links(c.cur)
	next := cln.next

	ln.prev = c.cur
	ln.next = next
	cln.next = node
	if next != nil {
		c.list.links(next).prev = node
	} else {
		c.list.tail = node
	}
	c.list.len++
	return nil
}

// MapInPlace applies f to every element from the cursor's position to the
// end of the list, leaving each element's link state untouched. The
// cursor ends up off-list.
func (c *CursorMut[T, PT]) MapInPlace(f func(*T)) *CursorMut[T, PT] {
	for c.cur != nil {
		f(c.cur)
		c.cur = c.list.links(c.cur).next
	}
	return c
}

// RemoveFirst scans forward from the cursor's position and removes the
// first element matching pred, returning an owning Ref for it. Returns an
// empty Ref if no element from the cursor onward matches.
func (c *CursorMut[T, PT]) RemoveFirst(pred func(*T) bool) Ref[T] {
	for c.cur != nil {
		if pred(c.cur) {
			return c.Remove()
		}
		c.Advance()
	}
	return Ref[T]{}
}

// RemoveAll removes every element from the cursor's position onward that
// matches pred and returns the removed elements in list order.
func (c *CursorMut[T, PT]) RemoveAll(pred func(*T) bool) []Ref[T] {
	var removed []Ref[T]
	for {
		r := c.RemoveFirst(pred)
		if r.IsNil() {
			return removed
		}
		removed = append(removed, r)
	}
}
