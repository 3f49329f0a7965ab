package intrusive

import "iter"

// Stack is an intrusive singly linked LIFO. It stores only a top pointer
// and a length; the elements carry the links. O(1) push and pop at the
// top; traversal is forward-only.
//
// The zero Stack is empty and ready to use.
type Stack[T any, PT stackNode[T]] struct {
	top *T
	len int
}

func (s *Stack[T, PT]) link(n *T) *SLink[T] {
	return PT(n).StackLink()
}

// Len returns the number of elements on the stack.
func (s *Stack[T, PT]) Len() int { return s.len }

// IsEmpty reports whether the stack has no elements.
func (s *Stack[T, PT]) IsEmpty() bool { return s.len == 0 }

// Top returns a non-owning pointer to the top element, or nil if the
// stack is empty.
func (s *Stack[T, PT]) Top() *T { return s.top }

// Push links the element owned by r on top of the stack, consuming the
// handle. Returns ErrEmptyRef if r holds nothing.
func (s *Stack[T, PT]) Push(r *Ref[T]) error {
	node := r.Take()
	if node == nil {
		return ErrEmptyRef
	}
	s.link(node).next = s.top
	s.top = node
	s.len++
	return nil
}

// Pop detaches the top element and returns an owning Ref for it with its
// link cleared. Returns an empty Ref if the stack is empty.
func (s *Stack[T, PT]) Pop() Ref[T] {
	node := s.top
	if node == nil {
		return Ref[T]{}
	}
	ln := s.link(node)
	s.top = ln.next
	ln.next = nil
	s.len--
	return AdoptRef(node)
}

// Extend pushes the owned elements in refs onto the stack in order, so
// the last element of refs ends up on top. Stops at the first empty Ref
// and reports it.
func (s *Stack[T, PT]) Extend(refs []Ref[T]) error {
	for i := range refs {
		if err := s.Push(&refs[i]); err != nil {
			return err
		}
	}
	return nil
}

// All returns a top-down iterator over non-owning pointers to the current
// elements. The stack must not be mutated while iterating.
func (s *Stack[T, PT]) All() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		for n := s.top; n != nil; n = s.link(n).next {
			if !yield(n) {
				return
			}
		}
	}
}

// Cursor returns a forward-only cursor positioned on the top element, or
// off-stack if the stack is empty. Advancing from off-stack re-enters at
// the top.
func (s *Stack[T, PT]) Cursor() StackCursor[T, PT] {
	return StackCursor[T, PT]{stack: s, cur: s.top}
}

// StackCursor is a read-only, forward-only position within a Stack.
type StackCursor[T any, PT stackNode[T]] struct {
	stack *Stack[T, PT]
	cur   *T
}

// Current returns a non-owning pointer to the element under the cursor,
// or nil if the cursor is off-stack.
func (c *StackCursor[T, PT]) Current() *T { return c.cur }

// Advance moves the cursor one element down the stack. From the bottom it
// moves off-stack; from off-stack it re-enters at the top.
func (c *StackCursor[T, PT]) Advance() *StackCursor[T, PT] {
	if c.cur == nil {
		c.cur = c.stack.top
	} else {
		c.cur = c.stack.link(c.cur).next
	}
	return c
}

// PeekNext returns the element below the cursor without moving it, or nil.
func (c *StackCursor[T, PT]) PeekNext() *T {
	if c.cur == nil {
		return nil
	}
	return c.stack.link(c.cur).next
}
