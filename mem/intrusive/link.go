package intrusive

// Links is the embedded link pair that makes a type a member of a List.
// The zero value is unlinked. Link fields are meaningful only while the
// element is reachable from a list's head or tail; both are cleared when
// the element is detached.
type Links[T any] struct {
	next *T
	prev *T
}

// Next returns the successor element, or nil if this element is the tail
// or detached.
func (l *Links[T]) Next() *T { return l.next }

// Prev returns the predecessor element, or nil if this element is the head
// or detached.
func (l *Links[T]) Prev() *T { return l.prev }

// clear nulls both links, detaching the element.
func (l *Links[T]) clear() {
	l.next = nil
	l.prev = nil
}

// Linked is implemented by types that can be stored in a List. The
// returned Links must be a field of the element itself.
type Linked[T any] interface {
	ListLinks() *Links[T]
}

// SLink is the embedded link that makes a type a member of a Stack.
// The zero value is unlinked.
type SLink[T any] struct {
	next *T
}

// Next returns the element below this one on the stack, or nil.
func (l *SLink[T]) Next() *T { return l.next }

// StackLinked is implemented by types that can be stored in a Stack. The
// returned SLink must be a field of the element itself.
type StackLinked[T any] interface {
	StackLink() *SLink[T]
}

// listNode constrains a node pointer type to one whose pointee carries
// list Links.
type listNode[T any] interface {
	Linked[T]
	*T
}

// stackNode constrains a node pointer type to one whose pointee carries a
// stack SLink.
type stackNode[T any] interface {
	StackLinked[T]
	*T
}
