// Package intrusive provides intrusive linked collections: structures whose
// link fields live inside the stored elements rather than in separately
// allocated node wrappers.
//
// # Overview
//
// Because an intrusive collection stores no per-element bookkeeping of its
// own, it can be used by code that runs before (or beneath) any heap exists,
// most importantly by the allocators that implement the heap itself. The
// slab allocator in memkit threads its free lists through the very blocks it
// hands out using the Stack type from this package.
//
// Two collections are provided:
//
//   - List: a doubly linked list with O(1) push/pop at both ends and a
//     cursor supporting O(1) splice-in and splice-out at any position.
//   - Stack: a singly linked LIFO with O(1) push/pop at the top.
//
// # Membership
//
// A type joins a List by embedding a Links field and exposing it:
//
//	type task struct {
//		links intrusive.Links[task]
//		id    int
//	}
//
//	func (t *task) ListLinks() *intrusive.Links[task] { return &t.links }
//
// Stack membership works the same way with SLink and StackLink.
//
// # Ownership
//
// Elements move in and out of collections through Ref handles. A Ref is the
// unique owning reference to a detached element: pushing consumes the handle
// (it is emptied), and popping or cursor removal mints a fresh one. While an
// element is linked, the collection is its logical owner and plain *T
// pointers obtained from Front, Top, Current and friends are non-owning
// observers that must not outlive the element's membership.
//
// The collections never dereference anything but the links of elements they
// own, so any sequence of calls through this API is memory-safe. What they
// cannot check is the caller-side discipline around raw pointers: keeping an
// observer *T across a pop and dereferencing it afterwards, or fabricating a
// Ref for memory that was reclaimed, is undefined behavior exactly as it
// would be with raw pointers.
//
// # Concurrency
//
// Collections are not thread-safe. Callers must synchronize externally; see
// mem.LockedAlloc for the locking pattern used by the allocators.
package intrusive
