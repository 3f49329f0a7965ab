package mem

import "sync"

// LockedAlloc wraps an Allocator behind a mutual-exclusion capability so
// that one allocator instance can be shared across concurrent callers.
//
// The lock is acquired for the duration of each call only and released on
// every exit path; it is never held across a call into another allocator
// instance, so composing locked allocators cannot deadlock on lock order.
// Under concurrent use the observed effects are equivalent to some total
// ordering of the calls.
type LockedAlloc struct {
	mu    sync.Locker
	inner Allocator
}

// NewLocked wraps inner behind its own mutex.
func NewLocked(inner Allocator) *LockedAlloc {
	return NewLockedWith(inner, &sync.Mutex{})
}

// NewLockedWith wraps inner behind the supplied mutual-exclusion
// primitive. Use this when the host provides its own lock implementation.
func NewLockedWith(inner Allocator, mu sync.Locker) *LockedAlloc {
	return &LockedAlloc{mu: mu, inner: inner}
}

// Alloc acquires the lock, delegates to the wrapped allocator, and
// releases the lock before returning.
func (l *LockedAlloc) Alloc(size uintptr) (Region, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.inner.Alloc(size)
}

// Dealloc acquires the lock, delegates to the wrapped allocator, and
// releases the lock before returning.
func (l *LockedAlloc) Dealloc(r Region) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.inner.Dealloc(r)
}

// LockedFrames is LockedAlloc for FrameAllocators.
type LockedFrames struct {
	mu    sync.Locker
	inner FrameAllocator
}

// NewLockedFrames wraps inner behind its own mutex.
func NewLockedFrames(inner FrameAllocator) *LockedFrames {
	return NewLockedFramesWith(inner, &sync.Mutex{})
}

// NewLockedFramesWith wraps inner behind the supplied mutual-exclusion
// primitive.
func NewLockedFramesWith(inner FrameAllocator, mu sync.Locker) *LockedFrames {
	return &LockedFrames{mu: mu, inner: inner}
}

// FrameSize returns the wrapped allocator's frame size. Reading it takes
// no lock; the frame size of an allocator never changes.
func (l *LockedFrames) FrameSize() uintptr { return l.inner.FrameSize() }

// AllocFrame acquires the lock for the duration of the inner call.
func (l *LockedFrames) AllocFrame() (Region, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.inner.AllocFrame()
}

// DeallocFrame acquires the lock for the duration of the inner call.
func (l *LockedFrames) DeallocFrame(r Region) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.inner.DeallocFrame(r)
}
