package mem

// frameCacheSlots is the fixed capacity of a FrameCache.
const frameCacheSlots = 3

// FrameCache is a fixed-size cache of three frames that can stand in for
// a frame allocator when a real one is unavailable, e.g. while the normal
// supply is being rebuilt, or in allocator tests.
type FrameCache struct {
	frameSize uintptr
	slots     [frameCacheSlots]Region
}

// NewFrameCache builds a cache holding the three given frames. Each frame
// must be frameSize bytes; zero Regions leave their slot empty.
func NewFrameCache(frameSize uintptr, f1, f2, f3 Region) *FrameCache {
	return &FrameCache{
		frameSize: frameSize,
		slots:     [frameCacheSlots]Region{f1, f2, f3},
	}
}

// FrameCacheFrom fills a cache with frames taken from a. Slots the
// allocator cannot fill are left empty; the cache is still usable with
// whatever it got.
func FrameCacheFrom(a FrameAllocator) *FrameCache {
	c := &FrameCache{frameSize: a.FrameSize()}
	for i := range c.slots {
		f, err := a.AllocFrame()
		if err != nil {
			break
		}
		c.slots[i] = f
	}
	return c
}

// FrameSize returns the size of frames held by the cache.
func (c *FrameCache) FrameSize() uintptr { return c.frameSize }

// AllocFrame hands out a cached frame, or ErrOutOfMemory if all slots
// are empty.
func (c *FrameCache) AllocFrame() (Region, error) {
	for i := range c.slots {
		if !c.slots[i].IsZero() {
			f := c.slots[i]
			c.slots[i] = Region{}
			return f, nil
		}
	}
	return Region{}, ErrOutOfMemory
}

// DeallocFrame stores a frame back into an empty slot, or reports
// ErrCacheFull when all three slots are occupied.
func (c *FrameCache) DeallocFrame(f Region) error {
	for i := range c.slots {
		if c.slots[i].IsZero() {
			c.slots[i] = f
			return nil
		}
	}
	return ErrCacheFull
}

// Alloc satisfies Allocator for requests that fit in one frame. The
// returned Region is always a whole frame.
func (c *FrameCache) Alloc(size uintptr) (Region, error) {
	if size == 0 || size > c.frameSize {
		return Region{}, ErrBadSize
	}
	return c.AllocFrame()
}

// Dealloc satisfies Allocator; the Region must be a frame previously
// produced by this cache.
func (c *FrameCache) Dealloc(r Region) error {
	return c.DeallocFrame(r)
}
