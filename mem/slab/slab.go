package slab

import (
	"fmt"
	"os"
	"unsafe"

	"github.com/joshuapare/memkit/internal/memutil"
	"github.com/joshuapare/memkit/mem"
	"github.com/joshuapare/memkit/mem/intrusive"
)

// logSlab enables stderr tracing of slab growth and reclamation.
var logSlab = os.Getenv("MEMKIT_LOG_ALLOC") != ""

// freeBlock is the free-list node laid over the first bytes of a free
// block. Only free blocks carry one; an allocated block's bytes belong
// entirely to the caller.
type freeBlock struct {
	link intrusive.SLink[freeBlock]
}

func (b *freeBlock) StackLink() *intrusive.SLink[freeBlock] { return &b.link }

// slab is the header for one region carved into blocks. The header lives
// on the Go heap; the free list it anchors is threaded through the
// region's own memory.
type slab struct {
	links  intrusive.Links[slab]
	region mem.Region
	free   intrusive.Stack[freeBlock, *freeBlock]
	blocks int
}

func (s *slab) ListLinks() *intrusive.Links[slab] { return &s.links }

// isIdle reports whether every block of the slab is free.
func (s *slab) isIdle() bool { return s.free.Len() == s.blocks }

// Stats counts allocator activity. Counters are cumulative since New.
type Stats struct {
	AllocCalls int // AllocBlock calls
	FreeCalls  int // FreeBlock calls, including rejected ones

	FreeListHits int // blocks served from an existing free list
	SlabFills    int // blocks that forced a new region request

	SlabsCreated    int
	SlabsReclaimed  int
	BlocksCreated   int
	BlocksReclaimed int
}

// Allocator serves fixed-size blocks carved from regions obtained on
// demand from an underlying mem.Allocator. See the package documentation
// for the design. Not safe for concurrent use.
type Allocator struct {
	cfg    Config
	source mem.Allocator

	// slabs in most-recently-used order; idle slabs drift to the tail.
	slabs intrusive.List[slab, *slab]
	idle  int // slabs on the list with every block free
	live  int // blocks currently allocated

	stats Stats
}

// New returns a slab allocator drawing regions from source as configured
// by cfg. The source must hand out regions whose base is suitably aligned
// for the free-list links (any allocator in package mem does).
func New(source mem.Allocator, cfg Config) (*Allocator, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Allocator{cfg: cfg, source: source}, nil
}

// Config returns the configuration the allocator was built with.
func (a *Allocator) Config() Config { return a.cfg }

// Stats returns a snapshot of the allocator's counters.
func (a *Allocator) Stats() Stats { return a.stats }

// Slabs returns the number of live slabs.
func (a *Allocator) Slabs() int { return a.slabs.Len() }

// IdleSlabs returns the number of live slabs with every block free.
func (a *Allocator) IdleSlabs() int { return a.idle }

// LiveBlocks returns the number of blocks currently allocated.
func (a *Allocator) LiveBlocks() int { return a.live }

// FreeBlocks returns the number of free blocks across all live slabs.
func (a *Allocator) FreeBlocks() int {
	n := 0
	for s := range a.slabs.All() {
		n += s.free.Len()
	}
	return n
}

// AllocBlock returns an owned handle for one block of Config.BlockSize
// bytes. It prefers the most recently used slab with a free block; only
// when every slab is full does it request one new region from the
// underlying allocator, whose error is returned unchanged.
func (a *Allocator) AllocBlock() (Block, error) {
	a.stats.AllocCalls++

	for c := a.slabs.CursorMut(); c.Current() != nil; c.Advance() {
		s := c.Current()
		if s.free.IsEmpty() {
			continue
		}
		if s.isIdle() {
			a.idle--
		}
		ref := s.free.Pop()
		fb := ref.Take()
		if s != a.slabs.Front() {
			sref := c.Remove()
			if err := a.slabs.PushFront(&sref); err != nil {
				return Block{}, err
			}
		}
		a.live++
		a.stats.FreeListHits++
		return Block{ptr: unsafe.Pointer(fb), size: a.cfg.BlockSize}, nil
	}

	region, err := a.source.Alloc(a.cfg.RegionSize)
	if err != nil {
		return Block{}, err
	}
	s, first, err := a.carve(region)
	if err != nil {
		_ = a.source.Dealloc(region)
		return Block{}, err
	}
	sref := intrusive.AdoptRef(s)
	if err := a.slabs.PushFront(&sref); err != nil {
		return Block{}, err
	}
	a.live++
	a.stats.SlabFills++
	a.stats.SlabsCreated++
	a.stats.BlocksCreated += s.blocks
	if logSlab {
		fmt.Fprintf(os.Stderr, "[SLAB] grew: %s, %d blocks of %d bytes\n",
			region, s.blocks, a.cfg.BlockSize)
	}
	return Block{ptr: first, size: a.cfg.BlockSize}, nil
}

// carve subdivides a fresh region into blocks, threading all but the
// first onto a new slab's free list. The surplus blocks are pushed
// highest address first so they pop in ascending address order.
func (a *Allocator) carve(region mem.Region) (*slab, unsafe.Pointer, error) {
	if !memutil.IsAligned(region.Base(), linkAlign) {
		return nil, nil, ErrUnalignedRegion
	}
	s := &slab{region: region, blocks: a.cfg.blocksPerSlab()}
	for i := s.blocks - 1; i >= 1; i-- {
		fb := (*freeBlock)(region.Offset(uintptr(i) * a.cfg.BlockSize))
		fb.link = intrusive.SLink[freeBlock]{}
		ref := intrusive.AdoptRef(fb)
		if err := s.free.Push(&ref); err != nil {
			return nil, nil, err
		}
	}
	return s, region.Offset(0), nil
}

// FreeBlock returns the block held by b to its slab, consuming the
// handle. A block that lies in no live slab, or not on a block boundary,
// or whose size disagrees with the configuration is rejected with
// ErrForeignBlock and the allocator is left unchanged.
func (a *Allocator) FreeBlock(b Block) error {
	a.stats.FreeCalls++
	if b.IsZero() || b.size != a.cfg.BlockSize {
		return ErrForeignBlock
	}
	addr := b.Addr()
	for c := a.slabs.CursorMut(); c.Current() != nil; c.Advance() {
		s := c.Current()
		if !s.region.Contains(addr) {
			continue
		}
		if (addr-s.region.Base())%a.cfg.BlockSize != 0 {
			return ErrForeignBlock
		}
		fb := (*freeBlock)(b.ptr)
		fb.link = intrusive.SLink[freeBlock]{}
		ref := intrusive.AdoptRef(fb)
		if err := s.free.Push(&ref); err != nil {
			return err
		}
		a.live--
		if s.isIdle() {
			a.idle++
			return a.reclaim()
		}
		return nil
	}
	return ErrForeignBlock
}

// reclaim returns least recently used idle slabs upstream until at most
// ReclamationSlack remain idle.
func (a *Allocator) reclaim() error {
	for a.idle > a.cfg.ReclamationSlack {
		c := a.slabs.CursorMut()
		c.Retreat().Retreat() // off-list, then tail
		for c.Current() != nil && !c.Current().isIdle() {
			c.Retreat()
		}
		vref := c.Remove()
		victim := vref.Take()
		if victim == nil {
			return nil
		}
		// The free list lives inside the region being surrendered; drop
		// the anchor before the memory goes back.
		victim.free = intrusive.Stack[freeBlock, *freeBlock]{}
		a.idle--
		a.stats.SlabsReclaimed++
		a.stats.BlocksReclaimed += victim.blocks
		if logSlab {
			fmt.Fprintf(os.Stderr, "[SLAB] reclaimed: %s\n", victim.region)
		}
		if err := a.source.Dealloc(victim.region); err != nil {
			return err
		}
	}
	return nil
}

// Alloc implements mem.Allocator. Requests of up to one block are served
// with a whole block; larger or zero requests fail with mem.ErrBadSize.
func (a *Allocator) Alloc(size uintptr) (mem.Region, error) {
	if size == 0 || size > a.cfg.BlockSize {
		return mem.Region{}, mem.ErrBadSize
	}
	b, err := a.AllocBlock()
	if err != nil {
		return mem.Region{}, err
	}
	return b.Region(), nil
}

// Dealloc implements mem.Allocator, accepting exactly the regions Alloc
// handed out.
func (a *Allocator) Dealloc(r mem.Region) error {
	return a.FreeBlock(Block{ptr: r.Offset(0), size: r.Size()})
}
