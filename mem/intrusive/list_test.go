package intrusive

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// item is the element type used across the collection tests.
type item struct {
	links Links[item]
	slink SLink[item]
	val   int
}

func (i *item) ListLinks() *Links[item] { return &i.links }
func (i *item) StackLink() *SLink[item] { return &i.slink }

type itemList = List[item, *item]

func newItemRef(v int) Ref[item] {
	return AdoptRef(&item{val: v})
}

func listValues(l *itemList) []int {
	var vals []int
	for it := range l.All() {
		vals = append(vals, it.val)
	}
	return vals
}

func listValuesBackward(l *itemList) []int {
	var vals []int
	for n := l.Back(); n != nil; n = n.links.Prev() {
		vals = append(vals, n.val)
	}
	return vals
}

func TestListPushPopFront(t *testing.T) {
	var l itemList

	require.True(t, l.IsEmpty())
	require.True(t, l.PopFront().IsNil())

	for i := range 5 {
		r := newItemRef(i)
		require.NoError(t, l.PushFront(&r))
		require.True(t, r.IsNil(), "push must consume the handle")
	}
	require.Equal(t, 5, l.Len())
	require.Equal(t, []int{4, 3, 2, 1, 0}, listValues(&l))

	for i := 4; i >= 0; i-- {
		r := l.PopFront()
		require.False(t, r.IsNil())
		require.Equal(t, i, r.Ptr().val)
	}
	require.True(t, l.IsEmpty())
	require.Nil(t, l.Front())
	require.Nil(t, l.Back())
}

func TestListPushBackOrder(t *testing.T) {
	var l itemList
	for i := range 4 {
		r := newItemRef(i)
		require.NoError(t, l.PushBack(&r))
	}
	require.Equal(t, []int{0, 1, 2, 3}, listValues(&l))
	require.Equal(t, 0, l.Front().val)
	require.Equal(t, 3, l.Back().val)
}

// TestListRoundTrip verifies pop_front(push_front(x)) hands back the same
// element with cleared links and leaves the list empty.
func TestListRoundTrip(t *testing.T) {
	var l itemList
	orig := &item{val: 42}
	r := AdoptRef(orig)
	require.NoError(t, l.PushFront(&r))

	got := l.PopFront()
	require.Same(t, orig, got.Ptr())
	require.Equal(t, 42, got.Ptr().val)
	require.Nil(t, got.Ptr().links.Next())
	require.Nil(t, got.Ptr().links.Prev())
	require.True(t, l.IsEmpty())
}

// TestListDetachedReuse verifies a popped element can be reinserted into
// another list without stale links.
func TestListDetachedReuse(t *testing.T) {
	var a, b itemList
	r := newItemRef(7)
	require.NoError(t, a.PushBack(&r))

	popped := a.PopFront()
	require.NoError(t, b.PushBack(&popped))
	require.Equal(t, []int{7}, listValues(&b))
	require.True(t, a.IsEmpty())
}

func TestListEmptyRefRejected(t *testing.T) {
	var l itemList
	var empty Ref[item]
	require.ErrorIs(t, l.PushFront(&empty), ErrEmptyRef)
	require.ErrorIs(t, l.PushBack(&empty), ErrEmptyRef)

	r := newItemRef(1)
	require.NoError(t, l.PushBack(&r))
	// The same handle cannot be pushed twice.
	require.ErrorIs(t, l.PushBack(&r), ErrEmptyRef)
	require.Equal(t, 1, l.Len())
}

func TestListExtendPreservesOrder(t *testing.T) {
	var l itemList
	r := newItemRef(-1)
	require.NoError(t, l.PushBack(&r))

	refs := make([]Ref[item], 0, 3)
	for i := range 3 {
		refs = append(refs, newItemRef(i))
	}
	require.NoError(t, l.Extend(refs))
	require.Equal(t, []int{-1, 0, 1, 2}, listValues(&l))
}

// TestListSymmetry checks that the reversed forward walk equals the
// backward walk after a mix of operations.
func TestListSymmetry(t *testing.T) {
	var l itemList
	for i := range 6 {
		r := newItemRef(i)
		if i%2 == 0 {
			require.NoError(t, l.PushFront(&r))
		} else {
			require.NoError(t, l.PushBack(&r))
		}
	}
	l.PopBack()
	l.PopFront()

	fwd := listValues(&l)
	bwd := listValuesBackward(&l)
	for i, j := 0, len(bwd)-1; i < len(fwd); i, j = i+1, j-1 {
		require.Equal(t, fwd[i], bwd[j])
	}
	require.Len(t, fwd, l.Len())
}

// TestListDequeModel drives the list with a random operation sequence and
// checks traversal order against a plain slice deque after every step.
func TestListDequeModel(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	var l itemList
	var model []int

	for step := range 2000 {
		switch rng.Intn(4) {
		case 0:
			r := newItemRef(step)
			require.NoError(t, l.PushFront(&r))
			model = append([]int{step}, model...)
		case 1:
			r := newItemRef(step)
			require.NoError(t, l.PushBack(&r))
			model = append(model, step)
		case 2:
			r := l.PopFront()
			if len(model) == 0 {
				require.True(t, r.IsNil())
			} else {
				require.Equal(t, model[0], r.Ptr().val)
				model = model[1:]
			}
		case 3:
			r := l.PopBack()
			if len(model) == 0 {
				require.True(t, r.IsNil())
			} else {
				require.Equal(t, model[len(model)-1], r.Ptr().val)
				model = model[:len(model)-1]
			}
		}
		require.Equal(t, len(model), l.Len())
	}

	got := listValues(&l)
	if len(model) == 0 {
		require.Empty(t, got)
	} else {
		require.Equal(t, model, got)
	}
}

func TestListAllStopsEarly(t *testing.T) {
	var l itemList
	for i := range 10 {
		r := newItemRef(i)
		require.NoError(t, l.PushBack(&r))
	}
	seen := 0
	for range l.All() {
		seen++
		if seen == 3 {
			break
		}
	}
	require.Equal(t, 3, seen)
}
