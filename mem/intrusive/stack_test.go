package intrusive

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type itemStack = Stack[item, *item]

func stackValues(s *itemStack) []int {
	var vals []int
	for it := range s.All() {
		vals = append(vals, it.val)
	}
	return vals
}

func TestStackLIFO(t *testing.T) {
	var s itemStack
	require.True(t, s.IsEmpty())
	require.True(t, s.Pop().IsNil())

	for i := range 4 {
		r := newItemRef(i)
		require.NoError(t, s.Push(&r))
		require.True(t, r.IsNil())
		require.Equal(t, i, s.Top().val)
	}
	require.Equal(t, 4, s.Len())
	require.Equal(t, []int{3, 2, 1, 0}, stackValues(&s))

	for i := 3; i >= 0; i-- {
		r := s.Pop()
		require.Equal(t, i, r.Ptr().val)
		require.Nil(t, r.Ptr().slink.Next(), "popped element keeps no stale link")
	}
	require.True(t, s.IsEmpty())
	require.Nil(t, s.Top())
}

func TestStackEmptyRefRejected(t *testing.T) {
	var s itemStack
	var empty Ref[item]
	require.ErrorIs(t, s.Push(&empty), ErrEmptyRef)
	require.Equal(t, 0, s.Len())
}

func TestStackExtend(t *testing.T) {
	var s itemStack
	refs := make([]Ref[item], 0, 3)
	for i := range 3 {
		refs = append(refs, newItemRef(i))
	}
	require.NoError(t, s.Extend(refs))
	// Last pushed ends up on top.
	require.Equal(t, []int{2, 1, 0}, stackValues(&s))
}

func TestStackPoppedReuse(t *testing.T) {
	var a, b itemStack
	r := newItemRef(5)
	require.NoError(t, a.Push(&r))

	popped := a.Pop()
	require.NoError(t, b.Push(&popped))
	require.Equal(t, 5, b.Top().val)
	require.True(t, a.IsEmpty())
}

func TestStackCursor(t *testing.T) {
	var s itemStack
	for i := range 3 {
		r := newItemRef(i)
		require.NoError(t, s.Push(&r))
	}
	c := s.Cursor()
	require.Equal(t, 2, c.Current().val)
	require.Equal(t, 1, c.PeekNext().val)

	c.Advance()
	c.Advance()
	require.Equal(t, 0, c.Current().val)
	require.Nil(t, c.PeekNext())

	// Off-stack, then re-entry at the top.
	c.Advance()
	require.Nil(t, c.Current())
	c.Advance()
	require.Equal(t, 2, c.Current().val)
}
