package list

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInsertRemove(t *testing.T) {
	a := FromValues("A", "B", "C")
	x := InsertAfter(a, "X")
	require.Equal(t, []string{"A", "X", "B", "C"}, Values(a))
	require.Equal(t, "X", x.Value())

	removed, ok := RemoveAfter(a)
	require.True(t, ok)
	require.Same(t, x, removed)
	require.Equal(t, []string{"A", "B", "C"}, Values(a))
	require.Equal(t, "A -> B -> C", a.String())
}

func TestInsertAtTail(t *testing.T) {
	a := New(1)
	InsertAfter(a, 2)
	InsertAfter(a.Next(), 3)
	require.Equal(t, []int{1, 2, 3}, Values(a))
}

func TestRemoveAfterLast(t *testing.T) {
	a := FromValues(1, 2)
	tail := a.Next()
	removed, ok := RemoveAfter(tail)
	require.False(t, ok)
	require.Nil(t, removed)
	require.Equal(t, []int{1, 2}, Values(a))
}

func TestSharedHolders(t *testing.T) {
	a := FromValues(2, 3)
	h1 := a.Next()
	h2 := a.Next()
	h1.SetValue(10)
	require.Equal(t, 10, h2.Value())
	require.Equal(t, []int{2, 10}, Values(a))

	h2.Update(func(v *int) { *v++ })
	require.Equal(t, 11, h1.Value())
}

func TestRemovedNodeStaysUsable(t *testing.T) {
	a := FromValues("A", "B", "C")
	holder := a.Next()
	removed, ok := RemoveAfter(a)
	require.True(t, ok)
	require.Same(t, holder, removed)

	// the removed node is detached, not linked back into the list.
	require.Nil(t, holder.Next())
	holder.SetValue("b")
	require.Equal(t, "b", holder.Value())
	require.Equal(t, []string{"A", "C"}, Values(a))

	InsertAfter(holder, "z")
	require.Equal(t, []string{"b", "z"}, Values(holder))
	require.Equal(t, []string{"A", "C"}, Values(a))
}

func TestNoCycle(t *testing.T) {
	a := FromValues(1, 2, 3)
	for i := 0; i < 10; i++ {
		InsertAfter(a, i)
		if i%3 == 0 {
			RemoveAfter(a.Next())
		}
	}
	seen := map[*Node[int]]bool{}
	for n := a; n != nil; n = n.Next() {
		require.False(t, seen[n])
		seen[n] = true
	}
}

func TestBorrowRules(t *testing.T) {
	n := New(1)

	require.NotPanics(t, func() {
		n.View(func(int, *Node[int]) {
			require.Equal(t, 1, n.Value())
		})
	})

	require.PanicsWithError(t, ErrAlreadyBorrowed.Error(), func() {
		n.View(func(int, *Node[int]) { n.SetValue(2) })
	})
	require.PanicsWithError(t, ErrAlreadyBorrowed.Error(), func() {
		n.Update(func(*int) { n.SetValue(3) })
	})
	require.PanicsWithError(t, ErrAlreadyMutablyBorrowed.Error(), func() {
		n.Update(func(*int) { n.Value() })
	})
	require.PanicsWithError(t, ErrAlreadyBorrowed.Error(), func() {
		n.Update(func(*int) { InsertAfter(n, 5) })
	})

	// borrows are released once the faulting calls unwind.
	n.SetValue(7)
	require.Equal(t, 7, n.Value())
	require.Nil(t, n.Next())
}

func TestEmpty(t *testing.T) {
	var head *Node[int]
	require.Nil(t, FromValues[int]())
	require.Empty(t, Values(head))
	require.Equal(t, "", head.String())
}
