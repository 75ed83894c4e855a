// Package list is a singly linked list whose nodes may be held by many
// owners at once. Every owner can read or mutate a node; exclusivity of a
// mutation is checked at run time, and breaking it panics.
//
// Nodes are not safe for concurrent use.
package list

import (
	"fmt"
	"strings"
)

type Node[T any] struct {
	flag  borrowFlag
	value T
	next  *Node[T]
}

func New[T any](v T) *Node[T] {
	return &Node[T]{value: v}
}

// FromValues links vs in order and returns the head, or nil if vs is empty.
func FromValues[T any](vs ...T) *Node[T] {
	var head *Node[T]
	for i := len(vs) - 1; i >= 0; i-- {
		head = &Node[T]{value: vs[i], next: head}
	}
	return head
}

// View runs fn with a shared borrow of n. Other shared borrows may be taken
// inside fn; Update on n panics.
func (n *Node[T]) View(fn func(v T, next *Node[T])) {
	n.flag.acquire()
	defer n.flag.release()
	fn(n.value, n.next)
}

// Update runs fn with an exclusive borrow of n's value. Any other borrow of n
// taken inside fn panics.
func (n *Node[T]) Update(fn func(v *T)) {
	n.flag.acquireMut()
	defer n.flag.releaseMut()
	fn(&n.value)
}

func (n *Node[T]) Value() (v T) {
	n.View(func(val T, _ *Node[T]) { v = val })
	return v
}

func (n *Node[T]) SetValue(v T) {
	n.Update(func(p *T) { *p = v })
}

func (n *Node[T]) Next() (next *Node[T]) {
	n.View(func(_ T, nx *Node[T]) { next = nx })
	return next
}

// link runs fn with an exclusive borrow of n's next link.
func (n *Node[T]) link(fn func(next **Node[T])) {
	n.flag.acquireMut()
	defer n.flag.releaseMut()
	fn(&n.next)
}

// InsertAfter places a new node holding v directly after h and returns it.
func InsertAfter[T any](h *Node[T], v T) *Node[T] {
	var inserted *Node[T]
	h.link(func(next **Node[T]) {
		inserted = &Node[T]{value: v, next: *next}
		*next = inserted
	})
	return inserted
}

// RemoveAfter unlinks the node after h and returns it detached from the rest
// of the list. Other holders of the removed node keep using it. When h is the
// last node nothing happens and ok is false.
func RemoveAfter[T any](h *Node[T]) (removed *Node[T], ok bool) {
	h.link(func(next **Node[T]) {
		if *next == nil {
			return
		}
		removed = *next
		removed.link(func(rest **Node[T]) {
			*next = *rest
			*rest = nil
		})
		ok = true
	})
	return removed, ok
}

// Values collects the values from n to the end of its list.
func Values[T any](n *Node[T]) []T {
	var vs []T
	for ; n != nil; n = n.Next() {
		vs = append(vs, n.Value())
	}
	return vs
}

func (n *Node[T]) String() string {
	var b strings.Builder
	for cur := n; cur != nil; cur = cur.Next() {
		if cur != n {
			b.WriteString(" -> ")
		}
		fmt.Fprint(&b, cur.Value())
	}
	return b.String()
}
