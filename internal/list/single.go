// Package list provides the linked list that the queue and stack in
// the root package are built on.
package list

import "iter"

// Single is a singly-linked list addressable by position. It holds
// only a reference to its head node; every other node is owned by its
// predecessor. The zero value is an empty list ready to use.
//
// Single is not safe for concurrent use.
type Single[T comparable] struct {
	head *SingleNode[T]
}

// SingleNode is a node of a [Single].
type SingleNode[T comparable] struct {
	Val  T
	next *SingleNode[T]
}

func newNode[T comparable](v T) *SingleNode[T] {
	return &SingleNode[T]{Val: v}
}

// Iterate returns the node at the zero-based position, walking from
// the head. It returns nil if position is negative or not less than
// the length of the list.
func (ls *Single[T]) Iterate(position int) *SingleNode[T] {
	if position < 0 {
		return nil
	}

	cur := ls.head
	for i := 0; cur != nil && i < position; i++ {
		cur = cur.next
	}
	return cur
}

// InsertAt inserts v so that it occupies position after the insert.
// A position of zero or less, or an empty list, inserts at the head.
// A position past the end appends to the tail.
func (ls *Single[T]) InsertAt(position int, v T) {
	if position <= 0 || ls.head == nil {
		n := newNode(v)
		n.next = ls.head
		ls.head = n
		return
	}

	prev := ls.Iterate(position - 1)
	if prev == nil {
		ls.Append(v)
		return
	}

	n := newNode(v)
	n.next = prev.next
	prev.next = n
}

// Prepend adds v as the new head of the list.
func (ls *Single[T]) Prepend(v T) {
	ls.InsertAt(0, v)
}

// Append adds v after the last node of the list.
func (ls *Single[T]) Append(v T) {
	if ls.head == nil {
		ls.head = newNode(v)
		return
	}

	last := ls.head
	for last.next != nil {
		last = last.next
	}
	last.next = newNode(v)
}

// Find returns the first node, from the head, whose value is v, or
// nil if there is none.
func (ls *Single[T]) Find(v T) *SingleNode[T] {
	for cur := ls.head; cur != nil; cur = cur.next {
		if cur.Val == v {
			return cur
		}
	}
	return nil
}

// Contains reports whether any node holds v.
func (ls *Single[T]) Contains(v T) bool {
	return ls.Find(v) != nil
}

// Remove unlinks the first node, from the head, whose value is v. It
// returns false if no node matched.
//
// Remove matches by value. To take the head node itself regardless of
// duplicates further down the list, use [Single.PopFront].
func (ls *Single[T]) Remove(v T) bool {
	if ls.head == nil {
		return false
	}

	if ls.head.Val == v {
		ls.PopFront()
		return true
	}

	for cur := ls.head; cur.next != nil; cur = cur.next {
		if cur.next.Val == v {
			target := cur.next
			cur.next = target.next
			target.next = nil
			return true
		}
	}
	return false
}

// Peek returns the value of the head node. It returns false if the
// list is empty.
func (ls *Single[T]) Peek() (v T, ok bool) {
	if ls.head == nil {
		return v, false
	}
	return ls.head.Val, true
}

// PopFront removes the head node and returns its value. It returns
// false if the list was already empty.
func (ls *Single[T]) PopFront() (v T, ok bool) {
	n := ls.head
	if n == nil {
		return v, false
	}

	ls.head = n.next
	n.next = nil
	return n.Val, true
}

// Len counts the nodes in the list.
func (ls *Single[T]) Len() int {
	var count int
	for cur := ls.head; cur != nil; cur = cur.next {
		count++
	}
	return count
}

// IsEmpty reports whether the list has no head node.
func (ls *Single[T]) IsEmpty() bool {
	return ls.head == nil
}

// All returns an iterator over the elements of the list from head to
// tail. The iterator can be used more than once.
func (ls *Single[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for cur := ls.head; cur != nil; cur = cur.next {
			if !yield(cur.Val) {
				return
			}
		}
	}
}

// Clear releases every node in order, starting from the head, and
// returns how many were released. Each node's link is severed as it
// is released, so nothing released remains reachable from the list or
// from another node.
func (ls *Single[T]) Clear() int {
	var released int
	cur := ls.head
	ls.head = nil
	for cur != nil {
		next := cur.next
		cur.next = nil
		cur = next
		released++
	}
	return released
}
