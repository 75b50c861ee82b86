package calldispatch

import (
	"iter"

	"deedles.dev/calldispatch/internal/list"
)

// A Stack returns values in LIFO order. A zero value Stack is ready to
// use. Like [Queue], it is not safe for concurrent use.
type Stack[T comparable] struct {
	list list.Single[T]
}

// Push puts v on top of the stack.
func (s *Stack[T]) Push(v T) {
	s.list.Prepend(v)
}

// Pop removes and returns the top of the stack, or [ErrEmptyStack] if
// there is nothing to pop.
func (s *Stack[T]) Pop() (v T, err error) {
	v, ok := s.list.PopFront()
	if !ok {
		return v, ErrEmptyStack
	}
	return v, nil
}

// Peek returns the top of the stack without removing it.
func (s *Stack[T]) Peek() (v T, err error) {
	v, ok := s.list.Peek()
	if !ok {
		return v, ErrEmptyStack
	}
	return v, nil
}

func (s *Stack[T]) IsEmpty() bool {
	return s.list.IsEmpty()
}

func (s *Stack[T]) Len() int {
	return s.list.Len()
}

// All returns an iterator over the stack from top to bottom.
func (s *Stack[T]) All() iter.Seq[T] {
	return s.list.All()
}

// Clear drops every value on the stack and returns how many there
// were.
func (s *Stack[T]) Clear() int {
	return s.list.Clear()
}
