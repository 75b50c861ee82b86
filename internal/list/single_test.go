package list_test

import (
	"slices"
	"testing"

	"deedles.dev/calldispatch/internal/list"
	"github.com/stretchr/testify/require"
)

func build(vals ...int) *list.Single[int] {
	var ls list.Single[int]
	for _, v := range vals {
		ls.Append(v)
	}
	return &ls
}

func TestSingleInsertAt(t *testing.T) {
	tests := []struct {
		name     string
		initial  []int
		position int
		value    int
		expect   []int
	}{
		{name: "empty list", initial: nil, position: 3, value: 1, expect: []int{1}},
		{name: "negative position", initial: []int{2, 3}, position: -4, value: 1, expect: []int{1, 2, 3}},
		{name: "head", initial: []int{2, 3}, position: 0, value: 1, expect: []int{1, 2, 3}},
		{name: "middle", initial: []int{1, 3}, position: 1, value: 2, expect: []int{1, 2, 3}},
		{name: "tail", initial: []int{1, 2}, position: 2, value: 3, expect: []int{1, 2, 3}},
		{name: "past tail", initial: []int{1, 2}, position: 10, value: 3, expect: []int{1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ls := build(tt.initial...)
			ls.InsertAt(tt.position, tt.value)
			require.Equal(t, tt.expect, slices.Collect(ls.All()))
		})
	}
}

func TestSinglePrependAppend(t *testing.T) {
	var ls list.Single[int]
	ls.Append(2)
	ls.Prepend(1)
	ls.Append(3)
	ls.Prepend(0)
	require.Equal(t, []int{0, 1, 2, 3}, slices.Collect(ls.All()))
}

func TestSingleIterate(t *testing.T) {
	ls := build(10, 20, 30)
	require.Nil(t, ls.Iterate(-1))
	require.Nil(t, ls.Iterate(3))
	require.Equal(t, 10, ls.Iterate(0).Val)
	require.Equal(t, 30, ls.Iterate(2).Val)

	var empty list.Single[int]
	require.Nil(t, empty.Iterate(0))
}

func TestSingleFind(t *testing.T) {
	ls := build(4, 7, 7, 9)
	require.Same(t, ls.Iterate(1), ls.Find(7))
	require.Nil(t, ls.Find(5))
	require.True(t, ls.Contains(9))
	require.False(t, ls.Contains(1))
}

func TestSingleRemove(t *testing.T) {
	ls := build(1, 2, 3, 2)

	require.True(t, ls.Remove(2))
	require.Equal(t, []int{1, 3, 2}, slices.Collect(ls.All()))

	require.True(t, ls.Remove(1))
	require.Equal(t, []int{3, 2}, slices.Collect(ls.All()))

	require.True(t, ls.Remove(2))
	require.Equal(t, []int{3}, slices.Collect(ls.All()))

	require.False(t, ls.Remove(8))
	require.True(t, ls.Remove(3))
	require.True(t, ls.IsEmpty())
	require.False(t, ls.Remove(3))
}

func TestSinglePopFrontIgnoresDuplicates(t *testing.T) {
	ls := build(5, 1, 5)
	head := ls.Iterate(0)
	tail := ls.Iterate(2)

	v, ok := ls.PopFront()
	require.True(t, ok)
	require.Equal(t, 5, v)
	require.Same(t, tail, ls.Iterate(1))
	require.NotSame(t, head, ls.Iterate(0))
	require.Nil(t, list.Next(head))

	ls.Clear()
	_, ok = ls.PopFront()
	require.False(t, ok)
}

func TestSinglePeek(t *testing.T) {
	var ls list.Single[int]
	_, ok := ls.Peek()
	require.False(t, ok)

	ls.Append(6)
	ls.Append(8)
	v, ok := ls.Peek()
	require.True(t, ok)
	require.Equal(t, 6, v)
	require.Equal(t, 2, ls.Len())
}

func TestSingleLen(t *testing.T) {
	var ls list.Single[int]
	require.Equal(t, 0, ls.Len())
	require.True(t, ls.IsEmpty())

	const inserts = 12
	for i := range inserts {
		ls.InsertAt(i/2, i)
	}
	require.Equal(t, inserts, ls.Len())

	removed := 0
	for _, v := range []int{0, 5, 11, 3} {
		require.True(t, ls.Remove(v))
		removed++
	}
	require.Equal(t, inserts-removed, ls.Len())
	require.False(t, ls.IsEmpty())
}

func TestSingleAllRestartable(t *testing.T) {
	ls := build(1, 2, 3)
	seq := ls.All()
	require.Equal(t, []int{1, 2, 3}, slices.Collect(seq))
	require.Equal(t, []int{1, 2, 3}, slices.Collect(seq))

	for v := range seq {
		if v == 2 {
			break
		}
	}
	require.Equal(t, 3, ls.Len())
}

func TestSingleClear(t *testing.T) {
	const n = 50
	ls := build()
	for i := range n {
		ls.Append(i)
	}
	nodes := make([]*list.SingleNode[int], 0, n)
	for i := range n {
		nodes = append(nodes, ls.Iterate(i))
	}

	require.Equal(t, n, ls.Clear())
	require.True(t, ls.IsEmpty())
	require.Equal(t, 0, ls.Clear())

	for i, node := range nodes {
		require.Equal(t, i, node.Val)
		require.Nil(t, list.Next(node))
	}
	ls.Append(99)
	require.Equal(t, []int{99}, slices.Collect(ls.All()))
}
