package list

// Next exposes a node's successor to the external tests.
func Next[T comparable](n *SingleNode[T]) *SingleNode[T] {
	return n.next
}
