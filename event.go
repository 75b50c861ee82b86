package calldispatch

import (
	"fmt"
	"iter"
)

// Kind identifies what happened in an [Event].
type Kind int

const (
	// Served means a waiting caller was taken from the queue.
	Served Kind = iota

	// CalledBack means a missed caller was taken from the stack.
	CalledBack

	// QueueEmpty means a dequeue found nobody waiting.
	QueueEmpty

	// StackEmpty reports an empty missed stack. A Scheduler never
	// sends it since it checks the stack before popping.
	StackEmpty
)

func (k Kind) String() string {
	switch k {
	case Served:
		return "served"
	case CalledBack:
		return "called back"
	case QueueEmpty:
		return "queue empty"
	case StackEmpty:
		return "stack empty"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Event is a single step taken by a [Scheduler]. Duration is the
// service time of the caller involved and is zero for the empty
// notices. Cycle is the one-based dispatch cycle the event belongs to.
type Event struct {
	Kind     Kind
	Duration int
	Cycle    int
}

// A Sink receives everything a dispatch run produces. Rendering the
// values as text, or anything else, is up to the implementation.
type Sink interface {
	// Display is handed a labelled snapshot of a structure's contents.
	// The sequence can be iterated more than once but is only valid
	// until the structure is next modified.
	Display(label string, values iter.Seq[int])

	// Notify is called once for every event, in order.
	Notify(Event)
}

// A DisplayEnder is a [Sink] that wants to know when the displays
// that open a run are finished, before any event is sent.
type DisplayEnder interface {
	Sink
	EndDisplay()
}

// NotifyFunc adapts a plain function to a [Sink] that ignores
// displays.
type NotifyFunc func(Event)

func (f NotifyFunc) Display(string, iter.Seq[int]) {}

func (f NotifyFunc) Notify(ev Event) {
	f(ev)
}
