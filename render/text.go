// Package render turns dispatch output into something a person can
// read.
package render

import (
	"fmt"
	"io"
	"iter"
	"strconv"

	"deedles.dev/calldispatch"
)

const (
	arrow    = " -> "
	terminal = "NULL"
)

// Text is a [calldispatch.Sink] that writes one line per display or
// event to an io.Writer, and an empty line when the opening displays
// end. Write errors are kept and returned by Err; after the first one
// nothing more is written.
type Text struct {
	w   io.Writer
	err error
}

// NewText returns a Text sink writing to w.
func NewText(w io.Writer) *Text {
	return &Text{w: w}
}

// Chain formats values as "v1 -> v2 -> ... -> NULL".
func Chain(values iter.Seq[int]) string {
	var buf []byte
	for v := range values {
		buf = strconv.AppendInt(buf, int64(v), 10)
		buf = append(buf, arrow...)
	}
	return string(append(buf, terminal...))
}

func (t *Text) Display(label string, values iter.Seq[int]) {
	t.printf("%v: %v\n", label, Chain(values))
}

func (t *Text) EndDisplay() {
	t.printf("\n")
}

func (t *Text) Notify(ev calldispatch.Event) {
	switch ev.Kind {
	case calldispatch.Served:
		t.printf("Served customer with service time : %v\n", ev.Duration)
	case calldispatch.CalledBack:
		t.printf("Called back missed caller with service time: %v\n", ev.Duration)
	case calldispatch.QueueEmpty:
		t.printf("Queue is empty.\n")
	case calldispatch.StackEmpty:
		t.printf("Stack is empty.\n")
	}
}

// Err returns the first write error, if any.
func (t *Text) Err() error {
	return t.err
}

func (t *Text) printf(format string, args ...any) {
	if t.err != nil {
		return
	}
	_, t.err = fmt.Fprintf(t.w, format, args...)
}
