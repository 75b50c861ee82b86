package calldispatch

import "errors"

var (
	// ErrEmptyQueue is returned when dequeuing from or peeking at an
	// empty [Queue]. It is an expected condition, not a failure.
	ErrEmptyQueue = errors.New("queue is empty")

	// ErrEmptyStack is returned when popping from or peeking at an
	// empty [Stack].
	ErrEmptyStack = errors.New("stack is empty")

	// ErrInputUnavailable indicates that the caller record source could
	// not be opened. It is the only error that aborts a run.
	ErrInputUnavailable = errors.New("input unavailable")
)
