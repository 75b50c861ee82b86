package calldispatch

import (
	"errors"
	"fmt"
)

const (
	// WaitingPerCycle is the most waiting callers served in one
	// dispatch cycle.
	WaitingPerCycle = 3

	// MissedPerCycle is the most missed callers called back in one
	// dispatch cycle, after the waiting callers.
	MissedPerCycle = 1
)

// State is the state of a [Scheduler].
type State int

const (
	Running State = iota
	Done
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Done:
		return "done"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// A Scheduler drains a queue of waiting callers and a stack of missed
// callers, serving up to [WaitingPerCycle] waiting callers and then up
// to [MissedPerCycle] missed callers per cycle. Everything it does is
// reported to its [Sink].
//
// A Scheduler owns its queue and stack while it runs. Nothing else
// should modify them until it is Done.
type Scheduler struct {
	waiting *Queue[int]
	missed  *Stack[int]
	sink    Sink

	state  State
	cycles int
}

// NewScheduler returns a Scheduler over the given structures. A nil
// sink discards all events.
func NewScheduler(waiting *Queue[int], missed *Stack[int], sink Sink) *Scheduler {
	if sink == nil {
		sink = NotifyFunc(func(Event) {})
	}
	return &Scheduler{
		waiting: waiting,
		missed:  missed,
		sink:    sink,
	}
}

// State returns the current state of the scheduler.
func (s *Scheduler) State() State {
	return s.state
}

// Cycles returns the number of dispatch cycles run so far.
func (s *Scheduler) Cycles() int {
	return s.cycles
}

// Step runs a single dispatch cycle. It returns false, without
// emitting anything, once both the queue and the stack are empty at
// the start of a cycle, at which point the scheduler is Done.
func (s *Scheduler) Step() bool {
	if s.state == Done {
		return false
	}
	if s.waiting.IsEmpty() && s.missed.IsEmpty() {
		s.state = Done
		return false
	}

	s.cycles++
	s.serveWaiting()
	s.callBackMissed()
	return true
}

// Run steps the scheduler until it is Done.
func (s *Scheduler) Run() {
	for s.Step() {
	}
}

func (s *Scheduler) serveWaiting() {
	for range WaitingPerCycle {
		d, err := s.waiting.Dequeue()
		if errors.Is(err, ErrEmptyQueue) {
			s.emit(QueueEmpty, 0)
			return
		}
		s.emit(Served, d)
	}
}

func (s *Scheduler) callBackMissed() {
	for range MissedPerCycle {
		if s.missed.IsEmpty() {
			return
		}

		d, _ := s.missed.Pop()
		s.emit(CalledBack, d)
	}
}

func (s *Scheduler) emit(kind Kind, d int) {
	s.sink.Notify(Event{Kind: kind, Duration: d, Cycle: s.cycles})
}
