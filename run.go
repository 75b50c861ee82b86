package calldispatch

import (
	"context"
	"iter"
	"log/slog"

	"deedles.dev/calldispatch/internal/idgen"
	"deedles.dev/calldispatch/tracing"
)

// Labels passed to [Sink.Display] by Run for the initial contents of
// each structure.
const (
	WaitingLabel = "Initial waiting queue (service times)"
	MissedLabel  = "Initial missed call stack (service times)"
)

// Summary describes a finished dispatch run.
type Summary struct {
	RunID      string
	Counts     Counts
	Served     int
	CalledBack int
	Cycles     int
}

// Run classifies records into a fresh queue and stack, shows both to
// sink, and then dispatches until both are empty. Classification is
// finished before dispatching starts.
func Run(ctx context.Context, records iter.Seq[Record], sink Sink) Summary {
	sum := Summary{RunID: idgen.New()}

	_, span := tracing.StartSpan(ctx, "dispatch.run")
	span.SetString("run.id", sum.RunID)
	defer func() {
		span.SetInt("served", sum.Served).
			SetInt("called_back", sum.CalledBack).
			SetInt("cycles", sum.Cycles)
		tracing.EndSpan(span, nil)
	}()

	var waiting Queue[int]
	var missed Stack[int]
	sum.Counts = Classify(records, &waiting, &missed)
	slog.Debug("classified callers",
		"run", sum.RunID,
		"waiting", sum.Counts.Waiting,
		"missed", sum.Counts.Missed,
		"ignored", sum.Counts.Ignored,
	)

	if sink == nil {
		sink = NotifyFunc(func(Event) {})
	}
	sink.Display(WaitingLabel, waiting.All())
	sink.Display(MissedLabel, missed.All())
	if e, ok := sink.(DisplayEnder); ok {
		e.EndDisplay()
	}

	counter := countingSink{Sink: sink, sum: &sum, span: span}
	s := NewScheduler(&waiting, &missed, &counter)
	s.Run()
	sum.Cycles = s.Cycles()

	slog.Info("dispatch finished",
		"run", sum.RunID,
		"served", sum.Served,
		"calledBack", sum.CalledBack,
		"cycles", sum.Cycles,
	)
	return sum
}

type countingSink struct {
	Sink
	sum   *Summary
	span  *tracing.Span
	cycle int
}

func (c *countingSink) Notify(ev Event) {
	switch ev.Kind {
	case Served:
		c.sum.Served++
	case CalledBack:
		c.sum.CalledBack++
	}
	if ev.Cycle != c.cycle {
		c.cycle = ev.Cycle
		c.span.AddEvent("dispatch.cycle", map[string]int{"cycle": ev.Cycle})
	}
	c.Sink.Notify(ev)
}
