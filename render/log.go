package render

import (
	"context"
	"iter"
	"log/slog"
	"slices"

	"deedles.dev/calldispatch"
)

// Log is a [calldispatch.Sink] that reports displays and events as
// debug records on a slog.Logger.
type Log struct {
	logger *slog.Logger
}

// NewLog returns a Log sink. A nil logger uses slog.Default.
func NewLog(logger *slog.Logger) *Log {
	if logger == nil {
		logger = slog.Default()
	}
	return &Log{logger: logger}
}

func (l *Log) Display(label string, values iter.Seq[int]) {
	if !l.logger.Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	l.logger.Debug("display", "label", label, "values", slices.Collect(values))
}

func (l *Log) Notify(ev calldispatch.Event) {
	l.logger.LogAttrs(context.Background(), slog.LevelDebug, "dispatch event",
		slog.String("kind", ev.Kind.String()),
		slog.Int("duration", ev.Duration),
		slog.Int("cycle", ev.Cycle),
	)
}

type multi []calldispatch.Sink

// Multi returns a sink that passes everything to each of sinks in
// order.
func Multi(sinks ...calldispatch.Sink) calldispatch.Sink {
	return multi(sinks)
}

func (m multi) Display(label string, values iter.Seq[int]) {
	for _, s := range m {
		s.Display(label, values)
	}
}

func (m multi) EndDisplay() {
	for _, s := range m {
		if e, ok := s.(calldispatch.DisplayEnder); ok {
			e.EndDisplay()
		}
	}
}

func (m multi) Notify(ev calldispatch.Event) {
	for _, s := range m {
		s.Notify(ev)
	}
}
