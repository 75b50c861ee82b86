// Command calldispatch reads caller records and dispatches them,
// serving three waiting callers for every missed caller called back.
//
// Usage:
//
//	calldispatch [-config URL] [-input URL] [-log-level LEVEL] [-trace] [-trace-output FILE]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"

	"deedles.dev/calldispatch"
	"deedles.dev/calldispatch/caller"
	"deedles.dev/calldispatch/render"
	"deedles.dev/calldispatch/tracing"
	"github.com/viant/afs"
)

const version = "0.1.0"

const (
	exitOK = iota
	exitInput
	exitUsage
)

func main() {
	os.Exit(run(context.Background(), os.Stdout, os.Args[1:]))
}

func run(ctx context.Context, stdout io.Writer, args []string) int {
	fset := flag.NewFlagSet("calldispatch", flag.ContinueOnError)
	configURL := fset.String("config", "", "YAML configuration `URL`")
	input := fset.String("input", "", "caller record source `URL` (overrides config)")
	logLevel := fset.String("log-level", "", "log `level`: debug, info, warn or error (overrides config)")
	trace := fset.Bool("trace", false, "write a trace of the run")
	traceOutput := fset.String("trace-output", "", "trace `file`, stdout if empty")
	if err := fset.Parse(args); err != nil {
		return exitUsage
	}

	fs := afs.New()
	cfg := calldispatch.DefaultConfig()
	if *configURL != "" {
		c, err := calldispatch.LoadConfig(ctx, fs, *configURL)
		if err != nil {
			fmt.Fprintf(os.Stderr, "config: %v\n", err)
			return exitUsage
		}
		cfg = c
	}
	fset.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "input":
			cfg.Input = *input
		case "log-level":
			cfg.Log.Level = *logLevel
		case "trace":
			cfg.Trace.Enabled = *trace
		case "trace-output":
			cfg.Trace.Output = *traceOutput
		}
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		return exitUsage
	}

	level, _ := cfg.Log.SlogLevel()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if cfg.Trace.Enabled {
		if err := tracing.Init("calldispatch", version, cfg.Trace.Output); err != nil {
			slog.Warn("tracing disabled", "err", err)
		}
		defer func() {
			if err := tracing.Shutdown(ctx); err != nil {
				slog.Warn("trace shutdown failed", "err", err)
			}
		}()
	}

	records, err := caller.NewSource(fs).Load(ctx, cfg.Input)
	switch {
	case errors.Is(err, calldispatch.ErrInputUnavailable):
		fmt.Fprintln(stdout, "File not found.")
		slog.Error("failed to load callers", "input", cfg.Input, "err", err)
		return exitInput
	case err != nil:
		slog.Warn("stopped reading callers early", "input", cfg.Input, "read", len(records), "err", err)
	}

	out := render.NewText(stdout)
	calldispatch.Run(ctx, slices.Values(records), render.Multi(out, render.NewLog(logger)))
	if err := out.Err(); err != nil {
		slog.Error("failed to write output", "err", err)
	}

	return exitOK
}
