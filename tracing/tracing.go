// Package tracing records dispatch runs as OpenTelemetry spans. Until
// Init or InitWithExporter is called, spans are no-ops.
package tracing

import (
	"context"
	"errors"
	"io"
	"os"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "deedles.dev/calldispatch"

// Init installs a tracer provider that writes spans as JSON to
// outputFile, or to stdout if outputFile is empty. Only the first call
// to Init or InitWithExporter has any effect until Shutdown; later
// calls return its error, if any, and do not create outputFile.
func Init(serviceName, serviceVersion, outputFile string) error {
	return installProvider(serviceName, serviceVersion, func() (sdktrace.SpanExporter, error) {
		var w io.Writer = os.Stdout
		if outputFile != "" {
			f, err := os.Create(outputFile)
			if err != nil {
				return nil, err
			}
			output = f
			w = f
		}

		exporter, err := stdouttrace.New(stdouttrace.WithWriter(w))
		if err != nil {
			closeOutput()
			return nil, err
		}
		return exporter, nil
	})
}

// InitWithExporter is like Init but sends spans to the given exporter.
func InitWithExporter(serviceName, serviceVersion string, exporter sdktrace.SpanExporter) error {
	if exporter == nil {
		return nil
	}
	return installProvider(serviceName, serviceVersion, func() (sdktrace.SpanExporter, error) {
		return exporter, nil
	})
}

var (
	m            sync.Mutex
	providerOnce sync.Once
	provider     *sdktrace.TracerProvider
	providerErr  error
	output       *os.File
)

func installProvider(serviceName, serviceVersion string, newExporter func() (sdktrace.SpanExporter, error)) error {
	m.Lock()
	defer m.Unlock()

	providerOnce.Do(func() {
		res, err := resource.New(context.Background(),
			resource.WithAttributes(
				attribute.String("service.name", serviceName),
				attribute.String("service.version", serviceVersion),
			),
		)
		if err != nil {
			providerErr = err
			return
		}

		exporter, err := newExporter()
		if err != nil {
			providerErr = err
			return
		}

		provider = sdktrace.NewTracerProvider(
			sdktrace.WithSpanProcessor(sdktrace.NewSimpleSpanProcessor(exporter)),
			sdktrace.WithResource(res),
		)
		otel.SetTracerProvider(provider)
	})

	return providerErr
}

func closeOutput() error {
	if output == nil {
		return nil
	}
	err := output.Close()
	output = nil
	return err
}

// Shutdown flushes and stops the installed provider, if any, and
// closes its output file. Afterwards Init may be called again.
func Shutdown(ctx context.Context) error {
	m.Lock()
	defer m.Unlock()

	var err error
	if provider != nil {
		err = provider.Shutdown(ctx)
	}
	err = errors.Join(err, closeOutput())

	provider = nil
	providerErr = nil
	providerOnce = sync.Once{}
	return err
}

// Span is a span started by StartSpan.
type Span struct {
	span trace.Span
}

// SetInt records an integer attribute on the span.
func (s *Span) SetInt(key string, v int) *Span {
	if s == nil {
		return s
	}
	s.span.SetAttributes(attribute.Int(key, v))
	return s
}

// SetString records a string attribute on the span.
func (s *Span) SetString(key, v string) *Span {
	if s == nil {
		return s
	}
	s.span.SetAttributes(attribute.String(key, v))
	return s
}

// AddEvent records a named point in time on the span.
func (s *Span) AddEvent(name string, attrs map[string]int) {
	if s == nil {
		return
	}
	kv := make([]attribute.KeyValue, 0, len(attrs))
	for k, v := range attrs {
		kv = append(kv, attribute.Int(k, v))
	}
	s.span.AddEvent(name, trace.WithAttributes(kv...))
}

// StartSpan starts an internal span as a child of any span in ctx.
func StartSpan(ctx context.Context, name string) (context.Context, *Span) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, name, trace.WithSpanKind(trace.SpanKindInternal))
	return ctx, &Span{span: span}
}

// EndSpan sets the status of the span from err and ends it.
func EndSpan(s *Span, err error) {
	if s == nil {
		return
	}
	if err != nil {
		s.span.RecordError(err)
		s.span.SetStatus(codes.Error, err.Error())
	} else {
		s.span.SetStatus(codes.Ok, "")
	}
	s.span.End()
}
