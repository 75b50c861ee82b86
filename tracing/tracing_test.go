package tracing_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"deedles.dev/calldispatch/tracing"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestSpans(t *testing.T) {
	exporter := tracetest.NewInMemoryExporter()
	require.NoError(t, tracing.InitWithExporter("calldispatch", "test", exporter))
	t.Cleanup(func() { _ = tracing.Shutdown(context.Background()) })

	ctx, parent := tracing.StartSpan(context.Background(), "parent")
	parent.SetString("run.id", "abc").SetInt("served", 4)

	_, child := tracing.StartSpan(ctx, "child")
	child.AddEvent("cycle", map[string]int{"served": 3})
	tracing.EndSpan(child, errors.New("boom"))
	tracing.EndSpan(parent, nil)

	spans := exporter.GetSpans()
	require.Len(t, spans, 2)

	require.Equal(t, "child", spans[0].Name)
	require.Equal(t, codes.Error, spans[0].Status.Code)
	require.Equal(t, spans[1].SpanContext.SpanID(), spans[0].Parent.SpanID())
	require.Len(t, spans[0].Events, 2)

	require.Equal(t, "parent", spans[1].Name)
	require.Equal(t, codes.Ok, spans[1].Status.Code)
	require.Contains(t, spans[1].Attributes, attribute.String("run.id", "abc"))
	require.Contains(t, spans[1].Attributes, attribute.Int("served", 4))
}

func TestNilSpan(t *testing.T) {
	var s *tracing.Span
	require.Nil(t, s.SetInt("k", 1))
	s.AddEvent("nothing", nil)
	tracing.EndSpan(s, nil)
}

func TestInitFile(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.json")
	second := filepath.Join(dir, "second.json")

	require.NoError(t, tracing.Init("calldispatch", "test", first))
	require.NoError(t, tracing.Init("calldispatch", "test", second))
	_, err := os.Stat(second)
	require.ErrorIs(t, err, os.ErrNotExist)

	_, span := tracing.StartSpan(context.Background(), "written")
	tracing.EndSpan(span, nil)
	require.NoError(t, tracing.Shutdown(context.Background()))

	data, err := os.ReadFile(first)
	require.NoError(t, err)
	require.Contains(t, string(data), `"Name":"written"`)

	// The provider can be installed again once shut down.
	require.NoError(t, tracing.Init("calldispatch", "test", second))
	require.NoError(t, tracing.Shutdown(context.Background()))
	_, err = os.Stat(second)
	require.NoError(t, err)
}
