package otel_test

import (
	"context"
	"errors"
	"organise/config"
	"organise/infras/otel"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func TestNew_WithoutExporter(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.Name = "organise-test"

	ot := otel.New(cfg)

	ctx, scope := ot.NewScope(context.Background(), "test", "test.Operation")
	assert.NotNil(t, ctx)

	scope.SetAttribute("key", "value")
	scope.End()

	assert.NoError(t, ot.Shutdown(context.Background()))
}

func TestScope_RecordsAttributesAndErrors(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := trace.NewTracerProvider(trace.WithSpanProcessor(recorder))

	_, span := provider.Tracer("test").Start(context.Background(), "test.Scope")
	scope := otel.NewScope(span)

	scope.SetAttributes(map[string]any{
		"flag":  true,
		"name":  "todo",
		"count": 3,
		"big":   int64(7),
		"tags":  []string{"a", "b"},
		"ratio": 0.5,
		"cause": errors.New("timeout"),
		"empty": nil,
		"at":    time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	scope.AddEvent("checkpoint")
	scope.TraceIfError(nil)
	scope.TraceIfError(errors.New("boom"))
	scope.End()

	spans := recorder.Ended()
	require.Len(t, spans, 1)

	attrs := map[attribute.Key]attribute.Value{}
	for _, kv := range spans[0].Attributes() {
		attrs[kv.Key] = kv.Value
	}

	assert.Equal(t, true, attrs["flag"].AsBool())
	assert.Equal(t, "todo", attrs["name"].AsString())
	assert.Equal(t, int64(3), attrs["count"].AsInt64())
	assert.Equal(t, int64(7), attrs["big"].AsInt64())
	assert.Equal(t, []string{"a", "b"}, attrs["tags"].AsStringSlice())
	assert.Equal(t, "2025-01-01T00:00:00Z", attrs["at"].AsString())
	assert.InDelta(t, 0.5, attrs["ratio"].AsFloat64(), 0.0001)
	assert.Equal(t, "timeout", attrs["cause"].AsString())
	assert.NotContains(t, attrs, attribute.Key("empty"))

	assert.Equal(t, codes.Error, spans[0].Status().Code)
	assert.Equal(t, "boom", spans[0].Status().Description)
	require.Len(t, spans[0].Events(), 2)
}
