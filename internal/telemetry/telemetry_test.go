package telemetry

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNoopTracerDoesNotRecord(t *testing.T) {
	_, span := NoopTracer().Start(context.Background(), "test")
	defer span.End()

	assert.False(t, span.IsRecording())
	assert.False(t, span.SpanContext().IsValid())
}

func TestTracerUsesGlobalProvider(t *testing.T) {
	tracer := Tracer("world")
	assert.NotNil(t, tracer)

	// Without Setup the global provider is a no-op.
	_, span := tracer.Start(context.Background(), "level.generate")
	defer span.End()
	assert.False(t, span.IsRecording())
}
