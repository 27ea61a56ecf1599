package otel_test

import (
	"context"
	"errors"
	"testing"
	"todoapi/config"
	"todoapi/infras/otel"

	"github.com/stretchr/testify/assert"
	oteltrace "go.opentelemetry.io/otel/trace"
)

func TestNew_WithoutEndpoint(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.Name = "todoapi-test"

	o := otel.New(cfg)
	defer otel.Shutdown(context.Background(), o)

	ctx, scope := o.NewScope(context.Background(), "service", "service.Get")
	scope.SetAttributes(map[string]any{
		"query":   "SELECT 1",
		"id":      7,
		"cached":  true,
		"columns": []string{"id", "title"},
		"owner":   int64(3),
	})
	scope.AddEvent("cache miss")
	scope.TraceIfError(nil)
	scope.TraceError(errors.New("boom"))
	scope.End()

	assert.True(t, oteltrace.SpanContextFromContext(ctx).IsValid())
}
