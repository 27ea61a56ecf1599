// Package mocks provides tracing doubles that discard every span.
package mocks

import (
	"context"
	"todoapi/infras/otel"
)

type noopOtel struct{}

type noopScope struct{}

func NewOtel() otel.Otel {
	return noopOtel{}
}

func NewScope() otel.Scope {
	return noopScope{}
}

func (noopOtel) NewScope(ctx context.Context, _, _ string) (context.Context, otel.Scope) {
	return ctx, noopScope{}
}

func (noopScope) End()                          {}
func (noopScope) TraceError(_ error)            {}
func (noopScope) TraceIfError(_ error)          {}
func (noopScope) AddEvent(_ string)             {}
func (noopScope) SetAttribute(_ string, _ any)  {}
func (noopScope) SetAttributes(_ map[string]any) {}
