package a11ycheck

import (
	"log/slog"

	"go.opentelemetry.io/otel/trace"

	"github.com/sirkon/a11ycheck/a11yrules"
	"github.com/sirkon/a11ycheck/internal/identity"
)

// Allocator generates element ids. Engines sharing an allocator never hand
// out the same generated id.
type Allocator = identity.Allocator

// NewAllocator creates an allocator starting at "a11y-0".
func NewAllocator() *Allocator {
	return identity.New()
}

// defaultAllocator is used by engines installed without WithAllocator, so ids
// stay unique across Install calls of one process.
var defaultAllocator = identity.New()

// Option customizes an Engine.
type Option func(*Engine)

// WithRegistry sets the rules to run. a11yrules.Default() is used otherwise.
func WithRegistry(r *a11yrules.Registry) Option {
	return func(e *Engine) {
		e.rules = r
	}
}

// WithAllocator sets the id allocator. Ids are unique only among engines
// sharing an allocator.
func WithAllocator(a *Allocator) Option {
	return func(e *Engine) {
		e.ids = a
	}
}

// WithWarn sets the advisory channel. SlogWarn over the engine logger is used
// otherwise.
func WithWarn(w WarnFunc) Option {
	return func(e *Engine) {
		e.warn = w
	}
}

// WithLogger sets the engine logger.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = l
	}
}

// WithTracerProvider sets the provider of the engine tracer.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(e *Engine) {
		e.tracer = tp.Tracer(tracerName)
	}
}
