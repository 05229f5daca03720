package a11ycheck

import (
	"context"
	"slices"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/sirkon/a11ycheck/element"
)

// FailureInfo describes a single rule violation.
type FailureInfo struct {
	ElementName string
	ElementID   string
	Message     string
}

// NotifyOptions are the parts of Config relevant for delivery.
type NotifyOptions struct {
	IncludeSourceReference bool
	Filter                 func(name, id string) bool
}

// failureReporter turns violations of one element into errors or diagnostics.
// It is bound to the configuration captured when the element was built.
type failureReporter struct {
	fatal bool
	opts  NotifyOptions
	warn  WarnFunc
	owner element.Owner
	doc   element.Document

	// span is the check span. Reports arriving after the check is done get
	// their own span linked to it.
	span   trace.Span
	tracer trace.Tracer
	done   bool
}

func (r *failureReporter) report(info FailureInfo) error {
	if r.opts.Filter != nil && !r.opts.Filter(info.ElementName, info.ElementID) {
		return nil
	}

	if r.fatal {
		err := &ValidationFailure{
			ElementName: info.ElementName,
			ElementID:   info.ElementID,
			Message:     info.Message,
			WithID:      r.opts.IncludeSourceReference,
		}
		r.trace(info, false, err)
		return err
	}

	diag := []any{info.ElementName, info.Message}
	if !r.opts.IncludeSourceReference || r.owner == nil {
		r.warn(diag...)
		r.trace(info, false, nil)
		return nil
	}

	lc, ok := r.owner.(element.Lifecycle)
	if !ok {
		r.warn(diag...)
		r.trace(info, false, nil)
		return nil
	}
	if lc.Mounted() {
		r.warn(r.correlate(diag, info.ElementID)...)
		r.trace(info, false, nil)
		return nil
	}

	// The node only exists in the host after the owner is rendered. The first
	// milestone delivers the diagnostic.
	fired := false
	emit := func() error {
		if fired {
			return nil
		}
		fired = true
		r.warn(r.correlate(slices.Clone(diag), info.ElementID)...)
		r.trace(info, true, nil)
		return nil
	}
	lc.OnMounted(emit)
	lc.OnUpdated(emit)
	return nil
}

func (r *failureReporter) correlate(diag []any, id string) []any {
	if r.doc == nil {
		return diag
	}
	node, ok := r.doc.ElementByID(id)
	if !ok || node == nil {
		return diag
	}
	return append(diag, node)
}

func (r *failureReporter) trace(info FailureInfo, deferred bool, err error) {
	if r.span == nil {
		return
	}

	span := r.span
	if r.done {
		if r.tracer == nil {
			return
		}
		_, span = r.tracer.Start(context.Background(), "a11ycheck.deferred",
			trace.WithLinks(trace.Link{SpanContext: r.span.SpanContext()}),
			trace.WithAttributes(
				attribute.String("a11y.element_id", info.ElementID),
				attribute.String("a11y.element_name", info.ElementName),
			),
		)
		defer span.End()
	}

	span.AddEvent("a11y.violation", trace.WithAttributes(
		attribute.String("a11y.message", info.Message),
		attribute.Bool("a11y.deferred", deferred),
	))
	if err != nil && r.done {
		span.RecordError(err)
		span.SetStatus(codes.Error, "accessibility check failed")
	}
}
