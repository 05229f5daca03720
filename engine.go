package a11ycheck

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/sirkon/a11ycheck/a11yrules"
	"github.com/sirkon/a11ycheck/element"
	"github.com/sirkon/a11ycheck/internal/dispatch"
	"github.com/sirkon/a11ycheck/internal/exclusion"
	"github.com/sirkon/a11ycheck/internal/identity"
)

const tracerName = "github.com/sirkon/a11ycheck"

// Host is a UI framework able to compose middleware over its construction
// entry point.
type Host interface {
	// Constructor returns the current construction entry point, nil if there
	// is none.
	Constructor() element.CreateFunc

	// Use wraps the construction entry point.
	Use(mw element.Middleware)
}

// Engine is the interception layer installed into a host.
type Engine struct {
	cfg      atomic.Pointer[Config]
	ids      *identity.Allocator
	rules    *a11yrules.Registry
	dispatch *dispatch.Dispatcher
	doc      element.Document
	warn     WarnFunc
	logger   *slog.Logger
	tracer   trace.Tracer
}

// Install wraps the host construction entry point with accessibility checks.
// It fails with a *ConfigurationError when the host is missing or has no
// construction entry point, or when the rule registry is already bound to
// another host.
//
// Engines installed without WithAllocator share one process-wide allocator,
// so generated ids never repeat across Install calls. Pass WithAllocator to
// give an engine, or a group of engines, its own numbering.
func Install(host Host, cfg Config, opts ...Option) (*Engine, error) {
	if host == nil {
		return nil, &ConfigurationError{Err: ErrMissingHost}
	}
	if host.Constructor() == nil {
		return nil, &ConfigurationError{Err: fmt.Errorf("%T: %w", host, ErrNoConstructor)}
	}

	e := &Engine{}
	for _, opt := range opts {
		opt(e)
	}
	if e.rules == nil {
		e.rules = a11yrules.Default()
	}
	if e.ids == nil {
		e.ids = defaultAllocator
	}
	if e.logger == nil {
		e.logger = slog.Default()
	}
	if e.warn == nil {
		e.warn = SlogWarn(e.logger)
	}
	if e.tracer == nil {
		e.tracer = otel.Tracer(tracerName)
	}
	e.dispatch = dispatch.New(e.rules)
	e.cfg.Store(&cfg)

	if doc, ok := host.(element.Document); ok {
		e.doc = doc
	}
	if b, ok := host.(a11yrules.Binding); ok {
		if err := e.rules.Bind(b); err != nil {
			return nil, &ConfigurationError{Err: err}
		}
	}
	host.Use(e.middleware)

	e.logger.Debug("accessibility checks installed",
		"host", fmt.Sprintf("%T", host),
		"device", cfg.Device,
		"throw_on_failure", cfg.ThrowOnFailure,
		"include_source_reference", cfg.IncludeSourceReference,
	)
	return e, nil
}

// Config returns the current configuration.
func (e *Engine) Config() Config {
	return *e.cfg.Load()
}

// SetConfig replaces the configuration. Construction calls started after it
// returns use the new value.
func (e *Engine) SetConfig(cfg Config) {
	e.cfg.Store(&cfg)
	e.logger.Debug("accessibility checks reconfigured", "device", cfg.Device, "excluded", len(cfg.Exclude))
}

func (e *Engine) middleware(next element.CreateFunc) element.CreateFunc {
	return func(typ any, props *element.Props, children ...any) (any, error) {
		if props == nil {
			props = element.NewProps()
		}
		id := e.ids.Allocate(suppliedID(props))
		props.Set("id", id)

		el, err := next(typ, props, children...)
		if err != nil {
			return nil, err
		}

		tag, ok := typ.(string)
		if !ok {
			return el, nil
		}
		if err := e.check(el, element.Descriptor{TagName: tag, Props: props, Children: children, ID: id}); err != nil {
			return nil, err
		}

		return el, nil
	}
}

func (e *Engine) check(el any, desc element.Descriptor) error {
	cfg := e.Config()
	origin := element.ResolveOrigin(el, desc.TagName, desc.ID)

	_, span := e.tracer.Start(context.Background(), "a11ycheck.check", trace.WithAttributes(
		attribute.String("a11y.tag", desc.TagName),
		attribute.String("a11y.element_id", desc.ID),
		attribute.String("a11y.element_name", origin.Name()),
	))

	rep := &failureReporter{
		fatal: cfg.ThrowOnFailure,
		opts: NotifyOptions{
			IncludeSourceReference: cfg.IncludeSourceReference,
			Filter:                 cfg.Filter,
		},
		warn:   e.warn,
		owner:  ownerOf(el),
		doc:    e.doc,
		span:   span,
		tracer: e.tracer,
	}
	defer func() {
		rep.done = true
		span.End()
	}()

	shouldRun := func(key string) bool {
		return exclusion.ShouldRun(key, cfg.Exclude, cfg.Device == DeviceMobile, e.rules.MobileExclusions())
	}
	onFailure := func(_ string, _ *element.Props, msg string) error {
		return rep.report(FailureInfo{
			ElementName: origin.Name(),
			ElementID:   desc.ID,
			Message:     msg,
		})
	}

	if err := e.dispatch.RunAll(desc, shouldRun, onFailure); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "accessibility check failed")
		return err
	}

	return nil
}

func ownerOf(el any) element.Owner {
	o, ok := el.(element.Owned)
	if !ok {
		return nil
	}
	owner, ok := o.Owner()
	if !ok {
		return nil
	}
	return owner
}

func suppliedID(props *element.Props) string {
	v, ok := props.Get("id")
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
