package nav

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"
	"go.uber.org/zap"
)

// TracerName is the instrumentation scope used for routing spans.
const TracerName = "travelshell/nav"

// Router maps selections to screens and owns the single active screen.
// It is not safe for concurrent use; call it from the UI event loop only.
type Router struct {
	host   Host
	table  Table
	logger *zap.Logger
	tracer trace.Tracer

	active      Screen
	initialized bool
	generation  uint64 // bumped by every successful Select and Reserve
}

// Option configures a Router.
type Option func(*Router)

// WithLogger sets the logger used for routing decisions.
func WithLogger(l *zap.Logger) Option {
	return func(r *Router) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithTracer sets the tracer used to record a span per routing decision.
func WithTracer(t trace.Tracer) Option {
	return func(r *Router) {
		if t != nil {
			r.tracer = t
		}
	}
}

// New creates a Router that presents into host using table.
func New(host Host, table Table, opts ...Option) *Router {
	r := &Router{
		host:   host,
		table:  table,
		logger: zap.NewNop(),
		tracer: noop.NewTracerProvider().Tracer(TracerName),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Initialize presents a fresh Home screen. It must be called once, at startup.
func (r *Router) Initialize() error {
	if r.initialized {
		return &RouteError{Op: "initialize", Target: Home, Err: ErrAlreadyInitialized}
	}
	if err := r.route("initialize", Home); err != nil {
		return err
	}
	r.initialized = true
	return nil
}

// OnSelect handles a selection event from the navigation bar.
// It returns true when the selected screen is now active; the bar should then show
// the selection as active. Failures are logged and reported as false.
func (r *Router) OnSelect(t Target) bool {
	if err := r.Select(t); err != nil {
		r.logger.Warn("navigation failed", zap.Stringer("target", t), zap.Error(err))
		return false
	}
	return true
}

// Select constructs a new screen for t and presents it, replacing the active screen.
// It returns an error wrapping ErrUnmappedTarget when t has no mapping, or a
// *PresentationError when the host fails. In both cases the active screen is unchanged.
func (r *Router) Select(t Target) error {
	if err := r.route("select", t); err != nil {
		return err
	}
	r.initialized = true
	return nil
}

func (r *Router) route(op string, t Target) error {
	_, span := r.tracer.Start(context.Background(), "nav."+op,
		trace.WithAttributes(attribute.String("nav.target", t.String())))
	defer span.End()

	factory, ok := r.table.Lookup(t)
	if !ok {
		err := &RouteError{Op: op, Target: t, Err: ErrUnmappedTarget}
		failSpan(span, err)
		return err
	}
	if err := r.present(t, factory()); err != nil {
		failSpan(span, err)
		return err
	}
	r.generation++
	return nil
}

// present hands s to the host and records it as active on success.
// A screen the host refused is released here since nobody else owns it.
func (r *Router) present(t Target, s Screen) error {
	if s == nil || s.Target() != t {
		if s != nil {
			s.Release()
		}
		return &RouteError{Op: "present", Target: t, Err: ErrUnmappedTarget}
	}
	if err := r.host.Present(s); err != nil {
		s.Release()
		return &PresentationError{Target: t, Err: err}
	}
	prev := r.active
	r.active = s
	if prev != nil {
		r.logger.Debug("screen replaced", zap.Stringer("from", prev.Target()), zap.Stringer("to", t))
	} else {
		r.logger.Debug("screen presented", zap.Stringer("target", t))
	}
	return nil
}

// Active returns the currently presented screen, or nil before Initialize.
func (r *Router) Active() Screen {
	return r.active
}

// ActiveTarget returns the target of the active screen.
func (r *Router) ActiveTarget() (Target, bool) {
	if r.active == nil {
		return 0, false
	}
	return r.active.Target(), true
}

// Close forgets the active screen when the shell is torn down.
// The host owns release of attached screens and is closed separately.
func (r *Router) Close() {
	r.active = nil
	r.generation++
}

func failSpan(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
