package nav

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

// Ticket reserves the right to present a screen that is still being constructed.
// Only the most recently issued ticket may present; any later Reserve or Select
// makes older tickets stale.
type Ticket struct {
	Target     Target
	generation uint64
}

// Reserve validates the mapping for t and returns a ticket for an async construction.
// The active screen stays on display until Fulfill.
func (r *Router) Reserve(t Target) (Ticket, error) {
	if _, ok := r.table.Lookup(t); !ok {
		return Ticket{}, &RouteError{Op: "reserve", Target: t, Err: ErrUnmappedTarget}
	}
	r.generation++
	return Ticket{Target: t, generation: r.generation}, nil
}

// Current reports whether tk is still the newest reservation.
func (r *Router) Current(tk Ticket) bool {
	return tk.generation != 0 && tk.generation == r.generation
}

// Fulfill presents s for a ticket obtained from Reserve.
// A stale ticket releases s and returns ErrStaleTicket without touching the active screen.
func (r *Router) Fulfill(tk Ticket, s Screen) error {
	_, span := r.tracer.Start(context.Background(), "nav.fulfill",
		trace.WithAttributes(attribute.String("nav.target", tk.Target.String())))
	defer span.End()

	if !r.Current(tk) {
		if s != nil {
			s.Release()
		}
		r.logger.Debug("dropping stale screen", zap.Stringer("target", tk.Target))
		err := &RouteError{Op: "fulfill", Target: tk.Target, Err: ErrStaleTicket}
		failSpan(span, err)
		return err
	}
	if err := r.present(tk.Target, s); err != nil {
		failSpan(span, err)
		return err
	}
	r.initialized = true
	return nil
}
