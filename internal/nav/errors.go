package nav

import (
	"errors"
	"fmt"
)

// Sentinel errors for routing conditions.
var (
	// ErrUnmappedTarget indicates a selection for a target without a screen factory.
	// The active screen is left unchanged.
	ErrUnmappedTarget = errors.New("unmapped navigation target")

	// ErrStaleTicket indicates an async construction finished after a newer selection.
	ErrStaleTicket = errors.New("stale navigation ticket")

	// ErrAlreadyInitialized is returned by a second call to Router.Initialize.
	ErrAlreadyInitialized = errors.New("router already initialized")
)

// RouteError carries the operation and target a routing error happened on.
type RouteError struct {
	Op     string // "initialize", "select", "reserve", "fulfill"
	Target Target
	Err    error
}

func (e *RouteError) Error() string {
	return fmt.Sprintf("nav: %s %s: %v", e.Op, e.Target, e.Err)
}

func (e *RouteError) Unwrap() error {
	return e.Err
}

// PresentationError reports that the host failed to attach a new screen.
type PresentationError struct {
	Target Target
	Err    error
}

func (e *PresentationError) Error() string {
	return fmt.Sprintf("nav: present %s: %v", e.Target, e.Err)
}

func (e *PresentationError) Unwrap() error {
	return e.Err
}

// IsUnmapped reports whether err is an UnmappedTarget condition.
func IsUnmapped(err error) bool {
	return errors.Is(err, ErrUnmappedTarget)
}

// IsPresentationFailure reports whether err came from the host failing to present.
func IsPresentationFailure(err error) bool {
	var pe *PresentationError
	return errors.As(err, &pe)
}
