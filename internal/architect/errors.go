package architect

import (
	"errors"
	"fmt"
)

// Kind classifies a failed HandleMessage call for the transport layer.
type Kind string

const (
	// KindInvalidRequest is bad caller input; retrying unchanged will not help.
	KindInvalidRequest Kind = "invalid_request"
	// KindModelUnavailable is a transport/timeout failure of the generation
	// service; safe to retry with backoff at the caller's discretion.
	KindModelUnavailable Kind = "model_unavailable"
	// KindStorageUnavailable means the thread store could not be reached;
	// the whole operation is safe to retry.
	KindStorageUnavailable Kind = "storage_unavailable"
	// KindInternal is any other failure.
	KindInternal Kind = "internal"
)

// Error wraps a component-local failure with the offending component name.
type Error struct {
	Component string
	Kind      Kind
	Err       error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Component, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func wrapErr(component string, kind Kind, err error) error {
	return &Error{Component: component, Kind: kind, Err: err}
}

// KindOf extracts the failure kind; unknown errors are internal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}
