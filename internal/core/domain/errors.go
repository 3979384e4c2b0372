package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument marks an unrecognized enumeration code. It is raised
	// before any outbound call.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrPlacesAPI marks a failed vendor call.
	ErrPlacesAPI = errors.New("places api error")

	// ErrNotAttached is returned by channel handlers used after Detach.
	ErrNotAttached = errors.New("plugin not attached")
)

// InvalidArgumentf returns an error wrapping ErrInvalidArgument.
func InvalidArgumentf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}

// PlacesError carries the vendor status and message of a failed call.
type PlacesError struct {
	Status  string // vendor status, e.g. REQUEST_DENIED, or HTTP_<code>
	Message string
}

func (e *PlacesError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("places api: %s", e.Status)
	}
	return fmt.Sprintf("places api: %s: %s", e.Status, e.Message)
}

func (e *PlacesError) Unwrap() error { return ErrPlacesAPI }
