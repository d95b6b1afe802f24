package moonraker

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned before any network call when a wrapper
	// receives contradictory or insufficient arguments.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotFound is returned when a requested resource is absent from a listing.
	ErrNotFound = errors.New("not found")
)

// HTTPError is returned for any response outside the 2xx range.
type HTTPError struct {
	Method     string
	Path       string
	Body       string
	StatusCode int
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("moonraker %s %s returned status %d", e.Method, e.Path, e.StatusCode)
}
