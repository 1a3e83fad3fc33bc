package admin

import (
	"errors"
	"fmt"
)

var (
	// ErrRemoteUnavailable indicates the store could not be reached or failed the ping.
	ErrRemoteUnavailable = errors.New("remote store unavailable")
	// ErrRemoteRejected indicates the store answered a request with a non-success status.
	ErrRemoteRejected = errors.New("remote store rejected request")
)

// StatusError records a non-success response from the store.
type StatusError struct {
	Op     string
	Status int
	Body   string
	Err    error
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: status %d: %s", e.Op, e.Status, e.Body)
}

func (e *StatusError) Unwrap() error {
	return e.Err
}
