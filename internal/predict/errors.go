package predict

import (
	"errors"
	"fmt"
)

// TransportError means the call never produced an HTTP response that could be
// used: validation, DNS, connect, timeout or an undecodable body.
type TransportError struct{ Err error }

func (e TransportError) Error() string { return e.Err.Error() }

func (e TransportError) Unwrap() error { return e.Err }

// StatusError means the inference service answered outside [200,300).
type StatusError struct {
	Code int
	Body string
}

func (e StatusError) Error() string { return fmt.Sprintf("%d: %s", e.Code, e.Body) }

// StatusCode lets the HTTP layer surface the upstream status.
func (e StatusError) StatusCode() int { return e.Code }

// IsTransport reports whether err is a transport-tier failure.
func IsTransport(err error) bool {
	var te TransportError
	return errors.As(err, &te)
}

// IsStatus reports whether err is an application-tier (HTTP status) failure.
func IsStatus(err error) bool {
	var se StatusError
	return errors.As(err, &se)
}
