package predict

import "errors"

// Kind classifies a failed Result.
type Kind string

const (
	KindNone      Kind = ""
	KindTransport Kind = "transport"
	KindStatus    Kind = "status"
)

// Result is exactly one of success (OK with Payload) or failure (Message).
type Result struct {
	OK         bool
	Payload    any
	Message    string
	Kind       Kind
	StatusCode int

	err error
}

// Success wraps a decoded response body. Any JSON value is a valid payload,
// including arrays, scalars and null.
func Success(payload any) Result {
	return Result{OK: true, Payload: payload}
}

// Failure converts err into a failed Result.
func Failure(err error) Result {
	r := Result{Message: err.Error(), Kind: KindTransport, err: err}
	var se StatusError
	if errors.As(err, &se) {
		r.Kind = KindStatus
		r.StatusCode = se.Code
	}
	return r
}

// Err returns the failure as a typed error, or nil on success.
func (r Result) Err() error {
	if r.OK {
		return nil
	}
	if r.err != nil {
		return r.err
	}
	return TransportError{Err: errors.New(r.Message)}
}

// Body is what the dashboard shows: the payload, or {"error": message}.
func (r Result) Body() any {
	if r.OK {
		return r.Payload
	}
	return map[string]any{"error": r.Message}
}
