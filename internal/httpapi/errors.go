package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"petra/internal/predict"
	"petra/pkg/types"
)

// HTTPError allows errors to carry the HTTP status they should map to.
type HTTPError interface {
	error
	StatusCode() int
}

// requestError is a client-side problem with the incoming request.
type requestError struct {
	code int
	msg  string
}

func (e requestError) Error() string   { return e.msg }
func (e requestError) StatusCode() int { return e.code }

func badRequest(msg string) error { return requestError{code: http.StatusBadRequest, msg: msg} }

// statusFor maps a prediction result to the status of /api/predict.
// Upstream failures are gateway errors; the dashboard itself stays healthy.
func statusFor(res predict.Result) int {
	if res.OK {
		return http.StatusOK
	}
	if errors.Is(res.Err(), context.DeadlineExceeded) {
		return http.StatusGatewayTimeout
	}
	return http.StatusBadGateway
}

// writeJSON encodes v with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeJSONError writes a consistent JSON error payload.
func writeJSONError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, types.ErrorResponse{Error: msg, Code: status})
}

// writeErr maps err through HTTPError, defaulting to 500.
func writeErr(w http.ResponseWriter, err error) {
	var he HTTPError
	if errors.As(err, &he) {
		writeJSONError(w, he.StatusCode(), he.Error())
		return
	}
	writeJSONError(w, http.StatusInternalServerError, err.Error())
}
