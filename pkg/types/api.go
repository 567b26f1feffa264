package types

// PredictURLRequest is the JSON body accepted by POST /api/predict and
// forwarded unchanged to the inference service.
type PredictURLRequest struct {
	// Public image URL the inference service should fetch.
	// example: https://example.com/satellite.jpg
	URL string `json:"url" example:"https://example.com/satellite.jpg"`
}

// PredictResponse wraps a normalized prediction result.
type PredictResponse struct {
	// True when the inference service answered 2xx with a JSON body.
	// example: true
	OK bool `json:"ok" example:"true"`
	// Decoded response body of the inference service (success only).
	Payload any `json:"payload,omitempty"`
	// Human-readable failure description (failure only).
	// example: 500: internal error
	Error string `json:"error,omitempty" example:"500: internal error"`
	// Failure tier: transport or status.
	// example: status
	Kind string `json:"kind,omitempty" example:"status"`
	// Upstream HTTP status for status failures.
	// example: 500
	StatusCode int `json:"status_code,omitempty" example:"500"`
	// Inference endpoint the request was sent to.
	// example: http://127.0.0.1:8000
	Endpoint string `json:"endpoint" example:"http://127.0.0.1:8000"`
}

// PointsResponse is returned by GET /api/points.
type PointsResponse struct {
	Points []DemoPoint `json:"points"`
	View   ViewState   `json:"view"`
}

// ErrorResponse is a consistent JSON error payload.
type ErrorResponse struct {
	// Error message.
	// example: invalid JSON body
	Error string `json:"error" example:"invalid JSON body"`
	// HTTP status code.
	// example: 400
	Code int `json:"code" example:"400"`
}
