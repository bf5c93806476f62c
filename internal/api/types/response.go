// internal/api/types/response.go
package types

// ErrorResponse is the body of every error response.
type ErrorResponse struct {
	Error      string   `json:"error"`
	Allowed    []string `json:"allowed,omitempty"`    // set on 405
	Constraint string   `json:"constraint,omitempty"` // set on 409 and 422
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status string `json:"status"`
}
