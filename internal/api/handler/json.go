// internal/api/handler/json.go
package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"ledgerbase/internal/api/router"
	"ledgerbase/internal/api/types"
	"ledgerbase/internal/util"
)

// ContentType is set on every response.
const ContentType = "application/json; charset=utf-8"

// Dispatcher resolves and runs the handler for a request. *router.Router implements it.
type Dispatcher interface {
	Dispatch(r *http.Request) (router.Response, error)
}

// JSONResource is the HTTP boundary: it encodes handler results as JSON and maps errors
// to status codes.
type JSONResource struct {
	dispatcher Dispatcher
}

func NewJSONResource(d Dispatcher) *JSONResource {
	return &JSONResource{dispatcher: d}
}

func (h *JSONResource) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	resp, err := h.dispatcher.Dispatch(r)
	if err != nil {
		h.respondWithError(w, r, err)
		return
	}
	h.respondWithJSON(w, r, resp.Status, resp.Body)
}

// Helper function to send JSON responses. A nil payload sends only the status.
func (h *JSONResource) respondWithJSON(w http.ResponseWriter, r *http.Request, code int, payload any) {
	w.Header().Set("Content-Type", ContentType)
	if payload == nil {
		w.WriteHeader(code)
		return
	}
	response, err := json.Marshal(payload)
	if err != nil {
		util.LoggerFromContext(r.Context()).Error("Failed to marshal JSON response", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.WriteHeader(code)
	_, _ = w.Write(response)
}

// Helper function to send error responses.
func (h *JSONResource) respondWithError(w http.ResponseWriter, r *http.Request, err error) {
	statusCode := http.StatusInternalServerError
	body := types.ErrorResponse{Error: "Internal server error"}

	var notAllowed *util.MethodNotAllowedError
	var constraint *util.ConstraintError

	switch {
	case errors.As(err, &notAllowed):
		statusCode = http.StatusMethodNotAllowed
		body.Error = err.Error()
		body.Allowed = notAllowed.Allowed
		w.Header().Set("Allow", strings.Join(notAllowed.Allowed, ", "))
	case util.IsError(err, util.ErrNotFound):
		statusCode = http.StatusNotFound
		body.Error = err.Error()
	case util.IsError(err, util.ErrInvalidInput):
		statusCode = http.StatusBadRequest
		body.Error = err.Error()
	case errors.As(err, &constraint):
		statusCode = http.StatusUnprocessableEntity
		if constraint.Kind == util.ConstraintUnique {
			statusCode = http.StatusConflict
		}
		body.Error = err.Error()
		body.Constraint = constraint.Constraint
	case util.IsError(err, util.ErrNotImplemented):
		statusCode = http.StatusNotImplemented
		body.Error = err.Error()
	default:
		util.LoggerFromContext(r.Context()).Error("Unhandled error", "error", err, "path", r.URL.Path)
	}

	h.respondWithJSON(w, r, statusCode, body)
}
