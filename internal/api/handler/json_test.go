package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"ledgerbase/internal/api/router"
	"ledgerbase/internal/util"
)

type stubDispatcher struct {
	resp router.Response
	err  error
}

func (s stubDispatcher) Dispatch(*http.Request) (router.Response, error) {
	return s.resp, s.err
}

func serve(d Dispatcher, method string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	NewJSONResource(d).ServeHTTP(rec, httptest.NewRequest(method, "/units", nil))
	return rec
}

func TestJSONResourceEncodesBody(t *testing.T) {
	rec := serve(stubDispatcher{resp: router.Response{
		Status: http.StatusOK,
		Body:   []map[string]any{{"id": int64(1), "name": "USD"}},
	}}, http.MethodGet)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, ContentType, rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `[{"id": 1, "name": "USD"}]`, rec.Body.String())
}

func TestJSONResourceNilBody(t *testing.T) {
	rec := serve(stubDispatcher{resp: router.Response{Status: http.StatusCreated}}, http.MethodPost)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, ContentType, rec.Header().Get("Content-Type"))
	assert.Empty(t, rec.Body.String())
}

func TestJSONResourceErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		body   string
	}{
		{
			name:   "route not found",
			err:    &router.RouteNotFoundError{Path: "/ledgers"},
			status: http.StatusNotFound,
			body:   `{"error": "no route matches /ledgers"}`,
		},
		{
			name:   "entity not found",
			err:    &util.NotFoundError{Entity: "unit", Keys: []int64{9}},
			status: http.StatusNotFound,
			body:   `{"error": "unit 9 not found"}`,
		},
		{
			name:   "invalid input",
			err:    util.InvalidInput("malformed key %q for id", "abc"),
			status: http.StatusBadRequest,
			body:   `{"error": "invalid input provided: malformed key \"abc\" for id"}`,
		},
		{
			name:   "duplicate",
			err:    fmt.Errorf("create: %w", &util.ConstraintError{Kind: util.ConstraintUnique, Table: "unit", Constraint: "unit_name_key"}),
			status: http.StatusConflict,
			body:   `{"error": "create: unique constraint \"unit_name_key\" violated on unit", "constraint": "unit_name_key"}`,
		},
		{
			name:   "foreign key",
			err:    &util.ConstraintError{Kind: util.ConstraintForeignKey, Table: "account", Constraint: "account_unit_id_fkey"},
			status: http.StatusUnprocessableEntity,
			body:   `{"error": "foreign_key constraint \"account_unit_id_fkey\" violated on account", "constraint": "account_unit_id_fkey"}`,
		},
		{
			name:   "not implemented",
			err:    fmt.Errorf("delete units: %w", util.ErrNotImplemented),
			status: http.StatusNotImplemented,
			body:   `{"error": "delete units: not implemented"}`,
		},
		{
			name:   "unexpected",
			err:    errors.New("connection refused"),
			status: http.StatusInternalServerError,
			body:   `{"error": "Internal server error"}`,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := serve(stubDispatcher{err: tc.err}, http.MethodGet)
			assert.Equal(t, tc.status, rec.Code)
			assert.Equal(t, ContentType, rec.Header().Get("Content-Type"))
			assert.JSONEq(t, tc.body, rec.Body.String())
			assert.Empty(t, rec.Header().Get("Allow"))
		})
	}
}

func TestJSONResourceMethodNotAllowed(t *testing.T) {
	err := &util.MethodNotAllowedError{Method: http.MethodDelete, Allowed: []string{http.MethodGet, http.MethodPost}}
	rec := serve(stubDispatcher{err: err}, http.MethodDelete)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "GET, POST", rec.Header().Get("Allow"))
	assert.JSONEq(t, `{"error": "method DELETE not allowed, expected one of GET, POST", "allowed": ["GET", "POST"]}`, rec.Body.String())
}

func TestJSONResourceUnencodableBody(t *testing.T) {
	rec := serve(stubDispatcher{resp: router.Response{Status: http.StatusOK, Body: map[string]any{"bad": make(chan int)}}}, http.MethodGet)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
