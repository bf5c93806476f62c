package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ledgerbase/internal/util"
)

func TestPatternNamedGroupsWin(t *testing.T) {
	p := MustCompile(`^/accounts/(?P<id>\d+)/(\w+)$`)

	params, ok := p.Match("/accounts/42/limits")
	require.True(t, ok)
	assert.Equal(t, map[string]string{"id": "42"}, params.Named)
	assert.Empty(t, params.Positional)

	id, ok := params.Get("id")
	assert.True(t, ok)
	assert.Equal(t, "42", id)
}

func TestPatternPositional(t *testing.T) {
	p := MustCompile(`^/account_addresses/([^/]+)/([^/]+)/?$`)

	params, ok := p.Match("/account_addresses/3/9/")
	require.True(t, ok)
	assert.Nil(t, params.Named)
	assert.Equal(t, []string{"3", "9"}, params.Positional)

	_, ok = p.Match("/account_addresses/3")
	assert.False(t, ok)
}

func TestPatternSearchesUnanchored(t *testing.T) {
	p := MustCompile(`units`)
	params, ok := p.Match("/api/units/extra")
	require.True(t, ok)
	assert.Empty(t, params.Positional)
}

func TestCompileRejectsInvalidExpression(t *testing.T) {
	_, err := Compile(`^/units/(`)
	assert.Error(t, err)
	assert.Panics(t, func() { MustCompile(`(`) })
}

func named(name string) Handler {
	return HandlerFunc(func(*http.Request, Params) (Response, error) {
		return Response{Status: http.StatusOK, Body: name}, nil
	})
}

func TestRouterFirstMatchWins(t *testing.T) {
	rt := New()
	rt.Handle(`^/units/(?P<id>[^/]+)/?$`, named("item"))
	rt.Handle(`^/units`, named("list"))

	for path, want := range map[string]string{
		"/units":    "list",
		"/units/":   "list",
		"/units/7":  "item",
		"/units/7/": "item",
	} {
		resp, err := rt.Dispatch(httptest.NewRequest(http.MethodGet, path, nil))
		require.NoError(t, err, path)
		assert.Equal(t, want, resp.Body, path)
	}
}

func TestRouterOrderMatters(t *testing.T) {
	rt := New()
	rt.Handle(`^/units`, named("list"))
	rt.Handle(`^/units/(?P<id>[^/]+)/?$`, named("item"))

	resp, err := rt.Dispatch(httptest.NewRequest(http.MethodGet, "/units/7", nil))
	require.NoError(t, err)
	assert.Equal(t, "list", resp.Body)
}

func TestRouterNoMatch(t *testing.T) {
	rt := New()
	rt.Handle(`^/units/?$`, named("list"))

	_, _, err := rt.Match("/ledgers")
	require.Error(t, err)
	assert.True(t, util.IsError(err, util.ErrNotFound))
	assert.EqualError(t, err, "no route matches /ledgers")
}

func TestRouterPassesParams(t *testing.T) {
	rt := New()
	rt.Handle(`^/pairs/([^/]+)/([^/]+)$`, HandlerFunc(func(_ *http.Request, p Params) (Response, error) {
		return Response{Status: http.StatusOK, Body: p.Positional}, nil
	}))

	resp, err := rt.Dispatch(httptest.NewRequest(http.MethodGet, "/pairs/a/b", nil))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, resp.Body)
}
