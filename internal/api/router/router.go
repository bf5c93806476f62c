// internal/api/router/router.go
package router

import (
	"fmt"
	"net/http"

	"ledgerbase/internal/util"
)

// Response is the outcome of a handled request. A nil Body means no response body.
type Response struct {
	Status int
	Body   any
}

// Handler serves a request routed to it along with the captured path parameters.
type Handler interface {
	Handle(r *http.Request, params Params) (Response, error)
}

// HandlerFunc adapts a function to Handler.
type HandlerFunc func(r *http.Request, params Params) (Response, error)

func (f HandlerFunc) Handle(r *http.Request, params Params) (Response, error) {
	return f(r, params)
}

// RouteNotFoundError is returned when no route matches a path.
type RouteNotFoundError struct {
	Path string
}

func (e *RouteNotFoundError) Error() string {
	return fmt.Sprintf("no route matches %s", e.Path)
}

func (e *RouteNotFoundError) Is(target error) bool {
	return target == util.ErrNotFound
}

type route struct {
	pattern *Pattern
	handler Handler
}

// Router dispatches on the request path to the first route, in registration order,
// whose pattern matches.
type Router struct {
	routes []route
}

func New() *Router {
	return &Router{}
}

// Handle registers h for paths matching expr. It panics if expr does not compile.
func (rt *Router) Handle(expr string, h Handler) {
	rt.routes = append(rt.routes, route{pattern: MustCompile(expr), handler: h})
}

// Match finds the handler for path.
func (rt *Router) Match(path string) (Handler, Params, error) {
	for _, r := range rt.routes {
		if params, ok := r.pattern.Match(path); ok {
			return r.handler, params, nil
		}
	}
	return nil, Params{}, &RouteNotFoundError{Path: path}
}

// Dispatch routes r and calls the matched handler.
func (rt *Router) Dispatch(r *http.Request) (Response, error) {
	h, params, err := rt.Match(r.URL.Path)
	if err != nil {
		return Response{}, err
	}
	return h.Handle(r, params)
}
