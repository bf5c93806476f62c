// internal/resource/methods.go
package resource

import (
	"net/http"

	"ledgerbase/internal/api/router"
	"ledgerbase/internal/util"
)

type operation func(r *http.Request, params router.Params) (router.Response, error)

type method struct {
	name string
	op   operation
}

// methodTable maps HTTP methods to operations. Its order is the order reported in Allow.
type methodTable []method

func (t methodTable) allowed() []string {
	names := make([]string, len(t))
	for i, m := range t {
		names[i] = m.name
	}
	return names
}

func (t methodTable) dispatch(r *http.Request, params router.Params) (router.Response, error) {
	for _, m := range t {
		if m.name == r.Method {
			return m.op(r, params)
		}
	}
	return router.Response{}, &util.MethodNotAllowedError{Method: r.Method, Allowed: t.allowed()}
}
