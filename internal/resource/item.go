// internal/resource/item.go
package resource

import (
	"fmt"
	"net/http"
	"strconv"

	"ledgerbase/internal/api/router"
	"ledgerbase/internal/repository"
	"ledgerbase/internal/util"
)

// ItemResource serves one entity addressed by its key. Update (POST) and delete are
// reserved: they are allowed methods that answer 501, not 405.
type ItemResource struct {
	name    string
	dao     repository.DAO
	store   Store
	methods methodTable
}

func NewItemResource(name string, dao repository.DAO, store Store) *ItemResource {
	res := &ItemResource{name: name, dao: dao, store: store}
	res.methods = methodTable{
		{http.MethodGet, res.get},
		{http.MethodPost, res.update},
		{http.MethodDelete, res.delete},
	}
	return res
}

func (res *ItemResource) Handle(r *http.Request, params router.Params) (router.Response, error) {
	return res.methods.dispatch(r, params)
}

func (res *ItemResource) get(r *http.Request, params router.Params) (router.Response, error) {
	keys, err := res.keys(params)
	if err != nil {
		return router.Response{}, err
	}
	entity, err := res.dao.Get(r.Context(), res.store.Executor, keys...)
	if err != nil {
		return router.Response{}, err
	}
	return router.Response{Status: http.StatusOK, Body: entity.DataDict()}, nil
}

func (res *ItemResource) update(*http.Request, router.Params) (router.Response, error) {
	return router.Response{}, fmt.Errorf("update %s: %w", res.name, util.ErrNotImplemented)
}

func (res *ItemResource) delete(*http.Request, router.Params) (router.Response, error) {
	return router.Response{}, fmt.Errorf("delete %s: %w", res.name, util.ErrNotImplemented)
}

// keys reads the key segments in KeyNames order: by name when the route has named groups,
// else positionally.
func (res *ItemResource) keys(params router.Params) ([]int64, error) {
	names := res.dao.KeyNames()

	raw := params.Positional
	if params.Named != nil {
		raw = make([]string, 0, len(names))
		for _, name := range names {
			v, ok := params.Get(name)
			if !ok {
				return nil, util.InvalidInput("missing key %s", name)
			}
			raw = append(raw, v)
		}
	}
	if len(raw) != len(names) {
		return nil, util.InvalidInput("%s expects %d key(s), got %d", res.name, len(names), len(raw))
	}

	keys := make([]int64, len(raw))
	for i, s := range raw {
		k, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, util.InvalidInput("malformed key %q for %s", s, names[i])
		}
		keys[i] = k
	}
	return keys, nil
}
