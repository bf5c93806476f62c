// internal/resource/list.go
package resource

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"ledgerbase/internal/api/router"
	"ledgerbase/internal/repository"
	"ledgerbase/internal/util"
)

const maxBodyBytes = 1 << 20

// ListResource serves a collection: GET lists every entity, POST creates one.
type ListResource struct {
	name    string
	dao     repository.DAO
	store   Store
	methods methodTable
}

func NewListResource(name string, dao repository.DAO, store Store) *ListResource {
	res := &ListResource{name: name, dao: dao, store: store}
	res.methods = methodTable{
		{http.MethodGet, res.list},
		{http.MethodPost, res.create},
	}
	return res
}

func (res *ListResource) Handle(r *http.Request, params router.Params) (router.Response, error) {
	return res.methods.dispatch(r, params)
}

func (res *ListResource) list(r *http.Request, _ router.Params) (router.Response, error) {
	entities, err := res.dao.Filter(r.Context(), res.store.Executor)
	if err != nil {
		return router.Response{}, err
	}
	body := make([]map[string]any, len(entities))
	for i, e := range entities {
		body[i] = e.DataDict()
	}
	return router.Response{Status: http.StatusOK, Body: body}, nil
}

func (res *ListResource) create(r *http.Request, _ router.Params) (router.Response, error) {
	fields, err := decodeFields(http.MaxBytesReader(nil, r.Body, maxBodyBytes))
	if err != nil {
		return router.Response{}, err
	}

	entity, err := res.dao.Build(fields)
	if err != nil {
		return router.Response{}, err
	}

	ctx := r.Context()
	err = res.store.InTx(ctx, func(q repository.DBExecutor) error {
		_, err := res.dao.Insert(ctx, q, entity)
		return err
	})
	if err != nil {
		return router.Response{}, err
	}

	util.LoggerFromContext(ctx).Info("Created entity", "resource", res.name)
	return router.Response{Status: http.StatusCreated}, nil
}

// decodeFields reads exactly one JSON object, keeping numbers as json.Number.
func decodeFields(body io.Reader) (repository.Fields, error) {
	dec := json.NewDecoder(body)
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, util.InvalidInput("request body is empty")
		}
		return nil, util.InvalidInput("malformed JSON body: %v", err)
	}
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, util.InvalidInput("request body must be a JSON object")
	}
	if dec.More() {
		return nil, util.InvalidInput("request body must contain a single JSON object")
	}
	return repository.Fields(obj), nil
}
