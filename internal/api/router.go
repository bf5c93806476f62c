// internal/api/router.go
package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"ledgerbase/internal/api/handler"
	"ledgerbase/internal/api/router"
	"ledgerbase/internal/api/types"
	"ledgerbase/internal/repository"
	"ledgerbase/internal/repository/postgres"
	"ledgerbase/internal/resource"
	"ledgerbase/internal/util"
)

// Collection exposes one DAO under /<Path>.
type Collection struct {
	Path string
	DAO  repository.DAO
}

// Collections returns the public collections in the order they are routed.
func Collections(d *postgres.DAOs) []Collection {
	return []Collection{
		{"clients", d.Clients},
		{"units", d.Units},
		{"addresses", d.Addresses},
		{"relationships", d.Relationships},
		{"accounts", d.Accounts},
		{"account_addresses", d.AccountAddresses},
		{"account_limits", d.AccountLimits},
		{"account_requests", d.AccountRequests},
		{"exchanges", d.Exchanges},
		{"exchange_rates", d.ExchangeRates},
		{"exchange_exchange_rates", d.ExchangeExchangeRates},
		{"exchange_rate_values", d.ExchangeRateValues},
	}
}

// ItemPattern matches /<path>/<key>. A single key is captured as the named group of the
// key column; composite keys are captured positionally, one segment per column.
func ItemPattern(path string, keyNames []string) string {
	base := "^/" + regexp.QuoteMeta(path)
	if len(keyNames) == 1 {
		return fmt.Sprintf(`%s/(?P<%s>[^/]+)/?$`, base, keyNames[0])
	}
	return base + strings.Repeat(`/([^/]+)`, len(keyNames)) + `/?$`
}

// ListPattern matches /<path>.
func ListPattern(path string) string {
	return "^/" + regexp.QuoteMeta(path) + "/?$"
}

// NewRouter builds the route table and wraps it in the middleware chain.
func NewRouter(collections []Collection, store resource.Store, timeout time.Duration, logger *slog.Logger) http.Handler {
	rt := router.New()
	rt.Handle(`^/health/?$`, router.HandlerFunc(health))

	for _, c := range collections {
		rt.Handle(ItemPattern(c.Path, c.DAO.KeyNames()), resource.NewItemResource(c.Path, c.DAO, store))
		rt.Handle(ListPattern(c.Path), resource.NewListResource(c.Path, c.DAO, store))
	}

	return chi.Chain(
		middleware.RealIP,
		RequestLogger(logger),
		middleware.Recoverer,
		middleware.Timeout(timeout),
	).Handler(handler.NewJSONResource(rt))
}

func health(r *http.Request, _ router.Params) (router.Response, error) {
	if r.Method != http.MethodGet {
		return router.Response{}, &util.MethodNotAllowedError{Method: r.Method, Allowed: []string{http.MethodGet}}
	}
	return router.Response{Status: http.StatusOK, Body: types.HealthResponse{Status: "ok"}}, nil
}
