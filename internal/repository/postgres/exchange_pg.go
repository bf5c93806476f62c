// internal/repository/postgres/exchange_pg.go
package postgres

import (
	"github.com/go-playground/validator/v10"

	"ledgerbase/internal/domain"
	"ledgerbase/internal/schema"
)

// ExchangeDAO implements repository.DAO for exchanges. The kind is inferred from the
// references when the request omits it.
type ExchangeDAO struct {
	tableDAO[domain.Exchange, *domain.Exchange]
}

func NewExchangeDAO(v *validator.Validate, p domain.Precision) *ExchangeDAO {
	return &ExchangeDAO{newTableDAO(schema.TableExchange, domain.NewExchange, v, p)}
}

type ExchangeRateDAO struct {
	tableDAO[domain.ExchangeRate, *domain.ExchangeRate]
}

func NewExchangeRateDAO(v *validator.Validate, p domain.Precision) *ExchangeRateDAO {
	return &ExchangeRateDAO{newTableDAO(schema.TableExchangeRate, domain.NewExchangeRate, v, p)}
}

type ExchangeExchangeRateDAO struct {
	tableDAO[domain.ExchangeExchangeRate, *domain.ExchangeExchangeRate]
}

func NewExchangeExchangeRateDAO(v *validator.Validate, p domain.Precision) *ExchangeExchangeRateDAO {
	return &ExchangeExchangeRateDAO{newTableDAO(schema.TableExchangeExchangeRate, domain.NewExchangeExchangeRate, v, p)}
}

// ExchangeRateValueDAO only ever inserts. The value in force at a time is resolved from the
// history with domain.CurrentValue.
type ExchangeRateValueDAO struct {
	tableDAO[domain.ExchangeRateValue, *domain.ExchangeRateValue]
}

func NewExchangeRateValueDAO(v *validator.Validate, p domain.Precision) *ExchangeRateValueDAO {
	return &ExchangeRateValueDAO{newTableDAO(schema.TableExchangeRateValue, domain.NewExchangeRateValue, v, p)}
}
