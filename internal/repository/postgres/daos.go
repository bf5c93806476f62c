// internal/repository/postgres/daos.go
package postgres

import (
	"github.com/go-playground/validator/v10"

	"ledgerbase/internal/domain"
	"ledgerbase/internal/repository"
	"ledgerbase/internal/schema"
)

// DAOs holds one DAO per ledger table.
type DAOs struct {
	Clients               *ClientDAO
	Units                 *UnitDAO
	Addresses             *AddressDAO
	Relationships         *RelationshipDAO
	Accounts              *AccountDAO
	AccountAddresses      *AccountAddressDAO
	AccountLimits         *AccountLimitsDAO
	AccountRequests       *AccountRequestDAO
	Exchanges             *ExchangeDAO
	ExchangeRates         *ExchangeRateDAO
	ExchangeExchangeRates *ExchangeExchangeRateDAO
	ExchangeRateValues    *ExchangeRateValueDAO
}

// NewDAOs builds every DAO with a shared validator and decimal precision.
func NewDAOs(v *validator.Validate, p domain.Precision) *DAOs {
	return &DAOs{
		Clients:               NewClientDAO(v, p),
		Units:                 NewUnitDAO(v, p),
		Addresses:             NewAddressDAO(v, p),
		Relationships:         NewRelationshipDAO(v, p),
		Accounts:              NewAccountDAO(v, p),
		AccountAddresses:      NewAccountAddressDAO(v, p),
		AccountLimits:         NewAccountLimitsDAO(v, p),
		AccountRequests:       NewAccountRequestDAO(v, p),
		Exchanges:             NewExchangeDAO(v, p),
		ExchangeRates:         NewExchangeRateDAO(v, p),
		ExchangeExchangeRates: NewExchangeExchangeRateDAO(v, p),
		ExchangeRateValues:    NewExchangeRateValueDAO(v, p),
	}
}

// ByTable returns the DAOs keyed by table name.
func (d *DAOs) ByTable() map[string]repository.DAO {
	return map[string]repository.DAO{
		schema.TableClient:               d.Clients,
		schema.TableUnit:                 d.Units,
		schema.TableAddress:              d.Addresses,
		schema.TableRelationship:         d.Relationships,
		schema.TableAccount:              d.Accounts,
		schema.TableAccountAddresses:     d.AccountAddresses,
		schema.TableAccountLimits:        d.AccountLimits,
		schema.TableAccountRequest:       d.AccountRequests,
		schema.TableExchange:             d.Exchanges,
		schema.TableExchangeRate:         d.ExchangeRates,
		schema.TableExchangeExchangeRate: d.ExchangeExchangeRates,
		schema.TableExchangeRateValue:    d.ExchangeRateValues,
	}
}
