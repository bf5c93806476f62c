// internal/repository/postgres/account_pg.go
package postgres

import (
	"github.com/go-playground/validator/v10"

	"ledgerbase/internal/domain"
	"ledgerbase/internal/schema"
)

// RelationshipDAO implements repository.DAO for relationships. A relationship has no
// client-supplied columns, so Create inserts default values.
type RelationshipDAO struct {
	tableDAO[domain.Relationship, *domain.Relationship]
}

func NewRelationshipDAO(v *validator.Validate, p domain.Precision) *RelationshipDAO {
	return &RelationshipDAO{newTableDAO(schema.TableRelationship, domain.NewRelationship, v, p)}
}

type AccountDAO struct {
	tableDAO[domain.Account, *domain.Account]
}

func NewAccountDAO(v *validator.Validate, p domain.Precision) *AccountDAO {
	return &AccountDAO{newTableDAO(schema.TableAccount, domain.NewAccount, v, p)}
}

// AccountAddressDAO is keyed by (account_id, address_id).
type AccountAddressDAO struct {
	tableDAO[domain.AccountAddress, *domain.AccountAddress]
}

func NewAccountAddressDAO(v *validator.Validate, p domain.Precision) *AccountAddressDAO {
	return &AccountAddressDAO{newTableDAO(schema.TableAccountAddresses, domain.NewAccountAddress, v, p)}
}

// AccountLimitsDAO only ever inserts; a change of limits is a new version.
type AccountLimitsDAO struct {
	tableDAO[domain.AccountLimits, *domain.AccountLimits]
}

func NewAccountLimitsDAO(v *validator.Validate, p domain.Precision) *AccountLimitsDAO {
	return &AccountLimitsDAO{newTableDAO(schema.TableAccountLimits, domain.NewAccountLimits, v, p)}
}

type AccountRequestDAO struct {
	tableDAO[domain.AccountRequest, *domain.AccountRequest]
}

func NewAccountRequestDAO(v *validator.Validate, p domain.Precision) *AccountRequestDAO {
	return &AccountRequestDAO{newTableDAO(schema.TableAccountRequest, domain.NewAccountRequest, v, p)}
}
