// internal/repository/postgres/client_pg.go
package postgres

import (
	"github.com/go-playground/validator/v10"

	"ledgerbase/internal/domain"
	"ledgerbase/internal/schema"
)

// ClientDAO implements repository.DAO for clients.
type ClientDAO struct {
	tableDAO[domain.Client, *domain.Client]
}

func NewClientDAO(v *validator.Validate, p domain.Precision) *ClientDAO {
	return &ClientDAO{newTableDAO(schema.TableClient, domain.NewClient, v, p)}
}

// UnitDAO implements repository.DAO for units of account.
type UnitDAO struct {
	tableDAO[domain.Unit, *domain.Unit]
}

func NewUnitDAO(v *validator.Validate, p domain.Precision) *UnitDAO {
	return &UnitDAO{newTableDAO(schema.TableUnit, domain.NewUnit, v, p)}
}

// AddressDAO implements repository.DAO for client addresses.
type AddressDAO struct {
	tableDAO[domain.Address, *domain.Address]
}

func NewAddressDAO(v *validator.Validate, p domain.Precision) *AddressDAO {
	return &AddressDAO{newTableDAO(schema.TableAddress, domain.NewAddress, v, p)}
}
