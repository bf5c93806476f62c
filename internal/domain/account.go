// internal/domain/account.go
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Relationship pairs two parties; by convention it holds exactly two accounts, one per party.
type Relationship struct {
	ID int64 `db:"id" json:"id"`
}

func NewRelationship() *Relationship {
	return &Relationship{}
}

func (r *Relationship) DataDict() map[string]any {
	return map[string]any{"id": r.ID}
}

// Account is one party's side of a relationship, denominated in a single unit.
type Account struct {
	ID             int64           `db:"id" json:"id"`
	RelationshipID int64           `db:"relationship_id" json:"relationship_id" validate:"gt=0"`
	Name           string          `db:"name" json:"name" validate:"required,max=256"` // Unique per client
	ClientID       int64           `db:"client_id" json:"client_id" validate:"gt=0"`
	Owner          *string         `db:"owner" json:"owner" validate:"omitempty,max=256"`
	IsActive       bool            `db:"is_active" json:"is_active"`
	Balance        decimal.Decimal `db:"balance" json:"balance"`
	UnitID         int64           `db:"unit_id" json:"unit_id" validate:"gt=0"`
}

// NewAccount creates an active Account.
func NewAccount() *Account {
	return &Account{IsActive: true}
}

func (a *Account) Prepare(p Precision) error {
	balance, err := p.Fit("balance", a.Balance)
	if err != nil {
		return err
	}
	a.Balance = balance
	return nil
}

func (a *Account) DataDict() map[string]any {
	return map[string]any{
		"id":              a.ID,
		"relationship_id": a.RelationshipID,
		"name":            a.Name,
		"client_id":       a.ClientID,
		"owner":           stringOrNil(a.Owner),
		"is_active":       a.IsActive,
		"balance":         a.Balance,
		"unit_id":         a.UnitID,
	}
}

// AccountAddress associates an account with an address. Its key is the pair.
type AccountAddress struct {
	AccountID int64 `db:"account_id" json:"account_id" validate:"gt=0"`
	AddressID int64 `db:"address_id" json:"address_id" validate:"gt=0"`
}

func NewAccountAddress() *AccountAddress {
	return &AccountAddress{}
}

func (a *AccountAddress) DataDict() map[string]any {
	return map[string]any{
		"account_id": a.AccountID,
		"address_id": a.AddressID,
	}
}

// AccountLimits is one version of the credit limits on an account.
// A change of limits is a new row; earlier rows stay as history.
type AccountLimits struct {
	ID            int64            `db:"id" json:"id"`
	AccountID     int64            `db:"account_id" json:"account_id" validate:"gt=0"`
	IsActive      bool             `db:"is_active" json:"is_active"`
	EffectiveTime time.Time        `db:"effective_time" json:"effective_time"`
	ExpiryTime    *time.Time       `db:"expiry_time" json:"expiry_time"`
	UpperLimit    *decimal.Decimal `db:"upper_limit" json:"upper_limit"`
	LowerLimit    *decimal.Decimal `db:"lower_limit" json:"lower_limit"`
}

// NewAccountLimits creates an active version effective now.
func NewAccountLimits() *AccountLimits {
	return &AccountLimits{IsActive: true, EffectiveTime: now()}
}

func (l *AccountLimits) Prepare(p Precision) error {
	var err error
	if l.UpperLimit, err = p.FitPtr("upper_limit", l.UpperLimit); err != nil {
		return err
	}
	if l.LowerLimit, err = p.FitPtr("lower_limit", l.LowerLimit); err != nil {
		return err
	}
	return nil
}

func (l *AccountLimits) DataDict() map[string]any {
	return map[string]any{
		"id":             l.ID,
		"account_id":     l.AccountID,
		"is_active":      l.IsActive,
		"effective_time": l.EffectiveTime,
		"expiry_time":    timeOrNil(l.ExpiryTime),
		"upper_limit":    decimalOrNil(l.UpperLimit),
		"lower_limit":    decimalOrNil(l.LowerLimit),
	}
}

func (l *AccountLimits) Window() Window {
	return Window{Active: l.IsActive, Effective: l.EffectiveTime, Expiry: l.ExpiryTime}
}

// AccountRequest asks for an account to be opened between two addresses.
type AccountRequest struct {
	ID              int64  `db:"id" json:"id"`
	RelationshipID  int64  `db:"relationship_id" json:"relationship_id" validate:"gt=0"`
	SourceAddressID int64  `db:"source_address_id" json:"source_address_id" validate:"gt=0"`
	DestAddressID   int64  `db:"dest_address_id" json:"dest_address_id" validate:"gt=0"`
	UnitID          int64  `db:"unit_id" json:"unit_id" validate:"gt=0"`
	Note            string `db:"note" json:"note"`
}

func NewAccountRequest() *AccountRequest {
	return &AccountRequest{}
}

func (r *AccountRequest) DataDict() map[string]any {
	return map[string]any{
		"id":                r.ID,
		"relationship_id":   r.RelationshipID,
		"source_address_id": r.SourceAddressID,
		"dest_address_id":   r.DestAddressID,
		"unit_id":           r.UnitID,
		"note":              r.Note,
	}
}
