// internal/domain/exchange.go
package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeKind discriminates the three shapes an exchange can take.
type ExchangeKind string

const (
	ExchangeAccountToAccount ExchangeKind = "account_to_account"
	ExchangeUnitToAccount    ExchangeKind = "unit_to_account" // cash-in: a unit pays into the target account
	ExchangeAccountToUnit    ExchangeKind = "account_to_unit" // cash-out: the source account pays out in a unit
)

// ExchangeKinds lists every valid kind.
var ExchangeKinds = []ExchangeKind{ExchangeAccountToAccount, ExchangeUnitToAccount, ExchangeAccountToUnit}

// Exchange is a transfer definition between two accounts, or between an account and a unit.
// Which of SourceAccountID, TargetAccountID and UnitID are set is fixed by Kind.
type Exchange struct {
	ID              int64        `db:"id" json:"id"`
	Kind            ExchangeKind `db:"kind" json:"kind" validate:"omitempty,oneof=account_to_account unit_to_account account_to_unit"`
	IsActive        bool         `db:"is_active" json:"is_active"`
	EffectiveTime   time.Time    `db:"effective_time" json:"effective_time"`
	SourceAccountID *int64       `db:"source_account_id" json:"source_account_id" validate:"omitempty,gt=0"`
	TargetAccountID *int64       `db:"target_account_id" json:"target_account_id" validate:"omitempty,gt=0"`
	UnitID          *int64       `db:"unit_id" json:"unit_id" validate:"omitempty,gt=0"`
}

func NewExchange() *Exchange {
	return &Exchange{IsActive: true, EffectiveTime: now()}
}

// InferKind derives the kind from which references are present. It returns "" when the
// references match no shape.
func (e *Exchange) InferKind() ExchangeKind {
	src, dst, unit := e.SourceAccountID != nil, e.TargetAccountID != nil, e.UnitID != nil
	switch {
	case src && dst && !unit:
		return ExchangeAccountToAccount
	case !src && dst && unit:
		return ExchangeUnitToAccount
	case src && !dst && unit:
		return ExchangeAccountToUnit
	}
	return ""
}

// Prepare fills in Kind when the client left it out. A mismatch between an explicit kind and
// the references is reported by validation.
func (e *Exchange) Prepare(Precision) error {
	if e.Kind == "" {
		e.Kind = e.InferKind()
	}
	return nil
}

func (e *Exchange) DataDict() map[string]any {
	return map[string]any{
		"id":                e.ID,
		"kind":              string(e.Kind),
		"is_active":         e.IsActive,
		"effective_time":    e.EffectiveTime,
		"source_account_id": int64OrNil(e.SourceAccountID),
		"target_account_id": int64OrNil(e.TargetAccountID),
		"unit_id":           int64OrNil(e.UnitID),
	}
}

// ExchangeRate is a client-scoped named rate, e.g. "USDCAD", shared by many exchanges.
type ExchangeRate struct {
	ID       int64  `db:"id" json:"id"`
	Name     string `db:"name" json:"name" validate:"required,max=256"` // Unique per client
	ClientID int64  `db:"client_id" json:"client_id" validate:"gt=0"`
}

func NewExchangeRate() *ExchangeRate {
	return &ExchangeRate{}
}

func (r *ExchangeRate) DataDict() map[string]any {
	return map[string]any{
		"id":        r.ID,
		"name":      r.Name,
		"client_id": r.ClientID,
	}
}

// ExchangeExchangeRate records which named rate an exchange uses from EffectiveTime on.
type ExchangeExchangeRate struct {
	ID            int64     `db:"id" json:"id"`
	ExchangeID    int64     `db:"exchange_id" json:"exchange_id" validate:"gt=0"`
	RateID        int64     `db:"rate_id" json:"rate_id" validate:"gt=0"`
	IsActive      bool      `db:"is_active" json:"is_active"`
	EffectiveTime time.Time `db:"effective_time" json:"effective_time"`
}

func NewExchangeExchangeRate() *ExchangeExchangeRate {
	return &ExchangeExchangeRate{IsActive: true, EffectiveTime: now()}
}

func (a *ExchangeExchangeRate) DataDict() map[string]any {
	return map[string]any{
		"id":             a.ID,
		"exchange_id":    a.ExchangeID,
		"rate_id":        a.RateID,
		"is_active":      a.IsActive,
		"effective_time": a.EffectiveTime,
	}
}

func (a *ExchangeExchangeRate) Window() Window {
	return Window{Active: a.IsActive, Effective: a.EffectiveTime}
}

// ExchangeRateValue is one value of a named rate. New values are new rows.
type ExchangeRateValue struct {
	ID            int64           `db:"id" json:"id"`
	RateID        int64           `db:"rate_id" json:"rate_id" validate:"gt=0"`
	IsActive      bool            `db:"is_active" json:"is_active"`
	EffectiveTime time.Time       `db:"effective_time" json:"effective_time"`
	ExpiryTime    *time.Time      `db:"expiry_time" json:"expiry_time"`
	Value         decimal.Decimal `db:"value" json:"value"`
}

func NewExchangeRateValue() *ExchangeRateValue {
	return &ExchangeRateValue{IsActive: true, EffectiveTime: now()}
}

func (v *ExchangeRateValue) Prepare(p Precision) error {
	value, err := p.Fit("value", v.Value)
	if err != nil {
		return err
	}
	v.Value = value
	return nil
}

func (v *ExchangeRateValue) DataDict() map[string]any {
	return map[string]any{
		"id":             v.ID,
		"rate_id":        v.RateID,
		"is_active":      v.IsActive,
		"effective_time": v.EffectiveTime,
		"expiry_time":    timeOrNil(v.ExpiryTime),
		"value":          v.Value,
	}
}

func (v *ExchangeRateValue) Window() Window {
	return Window{Active: v.IsActive, Effective: v.EffectiveTime, Expiry: v.ExpiryTime}
}
