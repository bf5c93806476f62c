package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ledgerbase/internal/util"
)

func ptr[T any](v T) *T { return &v }

func TestPrecisionFit(t *testing.T) {
	p := Precision{Digits: 6, Scale: 2}

	got, err := p.Fit("balance", decimal.RequireFromString("1234.567"))
	require.NoError(t, err)
	assert.Equal(t, "1234.57", got.String())

	got, err = p.Fit("balance", decimal.RequireFromString("-9999.994"))
	require.NoError(t, err)
	assert.Equal(t, "-9999.99", got.String())

	_, err = p.Fit("balance", decimal.RequireFromString("10000"))
	assert.True(t, util.IsError(err, util.ErrInvalidInput))

	// 9999.996 rounds up past the integer limit.
	_, err = p.Fit("balance", decimal.RequireFromString("9999.996"))
	assert.True(t, util.IsError(err, util.ErrInvalidInput))

	none, err := p.FitPtr("upper_limit", nil)
	require.NoError(t, err)
	assert.Nil(t, none)

	assert.Equal(t, "NUMERIC(6, 2)", p.String())
}

func TestNewVersionedDefaults(t *testing.T) {
	before := time.Now().UTC().Add(-time.Second)

	limits := NewAccountLimits()
	assert.True(t, limits.IsActive)
	assert.True(t, limits.EffectiveTime.After(before))

	value := NewExchangeRateValue()
	assert.True(t, value.IsActive)
	assert.True(t, value.EffectiveTime.After(before))

	assert.True(t, NewAccount().IsActive)
	assert.True(t, NewExchange().IsActive)
	assert.True(t, NewExchangeExchangeRate().IsActive)
}

func TestExchangeKindInference(t *testing.T) {
	tests := []struct {
		name string
		ex   Exchange
		want ExchangeKind
	}{
		{"account to account", Exchange{SourceAccountID: ptr(int64(1)), TargetAccountID: ptr(int64(2))}, ExchangeAccountToAccount},
		{"unit to account", Exchange{TargetAccountID: ptr(int64(2)), UnitID: ptr(int64(3))}, ExchangeUnitToAccount},
		{"account to unit", Exchange{SourceAccountID: ptr(int64(1)), UnitID: ptr(int64(3))}, ExchangeAccountToUnit},
		{"all three", Exchange{SourceAccountID: ptr(int64(1)), TargetAccountID: ptr(int64(2)), UnitID: ptr(int64(3))}, ""},
		{"unit only", Exchange{UnitID: ptr(int64(3))}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.ex.InferKind())
		})
	}
}

func TestValidateExchangeShape(t *testing.T) {
	v := NewValidator()

	ok := NewExchange()
	ok.TargetAccountID, ok.UnitID = ptr(int64(2)), ptr(int64(3))
	require.NoError(t, ok.Prepare(DefaultPrecision))
	assert.Equal(t, ExchangeUnitToAccount, ok.Kind)
	assert.NoError(t, Validate(v, ok))

	mismatch := NewExchange()
	mismatch.Kind = ExchangeAccountToAccount
	mismatch.SourceAccountID, mismatch.UnitID = ptr(int64(1)), ptr(int64(3))
	require.NoError(t, mismatch.Prepare(DefaultPrecision))
	err := Validate(v, mismatch)
	assert.True(t, util.IsError(err, util.ErrInvalidInput))
	assert.Contains(t, err.Error(), "kind failed exchange_shape=account_to_unit")

	noAccount := NewExchange()
	noAccount.UnitID = ptr(int64(3))
	require.NoError(t, noAccount.Prepare(DefaultPrecision))
	err = Validate(v, noAccount)
	assert.True(t, util.IsError(err, util.ErrInvalidInput))
	assert.Contains(t, err.Error(), "account_required")

	badKind := NewExchange()
	badKind.Kind = "sideways"
	badKind.SourceAccountID, badKind.TargetAccountID = ptr(int64(1)), ptr(int64(2))
	assert.Error(t, Validate(v, badKind))
}

func TestValidateFieldRules(t *testing.T) {
	v := NewValidator()

	err := Validate(v, &Client{Name: ""})
	assert.True(t, util.IsError(err, util.ErrInvalidInput))
	assert.Contains(t, err.Error(), "name failed required")

	err = Validate(v, &Address{Address: "r9cZA1", ClientID: 0})
	assert.Contains(t, err.Error(), "client_id failed gt=0")

	assert.NoError(t, Validate(v, &AccountRequest{RelationshipID: 1, SourceAddressID: 2, DestAddressID: 3, UnitID: 4}))
}

func TestValidateLimitsAndRateValueWindows(t *testing.T) {
	v := NewValidator()

	limits := NewAccountLimits()
	limits.AccountID = 1
	limits.UpperLimit = ptr(decimal.NewFromInt(100))
	limits.LowerLimit = ptr(decimal.NewFromInt(-50))
	assert.NoError(t, Validate(v, limits))

	limits.LowerLimit = ptr(decimal.NewFromInt(150))
	err := Validate(v, limits)
	assert.Contains(t, err.Error(), "lower_limit failed ltefield=upper_limit")

	value := NewExchangeRateValue()
	value.RateID = 1
	value.Value = decimal.RequireFromString("1.3275")
	value.ExpiryTime = ptr(value.EffectiveTime.Add(-time.Hour))
	err = Validate(v, value)
	assert.Contains(t, err.Error(), "expiry_time failed gtfield=effective_time")
}

func TestDataDictIsJSONEncodable(t *testing.T) {
	effective := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	value := &ExchangeRateValue{
		ID:            7,
		RateID:        3,
		IsActive:      true,
		EffectiveTime: effective,
		Value:         decimal.RequireFromString("1.25"),
	}

	raw, err := json.Marshal(value.DataDict())
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"id": 7,
		"rate_id": 3,
		"is_active": true,
		"effective_time": "2024-03-01T12:00:00Z",
		"expiry_time": null,
		"value": "1.25"
	}`, string(raw))

	account := &Account{ID: 1, RelationshipID: 2, Name: "alice@bob", ClientID: 3, IsActive: true, Balance: decimal.Zero, UnitID: 4}
	dict := account.DataDict()
	assert.Nil(t, dict["owner"])
	assert.Equal(t, int64(4), dict["unit_id"])
}

func TestEffectiveAt(t *testing.T) {
	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	history := []ExchangeRateValue{
		{ID: 1, RateID: 9, IsActive: true, EffectiveTime: t0, Value: decimal.RequireFromString("1.10")},
		{ID: 2, RateID: 9, IsActive: true, EffectiveTime: t0.Add(48 * time.Hour), Value: decimal.RequireFromString("1.20")},
		{ID: 3, RateID: 9, IsActive: false, EffectiveTime: t0.Add(72 * time.Hour), Value: decimal.RequireFromString("9.99")},
		{ID: 4, RateID: 5, IsActive: true, EffectiveTime: t0, Value: decimal.RequireFromString("0.50")},
	}

	got, ok := CurrentValue(history, 9, t0.Add(24*time.Hour))
	require.True(t, ok)
	assert.Equal(t, int64(1), got.ID)

	// Later versions take over without the earlier row being touched.
	got, ok = CurrentValue(history, 9, t0.Add(96*time.Hour))
	require.True(t, ok)
	assert.Equal(t, int64(2), got.ID)
	assert.Equal(t, "1.1", history[0].Value.String())

	_, ok = CurrentValue(history, 9, t0.Add(-time.Hour))
	assert.False(t, ok)

	expiry := t0.Add(10 * time.Hour)
	limits := []AccountLimits{
		{ID: 1, AccountID: 4, IsActive: true, EffectiveTime: t0, ExpiryTime: &expiry},
	}
	_, ok = CurrentLimits(limits, 4, t0.Add(5*time.Hour))
	assert.True(t, ok)
	_, ok = CurrentLimits(limits, 4, t0.Add(11*time.Hour))
	assert.False(t, ok)
	_, ok = CurrentLimits(limits, 5, t0.Add(5*time.Hour))
	assert.False(t, ok)
}

func TestEffectiveAtRateAssociations(t *testing.T) {
	t0 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	history := []ExchangeExchangeRate{
		{ID: 1, ExchangeID: 1, RateID: 7, IsActive: true, EffectiveTime: t0},
		{ID: 2, ExchangeID: 1, RateID: 8, IsActive: true, EffectiveTime: t0},
		{ID: 3, ExchangeID: 1, RateID: 9, IsActive: true, EffectiveTime: t0.Add(time.Hour)},
	}

	// Equal effective times go to the later record.
	got, ok := EffectiveAt(history, t0.Add(30*time.Minute))
	require.True(t, ok)
	assert.Equal(t, int64(8), got.RateID)

	got, ok = EffectiveAt(history, t0.Add(2*time.Hour))
	require.True(t, ok)
	assert.Equal(t, int64(9), got.RateID)

	assert.Equal(t, Window{Active: true, Effective: t0}, history[0].Window())
}
