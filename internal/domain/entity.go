// internal/domain/entity.go
package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"ledgerbase/internal/util"
)

// Entity is a persisted ledger record. DataDict is the only projection used on the wire:
// column name to a JSON-encodable value.
type Entity interface {
	DataDict() map[string]any
}

// Preparer is implemented by entities that normalize themselves after decoding and before
// validation, e.g. rounding decimals to the storage scale or deriving a discriminant.
type Preparer interface {
	Prepare(p Precision) error
}

// Precision describes a NUMERIC(Digits, Scale) column.
type Precision struct {
	Digits int32
	Scale  int32
}

// DefaultPrecision matches the default DECIMAL_PRECISION/DECIMAL_SCALE configuration.
var DefaultPrecision = Precision{Digits: 20, Scale: 8}

// Fit rounds d to the scale and rejects values whose integer part does not fit.
func (p Precision) Fit(field string, d decimal.Decimal) (decimal.Decimal, error) {
	rounded := d.Round(p.Scale)
	limit := decimal.New(1, p.Digits-p.Scale)
	if rounded.Abs().GreaterThanOrEqual(limit) {
		return d, util.InvalidInput("%s %s exceeds NUMERIC(%d,%d)", field, d.String(), p.Digits, p.Scale)
	}
	return rounded, nil
}

// FitPtr is Fit for nullable columns.
func (p Precision) FitPtr(field string, d *decimal.Decimal) (*decimal.Decimal, error) {
	if d == nil {
		return nil, nil
	}
	v, err := p.Fit(field, *d)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// String renders the SQL column type.
func (p Precision) String() string {
	return fmt.Sprintf("NUMERIC(%d, %d)", p.Digits, p.Scale)
}

// now is the clock used for server-assigned effective times.
var now = func() time.Time { return time.Now().UTC() }

func decimalOrNil(d *decimal.Decimal) any {
	if d == nil {
		return nil
	}
	return *d
}

func timeOrNil(t *time.Time) any {
	if t == nil {
		return nil
	}
	return *t
}

func int64OrNil(v *int64) any {
	if v == nil {
		return nil
	}
	return *v
}

func stringOrNil(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}
