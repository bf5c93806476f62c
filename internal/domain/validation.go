// internal/domain/validation.go
package domain

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"ledgerbase/internal/util"
)

// NewValidator returns a validator that reports fields by their JSON names and knows the
// cross-field rules of the ledger entities.
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	v.RegisterStructValidation(validateExchangeShape, Exchange{})
	v.RegisterStructValidation(validateLimits, AccountLimits{})
	v.RegisterStructValidation(validateRateValue, ExchangeRateValue{})
	return v
}

// Validate runs v over entity and folds any failure into ErrInvalidInput.
func Validate(v *validator.Validate, entity any) error {
	err := v.Struct(entity)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("validate: %w", err)
	}
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		if fe.Param() != "" {
			msgs = append(msgs, fmt.Sprintf("%s failed %s=%s", fe.Field(), fe.Tag(), fe.Param()))
		} else {
			msgs = append(msgs, fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag()))
		}
	}
	return util.InvalidInput("%s", strings.Join(msgs, "; "))
}

func validateExchangeShape(sl validator.StructLevel) {
	e := sl.Current().Interface().(Exchange)
	inferred := e.InferKind()
	switch {
	case e.SourceAccountID == nil && e.TargetAccountID == nil:
		sl.ReportError(e.SourceAccountID, "source_account_id", "SourceAccountID", "account_required", "")
	case inferred == "":
		sl.ReportError(e.Kind, "kind", "Kind", "exchange_shape", "")
	case e.Kind != "" && e.Kind != inferred:
		sl.ReportError(e.Kind, "kind", "Kind", "exchange_shape", string(inferred))
	}
}

func validateLimits(sl validator.StructLevel) {
	l := sl.Current().Interface().(AccountLimits)
	if l.UpperLimit != nil && l.LowerLimit != nil && l.LowerLimit.GreaterThan(*l.UpperLimit) {
		sl.ReportError(l.LowerLimit, "lower_limit", "LowerLimit", "ltefield", "upper_limit")
	}
	if l.ExpiryTime != nil && !l.ExpiryTime.After(l.EffectiveTime) {
		sl.ReportError(l.ExpiryTime, "expiry_time", "ExpiryTime", "gtfield", "effective_time")
	}
}

func validateRateValue(sl validator.StructLevel) {
	v := sl.Current().Interface().(ExchangeRateValue)
	if v.ExpiryTime != nil && !v.ExpiryTime.After(v.EffectiveTime) {
		sl.ReportError(v.ExpiryTime, "expiry_time", "ExpiryTime", "gtfield", "effective_time")
	}
}
