// internal/repository/fields.go
package repository

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/shopspring/decimal"

	"ledgerbase/internal/util"
)

// Fields is a decoded create request: column name to JSON value. Numbers are expected as
// json.Number so that decimals keep their exact digits.
type Fields map[string]any

// Missing returns the names in required that are absent or null, sorted.
func (f Fields) Missing(required []string) []string {
	var missing []string
	for _, name := range required {
		if v, ok := f[name]; !ok || v == nil {
			missing = append(missing, name)
		}
	}
	sort.Strings(missing)
	return missing
}

// Decode copies f onto target, a pointer to an entity struct. Keys must equal the json tag
// of a field exactly; unknown keys and type mismatches are invalid input.
func (f Fields) Decode(target any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:     "json",
		ErrorUnused: true,
		Result:      target,
		MatchName:   func(mapKey, fieldName string) bool { return mapKey == fieldName },
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			decimalHook,
			mapstructure.StringToTimeHookFunc(time.RFC3339),
		),
	})
	if err != nil {
		return fmt.Errorf("failed to build decoder: %w", err)
	}
	if err := decoder.Decode(map[string]any(f)); err != nil {
		return util.InvalidInput("%v", err)
	}
	return nil
}

var decimalType = reflect.TypeOf(decimal.Decimal{})

// decimalHook accepts decimals as JSON strings or numbers.
func decimalHook(_ reflect.Type, to reflect.Type, data any) (any, error) {
	if to != decimalType {
		return data, nil
	}
	switch v := data.(type) {
	case string:
		return decimal.NewFromString(v)
	case json.Number:
		return decimal.NewFromString(v.String())
	case float64:
		return decimal.NewFromFloat(v), nil
	}
	return data, nil
}
