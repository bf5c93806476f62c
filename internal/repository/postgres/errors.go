// internal/repository/postgres/errors.go
package postgres

import (
	"errors"
	"fmt"

	"github.com/lib/pq"

	"ledgerbase/internal/util"
)

// translateError maps PostgreSQL integrity violations onto util.ConstraintError and
// rejected values onto util.ErrInvalidInput.
func translateError(table string, err error) error {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return fmt.Errorf("failed to insert into %s: %w", table, err)
	}

	var kind util.ConstraintKind
	switch pqErr.Code.Name() {
	case "numeric_value_out_of_range", "invalid_text_representation", "string_data_right_truncation":
		return util.InvalidInput("%s: %s", table, pqErr.Message)
	case "unique_violation":
		kind = util.ConstraintUnique
	case "not_null_violation":
		kind = util.ConstraintNotNull
	case "foreign_key_violation":
		kind = util.ConstraintForeignKey
	case "check_violation":
		kind = util.ConstraintCheck
	default:
		return fmt.Errorf("failed to insert into %s: %w", table, err)
	}

	name := pqErr.Constraint
	if kind == util.ConstraintNotNull {
		name = pqErr.Column
	}
	return &util.ConstraintError{Kind: kind, Table: table, Constraint: name, Err: pqErr}
}
