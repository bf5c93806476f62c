// internal/schema/initialize.go
package schema

import (
	"context"
	"fmt"
	"log/slog"

	"ledgerbase/internal/domain"
	"ledgerbase/pkg/db"
)

// Initialize creates any missing ledger tables in a single transaction.
func Initialize(ctx context.Context, conn db.DBTxBeginner, p domain.Precision, logger *slog.Logger) error {
	tx, err := conn.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("schema: failed to begin transaction: %w", err)
	}
	defer db.RollbackTx(tx)

	tables := Tables()
	for _, t := range tables {
		if _, err := tx.ExecContext(ctx, t.CreateStatement(p)); err != nil {
			return fmt.Errorf("schema: failed to create table %s: %w", t.Name, err)
		}
		logger.Debug("Ensured table", "table", t.Name)
	}

	if err := db.CommitTx(tx); err != nil {
		return fmt.Errorf("schema: %w", err)
	}
	logger.Info("Schema initialized", "tables", len(tables), "numeric", p.String())
	return nil
}
