// internal/resource/store.go
package resource

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"ledgerbase/internal/repository"
	"ledgerbase/pkg/db"
)

// Store is what resources need from the database: an executor for reads and the
// transaction functions for writes. The functions are fields so tests can replace them.
type Store struct {
	Beginner   db.DBTxBeginner
	Executor   repository.DBExecutor
	BeginTx    db.BeginTxFunc
	CommitTx   db.CommitTxFunc
	RollbackTx db.RollbackTxFunc
}

// NewStore returns a Store backed by conn and the pkg/db transaction helpers.
func NewStore(conn *sqlx.DB) Store {
	return Store{
		Beginner:   conn,
		Executor:   conn,
		BeginTx:    db.BeginTx,
		CommitTx:   db.CommitTx,
		RollbackTx: db.RollbackTx,
	}
}

// InTx runs fn inside a transaction, committing when fn succeeds and rolling back otherwise.
func (s Store) InTx(ctx context.Context, fn func(q repository.DBExecutor) error) error {
	tx, err := s.BeginTx(ctx, s.Beginner)
	if err != nil {
		return err
	}
	defer s.RollbackTx(tx)

	q, ok := tx.(repository.DBExecutor)
	if !ok {
		return fmt.Errorf("transaction controller does not implement DBExecutor")
	}
	if err := fn(q); err != nil {
		return err
	}
	return s.CommitTx(tx)
}
