// internal/repository/postgres/table.go
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/jmoiron/sqlx"

	"ledgerbase/internal/domain"
	"ledgerbase/internal/repository"
	"ledgerbase/internal/schema"
	"ledgerbase/internal/util"
)

// entityPtr constrains P to be *T and a domain.Entity.
type entityPtr[T any] interface {
	*T
	domain.Entity
}

// tableDAO implements repository.DAO for one table. Entity-specific DAOs embed it.
type tableDAO[T any, P entityPtr[T]] struct {
	table     schema.Table
	newEntity func() P
	validate  *validator.Validate
	precision domain.Precision

	selectSQL string
	insertSQL string
	getSQL    string
}

func newTableDAO[T any, P entityPtr[T]](table string, newEntity func() P, v *validator.Validate, p domain.Precision) tableDAO[T, P] {
	t := schema.MustLookup(table)
	cols := strings.Join(t.ColumnNames(), ", ")
	order := strings.Join(t.PrimaryKey, ", ")

	conds := make([]string, len(t.PrimaryKey))
	for i, k := range t.PrimaryKey {
		conds[i] = fmt.Sprintf("%s = $%d", k, i+1)
	}

	var insert string
	if ins := t.InsertColumns(); len(ins) > 0 {
		insert = fmt.Sprintf("INSERT INTO %s (%s) VALUES (:%s) RETURNING %s",
			t.Name, strings.Join(ins, ", "), strings.Join(ins, ", :"), cols)
	} else {
		insert = fmt.Sprintf("INSERT INTO %s DEFAULT VALUES RETURNING %s", t.Name, cols)
	}

	return tableDAO[T, P]{
		table:     t,
		newEntity: newEntity,
		validate:  v,
		precision: p,
		selectSQL: fmt.Sprintf("SELECT %s FROM %s ORDER BY %s", cols, t.Name, order),
		insertSQL: insert,
		getSQL:    fmt.Sprintf("SELECT %s FROM %s WHERE %s", cols, t.Name, strings.Join(conds, " AND ")),
	}
}

// KeyNames returns the primary key columns.
func (d *tableDAO[T, P]) KeyNames() []string {
	return d.table.PrimaryKey
}

// Build creates an entity from fields on top of its defaults and validates it.
func (d *tableDAO[T, P]) Build(fields repository.Fields) (domain.Entity, error) {
	for _, name := range d.table.ServerAssigned() {
		if _, ok := fields[name]; ok {
			return nil, util.InvalidInput("%s is assigned by the server", name)
		}
	}
	if missing := fields.Missing(d.table.RequiredColumns()); len(missing) > 0 {
		return nil, util.InvalidInput("missing required fields: %s", strings.Join(missing, ", "))
	}

	entity := d.newEntity()
	if err := fields.Decode(entity); err != nil {
		return nil, err
	}
	if p, ok := any(entity).(domain.Preparer); ok {
		if err := p.Prepare(d.precision); err != nil {
			return nil, err
		}
	}
	if err := domain.Validate(d.validate, entity); err != nil {
		return nil, err
	}
	return entity, nil
}

// Insert writes an entity produced by Build and returns the row as stored.
func (d *tableDAO[T, P]) Insert(ctx context.Context, q repository.DBExecutor, entity domain.Entity) (domain.Entity, error) {
	typed, ok := entity.(P)
	if !ok {
		return nil, fmt.Errorf("cannot insert %T into %s", entity, d.table.Name)
	}

	query, args, err := d.bindInsert(typed)
	if err != nil {
		return nil, fmt.Errorf("failed to bind insert into %s: %w", d.table.Name, err)
	}

	created := d.newEntity()
	if err := q.GetContext(ctx, created, query, args...); err != nil {
		return nil, translateError(d.table.Name, err)
	}
	return created, nil
}

// Create builds, validates and inserts an entity.
func (d *tableDAO[T, P]) Create(ctx context.Context, q repository.DBExecutor, fields repository.Fields) (domain.Entity, error) {
	entity, err := d.Build(fields)
	if err != nil {
		return nil, err
	}
	return d.Insert(ctx, q, entity)
}

func (d *tableDAO[T, P]) bindInsert(entity P) (string, []any, error) {
	if len(d.table.InsertColumns()) == 0 {
		return d.insertSQL, nil, nil
	}
	query, args, err := sqlx.Named(d.insertSQL, entity)
	if err != nil {
		return "", nil, err
	}
	return sqlx.Rebind(sqlx.DOLLAR, query), args, nil
}

// Filter returns every row of the table ordered by primary key.
func (d *tableDAO[T, P]) Filter(ctx context.Context, q repository.DBExecutor) ([]domain.Entity, error) {
	var rows []T
	if err := q.SelectContext(ctx, &rows, d.selectSQL); err != nil {
		return nil, fmt.Errorf("failed to list %s: %w", d.table.Name, err)
	}
	entities := make([]domain.Entity, len(rows))
	for i := range rows {
		entities[i] = P(&rows[i])
	}
	return entities, nil
}

// Get fetches exactly one row by primary key.
func (d *tableDAO[T, P]) Get(ctx context.Context, q repository.DBExecutor, keys ...int64) (domain.Entity, error) {
	if len(keys) != len(d.table.PrimaryKey) {
		return nil, util.InvalidInput("%s is keyed by %s, got %d key(s)",
			d.table.Name, strings.Join(d.table.PrimaryKey, ", "), len(keys))
	}
	args := make([]any, len(keys))
	for i, k := range keys {
		args[i] = k
	}

	entity := d.newEntity()
	if err := q.GetContext(ctx, entity, d.getSQL, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, &util.NotFoundError{Entity: d.table.Name, Keys: keys}
		}
		return nil, fmt.Errorf("failed to get %s: %w", d.table.Name, err)
	}
	return entity, nil
}
