// internal/schema/schema.go

// Package schema defines the ledger tables. Tables returns the definitions in dependency
// order; Initialize renders and applies them. There is no global registry: DAOs and the
// initializer look tables up by name from the returned set.
package schema

import "fmt"

// Table names.
const (
	TableClient               = "client"
	TableUnit                 = "unit"
	TableAddress              = "address"
	TableRelationship         = "relationship"
	TableAccount              = "account"
	TableAccountAddresses     = "account_addresses"
	TableAccountLimits        = "account_limits"
	TableAccountRequest       = "account_request"
	TableExchange             = "exchange"
	TableExchangeRate         = "exchange_rate"
	TableExchangeExchangeRate = "exchange_exchange_rate"
	TableExchangeRateValue    = "exchange_rate_value"
)

// ColumnType is the SQL type of a column. TypeNumeric is rendered with the configured precision.
type ColumnType string

const (
	TypeSerial    ColumnType = "BIGSERIAL"
	TypeInteger   ColumnType = "BIGINT"
	TypeName      ColumnType = "VARCHAR(256)"
	TypeText      ColumnType = "TEXT"
	TypeBoolean   ColumnType = "BOOLEAN"
	TypeTimestamp ColumnType = "TIMESTAMPTZ"
	TypeNumeric   ColumnType = "NUMERIC"
	TypeKind      ColumnType = "VARCHAR(32)"
)

type Column struct {
	Name       string
	Type       ColumnType
	Nullable   bool
	Default    string // SQL default expression
	References string // referenced table; the referenced column is always its id
	Computed   bool   // filled in by the application, never by the client
}

// Required reports whether a client must supply the column on create.
func (c Column) Required() bool {
	return c.Type != TypeSerial && !c.Nullable && c.Default == "" && !c.Computed
}

type Check struct {
	Name string
	Expr string
}

type Table struct {
	Name       string
	Columns    []Column
	PrimaryKey []string
	Unique     [][]string
	Checks     []Check
}

// Column looks up a column by name.
func (t Table) Column(name string) (Column, bool) {
	for _, c := range t.Columns {
		if c.Name == name {
			return c, true
		}
	}
	return Column{}, false
}

// ColumnNames returns every column in declaration order.
func (t Table) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}

// InsertColumns returns the columns written on insert, i.e. all but serial keys.
func (t Table) InsertColumns() []string {
	var names []string
	for _, c := range t.Columns {
		if c.Type != TypeSerial {
			names = append(names, c.Name)
		}
	}
	return names
}

// RequiredColumns returns the columns a create request must carry.
func (t Table) RequiredColumns() []string {
	var names []string
	for _, c := range t.Columns {
		if c.Required() {
			names = append(names, c.Name)
		}
	}
	return names
}

// ServerAssigned returns the columns a client may never supply.
func (t Table) ServerAssigned() []string {
	var names []string
	for _, c := range t.Columns {
		if c.Type == TypeSerial {
			names = append(names, c.Name)
		}
	}
	return names
}

// Lookup finds a table definition by name.
func Lookup(name string) (Table, bool) {
	for _, t := range Tables() {
		if t.Name == name {
			return t, true
		}
	}
	return Table{}, false
}

// MustLookup is Lookup for names known at compile time.
func MustLookup(name string) Table {
	t, ok := Lookup(name)
	if !ok {
		panic(fmt.Sprintf("schema: unknown table %q", name))
	}
	return t
}

func id() Column {
	return Column{Name: "id", Type: TypeSerial}
}

func ref(name, table string) Column {
	return Column{Name: name, Type: TypeInteger, References: table}
}

func optionalRef(name, table string) Column {
	return Column{Name: name, Type: TypeInteger, Nullable: true, References: table}
}

func isActive() Column {
	return Column{Name: "is_active", Type: TypeBoolean, Default: "TRUE"}
}

func effectiveTime() Column {
	return Column{Name: "effective_time", Type: TypeTimestamp, Default: "now()"}
}

func expiryTime() Column {
	return Column{Name: "expiry_time", Type: TypeTimestamp, Nullable: true}
}

const exchangeShapeExpr = `(kind = 'account_to_account' AND source_account_id IS NOT NULL AND target_account_id IS NOT NULL AND unit_id IS NULL)
		OR (kind = 'unit_to_account' AND source_account_id IS NULL AND target_account_id IS NOT NULL AND unit_id IS NOT NULL)
		OR (kind = 'account_to_unit' AND source_account_id IS NOT NULL AND target_account_id IS NULL AND unit_id IS NOT NULL)`

// Tables returns every ledger table, each after the tables it references.
func Tables() []Table {
	return []Table{
		{
			Name:       TableClient,
			Columns:    []Column{id(), {Name: "name", Type: TypeName}},
			PrimaryKey: []string{"id"},
			Unique:     [][]string{{"name"}},
		},
		{
			Name:       TableUnit,
			Columns:    []Column{id(), {Name: "name", Type: TypeName}},
			PrimaryKey: []string{"id"},
			Unique:     [][]string{{"name"}},
		},
		{
			Name: TableAddress,
			Columns: []Column{
				id(),
				{Name: "address", Type: TypeName},
				{Name: "owner", Type: TypeName, Nullable: true},
				ref("client_id", TableClient),
			},
			PrimaryKey: []string{"id"},
			Unique:     [][]string{{"address"}},
		},
		{
			Name:       TableRelationship,
			Columns:    []Column{id()},
			PrimaryKey: []string{"id"},
		},
		{
			Name: TableAccount,
			Columns: []Column{
				id(),
				ref("relationship_id", TableRelationship),
				{Name: "name", Type: TypeName},
				ref("client_id", TableClient),
				{Name: "owner", Type: TypeName, Nullable: true},
				isActive(),
				{Name: "balance", Type: TypeNumeric},
				ref("unit_id", TableUnit),
			},
			PrimaryKey: []string{"id"},
			Unique:     [][]string{{"name", "client_id"}},
		},
		{
			Name: TableAccountAddresses,
			Columns: []Column{
				ref("account_id", TableAccount),
				ref("address_id", TableAddress),
			},
			PrimaryKey: []string{"account_id", "address_id"},
		},
		{
			Name: TableAccountLimits,
			Columns: []Column{
				id(),
				ref("account_id", TableAccount),
				isActive(),
				effectiveTime(),
				expiryTime(),
				{Name: "upper_limit", Type: TypeNumeric, Nullable: true},
				{Name: "lower_limit", Type: TypeNumeric, Nullable: true},
			},
			PrimaryKey: []string{"id"},
			Checks: []Check{
				{Name: "account_limits_bounds_check", Expr: "lower_limit IS NULL OR upper_limit IS NULL OR lower_limit <= upper_limit"},
				{Name: "account_limits_window_check", Expr: "expiry_time IS NULL OR expiry_time > effective_time"},
			},
		},
		{
			Name: TableAccountRequest,
			Columns: []Column{
				id(),
				ref("relationship_id", TableRelationship),
				ref("source_address_id", TableAddress),
				ref("dest_address_id", TableAddress),
				ref("unit_id", TableUnit),
				{Name: "note", Type: TypeText},
			},
			PrimaryKey: []string{"id"},
		},
		{
			Name: TableExchange,
			Columns: []Column{
				id(),
				{Name: "kind", Type: TypeKind, Computed: true},
				isActive(),
				effectiveTime(),
				optionalRef("source_account_id", TableAccount),
				optionalRef("target_account_id", TableAccount),
				optionalRef("unit_id", TableUnit),
			},
			PrimaryKey: []string{"id"},
			Checks:     []Check{{Name: "exchange_shape_check", Expr: exchangeShapeExpr}},
		},
		{
			Name: TableExchangeRate,
			Columns: []Column{
				id(),
				{Name: "name", Type: TypeName},
				ref("client_id", TableClient),
			},
			PrimaryKey: []string{"id"},
			Unique:     [][]string{{"name", "client_id"}},
		},
		{
			Name: TableExchangeExchangeRate,
			Columns: []Column{
				id(),
				ref("exchange_id", TableExchange),
				ref("rate_id", TableExchangeRate),
				isActive(),
				effectiveTime(),
			},
			PrimaryKey: []string{"id"},
		},
		{
			Name: TableExchangeRateValue,
			Columns: []Column{
				id(),
				ref("rate_id", TableExchangeRate),
				isActive(),
				effectiveTime(),
				expiryTime(),
				{Name: "value", Type: TypeNumeric},
			},
			PrimaryKey: []string{"id"},
			Checks: []Check{
				{Name: "exchange_rate_value_window_check", Expr: "expiry_time IS NULL OR expiry_time > effective_time"},
			},
		},
	}
}
