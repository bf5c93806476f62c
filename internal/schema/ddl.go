// internal/schema/ddl.go
package schema

import (
	"fmt"
	"strings"

	"github.com/lib/pq"

	"ledgerbase/internal/domain"
)

// UniqueName is the name given to a unique constraint over cols.
func (t Table) UniqueName(cols []string) string {
	return fmt.Sprintf("%s_%s_key", t.Name, strings.Join(cols, "_"))
}

// CreateStatement renders an idempotent CREATE TABLE for t.
func (t Table) CreateStatement(p domain.Precision) string {
	var defs []string
	for _, c := range t.Columns {
		defs = append(defs, c.definition(p))
	}
	defs = append(defs, fmt.Sprintf("CONSTRAINT %s PRIMARY KEY (%s)",
		pq.QuoteIdentifier(t.Name+"_pkey"), quoteAll(t.PrimaryKey)))
	for _, cols := range t.Unique {
		defs = append(defs, fmt.Sprintf("CONSTRAINT %s UNIQUE (%s)",
			pq.QuoteIdentifier(t.UniqueName(cols)), quoteAll(cols)))
	}
	for _, c := range t.Columns {
		if c.References == "" {
			continue
		}
		defs = append(defs, fmt.Sprintf("CONSTRAINT %s FOREIGN KEY (%s) REFERENCES %s (%s)",
			pq.QuoteIdentifier(t.Name+"_"+c.Name+"_fkey"), pq.QuoteIdentifier(c.Name),
			pq.QuoteIdentifier(c.References), pq.QuoteIdentifier("id")))
	}
	for _, ck := range t.Checks {
		defs = append(defs, fmt.Sprintf("CONSTRAINT %s CHECK (%s)", pq.QuoteIdentifier(ck.Name), ck.Expr))
	}
	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (\n\t%s\n)",
		pq.QuoteIdentifier(t.Name), strings.Join(defs, ",\n\t"))
}

func (c Column) definition(p domain.Precision) string {
	typ := string(c.Type)
	if c.Type == TypeNumeric {
		typ = p.String()
	}
	def := pq.QuoteIdentifier(c.Name) + " " + typ
	if !c.Nullable {
		def += " NOT NULL"
	}
	if c.Default != "" {
		def += " DEFAULT " + c.Default
	}
	return def
}

func quoteAll(names []string) string {
	quoted := make([]string, len(names))
	for i, n := range names {
		quoted[i] = pq.QuoteIdentifier(n)
	}
	return strings.Join(quoted, ", ")
}

// Statements renders the CREATE TABLE statements for every table, in dependency order.
func Statements(p domain.Precision) []string {
	tables := Tables()
	stmts := make([]string, len(tables))
	for i, t := range tables {
		stmts[i] = t.CreateStatement(p)
	}
	return stmts
}
