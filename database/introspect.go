package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// ListTables returns the table names that actually exist in the connected
// database, for display alongside the static schema descriptions.
func ListTables(ctx context.Context, db *sql.DB, database string) ([]string, error) {
	const q = `SELECT table_name FROM information_schema.tables WHERE table_schema = ? ORDER BY table_name`

	rows, err := db.QueryContext(ctx, q, database)
	if err != nil {
		return nil, fmt.Errorf("list tables for %q: %w", database, err)
	}
	defer rows.Close()

	var tables []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan table name: %w", err)
		}
		tables = append(tables, name)
	}
	return tables, rows.Err()
}

// SampleContext appends up to n example rows per table to the schema
// description sent to the model. Tables that fail to sample are skipped;
// the static description alone is still a usable prompt.
func SampleContext(ctx context.Context, db *sql.DB, tables []TableSchema, n int) string {
	if n <= 0 {
		return ""
	}

	var b strings.Builder
	for _, table := range tables {
		result, err := Execute(ctx, db, fmt.Sprintf("SELECT * FROM %s LIMIT %d", table.Name, n))
		if err != nil || result.RowCount == 0 {
			continue
		}
		fmt.Fprintf(&b, "%d rows from %s: %s\n", result.RowCount, table.Name, strings.Join(result.Columns, ", "))
		for _, row := range result.Rows {
			cells := make([]string, len(row))
			for i, v := range row {
				cells[i] = fmt.Sprintf("%v", v)
			}
			b.WriteString("  " + strings.Join(cells, ", ") + "\n")
		}
	}
	return b.String()
}
