package history

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// requiredColumns lists the columns the export query reads, per table.
type requiredColumns struct {
	Table   string
	Columns []string
}

// requiredSchema is checked in order; visits first, then urls.
var requiredSchema = []requiredColumns{
	{Table: "visits", Columns: []string{"visit_time", "transition", "url"}},
	{Table: "urls", Columns: []string{"id", "url", "title"}},
}

// MissingColumns names the required columns absent from one table.
type MissingColumns struct {
	Table   string
	Columns []string
}

// SchemaError reports every required column the database lacks.
type SchemaError struct {
	Missing []MissingColumns
}

func (e *SchemaError) Error() string {
	parts := make([]string, 0, len(e.Missing))
	for _, m := range e.Missing {
		parts = append(parts, fmt.Sprintf("missing in '%s': %s", m.Table, strings.Join(m.Columns, ", ")))
	}
	return "database schema not supported for export: " + strings.Join(parts, "; ")
}

// ValidateSchema confirms the visits and urls tables carry the columns the
// export reads. It returns a *SchemaError listing every missing column, or
// a wrapped error if the schema could not be inspected.
func ValidateSchema(ctx context.Context, db *sql.DB) error {
	var missing []MissingColumns

	for _, req := range requiredSchema {
		cols, err := tableColumns(ctx, db, req.Table)
		if err != nil {
			return fmt.Errorf("inspect table %s: %w", req.Table, err)
		}

		var absent []string
		for _, c := range req.Columns {
			if !cols[c] {
				absent = append(absent, c)
			}
		}
		if len(absent) > 0 {
			missing = append(missing, MissingColumns{Table: req.Table, Columns: absent})
		}
	}

	if len(missing) > 0 {
		return &SchemaError{Missing: missing}
	}
	return nil
}

// tableColumns returns the set of column names of table. A table that does
// not exist yields an empty set.
func tableColumns(ctx context.Context, db *sql.DB, table string) (map[string]bool, error) {
	rows, err := db.QueryContext(ctx, "SELECT name FROM pragma_table_info(?)", table)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cols := make(map[string]bool)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		cols[name] = true
	}

	return cols, rows.Err()
}
