package source

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/datastax/action-table/table"
)

// SQLiteSource reads the rows of a table from a query on a local SQLite file, opened read-only. Columns keep the
// order of the select list.
type SQLiteSource struct {
	db    *sql.DB
	query string
}

func NewSQLiteSource(path string, query string) (*SQLiteSource, error) {
	db, err := sql.Open("sqlite3", fmt.Sprintf("file:%s?mode=ro", path))
	if err != nil {
		return nil, fmt.Errorf("unable to open %s: %w", path, err)
	}
	return &SQLiteSource{db: db, query: query}, nil
}

func (s *SQLiteSource) Rows(ctx context.Context) ([]table.Row, error) {
	rows, err := s.db.QueryContext(ctx, s.query)
	if err != nil {
		return nil, fmt.Errorf("unable to execute query: %w", err)
	}
	defer rows.Close()

	columns, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	result := make([]table.Row, 0)
	for rows.Next() {
		values := make([]interface{}, len(columns))
		pointers := make([]interface{}, len(columns))
		for i := range values {
			pointers[i] = &values[i]
		}
		if err := rows.Scan(pointers...); err != nil {
			return nil, err
		}

		fields := make([]table.Field, 0, len(columns))
		for i, column := range columns {
			fields = append(fields, table.F(column, sqliteValue(values[i])))
		}
		result = append(result, table.NewRow(fields...))
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (s *SQLiteSource) Close() error {
	return s.db.Close()
}

// sqliteValue turns text scanned as bytes into a string, so it compares equal to the string of a condition.
func sqliteValue(value interface{}) interface{} {
	if b, ok := value.([]byte); ok {
		return string(b)
	}
	return value
}
