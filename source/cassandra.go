package source

import (
	"context"
	"fmt"

	"github.com/datastax/action-table/db"
	"github.com/datastax/action-table/table"
)

// Selector is the part of db.Db used to read rows.
type Selector interface {
	Select(ctx context.Context, query string, options *db.QueryOptions, values ...interface{}) (db.ResultSet, error)
}

// CassandraSource reads the rows of a table from a CQL query. Columns keep the order of the result metadata.
type CassandraSource struct {
	selector Selector
	query    string
	options  *db.QueryOptions
}

func NewCassandraSource(selector Selector, query string, options *db.QueryOptions) *CassandraSource {
	return &CassandraSource{
		selector: selector,
		query:    query,
		options:  options,
	}
}

func (s *CassandraSource) Rows(ctx context.Context) ([]table.Row, error) {
	result, err := s.selector.Select(ctx, s.query, s.options)
	if err != nil {
		return nil, fmt.Errorf("unable to execute query: %w", err)
	}

	columns := result.Columns()
	values := result.Values()
	rows := make([]table.Row, 0, len(values))
	for _, value := range values {
		rows = append(rows, table.RowFromMap(columns, value))
	}
	return rows, nil
}
