package db

import (
	"context"

	"github.com/gocql/gocql"
)

type QueryOptions struct {
	Consistency gocql.Consistency
	PageSize    int
}

func NewQueryOptions() *QueryOptions {
	return &QueryOptions{
		Consistency: gocql.LocalQuorum,
	}
}

func (q *QueryOptions) WithConsistency(consistency gocql.Consistency) *QueryOptions {
	q.Consistency = consistency
	return q
}

func (q *QueryOptions) WithPageSize(pageSize int) *QueryOptions {
	q.PageSize = pageSize
	return q
}

type Session interface {
	// ExecuteIter executes a statement and returns all the rows of the result set
	ExecuteIter(ctx context.Context, query string, options *QueryOptions, values ...interface{}) (ResultSet, error)

	Close()
}

type ResultSet interface {
	// Columns returns the column names in the order of the result metadata
	Columns() []string
	Values() []map[string]interface{}
}

type goCqlResultSet struct {
	columns []string
	values  []map[string]interface{}
}

func (r *goCqlResultSet) Columns() []string {
	return r.columns
}

func (r *goCqlResultSet) Values() []map[string]interface{} {
	return r.values
}

func newResultSet(iter *gocql.Iter) (*goCqlResultSet, error) {
	columns := iter.Columns()
	scanner := iter.Scanner()

	names := make([]string, 0, len(columns))
	for _, column := range columns {
		names = append(names, column.Name)
	}

	items := make([]map[string]interface{}, 0)

	for scanner.Next() {
		row, err := mapScan(scanner, columns)
		if err != nil {
			_ = iter.Close()
			return nil, err
		}
		items = append(items, row)
	}

	if err := iter.Close(); err != nil {
		return nil, err
	}

	return &goCqlResultSet{
		columns: names,
		values:  items,
	}, nil
}

type GoCqlSession struct {
	ref *gocql.Session
}

func (session *GoCqlSession) ExecuteIter(ctx context.Context, query string, options *QueryOptions, values ...interface{}) (ResultSet, error) {
	q := session.ref.Query(query, values...).WithContext(ctx)

	// Avoid reusing metadata from the prepared statement, new columns for SELECT * would be missed
	q.NoSkipMetadata()

	if options != nil {
		q.Consistency(options.Consistency)
		if options.PageSize > 0 {
			q.PageSize(options.PageSize)
		}
	}

	return newResultSet(q.Iter())
}

func (session *GoCqlSession) Close() {
	session.ref.Close()
}
