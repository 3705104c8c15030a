// Package source loads the rows a host feeds to the table renderer.
package source

import (
	"context"

	"github.com/datastax/action-table/table"
)

type RowSource interface {
	Rows(ctx context.Context) ([]table.Row, error)
}

// StaticSource serves rows known up front, such as the rows of a definition file.
type StaticSource struct {
	rows []table.Row
}

func NewStaticSource(rows []table.Row) *StaticSource {
	if rows == nil {
		rows = []table.Row{}
	}
	return &StaticSource{rows: rows}
}

func (s *StaticSource) Rows(context.Context) ([]table.Row, error) {
	return s.rows, nil
}
