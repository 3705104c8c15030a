package table

import "github.com/datastax/action-table/config"

type Column struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// Schema is the ordered list of columns shared by the header and the rows.
type Schema struct {
	Columns []Column
}

// InferSchema derives the columns from a sample row, in the row's key order.
func InferSchema(sample Row, naming config.NamingConvention) Schema {
	columns := make([]Column, 0, sample.Len())
	for _, key := range sample.keys {
		columns = append(columns, Column{Key: key, Label: naming.ToLabel(key)})
	}
	return Schema{Columns: columns}
}

// inferSchema applies the first row policy: an empty row set has no columns.
func inferSchema(rows []Row, naming config.NamingConvention) Schema {
	if len(rows) == 0 {
		return Schema{}
	}
	return InferSchema(rows[0], naming)
}
