package table

import (
	"github.com/datastax/action-table/config"
	"github.com/datastax/action-table/types"
)

type Header struct {
	Label   string `json:"label"`
	Actions bool   `json:"actions,omitempty"`
}

// Cell is one <td>. Label is the data-label attribute, which matches the header of the cell's column. Value is the
// raw row value and stays out of JSON, Text is what gets displayed and serialized.
type Cell struct {
	Label   string      `json:"label"`
	Value   interface{} `json:"-"`
	Text    string      `json:"text"`
	Actions bool        `json:"actions,omitempty"`
	Buttons []Button    `json:"buttons,omitempty"`
}

type RenderedRow struct {
	Cells []Cell `json:"cells"`
}

// View is everything needed to emit a table, computed from Props on every render.
type View struct {
	Caption string        `json:"caption,omitempty"`
	Classes []string      `json:"classes,omitempty"`
	Headers []Header      `json:"headers"`
	Rows    []RenderedRow `json:"rows"`
}

var defaultNaming = config.NewDefaultNaming()

// RenderHeaders returns a header per key of the first row, labelled with Humanize, followed by the actions header
// when there are actions. No rows means no headers.
func RenderHeaders(rows []Row, actions []Action, actionsHeader string) []Header {
	return renderHeaders(inferSchema(rows, defaultNaming), actions, actionsHeader)
}

// RenderRows returns a rendered row per input row with a cell per key of that row, followed by the actions cell
// when there are actions.
func RenderRows(rows []Row, actions []Action, actionsHeader string) []RenderedRow {
	return renderRows(rows, actions, actionsHeader, defaultNaming)
}

func renderHeaders(schema Schema, actions []Action, actionsHeader string) []Header {
	if len(schema.Columns) == 0 {
		return []Header{}
	}

	headers := make([]Header, 0, len(schema.Columns)+1)
	for _, column := range schema.Columns {
		headers = append(headers, Header{Label: column.Label})
	}
	if len(actions) > 0 {
		headers = append(headers, Header{Label: actionsHeader, Actions: true})
	}
	return headers
}

func renderRows(rows []Row, actions []Action, actionsHeader string, naming config.NamingConvention) []RenderedRow {
	rendered := make([]RenderedRow, 0, len(rows))
	for _, row := range rows {
		cells := make([]Cell, 0, row.Len()+1)
		for _, field := range row.Fields() {
			cells = append(cells, Cell{
				Label: naming.ToLabel(field.Key),
				Value: field.Value,
				Text:  types.FormatValue(field.Value),
			})
		}

		if len(actions) > 0 {
			cells = append(cells, Cell{
				Label:   actionsHeader,
				Actions: true,
				Buttons: ResolveActions(row, actions),
			})
		}

		rendered = append(rendered, RenderedRow{Cells: cells})
	}
	return rendered
}
