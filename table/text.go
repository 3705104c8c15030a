package table

import (
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"
)

// ButtonSeparator joins the button names of an actions cell in text output.
const ButtonSeparator = " | "

func (r *Renderer) RenderText(w io.Writer, props Props) error {
	view, err := r.Build(props)
	if err != nil {
		return err
	}
	WriteText(w, view)
	return nil
}

// WriteText emits a view as an ASCII table. Ragged rows are padded with empty cells to the widest row, since a
// text grid can't leave holes the way HTML can.
func WriteText(w io.Writer, view *View) {
	writer := tablewriter.NewWriter(w)
	writer.SetAutoFormatHeaders(false)
	writer.SetAutoWrapText(false)

	width := len(view.Headers)
	for _, row := range view.Rows {
		if len(row.Cells) > width {
			width = len(row.Cells)
		}
	}

	if len(view.Headers) > 0 {
		headers := make([]string, width)
		for i, header := range view.Headers {
			headers[i] = header.Label
		}
		writer.SetHeader(headers)
	}

	if view.Caption != "" {
		writer.SetCaption(true, view.Caption)
	}

	for _, row := range view.Rows {
		cells := make([]string, width)
		for i, cell := range row.Cells {
			cells[i] = cellText(cell)
		}
		writer.Append(cells)
	}

	writer.Render()
}

func cellText(cell Cell) string {
	if !cell.Actions {
		return cell.Text
	}

	names := make([]string, 0, len(cell.Buttons))
	for _, button := range cell.Buttons {
		names = append(names, button.Name)
	}
	return strings.Join(names, ButtonSeparator)
}
