package table

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/datastax/action-table/config"
	"github.com/datastax/action-table/log"
)

//go:embed templates
var templateFS embed.FS

var templates = template.Must(template.New("").
	Funcs(template.FuncMap{"join": strings.Join}).
	ParseFS(templateFS, "templates/*.html"))

// Renderer turns Props into a View and emits it. It holds no per-render state and is safe for concurrent use.
type Renderer struct {
	naming        config.NamingConvention
	actionsHeader string
	logger        log.Logger
}

func NewRenderer(cfg config.Config) *Renderer {
	actionsHeader := cfg.ActionsHeader()
	if actionsHeader == "" {
		actionsHeader = config.DefaultActionsHeader
	}

	return &Renderer{
		naming:        cfg.Naming(),
		actionsHeader: actionsHeader,
		logger:        cfg.Logger(),
	}
}

// NewDefaultRenderer labels columns with Humanize, uses "Actions" as the actions header and logs nothing.
func NewDefaultRenderer() *Renderer {
	return &Renderer{
		naming:        config.NewDefaultNaming(),
		actionsHeader: config.DefaultActionsHeader,
		logger:        log.NewNopLogger(),
	}
}

// Build validates props and computes the view. Columns come from the first row; every row renders its own keys.
func (r *Renderer) Build(props Props) (*View, error) {
	if err := props.Validate(); err != nil {
		return nil, err
	}

	if malformed := props.malformedClasses(); len(malformed) > 0 {
		r.logger.Warn("table classes are empty or hold whitespace, applying them as given",
			"classes", malformed)
	}

	actionsHeader := props.ActionsHeader
	if actionsHeader == "" {
		actionsHeader = r.actionsHeader
	}

	schema := inferSchema(props.Rows, r.naming)
	view := &View{
		Caption: props.Caption,
		Classes: props.TableClasses,
		Headers: renderHeaders(schema, props.Actions, actionsHeader),
		Rows:    renderRows(props.Rows, props.Actions, actionsHeader, r.naming),
	}

	r.logger.Debug("built table view",
		"columns", len(schema.Columns),
		"rows", len(view.Rows),
		"actions", len(props.Actions))

	return view, nil
}

func (r *Renderer) RenderHTML(w io.Writer, props Props) error {
	view, err := r.Build(props)
	if err != nil {
		return err
	}
	return WriteHTML(w, view)
}

func (r *Renderer) HTML(props Props) (template.HTML, error) {
	buffer := &bytes.Buffer{}
	if err := r.RenderHTML(buffer, props); err != nil {
		return "", err
	}
	return template.HTML(buffer.String()), nil
}

// WriteHTML emits an already built view.
func WriteHTML(w io.Writer, view *View) error {
	if err := templates.ExecuteTemplate(w, "table.html", view); err != nil {
		return fmt.Errorf("unable to render table: %w", err)
	}
	return nil
}
