package endpoint

import (
	"fmt"
	"net/http"
	"path"

	"github.com/julienschmidt/httprouter"

	"github.com/datastax/action-table/table"
	"github.com/datastax/action-table/types"
)

const (
	FormatHTML = "html"
	FormatText = "text"
	FormatJSON = "json"
)

// Routes returns the index route at pattern and one route per table at pattern/:table
func (te *TableEndpoint) Routes(pattern string) []types.Route {
	return []types.Route{
		{
			Method:  http.MethodGet,
			Pattern: pattern,
			Handler: http.HandlerFunc(te.serveIndex),
		},
		{
			Method:  http.MethodGet,
			Pattern: path.Join(pattern, ":table"),
			Handler: http.HandlerFunc(te.serveTable),
		},
	}
}

func (te *TableEndpoint) serveIndex(w http.ResponseWriter, r *http.Request) {
	view, err := te.IndexView()
	if err != nil {
		RespondWithTypedError(w, err)
		return
	}
	te.respond(w, r, "Tables", view)
}

func (te *TableEndpoint) serveTable(w http.ResponseWriter, r *http.Request) {
	name := httprouter.ParamsFromContext(r.Context()).ByName("table")

	view, err := te.View(r.Context(), name)
	if err != nil {
		RespondWithTypedError(w, err)
		return
	}

	title := view.Caption
	if title == "" {
		title = name
	}
	te.respond(w, r, title, view)
}

func (te *TableEndpoint) respond(w http.ResponseWriter, r *http.Request, title string, view *table.View) {
	switch format := r.URL.Query().Get("format"); format {
	case "", FormatHTML:
		RespondHTMLPage(w, title, view)
	case FormatText:
		RespondText(w, view)
	case FormatJSON:
		RespondJSONObjectWithCode(w, http.StatusOK, view)
	default:
		RespondWithError(w, fmt.Errorf("unsupported format: %s", format), http.StatusBadRequest)
	}
}
