package endpoint

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"html/template"
	"net/http"

	e "github.com/datastax/action-table/errors"
	"github.com/datastax/action-table/table"
)

//go:embed templates
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/page.html"))

// ModelError is the body of every error response
type ModelError struct {
	Description string `json:"description"`
}

// RespondJSONObjectWithCode writes the object and status header to the response. Important to note that if this is being
// used for an error case then an empty return will need to immediately follow the call to this function
func RespondJSONObjectWithCode(w http.ResponseWriter, code int, obj interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=UTF-8")
	var err error
	var jsonBytes []byte
	if obj != nil {
		jsonBytes, err = json.Marshal(obj)
	}
	writeBytes(w, jsonBytes, err, code)
}

func RespondWithError(w http.ResponseWriter, err error, code int) {
	requestError := ModelError{
		Description: err.Error(),
	}
	RespondJSONObjectWithCode(w, code, requestError)
}

// RespondHTMLPage writes a complete HTML document around the table view
func RespondHTMLPage(w http.ResponseWriter, title string, view *table.View) {
	markup := &bytes.Buffer{}
	if err := table.WriteHTML(markup, view); err != nil {
		RespondWithError(w, err, http.StatusInternalServerError)
		return
	}

	page := &bytes.Buffer{}
	err := pageTemplate.ExecuteTemplate(page, "page.html", struct {
		Title string
		Table template.HTML
	}{title, template.HTML(markup.String())})

	w.Header().Set("Content-Type", "text/html; charset=UTF-8")
	writeBytes(w, page.Bytes(), err, http.StatusOK)
}

// RespondText writes the view as an ASCII table
func RespondText(w http.ResponseWriter, view *table.View) {
	buffer := &bytes.Buffer{}
	table.WriteText(buffer, view)

	w.Header().Set("Content-Type", "text/plain; charset=UTF-8")
	writeBytes(w, buffer.Bytes(), nil, http.StatusOK)
}

func writeBytes(w http.ResponseWriter, body []byte, err error, code int) {
	if err != nil {
		RespondWithError(w, errors.New("unable to write response"), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(code)
	if body != nil {
		_, _ = w.Write(body)
	}
}

// RespondWithTypedError picks the status code from the error type
func RespondWithTypedError(w http.ResponseWriter, err error) {
	var notFound *e.NotFoundError
	if errors.As(err, &notFound) {
		RespondWithError(w, err, http.StatusNotFound)
		return
	}
	RespondWithError(w, err, http.StatusInternalServerError)
}
