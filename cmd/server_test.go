package cmd

import (
	"bytes"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/julienschmidt/httprouter"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToStringSlice(t *testing.T) {
	slice, err := toStringSlice([]string{"127.0.0.1,127.0.0.2", "", "127.0.0.3"})
	require.NoError(t, err)
	assert.Equal(t, []string{"127.0.0.1", "127.0.0.2", "127.0.0.3"}, slice)

	slice, err = toStringSlice(nil)
	require.NoError(t, err)
	assert.Empty(t, slice)

	_, err = toStringSlice([]string{`"unterminated`})
	assert.Error(t, err)
}

func TestMaybeAddCORS(t *testing.T) {
	defer viper.Reset()
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	w := httptest.NewRecorder()
	maybeAddCORS(ok).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/tables", nil))
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))

	viper.Set("access-control-allow-origin", "*")
	w = httptest.NewRecorder()
	maybeAddCORS(ok).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/tables", nil))
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCreateRouterPreflight(t *testing.T) {
	defer viper.Reset()
	viper.Set("access-control-allow-origin", "https://example.com")

	router := createRouter()
	router.GET("/tables", func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {})

	r := httptest.NewRequest(http.MethodOptions, "/tables", nil)
	r.Header.Set("Access-Control-Request-Method", http.MethodGet)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://example.com", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, http.MethodGet, w.Header().Get("Access-Control-Allow-Method"))
}

func TestWriteOutput(t *testing.T) {
	stdout := &bytes.Buffer{}
	require.NoError(t, writeOutput(stdout, "", bytes.NewBufferString("<table></table>")))
	assert.Equal(t, "<table></table>", stdout.String())

	filename := filepath.Join(t.TempDir(), "users.html")
	require.NoError(t, ioutil.WriteFile(filename, []byte("stale"), 0644))

	stdout.Reset()
	require.NoError(t, writeOutput(stdout, filename, bytes.NewBufferString("<table></table>")))
	assert.Empty(t, stdout.String())

	written, err := ioutil.ReadFile(filename)
	require.NoError(t, err)
	assert.Equal(t, "<table></table>", string(written))
}
