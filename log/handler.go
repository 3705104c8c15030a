package log

import (
	"net/http"
	"time"

	"go.uber.org/atomic"
)

type loggingHandler struct {
	handler  http.Handler
	logger   Logger
	requests atomic.Uint64
}

// statusRecorder keeps the status code written by the wrapped handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
	size   int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	if r.status == 0 {
		r.status = http.StatusOK
	}
	n, err := r.ResponseWriter.Write(b)
	r.size += n
	return n, err
}

// NewLoggingHandler logs one line per request: a sequence number, the method, path, status, response size and
// the time it took to serve.
func NewLoggingHandler(handler http.Handler, logger Logger) http.Handler {
	return &loggingHandler{handler: handler, logger: logger}
}

func (h *loggingHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id := h.requests.Inc()
	start := time.Now()
	recorder := &statusRecorder{ResponseWriter: w}

	h.handler.ServeHTTP(recorder, r)

	status := recorder.status
	if status == 0 {
		status = http.StatusOK
	}

	h.logger.Info("request",
		"id", id,
		"method", r.Method,
		"path", r.URL.Path,
		"status", status,
		"size", recorder.size,
		"elapsed", time.Since(start))
}
