// Package apierror writes the API's JSON error bodies and logs server-side
// failures. Clients only ever see {"error": "..."}; diagnostics stay in the
// structured log.
package apierror

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
)

const (
	// MessageNotFound is the body for every missing-event response.
	MessageNotFound = "Event not found"
	// MessageInternal is the body for every store or server failure,
	// malformed ids included.
	MessageInternal = "Internal server error"
)

type body struct {
	Error string `json:"error"`
}

// Write sends a JSON error body and logs the underlying error, if any, with
// the request-scoped logger: 5xx at error level, 4xx at warn.
func Write(w http.ResponseWriter, r *http.Request, status int, message string, err error) {
	if err != nil {
		logger := zerolog.Ctx(r.Context())
		event := logger.Warn()
		if status >= 500 {
			event = logger.Error()
		}
		event.
			Err(err).
			Int("status", status).
			Str("path", r.URL.Path).
			Str("method", r.Method).
			Msg(message)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body{Error: message})
}

// NotFound reports a missing event.
func NotFound(w http.ResponseWriter, r *http.Request) {
	Write(w, r, http.StatusNotFound, MessageNotFound, nil)
}

// Internal reports a store or server failure.
func Internal(w http.ResponseWriter, r *http.Request, err error) {
	Write(w, r, http.StatusInternalServerError, MessageInternal, err)
}
