// Package respond centralizes JSON response writing for API handlers.
//
// Every endpoint in this service speaks JSON, so the encode-and-set-header
// dance lives here instead of being repeated in each handler. Errors get a
// structured body ({"error": "..."}) and a real status code rather than the
// framework default.
package respond

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

// JSON writes v as a JSON response with the given status code.
// A nil v writes the JSON literal null, which is the not-found shape for
// lookups that treat an empty result as a valid answer.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// errorBody is the wire shape for failed requests.
type errorBody struct {
	Error string `json:"error"`
}

// Error writes a structured JSON error body with the given status code.
func Error(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, errorBody{Error: msg})
}

// Internal logs err and writes a generic 500. Handlers call this for
// storage failures; the underlying error stays in the log, not the body.
func Internal(w http.ResponseWriter, log *zap.Logger, op string, err error) {
	if log != nil {
		log.Error(op, zap.Error(err))
	}
	Error(w, http.StatusInternalServerError, "internal server error")
}

// BadRequest writes a 400 with the given message.
func BadRequest(w http.ResponseWriter, msg string) {
	Error(w, http.StatusBadRequest, msg)
}
