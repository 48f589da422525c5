package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"
)

// MessageResponse is the body of every non-validation error response.
type MessageResponse struct {
	Message string `json:"message"`
}

// InternalErrorResponse is the body of a 500 response.
type InternalErrorResponse struct {
	Message string   `json:"message"`
	Error   struct{} `json:"error"`
}

// WriteJSON writes v as the JSON body with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// ErrorWriter renders unexpected failures as 500 responses, logging them only
// when global error logging is enabled.
type ErrorWriter struct {
	logger    zerolog.Logger
	logErrors bool
}

func NewErrorWriter(logger zerolog.Logger, logErrors bool) *ErrorWriter {
	return &ErrorWriter{logger: logger, logErrors: logErrors}
}

func (e *ErrorWriter) InternalError(w http.ResponseWriter, r *http.Request, err error) {
	if e.logErrors {
		e.logger.Error().Err(err).
			Str("method", r.Method).
			Str("uri", r.URL.RequestURI()).
			Msg("Global error handler")
	}
	WriteJSON(w, http.StatusInternalServerError, InternalErrorResponse{Message: err.Error()})
}
