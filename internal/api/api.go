// Package api contains helpers for http handlers: json responses, common middlewares and health checks.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("layer", "api").WithField("package", "api")

// Error ...
// swagger:model
type Error struct {
	Error string `json:"error"`
}

// WriteOK writes v as json body with status.
func WriteOK(w http.ResponseWriter, status int, v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		log.WithError(err).Error("failed to marshal response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// nolint:errcheck
	w.Write(data)
}

// WriteError writes error message with status.
func WriteError(w http.ResponseWriter, status int, message string) {
	WriteOK(w, status, Error{Error: message})
}

// WriteInternalErrorf logs error and writes 500 without details.
func WriteInternalErrorf(ctx context.Context, w http.ResponseWriter, format string, args ...interface{}) {
	GetLogger(ctx).Errorf(format, args...)
	WriteError(w, http.StatusInternalServerError, "internal error")
}

// GetLogger returns logger with request id of ctx.
func GetLogger(ctx context.Context) logrus.FieldLogger {
	if id := middleware.GetReqID(ctx); id != "" {
		return log.WithField("request_id", id)
	}

	return log
}

// ReadJSON decodes request body into v.
func ReadJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return fmt.Errorf("empty request body")
	}

	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("failed to decode body: %w", err)
	}

	return nil
}
