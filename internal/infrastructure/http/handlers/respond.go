// Package handlers provides HTTP handlers for the REST API
package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/ladlehq/ladle/pkg/errors"
)

// writeJSON writes a JSON response
func writeJSON(w http.ResponseWriter, logger *zap.Logger, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("Failed to encode JSON response", zap.Error(err))
	}
}

// writeError maps an error to its HTTP status and writes the standard
// error envelope.
func writeError(w http.ResponseWriter, logger *zap.Logger, r *http.Request, err error) {
	appErr := errors.Wrap(err, "request failed")

	if appErr.StatusCode() >= http.StatusInternalServerError {
		logger.Error("Request error",
			zap.String("path", r.URL.Path),
			zap.String("code", string(appErr.Code)),
			zap.Error(err),
		)
	}

	requestID := r.Header.Get("X-Request-ID")
	writeJSON(w, logger, appErr.StatusCode(), errors.ToErrorResponse(appErr, requestID))
}
