package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"libris-backend/internal/domain"
	"libris-backend/internal/logger"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		_ = json.NewEncoder(w).Encode(v)
	}
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// writeError maps the domain error kinds onto HTTP statuses. Anything that is
// not a business-facing kind is an internal failure and gets logged.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeJSONError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeJSONError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrConflict):
		writeJSONError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrPermission):
		writeJSONError(w, http.StatusForbidden, err.Error())
	default:
		logger.WithRequest(RequestIDFromContext(r.Context())).Error("request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"error", err)
		writeJSONError(w, http.StatusInternalServerError, "internal error")
	}
}
