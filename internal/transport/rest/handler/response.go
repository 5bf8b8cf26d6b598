package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"framequiz/internal/model"
)

// All responses wrap success/failure: {"success": true, ...} on the happy
// path, {"success": false, "error": "..."} otherwise.

func writeSuccess(w http.ResponseWriter, status int, data map[string]interface{}) {
	body := map[string]interface{}{"success": true}
	for k, v := range data {
		body[k] = v
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": false,
		"error":   message,
	})
}

// writeServiceError maps the domain error taxonomy onto HTTP statuses.
// Unknown errors (storage and the like) surface as a generic 500.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, model.ErrInvalidInput), errors.Is(err, model.ErrQuestionNotFound):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, model.ErrSessionNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, model.ErrAlreadyFinalized):
		writeError(w, http.StatusConflict, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}
