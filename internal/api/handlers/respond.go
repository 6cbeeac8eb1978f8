package handlers

import (
	"encoding/json"
	"net/http"

	apperrors "github.com/gregory-bot/telecurehospital/pkg/errors"
)

func respondWithJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(payload)
}

func respondWithError(w http.ResponseWriter, statusCode int, message string) {
	respondWithJSON(w, statusCode, map[string]string{"error": message})
}

// respondWithAppError maps err onto its HTTP status. Internal details stay in the logs.
func respondWithAppError(w http.ResponseWriter, err error, fallback string) {
	appErr, ok := apperrors.AsAppError(err)
	if !ok {
		respondWithError(w, http.StatusInternalServerError, fallback)
		return
	}
	status := appErr.HTTPStatus()
	if status >= http.StatusInternalServerError {
		respondWithError(w, status, fallback)
		return
	}
	respondWithError(w, status, appErr.Message)
}
