package utils

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MassBabyGeek/LiftOff-backend/internal/apperr"
	"github.com/jackc/pgx/v5"
)

type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Message string      `json:"message,omitempty"`
}

func JSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func Success(w http.ResponseWriter, data interface{}) {
	JSON(w, http.StatusOK, APIResponse{Success: true, Data: data})
}

func Error(w http.ResponseWriter, status int, msg string, err error) {
	LogError("[%d] %s: %v", status, msg, err)
	JSON(w, status, APIResponse{Success: false, Error: msg})
}

func ErrorSimple(w http.ResponseWriter, status int, msg string) {
	LogError("[%d] %s", status, msg)
	JSON(w, status, APIResponse{Success: false, Error: msg})
}

// ErrorApp mappe une erreur de service vers la bonne réponse HTTP:
// les erreurs métier (apperr) gardent leur message, pgx.ErrNoRows devient
// un 404, tout le reste est un 500 générique.
func ErrorApp(w http.ResponseWriter, err error) {
	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		ErrorSimple(w, apperr.HTTPStatus(appErr), appErr.Message)
		return
	}
	if errors.Is(err, pgx.ErrNoRows) {
		ErrorSimple(w, http.StatusNotFound, "resource not found")
		return
	}
	Error(w, http.StatusInternalServerError, "internal server error", err)
}

func Message(w http.ResponseWriter, msg string) {
	JSON(w, http.StatusOK, APIResponse{Success: true, Message: msg})
}
