package handler

import (
	"context"
	"net/http"
	"time"

	model "github.com/MassBabyGeek/LiftOff-backend/internal/models"
	"github.com/MassBabyGeek/LiftOff-backend/internal/service"
	"github.com/MassBabyGeek/LiftOff-backend/internal/utils"
	"github.com/gorilla/mux"
)

// SubmitWorkoutSession soumet une séance complète et règle les XP
func SubmitWorkoutSession(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID := vars["userId"]

	var payload struct {
		Exercises        []model.ExercisePerformance `json:"exercises"`
		StreakMultiplier float64                     `json:"streakMultiplier"`
		SessionDate      string                      `json:"sessionDate"`
	}
	if err := utils.DecodeJSON(r, &payload); err != nil {
		utils.ErrorSimple(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if len(payload.Exercises) == 0 {
		utils.ErrorSimple(w, http.StatusBadRequest, "at least one exercise is required")
		return
	}
	for _, ex := range payload.Exercises {
		if ex.ExerciseID == "" {
			utils.ErrorSimple(w, http.StatusBadRequest, "exerciseId is required for every exercise")
			return
		}
		if ex.Weight <= 0 && len(ex.SetDetails) == 0 {
			utils.ErrorSimple(w, http.StatusBadRequest, "weight must be positive")
			return
		}
	}

	sessionDate := time.Now()
	if payload.SessionDate != "" {
		parsed, err := time.Parse("2006-01-02", payload.SessionDate)
		if err != nil {
			utils.ErrorSimple(w, http.StatusBadRequest, "sessionDate must be YYYY-MM-DD")
			return
		}
		sessionDate = parsed
	}

	ctx := context.Background()

	result, err := service.SettleSession(ctx, userID, payload.Exercises, payload.StreakMultiplier, sessionDate)
	if err != nil {
		utils.ErrorApp(w, err)
		return
	}

	utils.Success(w, result)
}

// GetUserWorkoutSessions récupère les sessions d'entraînement d'un utilisateur
func GetUserWorkoutSessions(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID := vars["userId"]

	limit := 0
	if v, err := utils.QueryInt(r, "limit"); err == nil {
		limit = v
	}

	ctx := context.Background()

	sessions, err := service.ListWorkoutSessions(ctx, userID, limit)
	if err != nil {
		utils.ErrorApp(w, err)
		return
	}

	utils.Success(w, sessions)
}
