package handler

import (
	"context"
	"net/http"

	"github.com/MassBabyGeek/LiftOff-backend/internal/service"
	"github.com/MassBabyGeek/LiftOff-backend/internal/utils"
	"github.com/gorilla/mux"
)

// CreateLiftOff lance un défi Lift-Off entre deux utilisateurs
func CreateLiftOff(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		ChallengerID string `json:"challengerId"`
		ChallengedID string `json:"challengedId"`
		ExerciseID   string `json:"exerciseId"`
		WagerXP      int    `json:"wagerXp"`
	}
	if err := utils.DecodeJSON(r, &payload); err != nil {
		utils.ErrorSimple(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if payload.ChallengerID == "" || payload.ChallengedID == "" || payload.ExerciseID == "" {
		utils.ErrorSimple(w, http.StatusBadRequest, "challengerId, challengedId and exerciseId are required")
		return
	}
	if payload.WagerXP <= 0 {
		utils.ErrorSimple(w, http.StatusBadRequest, "wagerXp must be positive")
		return
	}

	ctx := context.Background()

	challenge, err := service.CreateLiftOff(ctx, payload.ChallengerID, payload.ChallengedID, payload.ExerciseID, payload.WagerXP)
	if err != nil {
		utils.ErrorApp(w, err)
		return
	}

	utils.Success(w, challenge)
}

// GetLiftOff récupère un défi par son ID
func GetLiftOff(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	challengeID := vars["id"]
	userID := r.URL.Query().Get("userId")

	if userID == "" {
		utils.ErrorSimple(w, http.StatusBadRequest, "userId query param is required")
		return
	}

	ctx := context.Background()

	challenge, err := service.GetLiftOff(ctx, challengeID, userID)
	if err != nil {
		utils.ErrorApp(w, err)
		return
	}

	utils.Success(w, challenge)
}

// AcceptLiftOff accepte un défi en attente
func AcceptLiftOff(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	challengeID := vars["id"]

	var payload struct {
		UserID string `json:"userId"`
	}
	if err := utils.DecodeJSON(r, &payload); err != nil {
		utils.ErrorSimple(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	ctx := context.Background()

	challenge, err := service.AcceptLiftOff(ctx, challengeID, payload.UserID)
	if err != nil {
		utils.ErrorApp(w, err)
		return
	}

	utils.Success(w, challenge)
}

// DeclineLiftOff refuse un défi en attente
func DeclineLiftOff(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	challengeID := vars["id"]

	var payload struct {
		UserID string `json:"userId"`
	}
	if err := utils.DecodeJSON(r, &payload); err != nil {
		utils.ErrorSimple(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	ctx := context.Background()

	challenge, err := service.DeclineLiftOff(ctx, challengeID, payload.UserID)
	if err != nil {
		utils.ErrorApp(w, err)
		return
	}

	utils.Success(w, challenge)
}

// SubmitLiftOffWeight soumet la charge soulevée par un participant
func SubmitLiftOffWeight(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	challengeID := vars["id"]

	var payload struct {
		UserID string  `json:"userId"`
		Weight float64 `json:"weight"`
	}
	if err := utils.DecodeJSON(r, &payload); err != nil {
		utils.ErrorSimple(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if payload.Weight <= 0 {
		utils.ErrorSimple(w, http.StatusBadRequest, "weight must be positive")
		return
	}

	ctx := context.Background()

	challenge, err := service.SubmitLiftOffWeight(ctx, challengeID, payload.UserID, payload.Weight)
	if err != nil {
		utils.ErrorApp(w, err)
		return
	}

	utils.Success(w, challenge)
}

// GetUserLiftOffs récupère les défis d'un utilisateur, filtrables par statut
func GetUserLiftOffs(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID := vars["userId"]
	statusFilter := r.URL.Query().Get("status")

	ctx := context.Background()

	challenges, err := service.ListLiftOffs(ctx, userID, statusFilter)
	if err != nil {
		utils.ErrorApp(w, err)
		return
	}

	utils.Success(w, challenges)
}
