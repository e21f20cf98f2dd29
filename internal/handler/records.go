package handler

import (
	"context"
	"net/http"

	"github.com/MassBabyGeek/LiftOff-backend/internal/service"
	"github.com/MassBabyGeek/LiftOff-backend/internal/utils"
	"github.com/gorilla/mux"
)

// GetUserRecords récupère les records personnels courants d'un utilisateur
func GetUserRecords(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID := vars["userId"]

	ctx := context.Background()

	records, err := service.ListPersonalRecords(ctx, userID)
	if err != nil {
		utils.ErrorApp(w, err)
		return
	}

	utils.Success(w, records)
}

// CheckPR teste si une performance battrait le record courant, sans rien écrire
func CheckPR(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID := vars["userId"]
	exerciseID := r.URL.Query().Get("exerciseId")

	if exerciseID == "" {
		utils.ErrorSimple(w, http.StatusBadRequest, "exerciseId query param is required")
		return
	}

	weight, err := utils.QueryFloat(r, "weight")
	if err != nil {
		utils.ErrorSimple(w, http.StatusBadRequest, "weight query param is required")
		return
	}

	reps, err := utils.QueryInt(r, "reps")
	if err != nil {
		utils.ErrorSimple(w, http.StatusBadRequest, "reps query param is required")
		return
	}

	ctx := context.Background()

	check, err := service.DetectPR(ctx, userID, exerciseID, weight, reps)
	if err != nil {
		utils.ErrorApp(w, err)
		return
	}

	utils.Success(w, check)
}

// GetExercises récupère le catalogue des exercices
func GetExercises(w http.ResponseWriter, r *http.Request) {
	ctx := context.Background()

	exercises, err := service.ListExercises(ctx)
	if err != nil {
		utils.ErrorApp(w, err)
		return
	}

	utils.Success(w, exercises)
}
