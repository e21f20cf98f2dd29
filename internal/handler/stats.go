package handler

import (
	"context"
	"net/http"

	"github.com/MassBabyGeek/LiftOff-backend/internal/service"
	"github.com/MassBabyGeek/LiftOff-backend/internal/utils"
	"github.com/gorilla/mux"
)

// GetUserStats récupère les statistiques XP d'un utilisateur
func GetUserStats(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID := vars["userId"]

	ctx := context.Background()

	stats, err := service.GetUserStats(ctx, userID)
	if err != nil {
		utils.ErrorApp(w, err)
		return
	}

	utils.Success(w, stats)
}

// GetMonthlyXPHistory récupère l'historique XP mensuel d'un utilisateur
func GetMonthlyXPHistory(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	userID := vars["userId"]
	sortOrder := r.URL.Query().Get("sort")

	ctx := context.Background()

	history, err := service.MonthlyXPHistory(ctx, userID, sortOrder)
	if err != nil {
		utils.ErrorApp(w, err)
		return
	}

	utils.Success(w, history)
}
