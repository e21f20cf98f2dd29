package handler

import (
	"net/http"

	"github.com/MassBabyGeek/LiftOff-backend/internal/utils"
)

// RootHandler affiche toutes les routes disponibles de l'API
func RootHandler(w http.ResponseWriter, r *http.Request) {
	routes := map[string]interface{}{
		"name":    "LiftOff API",
		"version": "1.0.0",
		"status":  "running",
		"routes": map[string]interface{}{
			"stats": []map[string]string{
				{"method": "GET", "path": "/users/{userId}/stats", "description": "Statistiques XP d'un utilisateur (niveau, streak, PRs)"},
				{"method": "GET", "path": "/users/{userId}/stats/monthly", "description": "Historique XP mensuel (params: sort=high|low)"},
			},
			"workouts": []map[string]string{
				{"method": "POST", "path": "/users/{userId}/workouts", "description": "Soumettre une séance et régler les XP"},
				{"method": "GET", "path": "/users/{userId}/workouts", "description": "Sessions d'entraînement d'un utilisateur (params: limit)"},
				{"method": "GET", "path": "/users/{userId}/records", "description": "Records personnels courants"},
				{"method": "GET", "path": "/users/{userId}/records/check", "description": "Tester si une perf serait un PR (params: exerciseId, weight, reps)"},
			},
			"liftoffs": []map[string]string{
				{"method": "POST", "path": "/liftoffs", "description": "Lancer un défi Lift-Off"},
				{"method": "GET", "path": "/liftoffs/{id}", "description": "Récupérer un défi (params: userId)"},
				{"method": "POST", "path": "/liftoffs/{id}/accept", "description": "Accepter un défi"},
				{"method": "POST", "path": "/liftoffs/{id}/decline", "description": "Refuser un défi"},
				{"method": "POST", "path": "/liftoffs/{id}/lift", "description": "Soumettre sa charge"},
				{"method": "GET", "path": "/users/{userId}/liftoffs", "description": "Défis d'un utilisateur (params: status=pending|active)"},
			},
			"exercises": []map[string]string{
				{"method": "GET", "path": "/exercises", "description": "Catalogue des exercices"},
			},
			"health": []map[string]string{
				{"method": "GET", "path": "/health", "description": "Health check de l'API"},
			},
		},
		"documentation": map[string]string{
			"description": "API REST pour LiftOff - Gamification d'entraînement (XP, streaks, défis)",
			"contact":     "support@liftoff.app",
		},
	}

	utils.Success(w, routes)
}
