package api

import (
	"net/http"

	"github.com/MassBabyGeek/LiftOff-backend/internal/handler"
	"github.com/MassBabyGeek/LiftOff-backend/internal/middleware"
	"github.com/MassBabyGeek/LiftOff-backend/internal/utils"
	"github.com/fatih/color"
	"github.com/gorilla/mux"
)

func SetupRouter() http.Handler {
	r := mux.NewRouter()
	r.Use(middleware.LoggerMiddleware)

	// Root - API documentation
	r.HandleFunc("/", handler.RootHandler).Methods(http.MethodGet)

	// Stats
	r.HandleFunc("/users/{userId}/stats", handler.GetUserStats).Methods(http.MethodGet)
	r.HandleFunc("/users/{userId}/stats/monthly", handler.GetMonthlyXPHistory).Methods(http.MethodGet)

	// Workout sessions
	r.HandleFunc("/users/{userId}/workouts", handler.SubmitWorkoutSession).Methods(http.MethodPost)
	r.HandleFunc("/users/{userId}/workouts", handler.GetUserWorkoutSessions).Methods(http.MethodGet)

	// Personal records
	r.HandleFunc("/users/{userId}/records", handler.GetUserRecords).Methods(http.MethodGet)
	r.HandleFunc("/users/{userId}/records/check", handler.CheckPR).Methods(http.MethodGet)

	// Lift-Off challenges
	r.HandleFunc("/liftoffs", handler.CreateLiftOff).Methods(http.MethodPost)
	r.HandleFunc("/liftoffs/{id}", handler.GetLiftOff).Methods(http.MethodGet)
	r.HandleFunc("/liftoffs/{id}/accept", handler.AcceptLiftOff).Methods(http.MethodPost)
	r.HandleFunc("/liftoffs/{id}/decline", handler.DeclineLiftOff).Methods(http.MethodPost)
	r.HandleFunc("/liftoffs/{id}/lift", handler.SubmitLiftOffWeight).Methods(http.MethodPost)
	r.HandleFunc("/users/{userId}/liftoffs", handler.GetUserLiftOffs).Methods(http.MethodGet)

	// Exercises
	r.HandleFunc("/exercises", handler.GetExercises).Methods(http.MethodGet)

	// Health check
	r.HandleFunc("/health", handler.HealthCheck).Methods(http.MethodGet)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		utils.LogError("404 Not Found: %s %s", r.Method, r.URL.Path)
		color.Yellow("[404] %s %s (route non trouvée)", r.Method, r.URL.Path)
		http.Error(w, "Route not found", http.StatusNotFound)
	})

	return r
}
