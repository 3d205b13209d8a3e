package app

import (
	"github.com/BrayanU12/BudgetMate/internal/config"
	"github.com/gorilla/mux"
)

// RegisterRoutes registers all API endpoints.
func RegisterRoutes(r *mux.Router, deps *Dependencies, cfg config.Application) {

	// Auth (mock: session is the client-held uid header)
	r.HandleFunc("/api/auth/register", deps.UserHandler.Register).Methods("POST")
	r.HandleFunc("/api/auth/login", deps.UserHandler.Login).Methods("POST")

	// User management
	r.HandleFunc("/api/user/current", deps.UserHandler.CurrentUser).Methods("GET")
	r.HandleFunc("/api/user/current", deps.UserHandler.UpdateSettings).Methods("PUT")
	r.HandleFunc("/api/user/current", deps.UserHandler.DeleteCurrentUser).Methods("DELETE")

	// Ledger
	r.HandleFunc("/api/transaction", deps.TransactionHandler.GetAll).Methods("GET")
	r.HandleFunc("/api/transaction", deps.TransactionHandler.Register).Methods("POST")
	r.HandleFunc("/api/transaction/categories", deps.TransactionHandler.Categories).Methods("GET")
	r.HandleFunc("/api/transaction/{id}", deps.TransactionHandler.Delete).Methods("DELETE")
	r.HandleFunc("/api/summary", deps.LedgerHandler.GetSummary).Methods("GET")

	// Derived metrics
	r.HandleFunc("/api/health", deps.HealthHandler.GetReport).Methods("GET")
	r.HandleFunc("/api/score", deps.ScoreHandler.GetScore).Methods("GET")
	r.HandleFunc("/api/score/snapshot", deps.ScoreHandler.Snapshot).Methods("POST")
	r.HandleFunc("/api/comparison", deps.ComparisonHandler.GetComparison).Methods("GET")

	// Goals
	r.HandleFunc("/api/goal", deps.GoalHandler.GetAll).Methods("GET")
	r.HandleFunc("/api/goal", deps.GoalHandler.Create).Methods("POST")
	r.HandleFunc("/api/goal/{id}", deps.GoalHandler.Delete).Methods("DELETE")
	r.HandleFunc("/api/goal/{id}/deposit", deps.GoalHandler.Deposit).Methods("POST")

	// Advice
	r.HandleFunc("/api/advice", deps.AdviceHandler.GetCoach).Methods("GET")
	r.HandleFunc("/api/advice/prediction", deps.AdviceHandler.GetPrediction).Methods("GET")
	r.HandleFunc("/api/advice/goals", deps.AdviceHandler.GetGoalSuggestions).Methods("GET")
	r.HandleFunc("/api/advice/score", deps.AdviceHandler.GetScoreAdvice).Methods("GET")
}
