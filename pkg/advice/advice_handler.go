package advice

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/BrayanU12/BudgetMate/pkg/ledger"
)

type CoachDTO struct {
	Advice string `json:"advice"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// GetCoach godoc
// @Summary Free-text Markdown coaching built from the current ledger
// @Tags Advice
// @Produce json
// @Param period query string false "MONTHLY (default) or ANNUAL"
// @Success 200 {object} CoachDTO
// @Router /api/advice [get]
func (h *Handler) GetCoach(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	period := ledger.Monthly
	if strings.EqualFold(r.URL.Query().Get("period"), string(ledger.Annual)) {
		period = ledger.Annual
	}

	text, err := h.service.Coach(r.Context(), period)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(CoachDTO{Advice: text}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// GetPrediction godoc
// @Summary Model-predicted next-month spend with risk and cut suggestions
// @Tags Advice
// @Produce json
// @Success 200 {object} PredictionResult
// @Success 204 "Prediction unavailable"
// @Router /api/advice/prediction [get]
func (h *Handler) GetPrediction(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Prediction(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if result == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(result); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// GetGoalSuggestions godoc
// @Summary Model-suggested savings goals
// @Tags Advice
// @Produce json
// @Success 200 {array} GoalSuggestion
// @Router /api/advice/goals [get]
func (h *Handler) GetGoalSuggestions(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	suggestions, err := h.service.GoalSuggestions(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if suggestions == nil {
		suggestions = []GoalSuggestion{}
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(suggestions); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// GetScoreAdvice godoc
// @Summary Model analysis of the score change with tips
// @Tags Advice
// @Produce json
// @Success 200 {object} ScoreAnalysis
// @Success 204 "Analysis unavailable"
// @Router /api/advice/score [get]
func (h *Handler) GetScoreAdvice(w http.ResponseWriter, r *http.Request) {
	analysis, err := h.service.ScoreAdvice(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if analysis == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(analysis); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
