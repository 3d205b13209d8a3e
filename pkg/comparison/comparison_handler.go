package comparison

import (
	"encoding/json"
	"net/http"
)

type ReportDTO struct {
	Percentile        int     `json:"percentile"`
	BetterThanAverage bool    `json:"betterThanAverage"`
	SavingsRate       float64 `json:"savingsRate"`
	BenchmarkRate     float64 `json:"benchmarkRate"`
	FoodRatio         float64 `json:"foodRatio"`
	FoodBenchmark     float64 `json:"foodBenchmark"`
	Headline          string  `json:"headline"`
	FoodMessage       string  `json:"foodMessage"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// GetComparison godoc
// @Summary Simulated community percentile for the savings rate plus a food-spend comparison
// @Tags Comparison
// @Produce json
// @Success 200 {object} ReportDTO
// @Router /api/comparison [get]
func (h *Handler) GetComparison(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	report, err := h.service.Compare(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dto := ReportDTO{
		Percentile:        report.Percentile,
		BetterThanAverage: report.BetterThanAverage,
		SavingsRate:       report.SavingsRate,
		BenchmarkRate:     report.BenchmarkRate,
		FoodRatio:         report.FoodRatio,
		FoodBenchmark:     report.FoodBenchmark,
		Headline:          report.Headline,
		FoodMessage:       report.FoodMessage,
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dto); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
