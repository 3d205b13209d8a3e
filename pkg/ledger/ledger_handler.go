package ledger

import (
	"encoding/json"
	"net/http"
	"strings"
)

type SummaryDTO struct {
	TotalIncome      float64 `json:"totalIncome"`
	TotalExpenses    float64 `json:"totalExpenses"`
	TotalSavings     float64 `json:"totalSavings"`
	Balance          float64 `json:"balance"`
	PotentialSavings float64 `json:"potentialSavings"`
	SavingsRate      float64 `json:"savingsRate"`
}

type CategoryTotalDTO struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}

type ViewDTO struct {
	Period    string             `json:"period"`
	Summary   SummaryDTO         `json:"summary"`
	Breakdown []CategoryTotalDTO `json:"breakdown"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// GetSummary godoc
// @Summary Aggregated totals and expense breakdown for a period
// @Tags Summary
// @Produce json
// @Param period query string false "MONTHLY (default) or ANNUAL"
// @Success 200 {object} ViewDTO
// @Router /api/summary [get]
func (h *Handler) GetSummary(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	period := Monthly
	if strings.EqualFold(r.URL.Query().Get("period"), string(Annual)) {
		period = Annual
	}

	view, err := h.service.GetView(r.Context(), period)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	breakdown := make([]CategoryTotalDTO, 0, len(view.Breakdown))
	for _, ct := range view.Breakdown {
		breakdown = append(breakdown, CategoryTotalDTO{Category: ct.Category, Amount: ct.Amount})
	}

	dto := ViewDTO{
		Period: string(view.Period),
		Summary: SummaryDTO{
			TotalIncome:      view.Summary.TotalIncome,
			TotalExpenses:    view.Summary.TotalExpenses,
			TotalSavings:     view.Summary.TotalSavings,
			Balance:          view.Summary.RawBalance,
			PotentialSavings: view.Summary.PotentialSavings,
			SavingsRate:      view.Summary.SavingsRate,
		},
		Breakdown: breakdown,
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dto); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
