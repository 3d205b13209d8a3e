package score

import (
	"encoding/json"
	"net/http"

	log "github.com/sirupsen/logrus"
)

type BreakdownDTO struct {
	Savings   float64 `json:"savings"`
	Stability float64 `json:"stability"`
	Control   float64 `json:"control"`
	Solvency  float64 `json:"solvency"`
}

type ReportDTO struct {
	Score         int          `json:"score"`
	Breakdown     BreakdownDTO `json:"breakdown"`
	PreviousScore int          `json:"previousScore"`
	Delta         int          `json:"delta"`
	Label         string       `json:"label"`
	Description   string       `json:"description"`
}

type SnapshotResultDTO struct {
	Score int `json:"score"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// GetScore godoc
// @Summary Composite financial score with sub-scores and weekly delta
// @Tags Score
// @Produce json
// @Success 200 {object} ReportDTO
// @Router /api/score [get]
func (h *Handler) GetScore(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	report, err := h.service.Report(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dto := ReportDTO{
		Score: report.Score,
		Breakdown: BreakdownDTO{
			Savings:   report.Breakdown.Savings,
			Stability: report.Breakdown.Stability,
			Control:   report.Breakdown.Control,
			Solvency:  report.Breakdown.Solvency,
		},
		PreviousScore: report.PreviousScore,
		Delta:         report.Delta,
		Label:         report.Label,
		Description:   report.Description,
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dto); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// Snapshot godoc
// @Summary Persist the live score as the new weekly baseline
// @Tags Score
// @Produce json
// @Success 200 {object} SnapshotResultDTO
// @Router /api/score/snapshot [post]
func (h *Handler) Snapshot(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	log.Debug("Snapshotting score on request")

	stored, err := h.service.Snapshot(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(SnapshotResultDTO{Score: stored}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
