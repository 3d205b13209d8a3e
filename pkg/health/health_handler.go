package health

import (
	"encoding/json"
	"net/http"
)

type ClassificationDTO struct {
	Needs float64 `json:"needs"`
	Wants float64 `json:"wants"`
	// Display ratios are clamped to [0,1]; the raw ratios are kept so the
	// client can show true overshoot when it wants to.
	NeedsRatio             float64 `json:"needsRatio"`
	WantsRatio             float64 `json:"wantsRatio"`
	SavingsAllocationRatio float64 `json:"savingsAllocationRatio"`
	RawNeedsRatio          float64 `json:"rawNeedsRatio"`
	RawWantsRatio          float64 `json:"rawWantsRatio"`
}

type AlertDTO struct {
	Message  string `json:"message"`
	Severity string `json:"severity"`
}

type MoodDTO struct {
	State   string `json:"state"`
	Emoji   string `json:"emoji"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

type StatusDTO struct {
	Label       string `json:"label"`
	Description string `json:"description"`
}

type ProjectionDTO struct {
	OneYear   float64 `json:"oneYear"`
	FiveYears float64 `json:"fiveYears"`
}

type ReportDTO struct {
	SavingsRate    float64           `json:"savingsRate"`
	Classification ClassificationDTO `json:"classification"`
	Alerts         []AlertDTO        `json:"alerts"`
	Mood           MoodDTO           `json:"mood"`
	Status         StatusDTO         `json:"status"`
	Projection     ProjectionDTO     `json:"projection"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// GetReport godoc
// @Summary Financial health report: 50/30/20 partition, alerts, mood, projection
// @Tags Health
// @Produce json
// @Success 200 {object} ReportDTO
// @Router /api/health [get]
func (h *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	report, err := h.service.Report(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	alerts := make([]AlertDTO, 0, len(report.Alerts))
	for _, alert := range report.Alerts {
		alerts = append(alerts, AlertDTO{Message: alert.Message, Severity: string(alert.Severity)})
	}

	dto := ReportDTO{
		SavingsRate: report.Summary.SavingsRate,
		Classification: ClassificationDTO{
			Needs:                  report.Classification.Needs,
			Wants:                  report.Classification.Wants,
			NeedsRatio:             Clamp01(report.Classification.NeedsRatio),
			WantsRatio:             Clamp01(report.Classification.WantsRatio),
			SavingsAllocationRatio: Clamp01(report.Classification.SavingsAllocationRatio),
			RawNeedsRatio:          report.Classification.NeedsRatio,
			RawWantsRatio:          report.Classification.WantsRatio,
		},
		Alerts: alerts,
		Mood: MoodDTO{
			State:   string(report.Mood.State),
			Emoji:   report.Mood.Emoji,
			Title:   report.Mood.Title,
			Message: report.Mood.Message,
		},
		Status: StatusDTO{
			Label:       report.Status.Label,
			Description: report.Status.Description,
		},
		Projection: ProjectionDTO{
			OneYear:   report.Projection.OneYear,
			FiveYears: report.Projection.FiveYears,
		},
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dto); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
