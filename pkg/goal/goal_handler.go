package goal

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type GoalDTO struct {
	ID              string     `json:"id,omitempty"`
	Name            string     `json:"name"`
	TargetAmount    float64    `json:"targetAmount"`
	CurrentAmount   float64    `json:"currentAmount"`
	Emoji           string     `json:"emoji"`
	Color           string     `json:"color,omitempty"`
	Deadline        *time.Time `json:"deadline,omitempty"`
	Progress        float64    `json:"progress"`
	Completed       bool       `json:"completed"`
	EstimatedMonths int        `json:"estimatedMonths"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// Create godoc
// @Summary Create a savings goal
// @Tags Goal
// @Accept json
// @Produce json
// @Param goal body GoalDTO true "Goal"
// @Success 201 {object} GoalDTO
// @Failure 400 {string} string "Invalid goal"
// @Router /api/goal [post]
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log.Debug("Creating new goal")
	w.Header().Set("Content-Type", "application/json")

	var dto GoalDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	created, err := h.service.Create(r.Context(), dto.Name, dto.TargetAmount, dto.Emoji, dto.Color, dto.Deadline)
	if err != nil {
		if errors.Is(err, ErrEmptyName) || errors.Is(err, ErrNonPositiveTarget) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(toDTO(created)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// GetAll godoc
// @Summary List all goals of the current user with progress figures
// @Tags Goal
// @Produce json
// @Success 200 {array} GoalDTO
// @Router /api/goal [get]
func (h *Handler) GetAll(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	statuses, err := h.service.List(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dtos := make([]GoalDTO, 0, len(statuses))
	for _, status := range statuses {
		dtos = append(dtos, toDTO(status))
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// Deposit godoc
// @Summary Add the simulated fixed-fraction deposit to a goal
// @Tags Goal
// @Produce json
// @Param id path string true "Goal ID"
// @Success 200 {object} GoalDTO
// @Failure 404 {string} string "Goal not found"
// @Router /api/goal/{id}/deposit [post]
func (h *Handler) Deposit(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	id := mux.Vars(r)["id"]

	status, err := h.service.Deposit(r.Context(), id)
	if err != nil {
		if errors.Is(err, ErrGoalNotFound) {
			http.Error(w, "Goal not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(toDTO(status)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// Delete godoc
// @Summary Delete a goal
// @Tags Goal
// @Param id path string true "Goal ID"
// @Success 204
// @Failure 404 {string} string "Goal not found"
// @Router /api/goal/{id} [delete]
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	ok, err := h.service.Delete(r.Context(), id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !ok {
		http.Error(w, "Goal not found", http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toDTO(status Status) GoalDTO {
	return GoalDTO{
		ID:              status.Goal.ID,
		Name:            status.Goal.Name,
		TargetAmount:    status.Goal.TargetAmount,
		CurrentAmount:   status.Goal.CurrentAmount,
		Emoji:           status.Goal.Emoji,
		Color:           status.Goal.Color,
		Deadline:        status.Goal.Deadline,
		Progress:        status.Progress,
		Completed:       status.Completed,
		EstimatedMonths: status.EstimatedMonths,
	}
}
