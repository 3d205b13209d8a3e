package user

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/BrayanU12/BudgetMate/internal/rest"
	log "github.com/sirupsen/logrus"
)

type UserDTO struct {
	Uid       string      `json:"uid"`
	Name      string      `json:"name"`
	Email     string      `json:"email"`
	AvatarUrl string      `json:"avatarUrl,omitempty"`
	Settings  SettingsDTO `json:"settings"`
}

type SettingsDTO struct {
	Currency         string `json:"currency"`
	Locale           string `json:"locale"`
	ColombianMode    bool   `json:"isColombianMode"`
	PaymentFrequency string `json:"paymentFrequency"`
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type Handler struct {
	userService Service
}

func NewHandler(userService Service) *Handler {
	return &Handler{userService: userService}
}

// Register godoc
// @Summary Register a new user
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration data"
// @Success 201 {object} UserDTO
// @Failure 400 {object} rest.ErrorResponse
// @Failure 409 {object} rest.ErrorResponse "Email already registered"
// @Router /api/auth/register [post]
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	log.Debug("Registering new user")

	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body format")
		return
	}

	created, err := h.userService.Register(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, ErrEmailTaken) {
			writeError(w, http.StatusConflict, "Email is already registered")
			return
		}
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(toDTO(created)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// Login godoc
// @Summary Log in with email and password
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Credentials"
// @Success 200 {object} UserDTO
// @Failure 401 {object} rest.ErrorResponse "Invalid credentials"
// @Router /api/auth/login [post]
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body format")
		return
	}

	u, err := h.userService.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(toDTO(u)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// CurrentUser godoc
// @Summary Get the current user
// @Tags User
// @Produce json
// @Success 200 {object} UserDTO
// @Failure 403 {string} string "User not found"
// @Router /api/user/current [get]
func (h *Handler) CurrentUser(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	u, err := h.userService.GetCurrentUser(r.Context())
	if err != nil {
		writeError(w, http.StatusForbidden, "User not found")
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(toDTO(u)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// UpdateSettings godoc
// @Summary Update current user settings
// @Tags User
// @Accept json
// @Produce json
// @Param settings body SettingsDTO true "Settings"
// @Success 200 {object} UserDTO
// @Failure 400 {object} rest.ErrorResponse
// @Router /api/user/current [put]
func (h *Handler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var dto SettingsDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body format")
		return
	}

	updated, err := h.userService.UpdateSettings(r.Context(), Settings{
		Currency:         dto.Currency,
		Locale:           dto.Locale,
		ColombianMode:    dto.ColombianMode,
		PaymentFrequency: PaymentFrequency(dto.PaymentFrequency),
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(toDTO(updated)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// DeleteCurrentUser godoc
// @Summary Delete the current user and all of their data
// @Tags User
// @Success 204
// @Failure 403 {string} string "No user in session"
// @Router /api/user/current [delete]
func (h *Handler) DeleteCurrentUser(w http.ResponseWriter, r *http.Request) {
	log.Debug("Deleting current user")

	if err := h.userService.DeleteCurrentUser(r.Context()); err != nil {
		if errors.Is(err, ErrNoUser) {
			writeError(w, http.StatusForbidden, "No user in session")
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toDTO(u User) UserDTO {
	return UserDTO{
		Uid:       u.Uid,
		Name:      u.Name,
		Email:     u.Email,
		AvatarUrl: u.AvatarUrl,
		Settings: SettingsDTO{
			Currency:         u.Settings.Currency,
			Locale:           u.Settings.Locale,
			ColombianMode:    u.Settings.ColombianMode,
			PaymentFrequency: string(u.Settings.PaymentFrequency),
		},
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(rest.ErrorResponse{Error: msg}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
