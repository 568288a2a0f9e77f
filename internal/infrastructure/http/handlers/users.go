package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	userapp "github.com/ladlehq/ladle/internal/application/user"
	"github.com/ladlehq/ladle/internal/domain/user"
	"github.com/ladlehq/ladle/internal/infrastructure/http/middleware"
	"github.com/ladlehq/ladle/pkg/errors"
)

// UserHandlers handles user profile REST API requests
type UserHandlers struct {
	userService *userapp.UserService
	validate    *validator.Validate
	logger      *zap.Logger
}

// NewUserHandlers creates a new user handlers instance
func NewUserHandlers(userService *userapp.UserService, logger *zap.Logger) *UserHandlers {
	return &UserHandlers{
		userService: userService,
		validate:    validator.New(),
		logger:      logger,
	}
}

type registerProfileRequest struct {
	Name string `json:"name" validate:"required,max=200"`
}

type updateProfileRequest struct {
	Name              string `json:"name" validate:"omitempty,max=200"`
	MeasurementSystem string `json:"measurement_system" validate:"omitempty,oneof=metric imperial"`
	DefaultServings   int    `json:"default_servings" validate:"omitempty,min=1,max=100"`
}

// RegisterProfile handles POST /api/v1/profile. The caller's identity
// comes from the verified token; only display fields are in the body.
func (h *UserHandlers) RegisterProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, h.logger, r, errors.NewUnauthorizedError(""))
		return
	}

	email, ok := middleware.UserEmailFromContext(r.Context())
	if !ok {
		writeError(w, h.logger, r, errors.NewUnauthorizedError("Token missing email claim"))
		return
	}

	var req registerProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, h.logger, r, errors.NewBadRequestError("Invalid JSON body"))
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		writeError(w, h.logger, r, errors.NewValidationError(err.Error()))
		return
	}

	dto, err := h.userService.RegisterProfile(r.Context(), userID, email, req.Name)
	if err != nil {
		writeError(w, h.logger, r, err)
		return
	}

	writeJSON(w, h.logger, http.StatusCreated, dto)
}

// GetProfile handles GET /api/v1/profile
func (h *UserHandlers) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, h.logger, r, errors.NewUnauthorizedError(""))
		return
	}

	dto, err := h.userService.GetProfile(r.Context(), userID)
	if err != nil {
		writeError(w, h.logger, r, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, dto)
}

// UpdateProfile handles PUT /api/v1/profile
func (h *UserHandlers) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, h.logger, r, errors.NewUnauthorizedError(""))
		return
	}

	var req updateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, h.logger, r, errors.NewBadRequestError("Invalid JSON body"))
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		writeError(w, h.logger, r, errors.NewValidationError(err.Error()))
		return
	}

	current, err := h.userService.GetProfile(r.Context(), userID)
	if err != nil {
		writeError(w, h.logger, r, err)
		return
	}

	prefs := user.Preferences{
		MeasurementSystem: user.MeasurementSystem(current.MeasurementSystem),
		DefaultServings:   current.DefaultServings,
	}
	if req.MeasurementSystem != "" {
		prefs.MeasurementSystem = user.MeasurementSystem(req.MeasurementSystem)
	}
	if req.DefaultServings != 0 {
		prefs.DefaultServings = req.DefaultServings
	}

	dto, err := h.userService.UpdateProfile(r.Context(), userID, req.Name, prefs)
	if err != nil {
		writeError(w, h.logger, r, err)
		return
	}

	writeJSON(w, h.logger, http.StatusOK, dto)
}
