package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/kecarajocomer/v3/internal/infrastructure/http/middleware"
	"github.com/kecarajocomer/v3/internal/ports/inbound"
	"github.com/kecarajocomer/v3/pkg/errors"
)

// MealPlanHandler handles AI meal plan generation requests
type MealPlanHandler struct {
	service  inbound.MealPlanService
	validate *validator.Validate
	logger   *zap.Logger
}

// NewMealPlanHandler creates a new meal plan handler
func NewMealPlanHandler(service inbound.MealPlanService, logger *zap.Logger) *MealPlanHandler {
	return &MealPlanHandler{
		service:  service,
		validate: validator.New(),
		logger:   logger.Named("mealplan-handler"),
	}
}

// GenerateMealPlanRequest is the meal plan generation payload
type GenerateMealPlanRequest struct {
	StartDate string   `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string   `json:"end_date" validate:"required,datetime=2006-01-02"`
	Prompt    string   `json:"prompt" validate:"max=2000"`
	Servings  int      `json:"servings" validate:"min=0,max=20"`
	Dietary   []string `json:"dietary" validate:"max=10"`
}

// GenerateMealPlan handles POST /api/v1/meal-plan/generate
func (h *MealPlanHandler) GenerateMealPlan(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, h.logger, errors.NewUnauthorizedError(""))
		return
	}

	var req GenerateMealPlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, h.logger, errors.NewBadRequestError("invalid request body"))
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		writeError(w, r, h.logger, errors.NewValidationError(err.Error()))
		return
	}

	startDate, _ := time.Parse(dateLayout, req.StartDate)
	endDate, _ := time.Parse(dateLayout, req.EndDate)

	result, err := h.service.GenerateMealPlan(r.Context(), inbound.GenerateMealPlanCommand{
		UserID:    userID,
		StartDate: startDate,
		EndDate:   endDate,
		Prompt:    req.Prompt,
		Servings:  req.Servings,
		Dietary:   req.Dietary,
	})
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeSuccess(w, http.StatusCreated, result)
}
