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

const dateLayout = "2006-01-02"

// ShoppingHandler handles shopping list generation requests
type ShoppingHandler struct {
	service  inbound.ShoppingListService
	validate *validator.Validate
	logger   *zap.Logger
}

// NewShoppingHandler creates a new shopping handler
func NewShoppingHandler(service inbound.ShoppingListService, logger *zap.Logger) *ShoppingHandler {
	return &ShoppingHandler{
		service:  service,
		validate: validator.New(),
		logger:   logger.Named("shopping-handler"),
	}
}

// GenerateShoppingListRequest is the shopping list generation payload
type GenerateShoppingListRequest struct {
	StartDate string `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate   string `json:"end_date" validate:"required,datetime=2006-01-02"`
}

// GenerateShoppingList handles POST /api/v1/shopping-list/generate
func (h *ShoppingHandler) GenerateShoppingList(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, r, h.logger, errors.NewUnauthorizedError(""))
		return
	}

	var req GenerateShoppingListRequest
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

	result, err := h.service.GenerateShoppingList(r.Context(), inbound.GenerateShoppingListCommand{
		UserID:    userID,
		StartDate: startDate,
		EndDate:   endDate,
	})
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	writeSuccess(w, http.StatusOK, result)
}
