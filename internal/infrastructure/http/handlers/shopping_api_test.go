package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/zap"

	"github.com/kecarajocomer/v3/internal/domain/shopping"
	"github.com/kecarajocomer/v3/internal/infrastructure/http/middleware"
	"github.com/kecarajocomer/v3/internal/ports/inbound"
	"github.com/kecarajocomer/v3/pkg/errors"
)

type stubShoppingService struct {
	result  *inbound.ShoppingListDTO
	err     error
	lastCmd inbound.GenerateShoppingListCommand
}

func (s *stubShoppingService) GenerateShoppingList(ctx context.Context, cmd inbound.GenerateShoppingListCommand) (*inbound.ShoppingListDTO, error) {
	s.lastCmd = cmd
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

type ShoppingHandlerTestSuite struct {
	suite.Suite
	service *stubShoppingService
	handler *ShoppingHandler
	userID  uuid.UUID
}

func (s *ShoppingHandlerTestSuite) SetupTest() {
	s.service = &stubShoppingService{
		result: &inbound.ShoppingListDTO{
			ShoppingList: []shopping.ShoppingListItem{},
			Summary:      shopping.Summary{},
			MealPlanDates: inbound.MealPlanDatesDTO{
				StartDate: "2025-03-10",
				EndDate:   "2025-03-16",
			},
		},
	}
	s.handler = NewShoppingHandler(s.service, zap.NewNop())
	s.userID = uuid.New()
}

func (s *ShoppingHandlerTestSuite) request(body string, authenticated bool) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/shopping-list/generate", strings.NewReader(body))
	if authenticated {
		ctx := context.WithValue(req.Context(), middleware.UserIDKey, s.userID)
		req = req.WithContext(ctx)
	}

	recorder := httptest.NewRecorder()
	s.handler.GenerateShoppingList(recorder, req)
	return recorder
}

func (s *ShoppingHandlerTestSuite) TestGenerateShoppingList_ShouldReturnEnvelopeOnSuccess() {
	// Act
	recorder := s.request(`{"start_date":"2025-03-10","end_date":"2025-03-16"}`, true)

	// Assert
	s.Equal(http.StatusOK, recorder.Code)

	var response APIResponse
	s.Require().NoError(json.Unmarshal(recorder.Body.Bytes(), &response))
	s.True(response.Success)
	s.Nil(response.Error)

	s.Equal(s.userID, s.service.lastCmd.UserID)
	s.Equal("2025-03-10", s.service.lastCmd.StartDate.Format("2006-01-02"))
	s.Equal("2025-03-16", s.service.lastCmd.EndDate.Format("2006-01-02"))
}

func (s *ShoppingHandlerTestSuite) TestGenerateShoppingList_ShouldRejectUnauthenticatedRequest() {
	// Act
	recorder := s.request(`{"start_date":"2025-03-10","end_date":"2025-03-16"}`, false)

	// Assert
	s.Equal(http.StatusUnauthorized, recorder.Code)
}

func (s *ShoppingHandlerTestSuite) TestGenerateShoppingList_ShouldRejectMalformedBody() {
	// Act
	recorder := s.request(`{"start_date":`, true)

	// Assert
	s.Equal(http.StatusBadRequest, recorder.Code)
}

func (s *ShoppingHandlerTestSuite) TestGenerateShoppingList_ShouldRejectBadDateFormat() {
	// Act
	recorder := s.request(`{"start_date":"10/03/2025","end_date":"2025-03-16"}`, true)

	// Assert
	s.Equal(http.StatusBadRequest, recorder.Code)

	var response APIResponse
	s.Require().NoError(json.Unmarshal(recorder.Body.Bytes(), &response))
	s.False(response.Success)
	s.Require().NotNil(response.Error)
	s.Equal(errors.CodeValidationFailed, response.Error.Code)
}

func (s *ShoppingHandlerTestSuite) TestGenerateShoppingList_ShouldPropagateServiceErrors() {
	// Arrange
	s.service.err = errors.NewInvalidDateRangeError("date range exceeds 31 days")

	// Act
	recorder := s.request(`{"start_date":"2025-01-01","end_date":"2025-12-31"}`, true)

	// Assert
	s.Equal(http.StatusBadRequest, recorder.Code)

	var response APIResponse
	s.Require().NoError(json.Unmarshal(recorder.Body.Bytes(), &response))
	s.Require().NotNil(response.Error)
	s.Equal(errors.CodeInvalidDateRange, response.Error.Code)
}

func TestShoppingHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ShoppingHandlerTestSuite))
}
