package planning

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type PlanningTestSuite struct {
	suite.Suite
}

func (s *PlanningTestSuite) TestNewMealPlanEntry_ShouldCreateValidEntry() {
	// Arrange
	userID := uuid.New()
	recipeID := uuid.New()
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	// Act
	entry, err := NewMealPlanEntry(userID, recipeID, date, 2, MealTypeLunch)

	// Assert
	s.Require().NoError(err)
	s.NotEqual(uuid.Nil, entry.ID)
	s.Equal(userID, entry.UserID)
	s.Equal(recipeID, entry.RecipeID)
	s.Equal(2, entry.Servings)
	s.False(entry.HasResolvedRecipe())
}

func (s *PlanningTestSuite) TestNewMealPlanEntry_ShouldRejectMissingIdentity() {
	date := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	_, err := NewMealPlanEntry(uuid.Nil, uuid.New(), date, 1, MealTypeDinner)
	s.ErrorIs(err, ErrMissingUserID)

	_, err = NewMealPlanEntry(uuid.New(), uuid.Nil, date, 1, MealTypeDinner)
	s.ErrorIs(err, ErrMissingRecipeID)

	_, err = NewMealPlanEntry(uuid.New(), uuid.New(), time.Time{}, 1, MealTypeDinner)
	s.ErrorIs(err, ErrMissingDate)

	_, err = NewMealPlanEntry(uuid.New(), uuid.New(), date, -1, MealTypeDinner)
	s.ErrorIs(err, ErrInvalidServings)
}

func (s *PlanningTestSuite) TestEffectiveServings_ShouldDefaultToOne() {
	entry := &MealPlanEntry{Servings: 0}
	s.Equal(1, entry.EffectiveServings())

	entry.Servings = 4
	s.Equal(4, entry.EffectiveServings())
}

func (s *PlanningTestSuite) TestIngredientRequirement_ShouldFallBackToDefaultCategory() {
	req := IngredientRequirement{Name: "Sal", Quantity: 1, Unit: "pizca"}
	s.Equal(DefaultCategory, req.CategoryOrDefault())

	req.Category = "especias"
	s.Equal("especias", req.CategoryOrDefault())
}

func (s *PlanningTestSuite) TestIngredientRequirement_ShouldRejectNegativeQuantity() {
	req := IngredientRequirement{Name: "Sal", Quantity: -1}
	s.ErrorIs(req.Validate(), ErrNegativeQuantity)
}

func (s *PlanningTestSuite) TestNewDateRange_ShouldRejectInvertedRange() {
	start := time.Date(2025, 3, 16, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	_, err := NewDateRange(start, end)
	s.ErrorIs(err, ErrInvalidDateRange)
}

func (s *PlanningTestSuite) TestDateRange_ShouldContainInclusiveBounds() {
	// Arrange
	start := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 3, 16, 0, 0, 0, 0, time.UTC)
	dateRange, err := NewDateRange(start, end)
	s.Require().NoError(err)

	// Assert
	s.True(dateRange.Contains(start))
	s.True(dateRange.Contains(end))
	s.True(dateRange.Contains(start.AddDate(0, 0, 3)))
	s.False(dateRange.Contains(start.AddDate(0, 0, -1)))
	s.False(dateRange.Contains(end.AddDate(0, 0, 1)))
}

func TestPlanningTestSuite(t *testing.T) {
	suite.Run(t, new(PlanningTestSuite))
}
