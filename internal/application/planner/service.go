// Package planner provides the application layer for meal plan
// generation. It drives the AI collaborator and persists the
// resulting schedule so the shopping service can later read it back.
package planner

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kecarajocomer/v3/internal/domain/planning"
	"github.com/kecarajocomer/v3/internal/infrastructure/monitoring"
	"github.com/kecarajocomer/v3/internal/ports/inbound"
	"github.com/kecarajocomer/v3/internal/ports/outbound"
	"github.com/kecarajocomer/v3/pkg/errors"
)

const dateLayout = "2006-01-02"

// MealPlanService implements the meal planning use cases
type MealPlanService struct {
	ai        outbound.AIService
	recipes   outbound.RecipeRepository
	mealPlans outbound.MealPlanRepository
	metrics   *monitoring.Metrics
	provider  string
	logger    *zap.Logger
}

// NewMealPlanService creates a new meal plan service
func NewMealPlanService(
	ai outbound.AIService,
	recipes outbound.RecipeRepository,
	mealPlans outbound.MealPlanRepository,
	metrics *monitoring.Metrics,
	provider string,
	logger *zap.Logger,
) inbound.MealPlanService {
	return &MealPlanService{
		ai:        ai,
		recipes:   recipes,
		mealPlans: mealPlans,
		metrics:   metrics,
		provider:  provider,
		logger:    logger.Named("mealplan-service"),
	}
}

// GenerateMealPlan asks the AI collaborator for a structured plan and
// persists each generated recipe and meal slot.
func (s *MealPlanService) GenerateMealPlan(ctx context.Context, cmd inbound.GenerateMealPlanCommand) (*inbound.MealPlanDTO, error) {
	if cmd.UserID == uuid.Nil {
		return nil, errors.NewUnauthorizedError("")
	}

	dateRange, err := planning.NewDateRange(cmd.StartDate, cmd.EndDate)
	if err != nil {
		return nil, errors.NewInvalidDateRangeError(err.Error())
	}

	response, err := s.ai.GenerateMealPlan(ctx, cmd.Prompt, outbound.AIConstraints{
		DateRange: dateRange,
		Servings:  cmd.Servings,
		Dietary:   cmd.Dietary,
	})
	if err != nil {
		s.metrics.RecordAIGeneration(s.provider, "error")
		return nil, errors.NewExternalServiceError("AI planner", err)
	}
	s.metrics.RecordAIGeneration(s.provider, "success")

	dto := &inbound.MealPlanDTO{
		Model:     response.Model,
		StartDate: dateRange.Start.Format(dateLayout),
		EndDate:   dateRange.End.Format(dateLayout),
	}

	for _, meal := range response.Entries {
		recipe := &planning.Recipe{
			ID:          uuid.New(),
			Title:       meal.RecipeTitle,
			Ingredients: meal.Ingredients,
		}
		if err := s.recipes.Create(ctx, recipe); err != nil {
			return nil, errors.NewDatabaseError("create generated recipe", err)
		}

		entry, err := planning.NewMealPlanEntry(cmd.UserID, recipe.ID, meal.Date, meal.Servings, meal.MealType)
		if err != nil {
			s.logger.Warn("Skipping invalid generated meal slot",
				zap.String("recipe_title", meal.RecipeTitle),
				zap.Time("date", meal.Date),
				zap.Error(err),
			)
			continue
		}
		if err := s.mealPlans.Create(ctx, entry); err != nil {
			return nil, errors.NewDatabaseError("create meal plan entry", err)
		}

		dto.Entries = append(dto.Entries, inbound.MealPlanEntryDTO{
			ID:          entry.ID,
			Date:        entry.Date.Format(dateLayout),
			MealType:    string(entry.MealType),
			RecipeID:    recipe.ID,
			RecipeTitle: recipe.Title,
			Servings:    entry.Servings,
		})
	}

	s.logger.Info("Meal plan generated",
		zap.String("user_id", cmd.UserID.String()),
		zap.String("model", response.Model),
		zap.Int("meals", len(dto.Entries)),
		zap.Duration("window", dateRange.End.Sub(dateRange.Start)+24*time.Hour),
	)

	return dto, nil
}
