// Package outbound defines the interfaces for outbound ports (secondary/driven adapters)
// These are the interfaces that the application uses to interact with external systems
package outbound

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/kecarajocomer/v3/internal/domain/pantry"
	"github.com/kecarajocomer/v3/internal/domain/planning"
)

// MealPlanRepository defines read access to scheduled meals. The
// reconciliation engine never writes meal plans; creation belongs to
// the planning subsystem.
type MealPlanRepository interface {
	Create(ctx context.Context, entry *planning.MealPlanEntry) error
	FindByUserAndDateRange(ctx context.Context, userID uuid.UUID, dateRange planning.DateRange) ([]*planning.MealPlanEntry, error)
	DeleteByUserAndDate(ctx context.Context, userID uuid.UUID, date time.Time) error
}

// RecipeRepository defines read access to resolved recipes. FindByIDs
// is the batch lookup the shopping service uses to attach ingredient
// requirements to meal plan entries before reconciliation.
type RecipeRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*planning.Recipe, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*planning.Recipe, error)
	Create(ctx context.Context, recipe *planning.Recipe) error
}

// PantryRepository defines read access to a user's stock. The engine
// is read-only with respect to pantry.
type PantryRepository interface {
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*pantry.Item, error)
	Create(ctx context.Context, item *pantry.Item) error
}

// CacheRepository defines the interface for caching operations
type CacheRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// AIService defines the interface for generative meal planning. The
// shopping engine consumes the result as already-materialized meal
// plans; prompt construction and model selection live behind this
// boundary.
type AIService interface {
	GenerateMealPlan(ctx context.Context, prompt string, constraints AIConstraints) (*AIMealPlanResponse, error)
}

// AIConstraints for AI meal plan generation
type AIConstraints struct {
	DateRange        planning.DateRange
	Servings         int
	Dietary          []string
	ExcludedTags     []string
	MaxPrepMinutes   int
	PreferredMeals   []planning.MealType
	AvoidIngredients []string
}

// AIMealPlanResponse from the AI service
type AIMealPlanResponse struct {
	Entries    []AIPlannedMeal
	Model      string
	Confidence float64
}

// AIPlannedMeal is one generated meal slot
type AIPlannedMeal struct {
	Date        time.Time
	MealType    planning.MealType
	RecipeTitle string
	Servings    int
	Ingredients []planning.IngredientRequirement
}
