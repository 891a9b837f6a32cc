// Package inbound defines the interfaces for inbound ports (primary/driving adapters)
// These are the interfaces that the application exposes to the outside world
package inbound

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/kecarajocomer/v3/internal/domain/shopping"
)

// ShoppingListService defines the shopping list use cases. This is the
// primary port the HTTP handlers drive.
type ShoppingListService interface {
	GenerateShoppingList(ctx context.Context, cmd GenerateShoppingListCommand) (*ShoppingListDTO, error)
}

// MealPlanService defines the meal planning use cases backed by the
// generative AI collaborator.
type MealPlanService interface {
	GenerateMealPlan(ctx context.Context, cmd GenerateMealPlanCommand) (*MealPlanDTO, error)
}

// GenerateShoppingListCommand scopes a reconciliation run to one user
// and one planning window.
type GenerateShoppingListCommand struct {
	UserID    uuid.UUID
	StartDate time.Time
	EndDate   time.Time
}

// GenerateMealPlanCommand for AI meal plan generation
type GenerateMealPlanCommand struct {
	UserID    uuid.UUID
	StartDate time.Time
	EndDate   time.Time
	Prompt    string
	Servings  int
	Dietary   []string
}

// Response DTOs. Field naming follows the snake_case boundary contract
// used by the surrounding HTTP layer.

// ShoppingListDTO is the full reconciliation result
type ShoppingListDTO struct {
	ShoppingList  []shopping.ShoppingListItem `json:"shopping_list"`
	Summary       shopping.Summary            `json:"summary"`
	MealPlanDates MealPlanDatesDTO            `json:"meal_plan_dates"`
}

// MealPlanDatesDTO echoes the queried window back to the caller
type MealPlanDatesDTO struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// MealPlanDTO is a generated meal plan
type MealPlanDTO struct {
	Entries   []MealPlanEntryDTO `json:"entries"`
	Model     string             `json:"model"`
	StartDate string             `json:"start_date"`
	EndDate   string             `json:"end_date"`
}

// MealPlanEntryDTO is one scheduled meal in a generated plan
type MealPlanEntryDTO struct {
	ID          uuid.UUID `json:"id"`
	Date        string    `json:"date"`
	MealType    string    `json:"meal_type"`
	RecipeID    uuid.UUID `json:"recipe_id"`
	RecipeTitle string    `json:"recipe_title"`
	Servings    int       `json:"servings"`
}
