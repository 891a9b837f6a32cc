// Package planning contains the domain model for scheduled meals.
// Meal plan entries are created by the planning subsystem and are
// read-only inputs to the shopping reconciliation engine.
package planning

import (
	"time"

	"github.com/google/uuid"
)

// DefaultCategory is assigned to ingredient requirements that carry
// no grouping label of their own.
const DefaultCategory = "otros"

// IngredientRequirement is one ingredient line belonging to a recipe.
// Quantity is the amount per one serving-equivalent of the recipe as
// stored; Unit is an opaque equality key (no cross-unit conversion).
type IngredientRequirement struct {
	Name     string
	Quantity float64
	Unit     string
	Category string
}

// Validate validates the ingredient requirement
func (r IngredientRequirement) Validate() error {
	if r.Name == "" {
		return ErrMissingIngredientName
	}
	if r.Quantity < 0 {
		return ErrNegativeQuantity
	}
	return nil
}

// CategoryOrDefault returns the requirement's category, falling back
// to DefaultCategory when none is set.
func (r IngredientRequirement) CategoryOrDefault() string {
	if r.Category == "" {
		return DefaultCategory
	}
	return r.Category
}

// Recipe is a recipe as resolved for meal planning: its identity,
// display title, and the ingredient requirements per base serving.
type Recipe struct {
	ID          uuid.UUID
	Title       string
	Ingredients []IngredientRequirement
}

// Validate validates the recipe
func (r Recipe) Validate() error {
	if r.ID == uuid.Nil {
		return ErrMissingRecipeID
	}
	if r.Title == "" {
		return ErrMissingRecipeTitle
	}
	return nil
}

// MealPlanEntry is one scheduled meal instance. Recipe is attached by
// the caller once resolved through the recipe repository; entries whose
// recipe cannot be resolved contribute zero demand downstream.
type MealPlanEntry struct {
	ID       uuid.UUID
	UserID   uuid.UUID
	Date     time.Time
	RecipeID uuid.UUID
	Servings int
	MealType MealType
	Recipe   *Recipe
}

// NewMealPlanEntry creates a meal plan entry with validation
func NewMealPlanEntry(userID, recipeID uuid.UUID, date time.Time, servings int, mealType MealType) (*MealPlanEntry, error) {
	if userID == uuid.Nil {
		return nil, ErrMissingUserID
	}
	if recipeID == uuid.Nil {
		return nil, ErrMissingRecipeID
	}
	if date.IsZero() {
		return nil, ErrMissingDate
	}
	if servings < 0 {
		return nil, ErrInvalidServings
	}

	return &MealPlanEntry{
		ID:       uuid.New(),
		UserID:   userID,
		Date:     date,
		RecipeID: recipeID,
		Servings: servings,
		MealType: mealType,
	}, nil
}

// EffectiveServings returns the servings multiplier, defaulting to 1
// when unset.
func (e *MealPlanEntry) EffectiveServings() int {
	if e.Servings <= 0 {
		return 1
	}
	return e.Servings
}

// HasResolvedRecipe reports whether the entry carries a resolved recipe
func (e *MealPlanEntry) HasResolvedRecipe() bool {
	return e.Recipe != nil
}

// MealType identifies the meal slot an entry occupies
type MealType string

const (
	MealTypeBreakfast MealType = "desayuno"
	MealTypeLunch     MealType = "almuerzo"
	MealTypeSnack     MealType = "merienda"
	MealTypeDinner    MealType = "cena"
)

// DateRange is the planning window a shopping list is computed over.
// Both bounds are inclusive calendar dates.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// NewDateRange creates a date range with validation
func NewDateRange(start, end time.Time) (DateRange, error) {
	if start.IsZero() || end.IsZero() {
		return DateRange{}, ErrMissingDate
	}
	if end.Before(start) {
		return DateRange{}, ErrInvalidDateRange
	}
	return DateRange{Start: start, End: end}, nil
}

// Contains reports whether a date falls within the range
func (r DateRange) Contains(date time.Time) bool {
	return !date.Before(r.Start) && !date.After(r.End)
}
