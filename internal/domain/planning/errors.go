package planning

import "errors"

// Domain errors for meal planning

var (
	// Entity validation errors
	ErrMissingUserID         = errors.New("meal plan entry requires a user id")
	ErrMissingRecipeID       = errors.New("meal plan entry requires a recipe id")
	ErrMissingRecipeTitle    = errors.New("recipe title is required")
	ErrMissingIngredientName = errors.New("ingredient name is required")
	ErrMissingDate           = errors.New("date is required")
	ErrInvalidServings       = errors.New("servings cannot be negative")
	ErrNegativeQuantity      = errors.New("ingredient quantity cannot be negative")

	// Range errors
	ErrInvalidDateRange = errors.New("end date must not precede start date")
)
