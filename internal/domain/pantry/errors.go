package pantry

import "errors"

// Domain errors for pantry stock

var (
	ErrMissingUserID         = errors.New("pantry item requires a user id")
	ErrMissingIngredientName = errors.New("pantry item requires an ingredient name")
	ErrNegativeQuantity      = errors.New("pantry quantity cannot be negative")
)
