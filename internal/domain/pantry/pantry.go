// Package pantry contains the domain model for a user's stock records.
// The reconciliation engine treats pantry items as read-only supply;
// nothing in this subsystem writes inventory back.
package pantry

import (
	"time"

	"github.com/google/uuid"
)

// Item is one stock record owned by a user. Unit carries the same
// opaque-equality semantics as recipe requirements: two rows for the
// same ingredient are only summable when their unit strings match.
type Item struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	IngredientName string
	Quantity       float64
	Unit           string
	ExpirationDate *time.Time
	Location       string
	UpdatedAt      time.Time
}

// NewItem creates a pantry item with validation
func NewItem(userID uuid.UUID, ingredientName string, quantity float64, unit string) (*Item, error) {
	if userID == uuid.Nil {
		return nil, ErrMissingUserID
	}
	if ingredientName == "" {
		return nil, ErrMissingIngredientName
	}
	if quantity < 0 {
		return nil, ErrNegativeQuantity
	}

	return &Item{
		ID:             uuid.New(),
		UserID:         userID,
		IngredientName: ingredientName,
		Quantity:       quantity,
		Unit:           unit,
		UpdatedAt:      time.Now(),
	}, nil
}

// HasIngredient reports whether the item references a usable
// ingredient name. Items without one cannot be reconciled and are
// skipped by the supply resolver.
func (i *Item) HasIngredient() bool {
	return i.IngredientName != ""
}
