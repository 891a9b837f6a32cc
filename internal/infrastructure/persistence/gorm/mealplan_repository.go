package gorm

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kecarajocomer/v3/internal/domain/planning"
	"github.com/kecarajocomer/v3/internal/ports/outbound"
)

// MealPlanRepository implements the meal plan repository interface using GORM
type MealPlanRepository struct {
	db *gorm.DB
}

// NewMealPlanRepository creates a new meal plan repository
func NewMealPlanRepository(db *gorm.DB) outbound.MealPlanRepository {
	return &MealPlanRepository{db: db}
}

// Create creates a new meal plan entry
func (r *MealPlanRepository) Create(ctx context.Context, entry *planning.MealPlanEntry) error {
	model := MealPlanToModel(entry)

	result := r.db.WithContext(ctx).Create(model)
	return result.Error
}

// FindByUserAndDateRange returns the user's scheduled meals inside the
// range, recipes preloaded, ordered by date so demand aggregation is
// deterministic.
func (r *MealPlanRepository) FindByUserAndDateRange(ctx context.Context, userID uuid.UUID, dateRange planning.DateRange) ([]*planning.MealPlanEntry, error) {
	var models []MealPlanModel

	result := r.db.WithContext(ctx).
		Preload("Recipe").
		Preload("Recipe.Ingredients").
		Where("user_id = ? AND date >= ? AND date <= ?", userID, dateRange.Start, dateRange.End).
		Order("date ASC, created_at ASC").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	entries := make([]*planning.MealPlanEntry, len(models))
	for i := range models {
		entries[i] = ModelToMealPlan(&models[i])
	}
	return entries, nil
}

// DeleteByUserAndDate removes all of a user's meal slots on a date
func (r *MealPlanRepository) DeleteByUserAndDate(ctx context.Context, userID uuid.UUID, date time.Time) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, date).
		Delete(&MealPlanModel{})
	return result.Error
}
