package gorm

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kecarajocomer/v3/internal/domain/planning"
	"github.com/kecarajocomer/v3/internal/ports/outbound"
)

// RecipeRepository implements the recipe repository interface using GORM
type RecipeRepository struct {
	db *gorm.DB
}

// NewRecipeRepository creates a new recipe repository
func NewRecipeRepository(db *gorm.DB) outbound.RecipeRepository {
	return &RecipeRepository{db: db}
}

// Create creates a new recipe with its ingredient lines
func (r *RecipeRepository) Create(ctx context.Context, recipe *planning.Recipe) error {
	model := RecipeToModel(recipe)

	result := r.db.WithContext(ctx).Create(model)
	return result.Error
}

// FindByID finds a recipe by ID. Returns nil without error when the
// recipe does not exist; the shopping service treats an unresolvable
// recipe as zero demand, not as a failure.
func (r *RecipeRepository) FindByID(ctx context.Context, id uuid.UUID) (*planning.Recipe, error) {
	var model RecipeModel

	result := r.db.WithContext(ctx).
		Preload("Ingredients").
		First(&model, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}

	return ModelToRecipe(&model), nil
}

// FindByIDs batch-resolves recipes. IDs with no matching row are
// simply absent from the result map.
func (r *RecipeRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*planning.Recipe, error) {
	if len(ids) == 0 {
		return map[uuid.UUID]*planning.Recipe{}, nil
	}

	var models []RecipeModel
	result := r.db.WithContext(ctx).
		Preload("Ingredients").
		Where("id IN ?", ids).
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	recipes := make(map[uuid.UUID]*planning.Recipe, len(models))
	for i := range models {
		recipes[models[i].ID] = ModelToRecipe(&models[i])
	}
	return recipes, nil
}
