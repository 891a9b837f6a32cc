// Package gorm provides mapping between domain entities and GORM models
package gorm

import (
	"sort"

	"github.com/kecarajocomer/v3/internal/domain/pantry"
	"github.com/kecarajocomer/v3/internal/domain/planning"
)

// RecipeToModel converts a domain recipe to a GORM model
func RecipeToModel(r *planning.Recipe) *RecipeModel {
	model := &RecipeModel{
		ID:    r.ID,
		Title: r.Title,
	}

	for i, ing := range r.Ingredients {
		model.Ingredients = append(model.Ingredients, RecipeIngredientModel{
			RecipeID: r.ID,
			Name:     ing.Name,
			Quantity: ing.Quantity,
			Unit:     ing.Unit,
			Category: ing.Category,
			Position: i,
		})
	}

	return model
}

// ModelToRecipe converts a GORM model to a domain recipe. Ingredient
// lines keep their stored position so demand aggregation order stays
// stable across reads.
func ModelToRecipe(model *RecipeModel) *planning.Recipe {
	recipe := &planning.Recipe{
		ID:    model.ID,
		Title: model.Title,
	}

	ingredients := make([]RecipeIngredientModel, len(model.Ingredients))
	copy(ingredients, model.Ingredients)
	sort.SliceStable(ingredients, func(i, j int) bool {
		return ingredients[i].Position < ingredients[j].Position
	})

	for _, ing := range ingredients {
		recipe.Ingredients = append(recipe.Ingredients, planning.IngredientRequirement{
			Name:     ing.Name,
			Quantity: ing.Quantity,
			Unit:     ing.Unit,
			Category: ing.Category,
		})
	}

	return recipe
}

// MealPlanToModel converts a domain meal plan entry to a GORM model
func MealPlanToModel(e *planning.MealPlanEntry) *MealPlanModel {
	return &MealPlanModel{
		ID:       e.ID,
		UserID:   e.UserID,
		Date:     e.Date,
		RecipeID: e.RecipeID,
		Servings: e.Servings,
		MealType: string(e.MealType),
	}
}

// ModelToMealPlan converts a GORM model to a domain meal plan entry.
// The preloaded recipe, if any, is attached so the shopping service
// can skip a second lookup.
func ModelToMealPlan(model *MealPlanModel) *planning.MealPlanEntry {
	entry := &planning.MealPlanEntry{
		ID:       model.ID,
		UserID:   model.UserID,
		Date:     model.Date,
		RecipeID: model.RecipeID,
		Servings: model.Servings,
		MealType: planning.MealType(model.MealType),
	}
	if model.Recipe != nil {
		entry.Recipe = ModelToRecipe(model.Recipe)
	}
	return entry
}

// PantryItemToModel converts a domain pantry item to a GORM model
func PantryItemToModel(item *pantry.Item) *PantryItemModel {
	return &PantryItemModel{
		ID:             item.ID,
		UserID:         item.UserID,
		IngredientName: item.IngredientName,
		Quantity:       item.Quantity,
		Unit:           item.Unit,
		Location:       item.Location,
		ExpirationDate: item.ExpirationDate,
	}
}

// ModelToPantryItem converts a GORM model to a domain pantry item
func ModelToPantryItem(model *PantryItemModel) *pantry.Item {
	return &pantry.Item{
		ID:             model.ID,
		UserID:         model.UserID,
		IngredientName: model.IngredientName,
		Quantity:       model.Quantity,
		Unit:           model.Unit,
		Location:       model.Location,
		ExpirationDate: model.ExpirationDate,
		UpdatedAt:      model.UpdatedAt,
	}
}
