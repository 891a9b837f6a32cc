// Package gorm provides GORM-based repository implementations
package gorm

import (
	"time"

	"github.com/google/uuid"
)

// RecipeModel represents the GORM model for resolved recipes
type RecipeModel struct {
	ID        uuid.UUID `gorm:"type:char(36);primaryKey"`
	Title     string    `gorm:"type:varchar(255);not null;index"`
	CreatedAt time.Time
	UpdatedAt time.Time

	// Relationships
	Ingredients []RecipeIngredientModel `gorm:"foreignKey:RecipeID;constraint:OnDelete:CASCADE"`
}

// TableName overrides the table name
func (RecipeModel) TableName() string {
	return "recipes"
}

// RecipeIngredientModel represents one ingredient line of a recipe
type RecipeIngredientModel struct {
	ID       uint      `gorm:"primaryKey;autoIncrement"`
	RecipeID uuid.UUID `gorm:"type:char(36);not null;index"`
	Name     string    `gorm:"type:varchar(255);not null"`
	Quantity float64   `gorm:"not null;default:0"`
	Unit     string    `gorm:"type:varchar(50)"`
	Category string    `gorm:"type:varchar(100)"`
	Position int       `gorm:"not null;default:0"`
}

// TableName overrides the table name
func (RecipeIngredientModel) TableName() string {
	return "recipe_ingredients"
}

// MealPlanModel represents one scheduled meal
type MealPlanModel struct {
	ID        uuid.UUID `gorm:"type:char(36);primaryKey"`
	UserID    uuid.UUID `gorm:"type:char(36);not null;index:idx_meal_plans_user_date"`
	Date      time.Time `gorm:"not null;index:idx_meal_plans_user_date"`
	RecipeID  uuid.UUID `gorm:"type:char(36);not null;index"`
	Servings  int       `gorm:"default:1"`
	MealType  string    `gorm:"type:varchar(20)"`
	CreatedAt time.Time
	UpdatedAt time.Time

	// Relationships
	Recipe *RecipeModel `gorm:"foreignKey:RecipeID"`
}

// TableName overrides the table name
func (MealPlanModel) TableName() string {
	return "meal_plans"
}

// PantryItemModel represents one stock record
type PantryItemModel struct {
	ID             uuid.UUID `gorm:"type:char(36);primaryKey"`
	UserID         uuid.UUID `gorm:"type:char(36);not null;index"`
	IngredientName string    `gorm:"type:varchar(255);not null"`
	Quantity       float64   `gorm:"not null;default:0"`
	Unit           string    `gorm:"type:varchar(50)"`
	Location       string    `gorm:"type:varchar(100)"`
	ExpirationDate *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// TableName overrides the table name
func (PantryItemModel) TableName() string {
	return "pantry_items"
}

// AllModels lists every model for auto-migration
func AllModels() []interface{} {
	return []interface{}{
		&RecipeModel{},
		&RecipeIngredientModel{},
		&MealPlanModel{},
		&PantryItemModel{},
	}
}
