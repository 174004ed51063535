package domain

import "errors"

var (
	MessageFailedListRoulette = "Error retrieving roulette"
	MessageFailedDrawRoulette = "An error occurred while fetching a random recipe."
	MessageRouletteEmpty      = "No recipe in roulette."

	ErrRouletteEmpty = errors.New("roulette is empty")
)

// RouletteEntry marks a recipe as queued for the next random draw.
// The primary key on recipeID keeps a recipe from being queued twice.
type RouletteEntry struct {
	RecipeID uint `gorm:"column:recipeID;primaryKey;autoIncrement:false"` // Queued recipe
}

func (RouletteEntry) TableName() string {
	return "roulette"
}

// QueuedRecipe is a roulette entry with the name of the recipe it points to
type QueuedRecipe struct {
	RecipeID   uint   `gorm:"column:recipeID"`    // Queued recipe
	RecipeName string `gorm:"column:recipe_name"` // Joined from recipe
}
