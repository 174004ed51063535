package domain

import "errors" // Sentinel errors

// Messages returned to the browser for recipe routes
var (
	MessageFailedListRecipes   = "Error retrieving recipes"
	MessageFailedFetchRecipe   = "Error fetching the recipe"
	MessageFailedRecipeByID    = "Error retrieving recipe by ID"
	MessageFailedAddRecipe     = "Error adding new recipe"
	MessageFailedUpdateRecipe  = "Error updating the recipe"
	MessageFailedDeleteRecipe  = "Error deleting the recipe"
	MessageRecipeNotFound      = "Recipe not found"
	MessageImageNotFound       = "Image not found"
	MessageFailedFetchImage    = "Error retrieving image"
	MessageDatabaseUnavailable = "database unavailable"

	ErrRecipeNotFound = errors.New("recipe not found")
	ErrImageNotFound  = errors.New("image not found")
)

// Recipe Model
type Recipe struct {
	RecipeID     uint   `gorm:"column:recipeID;primaryKey"`       // Primary key
	RecipeName   string `gorm:"column:recipe_name;not null"`      // Display name
	CategoryID   uint   `gorm:"column:categoryID;index"`          // Category reference, not enforced here
	Difficulty   string `gorm:"column:difficulty"`                // Free-form difficulty label
	Time         string `gorm:"column:time"`                      // Preparation time as entered
	Ingredients  string `gorm:"column:ingredients;type:text"`     // Ingredient list
	Instructions string `gorm:"column:recipe;type:text"`          // Recipe body
	Image        string `gorm:"column:image;not null;default:''"` // Image storage key, empty when none
}

// TableName keeps the singular table name used by the catalog schema
func (Recipe) TableName() string {
	return "recipe"
}

// RecipeDetail is a recipe joined with the name of its category
type RecipeDetail struct {
	Recipe       `gorm:"embedded"`
	CategoryName string `gorm:"column:categoryName"` // Joined from category
}
