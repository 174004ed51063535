package api

// RecipeForm is the body of the add and edit recipe forms
type RecipeForm struct {
	RecipeName   string `form:"recipe_name"`  // Recipe name
	CategoryID   uint   `form:"categoryID"`   // Selected category
	Difficulty   string `form:"difficulty"`   // Difficulty label
	Time         string `form:"time"`         // Preparation time
	Ingredients  string `form:"ingredients"`  // Ingredient list
	Instructions string `form:"recipe"`       // Recipe body
	CurrentImage string `form:"currentImage"` // Key already stored, sent back by the edit form
}

// RecipeIDForm carries a recipe ID in a form body
type RecipeIDForm struct {
	RecipeID uint `form:"recipeID"` // Target recipe
}

// CategoryIDForm carries a category ID in a form body
type CategoryIDForm struct {
	CategoryID uint `form:"categoryID"` // Target category
}

// CategoryForm is the body of the add and edit category forms
type CategoryForm struct {
	CategoryName string `form:"categoryName"` // Category name
}
