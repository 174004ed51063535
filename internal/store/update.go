package store

// RecipeUpdate collects the columns of a recipe UPDATE. Only the setters
// that were called end up in the statement.
type RecipeUpdate struct {
	fields map[string]any
}

// NewRecipeUpdate starts an empty update
func NewRecipeUpdate() *RecipeUpdate {
	return &RecipeUpdate{fields: make(map[string]any)}
}

func (u *RecipeUpdate) set(column string, value any) *RecipeUpdate {
	u.fields[column] = value
	return u
}

func (u *RecipeUpdate) WithName(name string) *RecipeUpdate {
	return u.set("recipe_name", name)
}

func (u *RecipeUpdate) WithCategory(categoryID uint) *RecipeUpdate {
	return u.set("categoryID", categoryID)
}

func (u *RecipeUpdate) WithDifficulty(difficulty string) *RecipeUpdate {
	return u.set("difficulty", difficulty)
}

func (u *RecipeUpdate) WithTime(time string) *RecipeUpdate {
	return u.set("time", time)
}

func (u *RecipeUpdate) WithIngredients(ingredients string) *RecipeUpdate {
	return u.set("ingredients", ingredients)
}

func (u *RecipeUpdate) WithInstructions(instructions string) *RecipeUpdate {
	return u.set("recipe", instructions)
}

// WithImage replaces the stored image key. Callers only use it when a new
// file was uploaded.
func (u *RecipeUpdate) WithImage(key string) *RecipeUpdate {
	return u.set("image", key)
}

// Has reports whether the column is part of the update
func (u *RecipeUpdate) Has(column string) bool {
	_, ok := u.fields[column]
	return ok
}

// Empty reports whether no column was set
func (u *RecipeUpdate) Empty() bool {
	return len(u.fields) == 0
}

// Fields returns a copy of the column/value pairs
func (u *RecipeUpdate) Fields() map[string]any {
	out := make(map[string]any, len(u.fields))
	for k, v := range u.fields {
		out[k] = v
	}
	return out
}
