package store_test

import (
	"context"
	"testing"

	"reciplette/internal/domain"
	"reciplette/internal/store"
	"reciplette/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecipes(t *testing.T) {
	gormDB := testutil.NewDB(t)
	s := store.New(gormDB)
	ctx := context.Background()

	mains := testutil.SeedCategory(t, gormDB, "Mains")

	t.Run("CreateRecipe assigns an ID", func(t *testing.T) {
		recipe := &domain.Recipe{RecipeName: "Laksa", CategoryID: mains.CategoryID, Difficulty: "Hard"}
		require.NoError(t, s.CreateRecipe(ctx, recipe))
		assert.NotZero(t, recipe.RecipeID)

		recipes, err := s.ListRecipes(ctx)
		require.NoError(t, err)
		require.Len(t, recipes, 1)
		assert.Equal(t, "Laksa", recipes[0].RecipeName)
		assert.Empty(t, recipes[0].Image)
	})

	t.Run("FindRecipe joins the category name", func(t *testing.T) {
		recipe := testutil.SeedRecipe(t, gormDB, "Chicken Rice", mains.CategoryID, "rice.jpg")

		detail, err := s.FindRecipe(ctx, recipe.RecipeID)
		require.NoError(t, err)
		assert.Equal(t, "Chicken Rice", detail.RecipeName)
		assert.Equal(t, "Mains", detail.CategoryName)
		assert.Equal(t, "rice.jpg", detail.Image)
		assert.Equal(t, "Mix and bake.", detail.Instructions)
	})

	t.Run("FindRecipe reports missing recipes", func(t *testing.T) {
		_, err := s.FindRecipe(ctx, 9999)
		assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
	})

	t.Run("FindRecipe hides recipes with a dangling category", func(t *testing.T) {
		orphan := testutil.SeedRecipe(t, gormDB, "Orphan", 4242, "")
		_, err := s.FindRecipe(ctx, orphan.RecipeID)
		assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
	})

	t.Run("UpdateRecipe without image keeps the stored key", func(t *testing.T) {
		recipe := testutil.SeedRecipe(t, gormDB, "Satay", mains.CategoryID, "satay.png")

		update := store.NewRecipeUpdate().
			WithName("Satay Ayam").
			WithCategory(mains.CategoryID).
			WithDifficulty("Medium").
			WithTime("1 hour").
			WithIngredients("chicken, peanuts").
			WithInstructions("Grill.")
		require.NoError(t, s.UpdateRecipe(ctx, recipe.RecipeID, update))

		detail, err := s.FindRecipe(ctx, recipe.RecipeID)
		require.NoError(t, err)
		assert.Equal(t, "Satay Ayam", detail.RecipeName)
		assert.Equal(t, "Medium", detail.Difficulty)
		assert.Equal(t, "1 hour", detail.Time)
		assert.Equal(t, "satay.png", detail.Image)
	})

	t.Run("UpdateRecipe with image replaces the key", func(t *testing.T) {
		recipe := testutil.SeedRecipe(t, gormDB, "Rendang", mains.CategoryID, "old.png")

		require.NoError(t, s.UpdateRecipe(ctx, recipe.RecipeID, store.NewRecipeUpdate().WithImage("new.png")))

		detail, err := s.FindRecipe(ctx, recipe.RecipeID)
		require.NoError(t, err)
		assert.Equal(t, "new.png", detail.Image)
		assert.Equal(t, "Rendang", detail.RecipeName)
	})

	t.Run("UpdateRecipe on a missing ID is a no-op", func(t *testing.T) {
		assert.NoError(t, s.UpdateRecipe(ctx, 9999, store.NewRecipeUpdate().WithName("Ghost")))
	})

	t.Run("DeleteRecipe removes the row", func(t *testing.T) {
		recipe := testutil.SeedRecipe(t, gormDB, "Doomed", mains.CategoryID, "")
		require.NoError(t, s.DeleteRecipe(ctx, recipe.RecipeID))

		_, err := s.FindRecipe(ctx, recipe.RecipeID)
		assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
	})
}

func TestCategories(t *testing.T) {
	s := store.New(testutil.NewDB(t))
	ctx := context.Background()

	desserts, err := s.CreateCategory(ctx, "Desserts")
	require.NoError(t, err)
	assert.NotZero(t, desserts.CategoryID)

	categories, err := s.ListCategories(ctx)
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, "Desserts", categories[0].CategoryName)

	require.NoError(t, s.RenameCategory(ctx, desserts.CategoryID, "Sweets"))
	found, err := s.FindCategory(ctx, desserts.CategoryID)
	require.NoError(t, err)
	assert.Equal(t, "Sweets", found.CategoryName)

	require.NoError(t, s.DeleteCategory(ctx, desserts.CategoryID))
	_, err = s.FindCategory(ctx, desserts.CategoryID)
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)
}

func TestDeleteCategoryLeavesRecipes(t *testing.T) {
	gormDB := testutil.NewDB(t)
	s := store.New(gormDB)
	ctx := context.Background()

	soups := testutil.SeedCategory(t, gormDB, "Soups")
	testutil.SeedRecipe(t, gormDB, "Borscht", soups.CategoryID, "")

	require.NoError(t, s.DeleteCategory(ctx, soups.CategoryID))

	recipes, err := s.ListRecipes(ctx)
	require.NoError(t, err)
	assert.Len(t, recipes, 1)
}

func TestPing(t *testing.T) {
	s := store.New(testutil.NewDB(t))
	assert.NoError(t, s.Ping(context.Background()))
}
