package api

import (
	"errors"   // Error classification
	"net/http" // HTTP status codes

	"reciplette/internal/domain" // Importing domain models
	"reciplette/internal/store"  // Persistence gateway
	"reciplette/internal/upload" // Image uploads
	"reciplette/internal/web"    // Template names

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logrus for structured logging
)

// ListRecipesHandler renders the recipe list
func ListRecipesHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		recipes, err := s.ListRecipes(c.Request.Context())
		if err != nil {
			fail(c, http.StatusInternalServerError, domain.MessageFailedListRecipes, err, nil)
			return
		}
		c.HTML(http.StatusOK, web.TemplateIndex, gin.H{"recipe": recipes})
	}
}

// GetRecipeHandler renders a single recipe with its category name
func GetRecipeHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			fail(c, http.StatusNotFound, domain.MessageRecipeNotFound, nil, logrus.Fields{"recipe_id": c.Param("id")})
			return
		}
		recipe, err := s.FindRecipe(c.Request.Context(), id)
		if errors.Is(err, domain.ErrRecipeNotFound) {
			fail(c, http.StatusNotFound, domain.MessageRecipeNotFound, nil, logrus.Fields{"recipe_id": id})
			return
		}
		if err != nil {
			fail(c, http.StatusInternalServerError, domain.MessageFailedFetchRecipe, err, logrus.Fields{"recipe_id": id})
			return
		}
		c.HTML(http.StatusOK, web.TemplateRecipe, gin.H{"recipe": recipe})
	}
}

// AddRecipeFormHandler renders the new recipe form with the category choices
func AddRecipeFormHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		categories, err := s.ListCategories(c.Request.Context())
		if err != nil {
			fail(c, http.StatusInternalServerError, domain.MessageFailedFetchCategories, err, nil)
			return
		}
		c.HTML(http.StatusOK, web.TemplateAddRecipe, gin.H{"categories": categories})
	}
}

// AddRecipeHandler inserts a recipe, storing the uploaded image if one was sent
func AddRecipeHandler(s *store.Store, images upload.ImageStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var form RecipeForm
		if err := c.ShouldBind(&form); err != nil {
			fail(c, http.StatusInternalServerError, domain.MessageFailedAddRecipe, err, nil)
			return
		}
		image, _, err := upload.FromRequest(c, images) // Empty key when no file
		if err != nil {
			fail(c, http.StatusInternalServerError, domain.MessageFailedAddRecipe, err, nil)
			return
		}
		recipe := domain.Recipe{
			RecipeName:   form.RecipeName,
			CategoryID:   form.CategoryID,
			Difficulty:   form.Difficulty,
			Time:         form.Time,
			Ingredients:  form.Ingredients,
			Instructions: form.Instructions,
			Image:        image,
		}
		if err := s.CreateRecipe(c.Request.Context(), &recipe); err != nil {
			fail(c, http.StatusInternalServerError, domain.MessageFailedAddRecipe, err, logrus.Fields{"image": image})
			return
		}
		logrus.WithFields(logrus.Fields{
			"recipe_id": recipe.RecipeID, // New recipe ID
			"image":     image,           // Stored image key
		}).Info("Recipe created")
		redirect(c, "/")
	}
}

// EditRecipeFormHandler renders the edit form for a recipe
func EditRecipeFormHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			fail(c, http.StatusNotFound, domain.MessageRecipeNotFound, nil, logrus.Fields{"recipe_id": c.Param("id")})
			return
		}
		recipe, err := s.FindRecipe(c.Request.Context(), id)
		if errors.Is(err, domain.ErrRecipeNotFound) {
			fail(c, http.StatusNotFound, domain.MessageRecipeNotFound, nil, logrus.Fields{"recipe_id": id})
			return
		}
		if err != nil {
			fail(c, http.StatusInternalServerError, domain.MessageFailedRecipeByID, err, logrus.Fields{"recipe_id": id})
			return
		}
		categories, err := s.ListCategories(c.Request.Context())
		if err != nil {
			fail(c, http.StatusInternalServerError, domain.MessageFailedListCategories, err, nil)
			return
		}
		c.HTML(http.StatusOK, web.TemplateEditRecipe, gin.H{"recipe": recipe, "categories": categories})
	}
}

// EditRecipeHandler updates a recipe. The image column is only written when
// a new file was uploaded, otherwise the stored key is kept.
func EditRecipeHandler(s *store.Store, images upload.ImageStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := pathID(c)
		if !ok {
			fail(c, http.StatusNotFound, domain.MessageRecipeNotFound, nil, logrus.Fields{"recipe_id": c.Param("id")})
			return
		}
		var form RecipeForm
		if err := c.ShouldBind(&form); err != nil {
			fail(c, http.StatusInternalServerError, domain.MessageFailedUpdateRecipe, err, logrus.Fields{"recipe_id": id})
			return
		}
		image := form.CurrentImage
		key, uploaded, err := upload.FromRequest(c, images)
		if err != nil {
			fail(c, http.StatusInternalServerError, domain.MessageFailedUpdateRecipe, err, logrus.Fields{"recipe_id": id})
			return
		}
		update := store.NewRecipeUpdate().
			WithName(form.RecipeName).
			WithCategory(form.CategoryID).
			WithDifficulty(form.Difficulty).
			WithTime(form.Time).
			WithIngredients(form.Ingredients).
			WithInstructions(form.Instructions)
		if uploaded {
			image = key
			update.WithImage(image)
		}
		if err := s.UpdateRecipe(c.Request.Context(), id, update); err != nil {
			fail(c, http.StatusInternalServerError, domain.MessageFailedUpdateRecipe, err, logrus.Fields{"recipe_id": id})
			return
		}
		logrus.WithFields(logrus.Fields{
			"recipe_id":     id,       // Updated recipe
			"image":         image,    // Image key after the update
			"image_changed": uploaded, // Whether a new file replaced it
		}).Info("Recipe updated")
		redirect(c, "/")
	}
}

// DeleteRecipeHandler removes the recipe named in the form body
func DeleteRecipeHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var form RecipeIDForm
		if err := c.ShouldBind(&form); err != nil {
			fail(c, http.StatusInternalServerError, domain.MessageFailedDeleteRecipe, err, nil)
			return
		}
		if err := s.DeleteRecipe(c.Request.Context(), form.RecipeID); err != nil {
			fail(c, http.StatusInternalServerError, domain.MessageFailedDeleteRecipe, err, logrus.Fields{"recipe_id": form.RecipeID})
			return
		}
		logrus.WithField("recipe_id", form.RecipeID).Info("Recipe deleted")
		redirect(c, "/")
	}
}
