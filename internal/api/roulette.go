package api

import (
	"errors"   // Error classification
	"net/http" // HTTP status codes
	"strconv"  // Redirect target

	"reciplette/internal/domain" // Importing domain models
	"reciplette/internal/store"  // Persistence gateway
	"reciplette/internal/web"    // Template names

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logrus for structured logging
)

// RoulettePageHandler renders the roulette page with the queued recipes
func RoulettePageHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		queue, err := s.ListRoulette(c.Request.Context())
		if err != nil {
			fail(c, http.StatusInternalServerError, domain.MessageFailedListRoulette, err, nil)
			return
		}
		c.HTML(http.StatusOK, web.TemplateRoulette, gin.H{"queue": queue})
	}
}

// GenerateRandomRecipeHandler draws a queued recipe, empties the queue and
// redirects to the drawn recipe. The queue is emptied before responding.
func GenerateRandomRecipeHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		recipeID, err := s.DrawRoulette(c.Request.Context())
		if errors.Is(err, domain.ErrRouletteEmpty) {
			fail(c, http.StatusNotFound, domain.MessageRouletteEmpty, nil, nil)
			return
		}
		if err != nil {
			fail(c, http.StatusInternalServerError, domain.MessageFailedDrawRoulette, err, nil)
			return
		}
		logrus.WithField("recipe_id", recipeID).Info("Roulette drawn") // Log the winner
		redirect(c, "/recipe/"+strconv.FormatUint(uint64(recipeID), 10))
	}
}

// AddToRouletteHandler queues a recipe. Failures are logged and the browser
// is sent back to the list as if the add had worked.
func AddToRouletteHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var form RecipeIDForm
		if err := c.ShouldBind(&form); err != nil {
			logrus.WithError(err).Error("Error reading recipe to add to roulette")
			redirect(c, "/")
			return
		}
		if err := s.AddToRoulette(c.Request.Context(), form.RecipeID); err != nil {
			logrus.WithFields(logrus.Fields{
				"recipe_id": form.RecipeID, // Recipe that was not queued
				"error":     err.Error(),   // Error message
			}).Error("Error adding recipe to roulette")
		}
		redirect(c, "/")
	}
}

// RemoveFromRouletteHandler dequeues a recipe, swallowing failures like
// AddToRouletteHandler
func RemoveFromRouletteHandler(s *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var form RecipeIDForm
		if err := c.ShouldBind(&form); err != nil {
			logrus.WithError(err).Error("Error reading recipe to remove from roulette")
			redirect(c, "/")
			return
		}
		if err := s.RemoveFromRoulette(c.Request.Context(), form.RecipeID); err != nil {
			logrus.WithFields(logrus.Fields{
				"recipe_id": form.RecipeID,
				"error":     err.Error(),
			}).Error("Error removing recipe from roulette")
		}
		redirect(c, "/")
	}
}
