package api

import (
	"fmt" // Error wrapping

	"reciplette/internal/middleware" // Request logging and metrics
	"reciplette/internal/store"      // Persistence gateway
	"reciplette/internal/upload"     // Image uploads
	"reciplette/internal/web"        // HTML templates

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logrus for structured logging
)

// Deps are the collaborators shared by every route
type Deps struct {
	Store   *store.Store        // Persistence gateway
	Images  upload.ImageStore   // Uploaded image storage
	Metrics *middleware.Metrics // Optional, nil disables /metrics
	Logger  *logrus.Logger      // Access log destination
}

// NewRouter wires every catalog route onto a new gin engine
func NewRouter(deps Deps) (*gin.Engine, error) {
	tmpl, err := web.Templates()
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	if deps.Logger == nil {
		deps.Logger = logrus.StandardLogger()
	}

	r := gin.New() // Gin router instance
	r.Use(gin.Recovery(), middleware.RequestLogger(deps.Logger))
	if deps.Metrics != nil {
		r.Use(deps.Metrics.Middleware())
		r.GET("/metrics", deps.Metrics.Handler())
	}
	r.SetHTMLTemplate(tmpl)

	s := deps.Store

	// Pages
	r.GET("/", ListRecipesHandler(s))
	r.GET("/category", ListCategoriesHandler(s))
	r.GET("/recipe/:id", GetRecipeHandler(s))
	r.GET("/addRecipe", AddRecipeFormHandler(s))
	r.GET("/addCategory", AddCategoryFormHandler())
	r.GET("/editRecipe/:id", EditRecipeFormHandler(s))
	r.GET("/editCategory/:id", EditCategoryFormHandler(s))

	// Roulette
	r.GET("/roulette", RoulettePageHandler(s))
	r.GET("/generateRandomRecipe", GenerateRandomRecipeHandler(s))
	r.POST("/add-to-roulette", AddToRouletteHandler(s))
	r.POST("/remove-from-roulette", RemoveFromRouletteHandler(s))

	// Form submissions
	r.POST("/editRecipe/:id", EditRecipeHandler(s, deps.Images))
	r.POST("/editCategory/:id", EditCategoryHandler(s))
	r.POST("/addRecipe", AddRecipeHandler(s, deps.Images))
	r.POST("/deleteRecipe", DeleteRecipeHandler(s))
	r.POST("/deleteCategory", DeleteCategoryHandler(s))
	r.POST("/addCategory", AddCategoryHandler(s))

	// Uploaded images and probes
	r.GET("/images/:key", ImageHandler(deps.Images))
	r.GET("/healthz", HealthHandler(s))

	return r, nil
}
