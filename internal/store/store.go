// Package store is the persistence gateway of the catalog. Every method runs
// parameterized statements on the shared connection pool and wraps driver
// errors so handlers can tell a missing row from a failed query.
package store

import (
	"context" // Request-scoped cancellation
	"errors"  // Error classification
	"fmt"     // Error wrapping

	"reciplette/internal/domain" // Importing domain models

	"gorm.io/gorm" // GORM ORM library
)

// Store issues catalog queries on a pooled *gorm.DB
type Store struct {
	db *gorm.DB
}

// New wraps an open connection pool
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Ping checks that a pooled connection can reach the database
func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("access pool: %w", err)
	}
	return sqlDB.PingContext(ctx)
}

// randomOrder returns the dialect's random ordering function
func (s *Store) randomOrder() string {
	if s.db.Dialector.Name() == "sqlite" {
		return "RANDOM()"
	}
	return "RAND()"
}

// ListRecipes returns every recipe
func (s *Store) ListRecipes(ctx context.Context) ([]domain.Recipe, error) {
	var recipes []domain.Recipe
	if err := s.db.WithContext(ctx).Find(&recipes).Error; err != nil {
		return nil, fmt.Errorf("list recipes: %w", err)
	}
	return recipes, nil
}

// FindRecipe returns the recipe joined with its category name
func (s *Store) FindRecipe(ctx context.Context, id uint) (*domain.RecipeDetail, error) {
	var detail domain.RecipeDetail
	err := s.db.WithContext(ctx).
		Table("recipe").
		Select("recipe.*, category.categoryName").
		Joins("INNER JOIN category ON recipe.categoryID = category.categoryID").
		Where("recipe.recipeID = ?", id).
		Take(&detail).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrRecipeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find recipe %d: %w", id, err)
	}
	return &detail, nil
}

// CreateRecipe inserts a recipe and fills in its generated ID
func (s *Store) CreateRecipe(ctx context.Context, recipe *domain.Recipe) error {
	if err := s.db.WithContext(ctx).Create(recipe).Error; err != nil {
		return fmt.Errorf("create recipe: %w", err)
	}
	return nil
}

// UpdateRecipe writes the fields collected by the builder. A missing ID is
// not an error: the statement simply matches no rows.
func (s *Store) UpdateRecipe(ctx context.Context, id uint, update *RecipeUpdate) error {
	if update.Empty() {
		return nil
	}
	err := s.db.WithContext(ctx).
		Model(&domain.Recipe{}).
		Where("recipeID = ?", id).
		Updates(update.Fields()).Error
	if err != nil {
		return fmt.Errorf("update recipe %d: %w", id, err)
	}
	return nil
}

// DeleteRecipe removes a recipe by ID
func (s *Store) DeleteRecipe(ctx context.Context, id uint) error {
	if err := s.db.WithContext(ctx).Where("recipeID = ?", id).Delete(&domain.Recipe{}).Error; err != nil {
		return fmt.Errorf("delete recipe %d: %w", id, err)
	}
	return nil
}

// ListCategories returns every category
func (s *Store) ListCategories(ctx context.Context) ([]domain.Category, error) {
	var categories []domain.Category
	if err := s.db.WithContext(ctx).Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}

// FindCategory returns a single category
func (s *Store) FindCategory(ctx context.Context, id uint) (*domain.Category, error) {
	var category domain.Category
	err := s.db.WithContext(ctx).Where("categoryID = ?", id).Take(&category).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrCategoryNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find category %d: %w", id, err)
	}
	return &category, nil
}

// CreateCategory inserts a category and returns it with its ID
func (s *Store) CreateCategory(ctx context.Context, name string) (*domain.Category, error) {
	category := domain.Category{CategoryName: name}
	if err := s.db.WithContext(ctx).Create(&category).Error; err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}
	return &category, nil
}

// RenameCategory updates the category name
func (s *Store) RenameCategory(ctx context.Context, id uint, name string) error {
	err := s.db.WithContext(ctx).
		Model(&domain.Category{}).
		Where("categoryID = ?", id).
		Update("categoryName", name).Error
	if err != nil {
		return fmt.Errorf("rename category %d: %w", id, err)
	}
	return nil
}

// DeleteCategory removes a category. Recipes that point at it are left alone.
func (s *Store) DeleteCategory(ctx context.Context, id uint) error {
	if err := s.db.WithContext(ctx).Where("categoryID = ?", id).Delete(&domain.Category{}).Error; err != nil {
		return fmt.Errorf("delete category %d: %w", id, err)
	}
	return nil
}
