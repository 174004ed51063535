// Package testutil provides a migrated SQLite database for package tests.
package testutil

import (
	"path/filepath"
	"testing"

	"reciplette/internal/db"
	"reciplette/internal/domain"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB opens a file-backed SQLite database in a temp dir and migrates it.
// A single connection keeps SQLite from reporting busy locks in transactions.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	path := filepath.Join(t.TempDir(), "reciplette.db")
	gormDB, err := db.OpenDialector(sqlite.Open(path), db.PoolOptions{MaxOpenConns: 1}, logger.Silent)
	require.NoError(t, err, "open sqlite")
	require.NoError(t, db.Migrate(gormDB), "migrate sqlite")

	t.Cleanup(func() { _ = db.Close(gormDB) })
	return gormDB
}

// SeedCategory inserts a category and returns it
func SeedCategory(t *testing.T, gormDB *gorm.DB, name string) domain.Category {
	t.Helper()
	category := domain.Category{CategoryName: name}
	require.NoError(t, gormDB.Create(&category).Error)
	return category
}

// SeedRecipe inserts a recipe in the given category and returns it
func SeedRecipe(t *testing.T, gormDB *gorm.DB, name string, categoryID uint, image string) domain.Recipe {
	t.Helper()
	recipe := domain.Recipe{
		RecipeName:   name,
		CategoryID:   categoryID,
		Difficulty:   "Easy",
		Time:         "20 mins",
		Ingredients:  "flour, water",
		Instructions: "Mix and bake.",
		Image:        image,
	}
	require.NoError(t, gormDB.Create(&recipe).Error)
	return recipe
}

// RouletteCount returns the number of queued entries
func RouletteCount(t *testing.T, gormDB *gorm.DB) int64 {
	t.Helper()
	var n int64
	require.NoError(t, gormDB.Model(&domain.RouletteEntry{}).Count(&n).Error)
	return n
}
