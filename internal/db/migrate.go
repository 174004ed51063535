package db

import (
	"fmt" // Error wrapping

	"reciplette/internal/domain" // Importing domain models

	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/gorm"               // GORM ORM library
)

// Models lists every table owned by the catalog
var Models = []any{&domain.Category{}, &domain.Recipe{}, &domain.RouletteEntry{}}

// Migrate performs automatic migration for the database schema
func Migrate(db *gorm.DB) error {
	// AutoMigrate will create tables, missing columns and indexes
	if err := db.AutoMigrate(Models...); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	logrus.WithField("dialect", db.Dialector.Name()).Info("Migration completed.")
	return nil
}
