package store

import (
	"context"
	"errors"
	"fmt"

	"reciplette/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// AddToRoulette queues a recipe. Queuing a recipe that is already queued is
// a no-op thanks to the primary key on recipeID.
func (s *Store) AddToRoulette(ctx context.Context, recipeID uint) error {
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&domain.RouletteEntry{RecipeID: recipeID}).Error
	if err != nil {
		return fmt.Errorf("add recipe %d to roulette: %w", recipeID, err)
	}
	return nil
}

// RemoveFromRoulette dequeues a recipe
func (s *Store) RemoveFromRoulette(ctx context.Context, recipeID uint) error {
	err := s.db.WithContext(ctx).
		Where("recipeID = ?", recipeID).
		Delete(&domain.RouletteEntry{}).Error
	if err != nil {
		return fmt.Errorf("remove recipe %d from roulette: %w", recipeID, err)
	}
	return nil
}

// ListRoulette returns the queued recipes with their names
func (s *Store) ListRoulette(ctx context.Context) ([]domain.QueuedRecipe, error) {
	var queue []domain.QueuedRecipe
	err := s.db.WithContext(ctx).
		Table("roulette").
		Select("roulette.recipeID, recipe.recipe_name").
		Joins("INNER JOIN recipe ON recipe.recipeID = roulette.recipeID").
		Order("recipe.recipe_name").
		Scan(&queue).Error
	if err != nil {
		return nil, fmt.Errorf("list roulette: %w", err)
	}
	return queue, nil
}

// DrawRoulette picks a random queued recipe and empties the queue in one
// transaction, so two concurrent draws can never both return a recipe from
// the same queue.
func (s *Store) DrawRoulette(ctx context.Context) (uint, error) {
	var drawn domain.RouletteEntry
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Lock the queue rows while choosing one
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Order(s.randomOrder()).
			Take(&drawn).Error; err != nil {
			return err // Rollback, includes the empty queue
		}
		// Empty the queue before the transaction commits
		return tx.Session(&gorm.Session{AllowGlobalUpdate: true}).
			Delete(&domain.RouletteEntry{}).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, domain.ErrRouletteEmpty
	}
	if err != nil {
		return 0, fmt.Errorf("draw roulette: %w", err)
	}
	return drawn.RecipeID, nil
}
