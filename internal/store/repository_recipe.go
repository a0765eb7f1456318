package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/what-to-cook/internal/logger"
)

type recipeRepository struct {
	db *DB
}

func NewRecipeRepository(db *DB, logger *logger.Logger) RecipeRepository {
	logger.Debug().Msg("creating recipe repository")
	return &recipeRepository{db: db}
}

func (r *recipeRepository) SetImageByTitle(ctx context.Context, title, image string) (int64, error) {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, setRecipeImageByTitle, title, image)
	if err != nil {
		log.Err(err).Str("func", "*recipeRepository.SetImageByTitle").Str("title", title).Msg("error updating recipe image")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected, nil
}
