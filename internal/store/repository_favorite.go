package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/what-to-cook/internal/logger"
	"github.com/MKhiriev/what-to-cook/models"
)

type favoriteRepository struct {
	db *DB
}

func NewFavoriteRepository(db *DB, logger *logger.Logger) FavoriteRepository {
	logger.Debug().Msg("creating favorite repository")
	return &favoriteRepository{db: db}
}

// AddFavorite bookmarks the recipe. Bookmarking twice is a no-op; an
// unknown recipe yields [ErrRecipeNotFound].
func (r *favoriteRepository) AddFavorite(ctx context.Context, userID, recipeID int64) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, addFavorite, userID, recipeID); err != nil {
		if isForeignKeyViolation(err) {
			return ErrRecipeNotFound
		}
		log.Err(err).Str("func", "*favoriteRepository.AddFavorite").Msg("error adding favorite")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// RemoveFavorite deletes the bookmark if present.
func (r *favoriteRepository) RemoveFavorite(ctx context.Context, userID, recipeID int64) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, removeFavorite, userID, recipeID); err != nil {
		log.Err(err).Str("func", "*favoriteRepository.RemoveFavorite").Msg("error removing favorite")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// ListFavorites returns the bookmarked recipes, newest bookmark first.
// Image holds the bare file name as stored.
func (r *favoriteRepository) ListFavorites(ctx context.Context, userID int64) ([]models.Recipe, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListFavoritesQuery(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*favoriteRepository.ListFavorites").Msg("error listing favorites")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	recipes := make([]models.Recipe, 0)
	for rows.Next() {
		var (
			recipe models.Recipe
			image  sql.NullString
		)
		if err = rows.Scan(&recipe.ID, &recipe.Title, &image); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		if image.Valid {
			recipe.Image = &image.String
		}
		recipes = append(recipes, recipe)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return recipes, nil
}

func (r *favoriteRepository) IsFavorited(ctx context.Context, userID, recipeID int64) (bool, error) {
	log := logger.FromContext(ctx)

	var exists bool
	if err := r.db.QueryRowContext(ctx, isFavorited, userID, recipeID).Scan(&exists); err != nil {
		log.Err(err).Str("func", "*favoriteRepository.IsFavorited").Msg("error checking favorite")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return exists, nil
}
