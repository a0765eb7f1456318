package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/what-to-cook/internal/logger"
	"github.com/MKhiriev/what-to-cook/models"
)

type ingredientRepository struct {
	db *DB
}

func NewIngredientRepository(db *DB, logger *logger.Logger) IngredientRepository {
	logger.Debug().Msg("creating ingredient repository")
	return &ingredientRepository{db: db}
}

func (r *ingredientRepository) SearchIngredients(ctx context.Context, query string) ([]string, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, searchIngredients, containsPattern(query))
	if err != nil {
		log.Err(err).Str("func", "*ingredientRepository.SearchIngredients").Msg("error searching ingredients")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	names := make([]string, 0)
	for rows.Next() {
		var name string
		if err = rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		names = append(names, name)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return names, nil
}

// ResolveIngredient returns the exact case-insensitive match if there is
// one, otherwise the only ingredient containing name.
// Several non-exact matches yield [ErrIngredientIsAmbiguous], none yields
// [ErrIngredientNotFound].
func (r *ingredientRepository) ResolveIngredient(ctx context.Context, name string) (models.Ingredient, error) {
	log := logger.FromContext(ctx)
	name = strings.TrimSpace(name)

	rows, err := r.db.QueryContext(ctx, resolveIngredient, containsPattern(name), name)
	if err != nil {
		log.Err(err).Str("func", "*ingredientRepository.ResolveIngredient").Msg("error resolving ingredient")
		return models.Ingredient{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	type candidate struct {
		models.Ingredient
		exact bool
	}
	var candidates []candidate
	for rows.Next() {
		var c candidate
		if err = rows.Scan(&c.ID, &c.Name, &c.exact); err != nil {
			return models.Ingredient{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		candidates = append(candidates, c)
	}
	if err = rows.Err(); err != nil {
		return models.Ingredient{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	switch {
	case len(candidates) == 0:
		return models.Ingredient{}, ErrIngredientNotFound
	case candidates[0].exact || len(candidates) == 1:
		return candidates[0].Ingredient, nil
	default:
		log.Debug().Str("name", name).Msg("ingredient name matches several ingredients")
		return models.Ingredient{}, ErrIngredientIsAmbiguous
	}
}
