package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/what-to-cook/internal/logger"
	"github.com/MKhiriev/what-to-cook/models"
)

type fridgeRepository struct {
	db *DB
}

func NewFridgeRepository(db *DB, logger *logger.Logger) FridgeRepository {
	logger.Debug().Msg("creating fridge repository")
	return &fridgeRepository{db: db}
}

// UpsertFridgeItem inserts the entry or overwrites its quantity in a single
// statement, so concurrent saves of the same ingredient never duplicate it.
func (r *fridgeRepository) UpsertFridgeItem(ctx context.Context, userID, ingredientID int64, quantity int) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, upsertFridgeItem, userID, ingredientID, quantity); err != nil {
		if isForeignKeyViolation(err) {
			return ErrUserNotFound
		}
		log.Err(err).Str("func", "*fridgeRepository.UpsertFridgeItem").Msg("error saving fridge item")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *fridgeRepository) ListFridgeItems(ctx context.Context, userID int64) ([]models.FridgeItem, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listFridgeItems, userID)
	if err != nil {
		log.Err(err).Str("func", "*fridgeRepository.ListFridgeItems").Msg("error listing fridge items")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]models.FridgeItem, 0)
	for rows.Next() {
		var item models.FridgeItem
		if err = rows.Scan(&item.Name, &item.Quantity); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		items = append(items, item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return items, nil
}

// DeleteFridgeItem removes one entry. Zero affected rows yields
// [ErrFridgeEntryNotFound].
func (r *fridgeRepository) DeleteFridgeItem(ctx context.Context, userID, ingredientID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteFridgeItem, userID, ingredientID)
	if err != nil {
		log.Err(err).Str("func", "*fridgeRepository.DeleteFridgeItem").Msg("error deleting fridge item")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrFridgeEntryNotFound
	}

	return nil
}
