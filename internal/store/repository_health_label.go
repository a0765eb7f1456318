package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/what-to-cook/internal/logger"
)

type healthLabelRepository struct {
	db *DB
}

func NewHealthLabelRepository(db *DB, logger *logger.Logger) HealthLabelRepository {
	logger.Debug().Msg("creating health label repository")
	return &healthLabelRepository{db: db}
}

// ReplaceUserRestrictions deletes every restriction of the user and inserts
// labelIDs in one transaction. An unknown label id rolls the transaction
// back and yields [ErrHealthLabelNotFound].
func (r *healthLabelRepository) ReplaceUserRestrictions(ctx context.Context, userID int64, labelIDs []int64) error {
	log := logger.FromContext(ctx)

	err := withTx(ctx, r.db.DB, func(ctx context.Context, tx DBTX) error {
		if _, err := tx.ExecContext(ctx, deleteUserRestrictions, userID); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		if len(labelIDs) == 0 {
			return nil
		}

		query, args, err := buildInsertRestrictionsQuery(userID, labelIDs)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			if isForeignKeyViolation(err) {
				return ErrHealthLabelNotFound
			}
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		return nil
	})
	if err != nil && !errors.Is(err, ErrHealthLabelNotFound) {
		log.Err(err).Str("func", "*healthLabelRepository.ReplaceUserRestrictions").Msg("error replacing restrictions")
	}

	return err
}

func (r *healthLabelRepository) ListUserLabels(ctx context.Context, userID int64) ([]string, error) {
	return r.selectStrings(ctx, "*healthLabelRepository.ListUserLabels", listUserLabels, userID)
}

func (r *healthLabelRepository) ListAllLabels(ctx context.Context) ([]string, error) {
	return r.selectStrings(ctx, "*healthLabelRepository.ListAllLabels", listAllLabels)
}

// FindLabelIDs returns the ids of the labels named exactly as in labels,
// ordered by id. Unknown names are skipped.
func (r *healthLabelRepository) FindLabelIDs(ctx context.Context, labels []string) ([]int64, error) {
	log := logger.FromContext(ctx)

	ids := make([]int64, 0, len(labels))
	if len(labels) == 0 {
		return ids, nil
	}

	query, args, err := buildFindLabelIDsQuery(labels)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*healthLabelRepository.FindLabelIDs").Msg("error selecting label ids")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var id int64
		if err = rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		ids = append(ids, id)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return ids, nil
}

func (r *healthLabelRepository) selectStrings(ctx context.Context, funcName, query string, args ...any) ([]string, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("error selecting labels")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	values := make([]string, 0)
	for rows.Next() {
		var v string
		if err = rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		values = append(values, v)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return values, nil
}
