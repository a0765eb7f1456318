package store

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/what-to-cook/internal/logger"
)

func TestAddFavorite(t *testing.T) {
	tests := []struct {
		name    string
		execErr error
		wantErr error
	}{
		{name: "added or already present"},
		{name: "unknown recipe", execErr: pgError(pgerrcode.ForeignKeyViolation), wantErr: ErrRecipeNotFound},
		{name: "db error", execErr: errors.New("boom"), wantErr: ErrExecutingStatement},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			repo := NewFavoriteRepository(db, logger.Nop())

			exp := mock.ExpectExec(q(addFavorite)).WithArgs(int64(1), int64(42))
			if tt.execErr != nil {
				exp.WillReturnError(tt.execErr)
			} else {
				exp.WillReturnResult(sqlmock.NewResult(0, 0))
			}

			err := repo.AddFavorite(context.Background(), 1, 42)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRemoveFavorite_ZeroRowsIsSuccess(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFavoriteRepository(db, logger.Nop())

	mock.ExpectExec(q(removeFavorite)).
		WithArgs(int64(1), int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.NoError(t, repo.RemoveFavorite(context.Background(), 1, 42))
}

func TestListFavorites(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFavoriteRepository(db, logger.Nop())

	query, _, err := buildListFavoritesQuery(1)
	require.NoError(t, err)

	mock.ExpectQuery(q(query)).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "image"}).
			AddRow(7, "Roast Chicken", "roast_chicken.png").
			AddRow(8, "Lamb Broth", nil))

	recipes, err := repo.ListFavorites(context.Background(), 1)

	require.NoError(t, err)
	require.Len(t, recipes, 2)
	require.NotNil(t, recipes[0].Image)
	assert.Equal(t, "roast_chicken.png", *recipes[0].Image)
	assert.Nil(t, recipes[1].Image)
}

func TestIsFavorited(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewFavoriteRepository(db, logger.Nop())

	mock.ExpectQuery(q(isFavorited)).
		WithArgs(int64(1), int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectQuery(q(isFavorited)).
		WithArgs(int64(1), int64(8)).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

	yes, err := repo.IsFavorited(context.Background(), 1, 7)
	require.NoError(t, err)
	assert.True(t, yes)

	no, err := repo.IsFavorited(context.Background(), 1, 8)
	require.NoError(t, err)
	assert.False(t, no)
}
