package store

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/what-to-cook/internal/logger"
	"github.com/MKhiriev/what-to-cook/models"
)

func TestSearchIngredients(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewIngredientRepository(db, logger.Nop())

	mock.ExpectQuery(q(searchIngredients)).
		WithArgs(`%100\%%`).
		WillReturnRows(sqlmock.NewRows([]string{"name"}).AddRow("100% rye flour"))

	names, err := repo.SearchIngredients(context.Background(), "100%")

	require.NoError(t, err)
	assert.Equal(t, []string{"100% rye flour"}, names)
}

func TestSearchIngredients_EmptyIsNotNil(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewIngredientRepository(db, logger.Nop())

	mock.ExpectQuery(q(searchIngredients)).
		WithArgs("%xyz%").
		WillReturnRows(sqlmock.NewRows([]string{"name"}))

	names, err := repo.SearchIngredients(context.Background(), "xyz")

	require.NoError(t, err)
	assert.NotNil(t, names)
	assert.Empty(t, names)
}

func TestSearchIngredients_QueryError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewIngredientRepository(db, logger.Nop())

	mock.ExpectQuery(q(searchIngredients)).WillReturnError(errors.New("boom"))

	_, err := repo.SearchIngredients(context.Background(), "egg")

	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestResolveIngredient(t *testing.T) {
	columns := []string{"id", "name", "exact"}

	tests := []struct {
		name    string
		rows    *sqlmock.Rows
		want    models.Ingredient
		wantErr error
	}{
		{
			name: "exact match wins over substring matches",
			rows: sqlmock.NewRows(columns).AddRow(4, "Egg", true).AddRow(9, "Eggplant", false),
			want: models.Ingredient{ID: 4, Name: "Egg"},
		},
		{
			name: "single substring match",
			rows: sqlmock.NewRows(columns).AddRow(9, "Eggplant", false),
			want: models.Ingredient{ID: 9, Name: "Eggplant"},
		},
		{
			name:    "several substring matches",
			rows:    sqlmock.NewRows(columns).AddRow(9, "Eggplant", false).AddRow(11, "Egg yolk", false),
			wantErr: ErrIngredientIsAmbiguous,
		},
		{
			name:    "no match",
			rows:    sqlmock.NewRows(columns),
			wantErr: ErrIngredientNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			repo := NewIngredientRepository(db, logger.Nop())

			mock.ExpectQuery(q(resolveIngredient)).
				WithArgs("%egg%", "egg").
				WillReturnRows(tt.rows)

			got, err := repo.ResolveIngredient(context.Background(), "  egg ")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
