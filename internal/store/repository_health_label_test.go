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

const insertRestrictionsPrefix = "INSERT INTO dietary_restrictions (user_id,health_label_id) VALUES "

func TestReplaceUserRestrictions_Success(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewHealthLabelRepository(db, logger.Nop())

	mock.ExpectBegin()
	mock.ExpectExec(q(deleteUserRestrictions)).WithArgs(int64(1)).WillReturnResult(sqlmock.NewResult(0, 4))
	mock.ExpectExec(q(insertRestrictionsPrefix+"($1,$2),($3,$4)")).
		WithArgs(int64(1), int64(2), int64(1), int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	assert.NoError(t, repo.ReplaceUserRestrictions(context.Background(), 1, []int64{2, 5}))
}

func TestReplaceUserRestrictions_EmptyClearsAll(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewHealthLabelRepository(db, logger.Nop())

	mock.ExpectBegin()
	mock.ExpectExec(q(deleteUserRestrictions)).WithArgs(int64(1)).WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectCommit()

	assert.NoError(t, repo.ReplaceUserRestrictions(context.Background(), 1, nil))
}

func TestReplaceUserRestrictions_UnknownLabelRollsBack(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewHealthLabelRepository(db, logger.Nop())

	mock.ExpectBegin()
	mock.ExpectExec(q(deleteUserRestrictions)).WithArgs(int64(1)).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(q(insertRestrictionsPrefix + "($1,$2)")).
		WithArgs(int64(1), int64(999)).
		WillReturnError(pgError(pgerrcode.ForeignKeyViolation))
	mock.ExpectRollback()

	err := repo.ReplaceUserRestrictions(context.Background(), 1, []int64{999})

	assert.ErrorIs(t, err, ErrHealthLabelNotFound)
}

func TestReplaceUserRestrictions_DeleteFailsRollsBack(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewHealthLabelRepository(db, logger.Nop())

	mock.ExpectBegin()
	mock.ExpectExec(q(deleteUserRestrictions)).WillReturnError(errors.New("boom"))
	mock.ExpectRollback()

	err := repo.ReplaceUserRestrictions(context.Background(), 1, []int64{2})

	assert.ErrorIs(t, err, ErrExecutingStatement)
}

func TestReplaceUserRestrictions_BeginFails(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewHealthLabelRepository(db, logger.Nop())

	mock.ExpectBegin().WillReturnError(errors.New("no connection"))

	err := repo.ReplaceUserRestrictions(context.Background(), 1, []int64{2})

	assert.ErrorIs(t, err, ErrBeginningTransaction)
}

func TestListUserLabels(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewHealthLabelRepository(db, logger.Nop())

	mock.ExpectQuery(q(listUserLabels)).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"label"}).AddRow("Kosher").AddRow("Vegan"))

	labels, err := repo.ListUserLabels(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, []string{"Kosher", "Vegan"}, labels)
}

func TestListAllLabels_EmptyIsNotNil(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewHealthLabelRepository(db, logger.Nop())

	mock.ExpectQuery(q(listAllLabels)).WillReturnRows(sqlmock.NewRows([]string{"label"}))

	labels, err := repo.ListAllLabels(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, labels)
	assert.Empty(t, labels)
}

func TestFindLabelIDs(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewHealthLabelRepository(db, logger.Nop())

	mock.ExpectQuery(q("SELECT id FROM health_labels WHERE label IN ($1,$2) ORDER BY id")).
		WithArgs("Vegan", "Kosher").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(14).AddRow(33))

	ids, err := repo.FindLabelIDs(context.Background(), []string{"Vegan", "Kosher"})

	require.NoError(t, err)
	assert.Equal(t, []int64{14, 33}, ids)
}

func TestFindLabelIDs_NoLabelsSkipsQuery(t *testing.T) {
	db, _ := newMockDB(t)
	repo := NewHealthLabelRepository(db, logger.Nop())

	ids, err := repo.FindLabelIDs(context.Background(), nil)

	require.NoError(t, err)
	assert.Equal(t, []int64{}, ids)
}
