package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/what-to-cook/internal/logger"
	"github.com/MKhiriev/what-to-cook/internal/mock"
	"github.com/MKhiriev/what-to-cook/internal/store"
	"github.com/MKhiriev/what-to-cook/internal/validators"
	"github.com/MKhiriev/what-to-cook/models"
)

func newTestPreferenceService(t *testing.T) (PreferenceService, *mock.MockHealthLabelRepository) {
	t.Helper()
	repo := mock.NewMockHealthLabelRepository(gomock.NewController(t))
	return NewPreferenceValidationService().Wrap(NewPreferenceService(repo, logger.Nop())), repo
}

func restrictions(ids ...int64) models.DietaryRestrictionsRequest {
	l := models.LabelIDs(ids)
	return models.DietaryRestrictionsRequest{SelectedRestrictions: &l}
}

func TestPreferenceService_SaveRestrictions_Deduplicates(t *testing.T) {
	svc, repo := newTestPreferenceService(t)
	repo.EXPECT().ReplaceUserRestrictions(gomock.Any(), int64(1), []int64{2, 5}).Return(nil)

	err := svc.SaveRestrictions(context.Background(), 1, restrictions(5, 2, 5))

	require.NoError(t, err)
}

func TestPreferenceService_SaveRestrictions_EmptyClearsAll(t *testing.T) {
	svc, repo := newTestPreferenceService(t)
	repo.EXPECT().
		ReplaceUserRestrictions(gomock.Any(), int64(1), gomock.Len(0)).
		Return(nil)

	err := svc.SaveRestrictions(context.Background(), 1, restrictions())

	require.NoError(t, err)
}

func TestPreferenceService_SaveRestrictions_Missing(t *testing.T) {
	svc, _ := newTestPreferenceService(t)

	err := svc.SaveRestrictions(context.Background(), 1, models.DietaryRestrictionsRequest{})

	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.ErrorIs(t, err, validators.ErrMissingLabels)
}

func TestPreferenceService_SaveRestrictions_UnknownLabel(t *testing.T) {
	svc, repo := newTestPreferenceService(t)
	repo.EXPECT().ReplaceUserRestrictions(gomock.Any(), int64(1), []int64{999}).Return(store.ErrHealthLabelNotFound)

	err := svc.SaveRestrictions(context.Background(), 1, restrictions(999))

	assert.ErrorIs(t, err, store.ErrHealthLabelNotFound)
}

func TestPreferenceService_GetUserLabels(t *testing.T) {
	svc, repo := newTestPreferenceService(t)
	repo.EXPECT().ListUserLabels(gomock.Any(), int64(1)).Return([]string{"Vegan"}, nil)

	labels, err := svc.GetUserLabels(context.Background(), 1)

	require.NoError(t, err)
	assert.Equal(t, []string{"Vegan"}, labels)
}

func TestPreferenceService_ResolveLabelIDs(t *testing.T) {
	svc, repo := newTestPreferenceService(t)
	repo.EXPECT().FindLabelIDs(gomock.Any(), []string{"Vegan", "Gluten-Free"}).Return([]int64{3, 9}, nil)

	ids, err := svc.ResolveLabelIDs(context.Background(), " Vegan, ,Gluten-Free,")

	require.NoError(t, err)
	assert.Equal(t, []int64{3, 9}, ids)
}

func TestPreferenceService_ResolveLabelIDs_EmptyInputSkipsQuery(t *testing.T) {
	svc, _ := newTestPreferenceService(t)

	for _, input := range []string{"", " , ,"} {
		ids, err := svc.ResolveLabelIDs(context.Background(), input)

		require.NoError(t, err)
		assert.Equal(t, []int64{}, ids)
	}
}

func TestPreferenceService_ListAllLabels_Error(t *testing.T) {
	svc, repo := newTestPreferenceService(t)
	repo.EXPECT().ListAllLabels(gomock.Any()).Return(nil, errStorage)

	_, err := svc.ListAllLabels(context.Background())

	assert.ErrorIs(t, err, errStorage)
}
