package http

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/what-to-cook/internal/service"
	"github.com/MKhiriev/what-to-cook/internal/store"
	"github.com/MKhiriev/what-to-cook/internal/validators"
	"github.com/MKhiriev/what-to-cook/models"
)

func TestSaveDietaryRestrictions_AcceptsScalarAndList(t *testing.T) {
	tests := []struct {
		body string
		want models.LabelIDs
	}{
		{`{"selectedRestrictions": 3}`, models.LabelIDs{3}},
		{`{"selectedRestrictions": "3"}`, models.LabelIDs{3}},
		{`{"selectedRestrictions": [3, "9"]}`, models.LabelIDs{3, 9}},
		{`{"selectedRestrictions": []}`, models.LabelIDs{}},
	}

	for _, tt := range tests {
		t.Run(tt.body, func(t *testing.T) {
			router, m := newTestRouter(t)
			m.preference.EXPECT().
				SaveRestrictions(gomock.Any(), testUserID, gomock.Any()).
				DoAndReturn(func(_ context.Context, _ int64, req models.DietaryRestrictionsRequest) error {
					require.NotNil(t, req.SelectedRestrictions)
					assert.Equal(t, tt.want, *req.SelectedRestrictions)
					return nil
				})

			rr := serve(t, router, http.MethodPost, "/dietary_restrictions", tt.body, true)

			assert.Equal(t, http.StatusOK, rr.Code)
			assert.JSONEq(t, `{"message":"Dietary restrictions saved successfully"}`, rr.Body.String())
		})
	}
}

func TestSaveDietaryRestrictions_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
	}{
		{"missing", fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrMissingLabels), http.StatusBadRequest, validators.ErrMissingLabels.Error()},
		{"unknown label", store.ErrHealthLabelNotFound, http.StatusNotFound, "health label not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, m := newTestRouter(t)
			m.preference.EXPECT().SaveRestrictions(gomock.Any(), testUserID, gomock.Any()).Return(tt.err)

			rr := serve(t, router, http.MethodPost, "/dietary_restrictions", `{}`, true)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantError, errorBody(t, rr))
		})
	}
}

func TestUserHealthLabels(t *testing.T) {
	router, m := newTestRouter(t)
	m.preference.EXPECT().GetUserLabels(gomock.Any(), testUserID).Return(nil, nil)

	rr := serve(t, router, http.MethodGet, "/user_healthlabels", nil, true)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"userHealthLabels":[]}`, rr.Body.String())
}

func TestHealthLabelIDs(t *testing.T) {
	router, m := newTestRouter(t)
	m.preference.EXPECT().ResolveLabelIDs(gomock.Any(), "Vegan,Gluten-Free").Return([]int64{3, 9}, nil)

	rr := serve(t, router, http.MethodGet, "/healthlabels_ids?selectedRestrictions=Vegan,Gluten-Free", nil, false)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"healthLabelIds":[3,9]}`, rr.Body.String())
}

func TestHealthLabels(t *testing.T) {
	router, m := newTestRouter(t)
	m.preference.EXPECT().ListAllLabels(gomock.Any()).Return([]string{"Alcohol-Cocktail", "Alcohol-Free"}, nil)

	rr := serve(t, router, http.MethodGet, "/healthlabels", nil, false)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"labels":["Alcohol-Cocktail","Alcohol-Free"]}`, rr.Body.String())
}

func TestHealthLabels_StorageFailure(t *testing.T) {
	router, m := newTestRouter(t)
	m.preference.EXPECT().ListAllLabels(gomock.Any()).Return(nil, store.ErrExecutingQuery)

	rr := serve(t, router, http.MethodGet, "/healthlabels", nil, false)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.JSONEq(t, `{"error":"Internal Server Error"}`, rr.Body.String())
}
