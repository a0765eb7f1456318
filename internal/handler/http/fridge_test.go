package http

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/what-to-cook/internal/service"
	"github.com/MKhiriev/what-to-cook/internal/store"
	"github.com/MKhiriev/what-to-cook/models"
)

func TestIngredientOptions(t *testing.T) {
	router, m := newTestRouter(t)
	m.fridge.EXPECT().SearchIngredients(gomock.Any(), "egg").Return([]string{"Egg Noodles", "Eggs"}, nil)

	rr := serve(t, router, http.MethodGet, "/ingredient_options?query=egg", nil, false)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"ingredientOptions":["Egg Noodles","Eggs"]}`, rr.Body.String())
}

func TestIngredientOptions_NoMatches(t *testing.T) {
	router, m := newTestRouter(t)
	m.fridge.EXPECT().SearchIngredients(gomock.Any(), "zzz").Return(nil, service.ErrNoIngredientOptions)

	rr := serve(t, router, http.MethodGet, "/ingredient_options?query=zzz", nil, false)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "Ingredient not found in our recipes.", errorBody(t, rr))
}

func TestSaveIngredient(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{"saved", `{"name":"eggs","quantity":"6"}`, nil, http.StatusOK, `{"message":"Fridge updated successfully"}`},
		{"unknown ingredient", `{"name":"unobtainium","quantity":1}`, store.ErrIngredientNotFound, http.StatusNotFound, `{"error":"Ingredient not found."}`},
		{"ambiguous", `{"name":"egg","quantity":1}`, store.ErrIngredientIsAmbiguous, http.StatusBadRequest, `{"error":"ingredient name is ambiguous"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, m := newTestRouter(t)
			m.fridge.EXPECT().SaveIngredient(gomock.Any(), testUserID, gomock.Any()).Return(tt.err)

			rr := serve(t, router, http.MethodPost, "/profile_ingredient_list", tt.body, true)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.JSONEq(t, tt.wantBody, rr.Body.String())
		})
	}
}

func TestSaveIngredient_QuantityAsString(t *testing.T) {
	router, m := newTestRouter(t)
	m.fridge.EXPECT().
		SaveIngredient(gomock.Any(), testUserID, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, req models.FridgeEntryRequest) error {
			require.NotNil(t, req.Quantity)
			assert.Equal(t, int64(6), req.Quantity.Int64())
			return nil
		})

	rr := serve(t, router, http.MethodPost, "/profile_ingredient_list", `{"name":"eggs","quantity":"6"}`, true)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestSavedIngredients(t *testing.T) {
	router, m := newTestRouter(t)
	m.fridge.EXPECT().ListIngredients(gomock.Any(), testUserID).
		Return([]models.FridgeItem{{Name: "Eggs", Quantity: 6}}, nil)

	rr := serve(t, router, http.MethodGet, "/saved_ingredients", nil, true)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"savedIngredients":[{"name":"Eggs","quantity":6}]}`, rr.Body.String())
}

func TestSavedIngredients_Empty(t *testing.T) {
	router, m := newTestRouter(t)
	m.fridge.EXPECT().ListIngredients(gomock.Any(), testUserID).Return(nil, service.ErrEmptyFridge)

	rr := serve(t, router, http.MethodGet, "/saved_ingredients", nil, true)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "User profile not found.", errorBody(t, rr))
}

func TestDeleteIngredient_ReturnsEmptyList(t *testing.T) {
	router, m := newTestRouter(t)
	m.fridge.EXPECT().
		DeleteIngredient(gomock.Any(), testUserID, models.DeleteIngredientRequest{Name: "eggs"}).
		Return(nil, nil)

	rr := serve(t, router, http.MethodDelete, "/delete_ingredient", models.DeleteIngredientRequest{Name: "eggs"}, true)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"savedIngredients":[]}`, rr.Body.String())
}

func TestDeleteIngredient_NotInFridge(t *testing.T) {
	router, m := newTestRouter(t)
	m.fridge.EXPECT().DeleteIngredient(gomock.Any(), testUserID, gomock.Any()).Return(nil, store.ErrFridgeEntryNotFound)

	rr := serve(t, router, http.MethodDelete, "/delete_ingredient", models.DeleteIngredientRequest{Name: "eggs"}, true)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "Ingredient not found in user profile.", errorBody(t, rr))
}

func TestDeleteIngredient_EmptyBody(t *testing.T) {
	router, _ := newTestRouter(t)

	rr := serve(t, router, http.MethodDelete, "/delete_ingredient", nil, true)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "Request body is required", errorBody(t, rr))
}
