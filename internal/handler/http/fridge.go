package http

import (
	"net/http"

	"github.com/MKhiriev/what-to-cook/models"
)

// ingredientOptions searches the ingredient catalog by the "query" URL
// parameter.
func (h *Handler) ingredientOptions(w http.ResponseWriter, r *http.Request) {
	names, err := h.services.FridgeService.SearchIngredients(r.Context(), r.URL.Query().Get("query"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, models.IngredientOptionsResponse{IngredientOptions: names}, http.StatusOK)
}

func (h *Handler) saveIngredient(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.FridgeEntryRequest
	if err = readJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.FridgeService.SaveIngredient(r.Context(), userID, req); err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, models.MessageResponse{Message: "Fridge updated successfully"}, http.StatusOK)
}

func (h *Handler) savedIngredients(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	items, err := h.services.FridgeService.ListIngredients(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, models.SavedIngredientsResponse{SavedIngredients: items}, http.StatusOK)
}

func (h *Handler) deleteIngredient(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.DeleteIngredientRequest
	if err = readJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	items, err := h.services.FridgeService.DeleteIngredient(r.Context(), userID, req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	if items == nil {
		items = []models.FridgeItem{}
	}

	writeJSON(w, r, models.SavedIngredientsResponse{SavedIngredients: items}, http.StatusOK)
}
