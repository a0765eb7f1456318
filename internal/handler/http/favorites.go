package http

import (
	"net/http"

	"github.com/MKhiriev/what-to-cook/models"
)

func (h *Handler) bookmarkRecipe(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.BookmarkRequest
	if err = readJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.FavoriteService.AddFavorite(r.Context(), userID, req.Data); err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, models.MessageResponse{Message: "Recipe favorited successfully"}, http.StatusCreated)
}

// unbookmarkRecipe takes the recipe wrapped in "data", as bookmarkRecipe does.
func (h *Handler) unbookmarkRecipe(w http.ResponseWriter, r *http.Request) {
	var req models.BookmarkRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	h.removeFavorite(w, r, req.Data)
}

// unbookmark takes the bare {"recipeID": N} body.
func (h *Handler) unbookmark(w http.ResponseWriter, r *http.Request) {
	var ref models.RecipeRef
	if err := readJSON(r, &ref); err != nil {
		writeError(w, r, err)
		return
	}

	h.removeFavorite(w, r, ref)
}

func (h *Handler) removeFavorite(w http.ResponseWriter, r *http.Request, ref models.RecipeRef) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.FavoriteService.RemoveFavorite(r.Context(), userID, ref); err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, models.MessageResponse{Message: "Recipe removed from favorites successfully"}, http.StatusOK)
}

func (h *Handler) favoriteRecipes(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	recipes, err := h.services.FavoriteService.ListFavorites(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, models.FavoriteRecipesResponse{FavoriteRecipes: nonNil(recipes)}, http.StatusOK)
}

func (h *Handler) isBookmarked(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.BookmarkRequest
	if err = readJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	favorited, err := h.services.FavoriteService.IsFavorited(r.Context(), userID, req.Data)
	if err != nil {
		writeError(w, r, err)
		return
	}

	status := models.BookmarkStatusResponse{}
	if favorited {
		status.Full = 1
	}

	writeJSON(w, r, status, http.StatusOK)
}
