// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, h.withMetrics)
	router.Use(h.withRecoverer)
	router.Use(middleware.Compress(5, "application/json"))
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.NotFound(notFound)
	router.MethodNotAllowed(methodNotAllowed(router))

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/register", h.register)
		r.Post("/login", h.login)

		r.Get("/ingredient_options", h.ingredientOptions)
		r.Get("/healthlabels_ids", h.healthLabelIDs)
		r.Get("/healthlabels", h.healthLabels)

		r.Get("/version", h.getServerVersion)
		r.Method(http.MethodGet, "/metrics", h.metrics.Handler())
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/logout", h.logout)

		r.Get("/profile", h.getProfile)
		r.Post("/upload_profile_picture", h.uploadProfilePicture)

		r.Post("/profile_ingredient_list", h.saveIngredient)
		r.Get("/saved_ingredients", h.savedIngredients)
		r.Delete("/delete_ingredient", h.deleteIngredient)

		r.Post("/dietary_restrictions", h.saveDietaryRestrictions)
		r.Get("/user_healthlabels", h.userHealthLabels)

		r.Post("/bookmark_recipe", h.bookmarkRecipe)
		r.Post("/unbookmark_recipe", h.unbookmarkRecipe)
		r.Delete("/unbookmark", h.unbookmark)
		r.Get("/favorite_recipe", h.favoriteRecipes)
		r.Post("/isBookmarked", h.isBookmarked)
	})

	return router
}
