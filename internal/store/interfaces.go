// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store implements persistence for the what-to-cook server:
// PostgreSQL repositories over database/sql and the profile picture storage
// (local directory or S3 bucket).
package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store.go -package=mock

import (
	"context"

	"github.com/MKhiriev/what-to-cook/models"
)

// UserRepository manages user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
	UpdateProfilePicture(ctx context.Context, userID int64, pictureName string) error
}

// IngredientRepository reads the static ingredient catalog.
type IngredientRepository interface {
	// SearchIngredients returns the names containing query, case-insensitively,
	// ordered by name.
	SearchIngredients(ctx context.Context, query string) ([]string, error)

	// ResolveIngredient maps a user-typed name to one catalog ingredient.
	// An exact case-insensitive match wins over substring matches.
	ResolveIngredient(ctx context.Context, name string) (models.Ingredient, error)
}

// FridgeRepository manages the per-user ingredient list.
type FridgeRepository interface {
	UpsertFridgeItem(ctx context.Context, userID, ingredientID int64, quantity int) error
	ListFridgeItems(ctx context.Context, userID int64) ([]models.FridgeItem, error)
	DeleteFridgeItem(ctx context.Context, userID, ingredientID int64) error
}

// HealthLabelRepository manages the health label catalog and users'
// dietary restrictions.
type HealthLabelRepository interface {
	// ReplaceUserRestrictions atomically replaces every restriction of the
	// user with labelIDs.
	ReplaceUserRestrictions(ctx context.Context, userID int64, labelIDs []int64) error
	ListUserLabels(ctx context.Context, userID int64) ([]string, error)
	FindLabelIDs(ctx context.Context, labels []string) ([]int64, error)
	ListAllLabels(ctx context.Context) ([]string, error)
}

// FavoriteRepository manages users' bookmarked recipes.
type FavoriteRepository interface {
	AddFavorite(ctx context.Context, userID, recipeID int64) error
	RemoveFavorite(ctx context.Context, userID, recipeID int64) error
	ListFavorites(ctx context.Context, userID int64) ([]models.Recipe, error)
	IsFavorited(ctx context.Context, userID, recipeID int64) (bool, error)
}

// RecipeRepository maintains the recipe catalog.
type RecipeRepository interface {
	// SetImageByTitle sets the image of every recipe titled title and
	// reports how many recipes were updated.
	SetImageByTitle(ctx context.Context, title, image string) (int64, error)
}

// PictureStorage persists uploaded profile pictures under a name.
// Saving under an existing name overwrites the previous picture.
type PictureStorage interface {
	Save(ctx context.Context, name string, picture models.Picture) error
}
