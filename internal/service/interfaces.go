// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the business operations of the what-to-cook
// server on top of the repositories from package store.
//
// Every service is built as a bare implementation wrapped by a validation
// decorator (see the *Wrapper interfaces), so handlers only ever receive
// input that already passed the rules of package validators.
package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service.go -package=mock

import (
	"context"

	"github.com/MKhiriev/what-to-cook/models"
)

type AuthService interface {
	RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error)
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type ProfileService interface {
	GetProfile(ctx context.Context, userID int64) (models.Profile, error)

	// UploadProfilePicture stores the picture and returns the name it was
	// stored under.
	UploadProfilePicture(ctx context.Context, userID int64, picture models.Picture) (string, error)
}

type FridgeService interface {
	SearchIngredients(ctx context.Context, query string) ([]string, error)
	SaveIngredient(ctx context.Context, userID int64, req models.FridgeEntryRequest) error
	ListIngredients(ctx context.Context, userID int64) ([]models.FridgeItem, error)

	// DeleteIngredient removes one ingredient from the fridge and returns
	// what is left, possibly nothing.
	DeleteIngredient(ctx context.Context, userID int64, req models.DeleteIngredientRequest) ([]models.FridgeItem, error)
}

type PreferenceService interface {
	SaveRestrictions(ctx context.Context, userID int64, req models.DietaryRestrictionsRequest) error
	GetUserLabels(ctx context.Context, userID int64) ([]string, error)

	// ResolveLabelIDs maps a comma-separated list of label names to ids.
	ResolveLabelIDs(ctx context.Context, labels string) ([]int64, error)
	ListAllLabels(ctx context.Context) ([]string, error)
}

type FavoriteService interface {
	AddFavorite(ctx context.Context, userID int64, ref models.RecipeRef) error
	RemoveFavorite(ctx context.Context, userID int64, ref models.RecipeRef) error
	ListFavorites(ctx context.Context, userID int64) ([]models.Recipe, error)
	IsFavorited(ctx context.Context, userID int64, ref models.RecipeRef) (bool, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) (models.VersionResponse, error)
}

// AuthServiceWrapper defines middleware composition for AuthService.
// Implementations wrap an existing AuthService to add behavior such as
// logging or validating.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService
}

// ProfileServiceWrapper defines middleware composition for ProfileService.
type ProfileServiceWrapper interface {
	Wrap(ProfileService) ProfileService
}

// FridgeServiceWrapper defines middleware composition for FridgeService.
type FridgeServiceWrapper interface {
	Wrap(FridgeService) FridgeService
}

// PreferenceServiceWrapper defines middleware composition for PreferenceService.
type PreferenceServiceWrapper interface {
	Wrap(PreferenceService) PreferenceService
}

// FavoriteServiceWrapper defines middleware composition for FavoriteService.
type FavoriteServiceWrapper interface {
	Wrap(FavoriteService) FavoriteService
}
