// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/what-to-cook/internal/config"
	"github.com/MKhiriev/what-to-cook/internal/logger"
	"github.com/MKhiriev/what-to-cook/internal/store"
	"github.com/MKhiriev/what-to-cook/models"
)

type Services struct {
	AuthService       AuthService
	ProfileService    ProfileService
	FridgeService     FridgeService
	PreferenceService PreferenceService
	FavoriteService   FavoriteService
	AppInfoService    AppInfoService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) *Services {
	return &Services{
		AuthService: NewAuthValidationService().Wrap(
			NewAuthService(storages.UserRepository, cfg.App, logger),
		),
		ProfileService: NewProfileValidationService().Wrap(
			NewProfileService(storages.UserRepository, storages.PictureStorage, logger),
		),
		FridgeService: NewFridgeValidationService().Wrap(
			NewFridgeService(storages.IngredientRepository, storages.FridgeRepository, logger),
		),
		PreferenceService: NewPreferenceValidationService().Wrap(
			NewPreferenceService(storages.HealthLabelRepository, logger),
		),
		FavoriteService: NewFavoriteValidationService().Wrap(
			NewFavoriteService(storages.FavoriteRepository, cfg.App.RecipeImagesBaseURL, logger),
		),
		AppInfoService: NewAppInfoService(cfg.App, buildInfo, logger),
	}
}
