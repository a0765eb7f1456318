// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/what-to-cook/internal/validators"
	"github.com/MKhiriev/what-to-cook/models"
)

// validate runs validator over every object and wraps the first failure in
// ErrInvalidDataProvided.
func validate(ctx context.Context, validator validators.Validator, objs ...any) error {
	for _, obj := range objs {
		if err := validator.Validate(ctx, obj); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
		}
	}
	return nil
}

// ── ProfileService ───────────────────────────

type ProfileValidationService struct {
	inner     ProfileService
	validator validators.Validator
}

func NewProfileValidationService() ProfileServiceWrapper {
	return &ProfileValidationService{
		validator: validators.NewPersonalDataValidator(),
	}
}

func (v *ProfileValidationService) GetProfile(ctx context.Context, userID int64) (models.Profile, error) {
	if err := validate(ctx, v.validator, userID); err != nil {
		return models.Profile{}, err
	}

	return v.inner.GetProfile(ctx, userID)
}

func (v *ProfileValidationService) UploadProfilePicture(ctx context.Context, userID int64, picture models.Picture) (string, error) {
	if err := validate(ctx, v.validator, userID, picture); err != nil {
		return "", err
	}

	return v.inner.UploadProfilePicture(ctx, userID, picture)
}

func (v *ProfileValidationService) Wrap(wrapper ProfileService) ProfileService {
	v.inner = wrapper
	return v
}

// ── FridgeService ────────────────────────────

type FridgeValidationService struct {
	inner     FridgeService
	validator validators.Validator
}

func NewFridgeValidationService() FridgeServiceWrapper {
	return &FridgeValidationService{
		validator: validators.NewPersonalDataValidator(),
	}
}

func (v *FridgeValidationService) SearchIngredients(ctx context.Context, query string) ([]string, error) {
	return v.inner.SearchIngredients(ctx, query)
}

func (v *FridgeValidationService) SaveIngredient(ctx context.Context, userID int64, req models.FridgeEntryRequest) error {
	if err := validate(ctx, v.validator, userID, req); err != nil {
		return err
	}

	return v.inner.SaveIngredient(ctx, userID, req)
}

func (v *FridgeValidationService) ListIngredients(ctx context.Context, userID int64) ([]models.FridgeItem, error) {
	if err := validate(ctx, v.validator, userID); err != nil {
		return nil, err
	}

	return v.inner.ListIngredients(ctx, userID)
}

func (v *FridgeValidationService) DeleteIngredient(ctx context.Context, userID int64, req models.DeleteIngredientRequest) ([]models.FridgeItem, error) {
	if err := validate(ctx, v.validator, userID, req); err != nil {
		return nil, err
	}

	return v.inner.DeleteIngredient(ctx, userID, req)
}

func (v *FridgeValidationService) Wrap(wrapper FridgeService) FridgeService {
	v.inner = wrapper
	return v
}

// ── PreferenceService ────────────────────────

type PreferenceValidationService struct {
	inner     PreferenceService
	validator validators.Validator
}

func NewPreferenceValidationService() PreferenceServiceWrapper {
	return &PreferenceValidationService{
		validator: validators.NewPersonalDataValidator(),
	}
}

func (v *PreferenceValidationService) SaveRestrictions(ctx context.Context, userID int64, req models.DietaryRestrictionsRequest) error {
	if err := validate(ctx, v.validator, userID, req); err != nil {
		return err
	}

	return v.inner.SaveRestrictions(ctx, userID, req)
}

func (v *PreferenceValidationService) GetUserLabels(ctx context.Context, userID int64) ([]string, error) {
	if err := validate(ctx, v.validator, userID); err != nil {
		return nil, err
	}

	return v.inner.GetUserLabels(ctx, userID)
}

func (v *PreferenceValidationService) ResolveLabelIDs(ctx context.Context, labels string) ([]int64, error) {
	return v.inner.ResolveLabelIDs(ctx, labels)
}

func (v *PreferenceValidationService) ListAllLabels(ctx context.Context) ([]string, error) {
	return v.inner.ListAllLabels(ctx)
}

func (v *PreferenceValidationService) Wrap(wrapper PreferenceService) PreferenceService {
	v.inner = wrapper
	return v
}

// ── FavoriteService ──────────────────────────

type FavoriteValidationService struct {
	inner     FavoriteService
	validator validators.Validator
}

func NewFavoriteValidationService() FavoriteServiceWrapper {
	return &FavoriteValidationService{
		validator: validators.NewPersonalDataValidator(),
	}
}

func (v *FavoriteValidationService) AddFavorite(ctx context.Context, userID int64, ref models.RecipeRef) error {
	if err := validate(ctx, v.validator, userID, ref); err != nil {
		return err
	}

	return v.inner.AddFavorite(ctx, userID, ref)
}

func (v *FavoriteValidationService) RemoveFavorite(ctx context.Context, userID int64, ref models.RecipeRef) error {
	if err := validate(ctx, v.validator, userID, ref); err != nil {
		return err
	}

	return v.inner.RemoveFavorite(ctx, userID, ref)
}

func (v *FavoriteValidationService) ListFavorites(ctx context.Context, userID int64) ([]models.Recipe, error) {
	if err := validate(ctx, v.validator, userID); err != nil {
		return nil, err
	}

	return v.inner.ListFavorites(ctx, userID)
}

func (v *FavoriteValidationService) IsFavorited(ctx context.Context, userID int64, ref models.RecipeRef) (bool, error) {
	if err := validate(ctx, v.validator, userID, ref); err != nil {
		return false, err
	}

	return v.inner.IsFavorited(ctx, userID, ref)
}

func (v *FavoriteValidationService) Wrap(wrapper FavoriteService) FavoriteService {
	v.inner = wrapper
	return v
}
