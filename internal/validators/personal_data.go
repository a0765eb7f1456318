// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"math"
	"strings"

	"github.com/MKhiriev/what-to-cook/models"
)

const (
	FieldUserID       = "user_id"
	FieldName         = "name"
	FieldQuantity     = "quantity"
	FieldRecipeID     = "recipe_id"
	FieldContent      = "content"
	FieldRestrictions = "selected_restrictions"
)

// PersonalDataValidator checks the requests that change a user's fridge,
// dietary restrictions, favorites and profile picture.
type PersonalDataValidator struct{}

func NewPersonalDataValidator() Validator {
	return &PersonalDataValidator{}
}

func (v *PersonalDataValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.FridgeEntryRequest:
		return v.validateFridgeEntry(value, fields...)
	case *models.FridgeEntryRequest:
		return v.validateFridgeEntry(*value, fields...)

	case models.DeleteIngredientRequest:
		return v.validateIngredientName(value.Name)
	case *models.DeleteIngredientRequest:
		return v.validateIngredientName(value.Name)

	case models.RecipeRef:
		return v.validateRecipeRef(value)
	case *models.RecipeRef:
		return v.validateRecipeRef(*value)

	case models.Picture:
		return v.validatePicture(value)
	case *models.Picture:
		return v.validatePicture(*value)

	case models.DietaryRestrictionsRequest:
		return v.validateRestrictions(value)
	case *models.DietaryRestrictionsRequest:
		return v.validateRestrictions(*value)

	case int64:
		// a bare user id
		if value <= 0 {
			return ErrInvalidUserID
		}
		return nil

	default:
		return ErrUnsupportedType
	}
}

func (v *PersonalDataValidator) validateFridgeEntry(req models.FridgeEntryRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldQuantity}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if err := v.validateIngredientName(req.Name); err != nil {
				return err
			}
		case FieldQuantity:
			if req.Quantity == nil {
				return ErrMissingQuantity
			}
			if req.Quantity.Int64() < 0 {
				return ErrNegativeQuantity
			}
			// fridge_ingredients.quantity is a Postgres INTEGER
			if req.Quantity.Int64() > math.MaxInt32 {
				return ErrQuantityTooLarge
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *PersonalDataValidator) validateIngredientName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyIngredient
	}
	return nil
}

func (v *PersonalDataValidator) validateRecipeRef(ref models.RecipeRef) error {
	if ref.RecipeID.Int64() <= 0 {
		return ErrInvalidRecipeID
	}
	return nil
}

func (v *PersonalDataValidator) validatePicture(p models.Picture) error {
	if p.Size() == 0 {
		return ErrEmptyPicture
	}
	return nil
}

func (v *PersonalDataValidator) validateRestrictions(req models.DietaryRestrictionsRequest) error {
	if req.SelectedRestrictions == nil {
		return ErrMissingLabels
	}
	for _, id := range *req.SelectedRestrictions {
		if id <= 0 {
			return ErrInvalidLabelID
		}
	}
	return nil
}
