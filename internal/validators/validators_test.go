package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/what-to-cook/models"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func qty(n int64) *models.FlexInt {
	v := models.FlexInt(n)
	return &v
}

func labels(ids ...int64) *models.LabelIDs {
	l := models.LabelIDs(ids)
	return &l
}

// ── UserValidator ─────────────────────────────────────────────────────────────

func TestUserValidator_Register(t *testing.T) {
	v := NewUserValidator()

	tests := []struct {
		name    string
		req     models.RegisterRequest
		fields  []string
		wantErr error
	}{
		{
			name: "valid",
			req:  models.RegisterRequest{Username: "alice", Email: "alice@example.com", Password: "password123"},
		},
		{
			name:    "blank username",
			req:     models.RegisterRequest{Username: "   ", Email: "a@example.com", Password: "password123"},
			wantErr: ErrEmptyUsername,
		},
		{
			name:    "blank email",
			req:     models.RegisterRequest{Username: "alice", Email: "\t", Password: "password123"},
			wantErr: ErrEmptyEmail,
		},
		{
			name:    "missing password",
			req:     models.RegisterRequest{Username: "alice", Email: "a@example.com"},
			wantErr: ErrEmptyPassword,
		},
		{
			name:    "seven characters",
			req:     models.RegisterRequest{Username: "alice", Email: "a@example.com", Password: "1234567"},
			wantErr: ErrPasswordTooShort,
		},
		{
			name: "eight multibyte characters",
			req:  models.RegisterRequest{Username: "alice", Email: "a@example.com", Password: "пароль12"},
		},
		{
			name:    "longer than bcrypt accepts",
			req:     models.RegisterRequest{Username: "alice", Email: "a@example.com", Password: strings.Repeat("x", 73)},
			wantErr: ErrPasswordTooLong,
		},
		{
			name:   "field scoped check ignores other fields",
			req:    models.RegisterRequest{Username: "alice"},
			fields: []string{FieldUsername},
		},
		{
			name:    "unknown field",
			req:     models.RegisterRequest{Username: "alice"},
			fields:  []string{"nickname"},
			wantErr: ErrUnknownField,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.req, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestUserValidator_Login(t *testing.T) {
	v := NewUserValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, &models.LoginRequest{Username: "alice", Password: "x"}))
	assert.ErrorIs(t, v.Validate(ctx, models.LoginRequest{Password: "x"}), ErrEmptyUsername)
	assert.ErrorIs(t, v.Validate(ctx, models.LoginRequest{Username: "alice"}), ErrEmptyPassword)
}

func TestUserValidator_UnsupportedType(t *testing.T) {
	assert.ErrorIs(t, NewUserValidator().Validate(context.Background(), 42), ErrUnsupportedType)
}

// ── PersonalDataValidator ─────────────────────────────────────────────────────

func TestPersonalDataValidator(t *testing.T) {
	v := NewPersonalDataValidator()

	tests := []struct {
		name    string
		obj     any
		wantErr error
	}{
		{name: "fridge entry", obj: models.FridgeEntryRequest{Name: "egg", Quantity: qty(3)}},
		{name: "fridge entry with zero quantity", obj: &models.FridgeEntryRequest{Name: "egg", Quantity: qty(0)}},
		{name: "fridge entry without name", obj: models.FridgeEntryRequest{Name: " ", Quantity: qty(1)}, wantErr: ErrEmptyIngredient},
		{name: "fridge entry without quantity", obj: models.FridgeEntryRequest{Name: "egg"}, wantErr: ErrMissingQuantity},
		{name: "fridge entry with negative quantity", obj: models.FridgeEntryRequest{Name: "egg", Quantity: qty(-1)}, wantErr: ErrNegativeQuantity},
		{name: "fridge entry with largest integer quantity", obj: models.FridgeEntryRequest{Name: "egg", Quantity: qty(2147483647)}},
		{name: "fridge entry with quantity above integer column", obj: models.FridgeEntryRequest{Name: "egg", Quantity: qty(3000000000)}, wantErr: ErrQuantityTooLarge},
		{name: "delete request", obj: models.DeleteIngredientRequest{Name: "egg"}},
		{name: "delete request without name", obj: &models.DeleteIngredientRequest{}, wantErr: ErrEmptyIngredient},
		{name: "recipe ref", obj: models.RecipeRef{RecipeID: 7}},
		{name: "recipe ref zero", obj: models.RecipeRef{}, wantErr: ErrInvalidRecipeID},
		{name: "recipe ref negative", obj: &models.RecipeRef{RecipeID: -2}, wantErr: ErrInvalidRecipeID},
		{name: "picture", obj: models.Picture{Content: []byte{0x89, 0x50}}},
		{name: "empty picture", obj: models.Picture{}, wantErr: ErrEmptyPicture},
		{name: "restrictions", obj: models.DietaryRestrictionsRequest{SelectedRestrictions: labels(1, 2)}},
		{name: "cleared restrictions", obj: models.DietaryRestrictionsRequest{SelectedRestrictions: labels()}},
		{name: "missing restrictions", obj: models.DietaryRestrictionsRequest{}, wantErr: ErrMissingLabels},
		{name: "non-positive label", obj: &models.DietaryRestrictionsRequest{SelectedRestrictions: labels(3, 0)}, wantErr: ErrInvalidLabelID},
		{name: "user id", obj: int64(5)},
		{name: "zero user id", obj: int64(0), wantErr: ErrInvalidUserID},
		{name: "unsupported", obj: "egg", wantErr: ErrUnsupportedType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.obj)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestPersonalDataValidator_FieldScoped(t *testing.T) {
	v := NewPersonalDataValidator()
	req := models.FridgeEntryRequest{Name: "egg"}

	assert.NoError(t, v.Validate(context.Background(), req, FieldName))
	assert.ErrorIs(t, v.Validate(context.Background(), req, FieldQuantity), ErrMissingQuantity)
	assert.ErrorIs(t, v.Validate(context.Background(), req, "colour"), ErrUnknownField)
}
