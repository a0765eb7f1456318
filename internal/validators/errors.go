package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidUserID = errors.New("invalid user ID")

	ErrEmptyUsername     = errors.New("username is required")
	ErrEmptyEmail        = errors.New("email is required")
	ErrEmptyPassword     = errors.New("password is required")
	ErrPasswordTooShort  = errors.New("password must be at least 8 characters long")
	ErrPasswordTooLong   = errors.New("password must be at most 72 bytes long")
	ErrEmptyIngredient   = errors.New("ingredient name is required")
	ErrMissingQuantity   = errors.New("quantity is required")
	ErrNegativeQuantity  = errors.New("quantity must not be negative")
	ErrQuantityTooLarge  = errors.New("quantity must be at most 2147483647")
	ErrInvalidRecipeID   = errors.New("a positive recipeID is required")
	ErrEmptyPicture      = errors.New("no profile picture uploaded")
	ErrMissingLabels     = errors.New("selectedRestrictions is required")
	ErrInvalidLabelID    = errors.New("health label ids must be positive")
)
