package service

import "errors"

var (
	// ErrInvalidDataProvided wraps every validation failure. The wrapped
	// validators error describes what exactly was wrong.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials is returned by Login both for an unknown
	// username and for a wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	ErrVersionIsNotSpecified = errors.New("application version is not specified")

	// ErrNoIngredientOptions is returned when an ingredient search matches
	// nothing in the catalog.
	ErrNoIngredientOptions = errors.New("no ingredient matches the query")

	// ErrEmptyFridge is returned when the user has no saved ingredients.
	ErrEmptyFridge = errors.New("no saved ingredients")
)
