package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/what-to-cook/internal/logger"
	"github.com/MKhiriev/what-to-cook/internal/service"
	"github.com/MKhiriev/what-to-cook/internal/store"
	"github.com/MKhiriev/what-to-cook/internal/utils"
	"github.com/MKhiriev/what-to-cook/internal/validators"
	"github.com/MKhiriev/what-to-cook/models"
)

const internalServerErrorMessage = "Internal Server Error"

// errorMapping pairs an error with the status code and the public message
// sent to the client. An empty message means the error text itself.
type errorMapping struct {
	target  error
	status  int
	message string
}

// errorStatusMap is ordered: the first matching entry wins, so specific
// validation errors come before the generic ErrInvalidDataProvided.
var errorStatusMap = []errorMapping{
	{validators.ErrEmptyPicture, http.StatusBadRequest, "No profile picture uploaded"},
	{validators.ErrEmptyUsername, http.StatusBadRequest, ""},
	{validators.ErrEmptyEmail, http.StatusBadRequest, ""},
	{validators.ErrEmptyPassword, http.StatusBadRequest, ""},
	{validators.ErrPasswordTooShort, http.StatusBadRequest, ""},
	{validators.ErrPasswordTooLong, http.StatusBadRequest, ""},
	{validators.ErrEmptyIngredient, http.StatusBadRequest, ""},
	{validators.ErrMissingQuantity, http.StatusBadRequest, ""},
	{validators.ErrNegativeQuantity, http.StatusBadRequest, ""},
	{validators.ErrQuantityTooLarge, http.StatusBadRequest, ""},
	{validators.ErrInvalidRecipeID, http.StatusBadRequest, ""},
	{validators.ErrMissingLabels, http.StatusBadRequest, ""},
	{validators.ErrInvalidLabelID, http.StatusBadRequest, ""},
	{service.ErrInvalidDataProvided, http.StatusBadRequest, "Invalid data provided"},

	{ErrInvalidJSON, http.StatusBadRequest, "Invalid JSON was passed"},
	{utils.ErrEmptyBody, http.StatusBadRequest, "Request body is required"},
	{ErrNoPictureUploaded, http.StatusBadRequest, "No profile picture uploaded"},
	{ErrUploadTooLarge, http.StatusRequestEntityTooLarge, "Profile picture is too large"},

	{ErrNoSessionToken, http.StatusUnauthorized, "Authentication required"},
	{ErrInvalidAuthorizationHeader, http.StatusUnauthorized, "Invalid Authorization header"},
	{ErrEmptyToken, http.StatusUnauthorized, "Invalid Authorization header"},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized, "Invalid or expired token"},
	{service.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid credentials"},

	{store.ErrUserAlreadyExists, http.StatusConflict, "Username or email is already in use. Please choose a different one."},
	{store.ErrUserNotFound, http.StatusNotFound, "User not found"},
	{service.ErrNoIngredientOptions, http.StatusNotFound, "Ingredient not found in our recipes."},
	{store.ErrIngredientNotFound, http.StatusNotFound, "Ingredient not found."},
	{store.ErrIngredientIsAmbiguous, http.StatusBadRequest, "ingredient name is ambiguous"},
	{service.ErrEmptyFridge, http.StatusNotFound, "User profile not found."},
	{store.ErrFridgeEntryNotFound, http.StatusNotFound, "Ingredient not found in user profile."},
	{store.ErrHealthLabelNotFound, http.StatusNotFound, "health label not found"},
	{store.ErrRecipeNotFound, http.StatusNotFound, "recipe not found"},
}

// classifyError returns the status code and public message for err.
// Unknown errors become 500 with a generic message.
func classifyError(err error) (int, string) {
	for _, m := range errorStatusMap {
		if errors.Is(err, m.target) {
			if m.message == "" {
				return m.status, m.target.Error()
			}
			return m.status, m.message
		}
	}
	return http.StatusInternalServerError, internalServerErrorMessage
}

// writeError logs err with the request logger and sends the mapped JSON
// error body.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, message := classifyError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	if _, wErr := utils.WriteJSON(w, models.ErrorResponse{Error: message}, status); wErr != nil {
		log.Err(wErr).Msg("error writing error response")
	}
}

// writeJSON sends data and logs a failed write.
func writeJSON(w http.ResponseWriter, r *http.Request, data any, status int) {
	if _, err := utils.WriteJSON(w, data, status); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}

// readJSON decodes the request body into dst. Decoding failures are wrapped
// in ErrInvalidJSON.
func readJSON(r *http.Request, dst any) error {
	if err := utils.ReadJSON(r, dst); err != nil {
		if errors.Is(err, utils.ErrEmptyBody) {
			return err
		}
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}
