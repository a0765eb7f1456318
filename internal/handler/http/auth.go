package http

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/what-to-cook/internal/logger"
	"github.com/MKhiriev/what-to-cook/internal/service"
	"github.com/MKhiriev/what-to-cook/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req models.RegisterRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, models.RegisterResponse{User: registeredUser}, http.StatusCreated)
}

// login answers with the token in three places: the JSON body, the
// "Authorization" header and an HttpOnly session cookie living as long as
// the token.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := readJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		h.countLogin(err)
		writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		h.countLogin(err)
		writeError(w, r, err)
		return
	}
	h.countLogin(nil)

	log.Info().Int64("user_id", foundUser.UserID).Msg("user successfully logged in")

	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    token.SignedString,
		Path:     "/",
		Expires:  token.ExpiresAt,
		MaxAge:   int(time.Until(token.ExpiresAt).Seconds()),
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
	})
	w.Header().Set(authorizationHeader, fmt.Sprintf("%s %s", bearerScheme, token.SignedString))

	writeJSON(w, r, models.LoginResponse{Message: "Login successful", Token: token.SignedString}, http.StatusOK)
}

func (h *Handler) countLogin(err error) {
	outcome := "success"
	switch {
	case err == nil:
	case errors.Is(err, service.ErrInvalidCredentials), errors.Is(err, service.ErrInvalidDataProvided):
		outcome = "invalid"
	default:
		outcome = "error"
	}
	h.metrics.LoginAttempts.WithLabelValues(outcome).Inc()
}

// logout expires the session cookie. Issued tokens stay valid until they
// expire.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
	})

	writeJSON(w, r, models.MessageResponse{Message: "Logout successful"}, http.StatusOK)
}
