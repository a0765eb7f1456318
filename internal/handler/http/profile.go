package http

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/MKhiriev/what-to-cook/models"
)

const profilePictureField = "profilePicture"

func (h *Handler) getProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	profile, err := h.services.ProfileService.GetProfile(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, profile, http.StatusOK)
}

func (h *Handler) uploadProfilePicture(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	picture, err := h.readPicture(w, r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	name, err := h.services.ProfileService.UploadProfilePicture(r.Context(), userID, picture)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, models.UploadResponse{
		Message:  "Profile Picture uploaded successfully",
		FilePath: name,
	}, http.StatusOK)
}

// readPicture reads the "profilePicture" part of a multipart body limited
// to maxUploadSize bytes.
func (h *Handler) readPicture(w http.ResponseWriter, r *http.Request) (models.Picture, error) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)

	if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return models.Picture{}, fmt.Errorf("%w: %w", ErrUploadTooLarge, err)
		}
		return models.Picture{}, fmt.Errorf("%w: %w", ErrNoPictureUploaded, err)
	}
	defer func() { _ = r.MultipartForm.RemoveAll() }()

	file, header, err := r.FormFile(profilePictureField)
	if err != nil {
		return models.Picture{}, fmt.Errorf("%w: %w", ErrNoPictureUploaded, err)
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return models.Picture{}, fmt.Errorf("error reading uploaded picture: %w", err)
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = http.DetectContentType(content)
	}

	return models.Picture{Content: content, ContentType: contentType}, nil
}
