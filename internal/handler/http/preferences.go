package http

import (
	"net/http"

	"github.com/MKhiriev/what-to-cook/models"
)

func (h *Handler) saveDietaryRestrictions(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.DietaryRestrictionsRequest
	if err = readJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.PreferenceService.SaveRestrictions(r.Context(), userID, req); err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, models.MessageResponse{Message: "Dietary restrictions saved successfully"}, http.StatusOK)
}

func (h *Handler) userHealthLabels(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromRequest(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	labels, err := h.services.PreferenceService.GetUserLabels(r.Context(), userID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, models.UserHealthLabelsResponse{UserHealthLabels: nonNil(labels)}, http.StatusOK)
}

// healthLabelIDs resolves the comma-separated label names passed in the
// "selectedRestrictions" URL parameter.
func (h *Handler) healthLabelIDs(w http.ResponseWriter, r *http.Request) {
	ids, err := h.services.PreferenceService.ResolveLabelIDs(r.Context(), r.URL.Query().Get("selectedRestrictions"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, models.HealthLabelIDsResponse{HealthLabelIDs: nonNil(ids)}, http.StatusOK)
}

func (h *Handler) healthLabels(w http.ResponseWriter, r *http.Request) {
	labels, err := h.services.PreferenceService.ListAllLabels(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, models.HealthLabelsResponse{Labels: nonNil(labels)}, http.StatusOK)
}

// nonNil makes empty lists encode as [] instead of null.
func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
