package http

import (
	"net/http"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	version, err := h.services.AppInfoService.GetAppVersion(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, version, http.StatusOK)
}
