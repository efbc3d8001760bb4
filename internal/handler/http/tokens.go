package http

import (
	"net/http"

	"github.com/MKhiriev/scholarship-portal/models"
)

func (h *Handler) createToken(w http.ResponseWriter, r *http.Request) {
	var req models.TokenRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, token)
}
