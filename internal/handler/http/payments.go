package http

import (
	"net/http"

	"github.com/MKhiriev/scholarship-portal/models"
)

func (h *Handler) createPaymentIntent(w http.ResponseWriter, r *http.Request) {
	var req models.PaymentIntentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	resp, err := h.services.PaymentService.CreatePaymentIntent(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, resp)
}
