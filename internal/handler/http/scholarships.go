package http

import (
	"net/http"

	"github.com/MKhiriev/scholarship-portal/models"
)

func (h *Handler) listScholarships(w http.ResponseWriter, r *http.Request) {
	scholarships, err := h.services.ScholarshipService.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, scholarships)
}

// getScholarship answers null, not 404, for an unknown id.
func (h *Handler) getScholarship(w http.ResponseWriter, r *http.Request) {
	id, err := objectID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	scholarship, err := h.services.ScholarshipService.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, scholarship)
}

func (h *Handler) createScholarship(w http.ResponseWriter, r *http.Request) {
	var scholarship models.Scholarship
	if err := decodeJSON(r, &scholarship); err != nil {
		writeError(w, r, err)
		return
	}

	result, err := h.services.ScholarshipService.Create(r.Context(), scholarship)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, result)
}

func (h *Handler) updateScholarship(w http.ResponseWriter, r *http.Request) {
	id, err := objectID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var scholarship models.Scholarship
	if err = decodeJSON(r, &scholarship); err != nil {
		writeError(w, r, err)
		return
	}

	result, err := h.services.ScholarshipService.Update(r.Context(), id, scholarship)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, result)
}

func (h *Handler) deleteScholarship(w http.ResponseWriter, r *http.Request) {
	id, err := objectID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	result, err := h.services.ScholarshipService.Delete(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, result)
}
