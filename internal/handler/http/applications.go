package http

import (
	"net/http"

	"github.com/MKhiriev/scholarship-portal/models"
)

// listApplications lists every application, or those of ?email= when given.
func (h *Handler) listApplications(w http.ResponseWriter, r *http.Request) {
	filter := models.ListFilter{UserEmail: r.URL.Query().Get("email")}

	applications, err := h.services.ApplicationService.List(r.Context(), filter)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, applications)
}

func (h *Handler) createApplication(w http.ResponseWriter, r *http.Request) {
	var application models.Application
	if err := decodeJSON(r, &application); err != nil {
		writeError(w, r, err)
		return
	}

	result, err := h.services.ApplicationService.Create(r.Context(), application)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, result)
}

func (h *Handler) approveApplication(w http.ResponseWriter, r *http.Request) {
	id, err := objectID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	result, err := h.services.ApplicationService.Approve(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, result)
}

func (h *Handler) deleteApplication(w http.ResponseWriter, r *http.Request) {
	id, err := objectID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	result, err := h.services.ApplicationService.Delete(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, result)
}
