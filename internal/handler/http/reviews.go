package http

import (
	"net/http"

	"github.com/MKhiriev/scholarship-portal/models"
)

func (h *Handler) listReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.services.ReviewService.List(r.Context(), models.ListFilter{})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, reviews)
}

// listMyReviews lists the reviews written by ?email=. Without an email
// nobody's reviews match.
func (h *Handler) listMyReviews(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		writeJSON(w, r, []models.Review{})
		return
	}

	reviews, err := h.services.ReviewService.List(r.Context(), models.ListFilter{UserEmail: email})
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, reviews)
}

func (h *Handler) createReview(w http.ResponseWriter, r *http.Request) {
	var review models.Review
	if err := decodeJSON(r, &review); err != nil {
		writeError(w, r, err)
		return
	}

	result, err := h.services.ReviewService.Create(r.Context(), review)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, result)
}

func (h *Handler) deleteReview(w http.ResponseWriter, r *http.Request) {
	id, err := objectID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	result, err := h.services.ReviewService.Delete(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, result)
}
