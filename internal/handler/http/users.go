package http

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/MKhiriev/scholarship-portal/internal/logger"
	"github.com/MKhiriev/scholarship-portal/internal/service"
	"github.com/MKhiriev/scholarship-portal/internal/utils"
	"github.com/MKhiriev/scholarship-portal/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.services.UserService.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, users)
}

func (h *Handler) checkAdmin(w http.ResponseWriter, r *http.Request) {
	isAdmin, ok := h.checkOwnRole(w, r, models.RoleAdmin)
	if !ok {
		return
	}

	writeJSON(w, r, models.AdminStatus{Admin: isAdmin})
}

func (h *Handler) checkModerator(w http.ResponseWriter, r *http.Request) {
	isModerator, ok := h.checkOwnRole(w, r, models.RoleModerator)
	if !ok {
		return
	}

	writeJSON(w, r, models.ModeratorStatus{Moderator: isModerator})
}

// checkOwnRole answers whether the user in the {email} path parameter holds
// role. Callers may only ask about themselves. ok is false when a response
// has already been written.
func (h *Handler) checkOwnRole(w http.ResponseWriter, r *http.Request, role string) (hasRole bool, ok bool) {
	email, err := url.PathUnescape(chi.URLParam(r, "email"))
	if err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidEmailParam, err))
		return false, false
	}

	claims, found := utils.GetClaimsFromContext(r.Context())
	if !found {
		writeError(w, r, ErrNoClaims)
		return false, false
	}
	if claims.Email != email {
		logger.FromRequest(r).Info().
			Str("email", email).
			Str("caller", claims.Email).
			Msg("role check for another user")
		utils.WriteMessage(w, msgOwnAccountOnly, http.StatusForbidden)
		return false, false
	}

	hasRole, err = h.services.UserService.CheckRole(r.Context(), email, role)
	if err != nil {
		writeError(w, r, err)
		return false, false
	}

	return hasRole, true
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	var user models.User
	if err := decodeJSON(r, &user); err != nil {
		writeError(w, r, err)
		return
	}

	result, err := h.services.UserService.Create(r.Context(), user)
	if errors.Is(err, service.ErrUserAlreadyExists) {
		writeJSON(w, r, models.UserExistsResponse{Message: msgUserExists})
		return
	}
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, result)
}

func (h *Handler) updateUserRole(w http.ResponseWriter, r *http.Request) {
	id, err := objectID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	result, err := h.services.UserService.UpdateRole(r.Context(), id, r.URL.Query().Get("role"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, result)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := objectID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	result, err := h.services.UserService.Delete(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, r, result)
}
