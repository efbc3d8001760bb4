package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/scholarship-portal/internal/adapter"
	"github.com/MKhiriev/scholarship-portal/internal/logger"
	"github.com/MKhiriev/scholarship-portal/internal/service"
	"github.com/MKhiriev/scholarship-portal/internal/store"
	"github.com/MKhiriev/scholarship-portal/internal/utils"
)

// errorStatusMap is checked in order: store errors wrap each other, so the
// more specific sentinel comes first.
var errorStatusMap = []struct {
	err    error
	status int
}{
	{ErrInvalidJSON, http.StatusBadRequest},
	{ErrInvalidObjectID, http.StatusBadRequest},
	{ErrInvalidEmailParam, http.StatusBadRequest},
	{ErrNoClaims, http.StatusUnauthorized},

	{service.ErrInvalidDataProvided, http.StatusBadRequest},
	{service.ErrInvalidPrice, http.StatusBadRequest},
	{service.ErrTokenIsExpired, http.StatusUnauthorized},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},
	{service.ErrTokenCreationFailed, http.StatusInternalServerError},

	{adapter.ErrPaymentNotConfigured, http.StatusServiceUnavailable},
	{adapter.ErrPaymentFailed, http.StatusBadGateway},

	{store.ErrStorageUnavailable, http.StatusServiceUnavailable},
	{store.ErrAlreadyExists, http.StatusConflict},
	{store.ErrNotFound, http.StatusNotFound},
	{store.ErrBuildingSQLQuery, http.StatusInternalServerError},
	{store.ErrExecutingQuery, http.StatusInternalServerError},
	{store.ErrExecutingStatement, http.StatusInternalServerError},
	{store.ErrScanningRows, http.StatusInternalServerError},
}

func statusFromError(err error) int {
	for _, entry := range errorStatusMap {
		if errors.Is(err, entry.err) {
			return entry.status
		}
	}
	return http.StatusInternalServerError
}

// writeError answers with {"message": ...}. Client errors carry the error
// text; server errors only the status text so internals do not leak.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
		utils.WriteMessage(w, http.StatusText(status), status)
		return
	}

	log.Debug().Err(err).Int("status", status).Msg("request rejected")
	utils.WriteMessage(w, err.Error(), status)
}
