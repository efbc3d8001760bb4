package http

import (
	"net/http"

	"github.com/MKhiriev/scholarship-portal/internal/logger"
	"github.com/MKhiriev/scholarship-portal/internal/utils"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// withObjectID parses the {id} path parameter into an ObjectID and stores it
// in the request context. A malformed id is answered with 400.
func withObjectID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := chi.URLParam(r, "id")

		id, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			logger.FromRequest(r).Err(err).Str("id", raw).Msg("invalid object id")
			utils.WriteMessage(w, msgInvalidObjectID, http.StatusBadRequest)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithObjectID(r.Context(), id)))
	})
}
