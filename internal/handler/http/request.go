package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/scholarship-portal/internal/logger"
	"github.com/MKhiriev/scholarship-portal/internal/utils"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}

// objectID returns the id parsed by withObjectID.
func objectID(r *http.Request) (primitive.ObjectID, error) {
	id, ok := utils.GetObjectIDFromContext(r.Context())
	if !ok {
		return primitive.NilObjectID, ErrInvalidObjectID
	}
	return id, nil
}

func writeJSON(w http.ResponseWriter, r *http.Request, data any) {
	if _, err := utils.WriteJSON(w, data, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing response")
	}
}
