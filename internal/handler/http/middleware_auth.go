package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/MKhiriev/scholarship-portal/internal/logger"
	"github.com/MKhiriev/scholarship-portal/internal/service"
	"github.com/MKhiriev/scholarship-portal/internal/utils"
)

// auth is an HTTP middleware that enforces JWT-based authentication.
//
// It inspects the incoming "Authorization" header, extracts the token from
// its second space-separated part, validates it via
// [service.AuthService.ParseToken], and on success stores the decoded claims
// in the request context before delegating to the next handler.
//
// Every rejection is answered with 401 {"message":"Unauthorized access"};
// the store is never read for a rejected request.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			utils.WriteMessage(w, msgUnauthorized, http.StatusUnauthorized)
			return
		}

		tokenString, err := getTokenFromAuthHeader(authHeader)
		if err != nil {
			log.Err(err).Send()
			utils.WriteMessage(w, msgUnauthorized, http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		claims, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrTokenIsExpired):
				log.Err(err).Msg("token expired")
			default:
				log.Err(err).Msg("error occurred during parsing token")
			}
			utils.WriteMessage(w, msgUnauthorized, http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(utils.WithClaims(ctx, claims)))
	})
}

// getTokenFromAuthHeader extracts the token string from a raw
// "Authorization" HTTP header value of the form "<scheme> <token>".
//
// It returns [ErrInvalidAuthorizationHeader] if the header has fewer than
// two space-separated parts, and [ErrEmptyToken] if the second part is empty.
func getTokenFromAuthHeader(authHeader string) (string, error) {
	parts := strings.Split(authHeader, " ")
	if len(parts) < 2 {
		return "", ErrInvalidAuthorizationHeader
	}

	tokenString := parts[1]
	if tokenString == "" {
		return "", ErrEmptyToken
	}

	return tokenString, nil
}
