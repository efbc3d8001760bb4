package http

import (
	"net/http"

	"github.com/MKhiriev/scholarship-portal/internal/logger"
	"github.com/MKhiriev/scholarship-portal/internal/utils"
)

// withRole lets the request through only when the caller's stored role is
// role. The user is looked up on every request; auth must run first.
func (h *Handler) withRole(role string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := logger.FromRequest(r)

			claims, ok := utils.GetClaimsFromContext(r.Context())
			if !ok {
				log.Err(ErrNoClaims).Str("func", "*Handler.withRole").Send()
				utils.WriteMessage(w, msgUnauthorized, http.StatusUnauthorized)
				return
			}

			allowed, err := h.services.UserService.CheckRole(r.Context(), claims.Email, role)
			if err != nil {
				writeError(w, r, err)
				return
			}
			if !allowed {
				log.Info().Str("email", claims.Email).Str("role", role).Msg("role check failed")
				utils.WriteMessage(w, msgForbidden, http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
