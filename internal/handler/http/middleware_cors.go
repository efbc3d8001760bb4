package http

import (
	"net/http"

	"github.com/rs/cors"
)

func (h *Handler) withCORS(next http.Handler) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins: h.allowedOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPatch,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: []string{"Authorization", "Content-Type", traceIDHeader},
		ExposedHeaders: []string{traceIDHeader},
	}).Handler(next)
}
