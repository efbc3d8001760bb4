package handler

import (
	"github.com/MKhiriev/scholarship-portal/internal/config"
	"github.com/MKhiriev/scholarship-portal/internal/handler/grpc"
	"github.com/MKhiriev/scholarship-portal/internal/handler/http"
	"github.com/MKhiriev/scholarship-portal/internal/logger"
	"github.com/MKhiriev/scholarship-portal/internal/service"
)

// Handlers holds the transport handlers enabled by the server configuration.
// GRPC only carries the health service and is never enabled on its own.
type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	handlers := &Handlers{
		HTTP: http.NewHandler(services, cfg, logger),
	}
	if cfg.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(services, logger)
	}

	return handlers, nil
}
