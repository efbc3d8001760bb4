package grpc

import (
	"github.com/MKhiriev/scholarship-portal/internal/logger"
	"github.com/MKhiriev/scholarship-portal/internal/service"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
)

// ServiceName is the name reported by the health service for the portal API.
const ServiceName = "scholarship.Portal"

// Handler is the root gRPC transport handler.
//
// It exposes the standard gRPC health service so that orchestrators can probe
// the process. The portal API itself is served over HTTP; the health status
// follows the HTTP server lifecycle.
type Handler struct {
	// services provides access to all application business operations.
	services *service.Services

	health *health.Server

	// logger is used for request-scoped and diagnostic log output.
	logger *logger.Logger
}

// NewHandler constructs a [Handler] with the provided service container and
// logger. Every service starts as NOT_SERVING until [Handler.Serving] is
// called.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")

	healthServer := health.NewServer()
	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_NOT_SERVING)
	healthServer.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_NOT_SERVING)

	return &Handler{
		services: services,
		health:   healthServer,
		logger:   logger,
	}
}

// Register attaches the health and reflection services to server.
func (h *Handler) Register(server *grpc.Server) {
	healthpb.RegisterHealthServer(server, h.health)
	reflection.Register(server)
}

// Serving marks the process and the portal service as SERVING.
func (h *Handler) Serving() {
	h.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	h.health.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)
	h.logger.Info().Str("service", ServiceName).Msg("health status set to SERVING")
}

// Shutdown marks every service NOT_SERVING and ends open Watch streams.
// Later status updates are ignored.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
	h.logger.Info().Str("service", ServiceName).Msg("health status set to NOT_SERVING")
}
