package http

import (
	"time"

	"github.com/MKhiriev/scholarship-portal/internal/config"
	"github.com/MKhiriev/scholarship-portal/internal/logger"
	"github.com/MKhiriev/scholarship-portal/internal/service"
)

type Handler struct {
	services *service.Services

	allowedOrigins []string
	requestTimeout time.Duration
	metrics        *metrics

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.Server, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		allowedOrigins: cfg.AllowedOrigins,
		requestTimeout: cfg.RequestTimeout,
		metrics:        newMetrics(),
		logger:         logger,
	}
}
