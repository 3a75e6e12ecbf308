package http

import (
	"github.com/MKhiriev/go-clip-relay/internal/config"
	"github.com/MKhiriev/go-clip-relay/internal/logger"
	"github.com/MKhiriev/go-clip-relay/internal/service"
)

type Handler struct {
	services *service.Services
	cfg      *config.RelayConfig

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg *config.RelayConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		cfg:      cfg,
		logger:   logger,
	}
}
