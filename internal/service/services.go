package service

import (
	"fmt"

	"github.com/MKhiriev/go-clip-relay/internal/config"
	"github.com/MKhiriev/go-clip-relay/internal/logger"
	"github.com/MKhiriev/go-clip-relay/internal/store"
)

type Services struct {
	ClipboardService ClipboardService
	AppInfoService   AppInfoService
}

func NewServices(storages *store.Storages, cfg *config.RelayConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		ClipboardService: NewClipboardService(storages.ClipboardStorage, cfg.Version, logger),
		AppInfoService:   appInfo,
	}, nil
}
