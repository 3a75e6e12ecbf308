package client

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-clip-relay/internal/adapter"
	"github.com/MKhiriev/go-clip-relay/internal/clipboard"
	"github.com/MKhiriev/go-clip-relay/internal/config"
	"github.com/MKhiriev/go-clip-relay/internal/discovery"
	"github.com/MKhiriev/go-clip-relay/internal/identity"
	"github.com/MKhiriev/go-clip-relay/internal/logger"
	"github.com/MKhiriev/go-clip-relay/internal/notify"
	"github.com/MKhiriev/go-clip-relay/internal/service"
)

type App struct {
	cfg      *config.DeviceConfig
	deps     service.ClientDeps
	services *service.ClientServices
	logger   *logger.Logger
}

// NewApp resolves the relay and builds the device services. Discovery runs
// only when no server URL is configured.
func NewApp(ctx context.Context, cfg *config.DeviceConfig, logger *logger.Logger) (*App, error) {
	var finder relayFinder
	if cfg.DiscoverRelay() {
		browser, err := discovery.NewBrowser()
		if err != nil {
			return nil, err
		}
		finder = browser
	}

	serverURL, err := resolveRelay(ctx, cfg, finder, logger)
	if err != nil {
		return nil, err
	}

	relay, err := adapter.NewHTTPRelayAdapter(serverURL, cfg.Adapter, logger)
	if err != nil {
		return nil, fmt.Errorf("create relay adapter: %w", err)
	}

	deps := service.ClientDeps{
		Clipboard: clipboard.New(logger),
		Relay:     relay,
		Notifier:  notify.NewLogNotifier(cfg.PopupEnabled, logger),
		Cue:       notify.NewBellCue(cfg.SoundEnabled, os.Stderr),
		Identity:  identity.New(cfg.Name),
	}

	return newApp(cfg, deps, logger), nil
}

func newApp(cfg *config.DeviceConfig, deps service.ClientDeps, logger *logger.Logger) *App {
	logger = logger.WithDevice(deps.Identity.ID, deps.Identity.Name)

	return &App{
		cfg:      cfg,
		deps:     deps,
		services: service.NewClientServices(deps, cfg, logger),
		logger:   logger,
	}
}

// Run starts both device loops and blocks until ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	defer a.deps.Clipboard.Close()

	a.logger.Info().
		Str("relay", a.deps.Relay.BaseURL()).
		Str("clipboard", a.deps.Clipboard.Name()).
		Dur("poll_interval", a.cfg.PollInterval).
		Bool("sync_files", a.cfg.SyncFiles).
		Msg("device agent started")

	a.deps.Notifier.Notify(
		"Clipboard sync started",
		fmt.Sprintf("v%s, checking every %s", a.cfg.Version, a.cfg.PollInterval),
		notify.SeverityInfo,
	)

	a.services.SyncJob.Start(ctx)
	<-ctx.Done()
	a.services.SyncJob.Stop()

	a.logger.Info().Msg("device agent stopped")
	return nil
}

func resolveRelay(ctx context.Context, cfg *config.DeviceConfig, finder relayFinder, logger *logger.Logger) (string, error) {
	if !cfg.DiscoverRelay() {
		return cfg.ServerURL, nil
	}
	if finder == nil {
		return "", errNoRelayAddress
	}

	logger.Info().Dur("timeout", cfg.Adapter.DiscoveryTimeout).Msg("looking for a relay over mDNS")

	relay, err := finder.Find(ctx, cfg.Adapter.DiscoveryTimeout)
	if err != nil {
		return "", fmt.Errorf("discover relay: %w", err)
	}

	logger.Info().
		Str("instance", relay.Instance).
		Str("url", relay.URL()).
		Str("relay_version", relay.Version).
		Msg("relay discovered")

	return relay.URL(), nil
}
