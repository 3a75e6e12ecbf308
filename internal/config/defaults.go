package config

import (
	"os"
	"path/filepath"
	"time"
)

const (
	defaultRelayAddress        = ":8000"
	defaultRelayRequestTimeout = 60 * time.Second
	defaultRelayMaxBodyBytes   = 256 << 20

	defaultPollInterval     = time.Second
	defaultWatchInterval    = 500 * time.Millisecond
	defaultProtectionWindow = 2 * time.Second
	defaultMaxFileSizeMB    = 10

	defaultAdapterRequestTimeout   = 3 * time.Second
	defaultAdapterPayloadTimeout   = 15 * time.Second
	defaultAdapterDiscoveryTimeout = 3 * time.Second

	defaultVersion = "dev"
)

// defaultConfig returns the lowest-priority configuration layer.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Version: defaultVersion,
		},
		Relay: Relay{
			Address:        defaultRelayAddress,
			RequestTimeout: defaultRelayRequestTimeout,
			Advertise:      ptr(true),
			MaxBodyBytes:   defaultRelayMaxBodyBytes,
		},
		Device: Device{
			PollInterval:     defaultPollInterval,
			WatchInterval:    defaultWatchInterval,
			ProtectionWindow: defaultProtectionWindow,
			SyncFiles:        ptr(true),
			MaxFileSizeMB:    ptr(int64(defaultMaxFileSizeMB)),
			SoundEnabled:     ptr(true),
			PopupEnabled:     ptr(true),
			DownloadDir:      filepath.Join(os.TempDir(), "clip-relay"),
		},
		Adapter: Adapter{
			RequestTimeout:   defaultAdapterRequestTimeout,
			PayloadTimeout:   defaultAdapterPayloadTimeout,
			DiscoveryTimeout: defaultAdapterDiscoveryTimeout,
		},
	}
}

func ptr[T any](v T) *T {
	return &v
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
