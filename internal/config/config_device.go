package config

import (
	"fmt"
	"strings"
	"time"
)

// DeviceConfig is the device-specific configuration view assembled from
// [StructuredConfig].
type DeviceConfig struct {
	// ServerURL is the relay base URL; empty when the relay is discovered.
	ServerURL string
	// Name is the configured device label; may be empty.
	Name string

	PollInterval     time.Duration
	WatchInterval    time.Duration
	ProtectionWindow time.Duration

	// SyncFiles allows file and image uploads.
	SyncFiles bool
	// MaxFileSizeMB is the file and image ceiling; 0 means unlimited.
	MaxFileSizeMB int64
	// DownloadDir receives files downloaded from the relay.
	DownloadDir string

	SoundEnabled bool
	PopupEnabled bool

	// Adapter contains the outbound request timeouts.
	Adapter Adapter

	// Version is shown in the startup notification.
	Version string
}

// GetDeviceConfig builds and validates the device view of the merged
// configuration. args are the command-line arguments without the program
// name.
func GetDeviceConfig(args []string) (*DeviceConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	deviceCfg := newDeviceConfig(cfg)

	return deviceCfg, deviceCfg.validate()
}

func newDeviceConfig(cfg *StructuredConfig) *DeviceConfig {
	serverURL := strings.TrimSpace(cfg.Device.ServerURL)
	if strings.EqualFold(serverURL, "auto") {
		serverURL = ""
	}

	return &DeviceConfig{
		ServerURL:        serverURL,
		Name:             strings.TrimSpace(cfg.Device.Name),
		PollInterval:     cfg.Device.PollInterval,
		WatchInterval:    cfg.Device.WatchInterval,
		ProtectionWindow: cfg.Device.ProtectionWindow,
		SyncFiles:        deref(cfg.Device.SyncFiles),
		MaxFileSizeMB:    deref(cfg.Device.MaxFileSizeMB),
		DownloadDir:      cfg.Device.DownloadDir,
		SoundEnabled:     deref(cfg.Device.SoundEnabled),
		PopupEnabled:     deref(cfg.Device.PopupEnabled),
		Adapter:          cfg.Adapter,
		Version:          cfg.App.Version,
	}
}

// DiscoverRelay reports whether the relay address must be found over mDNS.
func (c *DeviceConfig) DiscoverRelay() bool {
	return c.ServerURL == ""
}

// MaxFileBytes returns the file and image ceiling in bytes; 0 means unlimited.
func (c *DeviceConfig) MaxFileBytes() int64 {
	return c.MaxFileSizeMB << 20
}
