package config

import (
	"fmt"
	"time"
)

// RelayConfig is the relay-specific configuration view assembled from
// [StructuredConfig].
type RelayConfig struct {
	// Address is the TCP listen address.
	Address string
	// RequestTimeout bounds reading a request and writing its response.
	RequestTimeout time.Duration
	// CORSOrigins enables CORS for the listed origins when non-empty.
	CORSOrigins []string
	// Advertise publishes the relay over mDNS.
	Advertise bool
	// MaxBodyBytes caps the size of an upload body.
	MaxBodyBytes int64
	// Version is reported by /status and /version.
	Version string
}

// GetRelayConfig builds and validates the relay view of the merged
// configuration. args are the command-line arguments without the program name.
func GetRelayConfig(args []string) (*RelayConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	relayCfg := newRelayConfig(cfg)

	return relayCfg, relayCfg.validate()
}

func newRelayConfig(cfg *StructuredConfig) *RelayConfig {
	return &RelayConfig{
		Address:        cfg.Relay.Address,
		RequestTimeout: cfg.Relay.RequestTimeout,
		CORSOrigins:    cfg.Relay.CORSOrigins,
		Advertise:      deref(cfg.Relay.Advertise),
		MaxBodyBytes:   cfg.Relay.MaxBodyBytes,
		Version:        cfg.App.Version,
	}
}
