// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "fmt"

// validate checks the settings shared by every binary.
func (cfg *StructuredConfig) validate() error {
	if cfg.Relay.MaxBodyBytes < 0 {
		return fmt.Errorf("%w: negative body limit", ErrInvalidRelayConfigs)
	}

	if cfg.Device.MaxFileSizeMB != nil && *cfg.Device.MaxFileSizeMB < 0 {
		return fmt.Errorf("%w: negative file size ceiling", ErrInvalidDeviceConfigs)
	}

	return nil
}

func (cfg *RelayConfig) validate() error {
	if cfg.Address == "" || cfg.RequestTimeout <= 0 || cfg.MaxBodyBytes <= 0 {
		return ErrInvalidRelayConfigs
	}

	if cfg.Version == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}

func (cfg *DeviceConfig) validate() error {
	if cfg.PollInterval <= 0 || cfg.WatchInterval <= 0 || cfg.ProtectionWindow < 0 {
		return ErrInvalidDeviceConfigs
	}

	if cfg.MaxFileSizeMB < 0 || cfg.DownloadDir == "" {
		return ErrInvalidDeviceConfigs
	}

	if cfg.Adapter.RequestTimeout <= 0 || cfg.Adapter.PayloadTimeout <= 0 || cfg.Adapter.DiscoveryTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Version == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}
