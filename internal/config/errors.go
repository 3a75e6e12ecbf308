package config

import "errors"

// Validation errors returned by the config views when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidRelayConfigs indicates invalid relay settings
	// (for example, missing listen address or a non-positive body limit).
	ErrInvalidRelayConfigs = errors.New("invalid relay configuration")
	// ErrInvalidDeviceConfigs indicates invalid device settings
	// (for example, a zero poll interval or a negative file ceiling).
	ErrInvalidDeviceConfigs = errors.New("invalid device configuration")
	// ErrInvalidAdapterConfigs indicates invalid adapter settings
	// (for example, a missing request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, an empty version).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
)
