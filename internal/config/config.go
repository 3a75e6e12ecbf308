// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// relay and device binaries. It is populated by merging values from
// environment variables, command-line flags, an optional JSON file and the
// built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
//
// Optional switches are pointers so that an explicit false or 0 from a
// higher-priority source is not replaced by a default during merging.
type StructuredConfig struct {
	// App holds settings shared by every binary.
	App App `envPrefix:"APP_"`

	// Relay holds the listening and limits settings of the relay server.
	Relay Relay `envPrefix:"RELAY_"`

	// Device holds the synchronization settings of a device agent.
	Device Device `envPrefix:"DEVICE_"`

	// Adapter holds the outbound HTTP settings a device uses to reach the relay.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level values.
type App struct {
	// Version is the semantic version string of the running application
	// (e.g. "1.2.3"). Exposed via /status and /version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Relay holds network, timeout and limit settings of the relay server.
type Relay struct {
	// Address is the TCP address the HTTP server listens on, in
	// "[host]:port" format (e.g. ":8000").
	// Env: RELAY_ADDRESS
	Address string `env:"ADDRESS"`

	// RequestTimeout bounds reading a request and writing its response.
	// Env: RELAY_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// CORSOrigins enables CORS for the listed origins when non-empty.
	// Env: RELAY_CORS_ORIGINS (comma separated)
	CORSOrigins []string `env:"CORS_ORIGINS" envSeparator:","`

	// Advertise publishes the relay on the local network over mDNS.
	// Env: RELAY_ADVERTISE
	Advertise *bool `env:"ADVERTISE"`

	// MaxBodyBytes caps the size of an upload body.
	// Env: RELAY_MAX_BODY_BYTES
	MaxBodyBytes int64 `env:"MAX_BODY_BYTES"`
}

// Device holds the synchronization settings of a device agent.
type Device struct {
	// ServerURL is the base URL of the relay. Empty or "auto" means the relay
	// is discovered over mDNS.
	// Env: DEVICE_SERVER_URL
	ServerURL string `env:"SERVER_URL"`

	// Name is the human-readable label sent with every upload. Defaults to the
	// host name.
	// Env: DEVICE_NAME
	Name string `env:"NAME"`

	// PollInterval is the period of the relay puller.
	// Env: DEVICE_POLL_INTERVAL
	PollInterval time.Duration `env:"POLL_INTERVAL"`

	// WatchInterval is the period of the local clipboard watcher.
	// Env: DEVICE_WATCH_INTERVAL
	WatchInterval time.Duration `env:"WATCH_INTERVAL"`

	// ProtectionWindow is how long local change detection stays paused after
	// a remote update was written to the clipboard.
	// Env: DEVICE_PROTECTION_WINDOW
	ProtectionWindow time.Duration `env:"PROTECTION_WINDOW"`

	// SyncFiles allows files and images to be uploaded. When false only text
	// is synchronized from this device.
	// Env: DEVICE_SYNC_FILES
	SyncFiles *bool `env:"SYNC_FILES"`

	// MaxFileSizeMB is the upload ceiling for files and images; 0 means
	// unlimited.
	// Env: DEVICE_MAX_FILE_SIZE_MB
	MaxFileSizeMB *int64 `env:"MAX_FILE_SIZE_MB"`

	// SoundEnabled plays a cue after uploads and downloads.
	// Env: DEVICE_SOUND_ENABLED
	SoundEnabled *bool `env:"SOUND_ENABLED"`

	// PopupEnabled shows notifications after uploads and downloads.
	// Env: DEVICE_POPUP_ENABLED
	PopupEnabled *bool `env:"POPUP_ENABLED"`

	// DownloadDir receives files downloaded from the relay.
	// Env: DEVICE_DOWNLOAD_DIR
	DownloadDir string `env:"DOWNLOAD_DIR"`
}

// Adapter holds outbound HTTP settings for the device transport layer.
type Adapter struct {
	// RequestTimeout bounds text uploads and status calls.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// PayloadTimeout bounds requests that may carry a file or an image.
	// Env: ADAPTER_PAYLOAD_TIMEOUT
	PayloadTimeout time.Duration `env:"PAYLOAD_TIMEOUT"`

	// DiscoveryTimeout bounds the mDNS lookup of the relay.
	// Env: ADAPTER_DISCOVERY_TIMEOUT
	DiscoveryTimeout time.Duration `env:"DISCOVERY_TIMEOUT"`
}

// GetStructuredConfig loads and merges the configuration from all available
// sources. args are the command-line arguments without the program name.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		withDefaults().
		build()
}
