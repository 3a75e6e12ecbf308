package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the layout of the JSON
// config file. Durations are strings such as "500ms" or "3s".
type StructuredJSONConfig struct {
	App struct {
		Version string `json:"version"`
	} `json:"app,omitempty"`

	Relay struct {
		Address        string   `json:"address"`
		RequestTimeout Duration `json:"request_timeout"`
		CORSOrigins    []string `json:"cors_origins"`
		Advertise      *bool    `json:"advertise"`
		MaxBodyBytes   int64    `json:"max_body_bytes"`
	} `json:"relay,omitempty"`

	Device struct {
		ServerURL        string   `json:"server_url"`
		Name             string   `json:"name"`
		PollInterval     Duration `json:"poll_interval"`
		WatchInterval    Duration `json:"watch_interval"`
		ProtectionWindow Duration `json:"protection_window"`
		SyncFiles        *bool    `json:"sync_files"`
		MaxFileSizeMB    *int64   `json:"max_file_size_mb"`
		SoundEnabled     *bool    `json:"sound_enabled"`
		PopupEnabled     *bool    `json:"popup_enabled"`
		DownloadDir      string   `json:"download_dir"`
	} `json:"device,omitempty"`

	Adapter struct {
		RequestTimeout   Duration `json:"request_timeout"`
		PayloadTimeout   Duration `json:"payload_timeout"`
		DiscoveryTimeout Duration `json:"discovery_timeout"`
	} `json:"adapter,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Version: jsonCfg.App.Version,
		},
		Relay: Relay{
			Address:        jsonCfg.Relay.Address,
			RequestTimeout: time.Duration(jsonCfg.Relay.RequestTimeout),
			CORSOrigins:    jsonCfg.Relay.CORSOrigins,
			Advertise:      jsonCfg.Relay.Advertise,
			MaxBodyBytes:   jsonCfg.Relay.MaxBodyBytes,
		},
		Device: Device{
			ServerURL:        jsonCfg.Device.ServerURL,
			Name:             jsonCfg.Device.Name,
			PollInterval:     time.Duration(jsonCfg.Device.PollInterval),
			WatchInterval:    time.Duration(jsonCfg.Device.WatchInterval),
			ProtectionWindow: time.Duration(jsonCfg.Device.ProtectionWindow),
			SyncFiles:        jsonCfg.Device.SyncFiles,
			MaxFileSizeMB:    jsonCfg.Device.MaxFileSizeMB,
			SoundEnabled:     jsonCfg.Device.SoundEnabled,
			PopupEnabled:     jsonCfg.Device.PopupEnabled,
			DownloadDir:      jsonCfg.Device.DownloadDir,
		},
		Adapter: Adapter{
			RequestTimeout:   time.Duration(jsonCfg.Adapter.RequestTimeout),
			PayloadTimeout:   time.Duration(jsonCfg.Adapter.PayloadTimeout),
			DiscoveryTimeout: time.Duration(jsonCfg.Adapter.DiscoveryTimeout),
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
