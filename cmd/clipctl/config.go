package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/MKhiriev/go-clip-relay/internal/adapter"
	"github.com/MKhiriev/go-clip-relay/internal/config"
	"github.com/MKhiriev/go-clip-relay/internal/discovery"
	"github.com/MKhiriev/go-clip-relay/internal/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// bindViper wires a command's flags into v with the clipctl.toml search
// order and the CLIPCTL_* env prefix.
//
// Precedence (lowest to highest): defaults, config file, env vars, flags.
func bindViper(cmd *cobra.Command, v *viper.Viper) error {
	configFlag, _ := cmd.Flags().GetString("config")
	if configFlag != "" {
		v.SetConfigFile(configFlag)
	} else {
		v.SetConfigName("clipctl")
		v.SetConfigType("toml")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".config", "clip-relay"))
		}
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("config: %w", err)
		}
	}

	v.SetEnvPrefix("CLIPCTL")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("binding flags: %w", err)
	}
	return nil
}

// addRelayFlags adds the flags every command that talks to the relay needs.
func addRelayFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringP("server", "s", "auto", `relay URL, or "auto" to discover it over mDNS`)
	f.Duration("timeout", 3*time.Second, "timeout for text and status requests")
	f.Duration("payload-timeout", 15*time.Second, "timeout for file and image requests")
	f.Duration("discovery-timeout", 3*time.Second, "how long to look for a relay over mDNS")
	f.BoolP("verbose", "v", false, "log requests to stderr")
	f.String("config", "", "path to config file (overrides auto-discovery)")
}

func commandLogger(v *viper.Viper) *logger.Logger {
	if v.GetBool("verbose") {
		return logger.NewClientLogger("clipctl")
	}
	return logger.Nop()
}

func adapterConfig(v *viper.Viper) config.Adapter {
	return config.Adapter{
		RequestTimeout:   v.GetDuration("timeout"),
		PayloadTimeout:   v.GetDuration("payload-timeout"),
		DiscoveryTimeout: v.GetDuration("discovery-timeout"),
	}
}

// newRelay builds the relay adapter, discovering the relay when needed.
func newRelay(ctx context.Context, v *viper.Viper, log *logger.Logger) (adapter.RelayAdapter, error) {
	adapterCfg := adapterConfig(v)

	serverURL := strings.TrimSpace(v.GetString("server"))
	if serverURL == "" || strings.EqualFold(serverURL, "auto") {
		browser, err := discovery.NewBrowser()
		if err != nil {
			return nil, err
		}
		relay, err := browser.Find(ctx, adapterCfg.DiscoveryTimeout)
		if err != nil {
			return nil, fmt.Errorf("discover relay (use --server to set it explicitly): %w", err)
		}
		serverURL = relay.URL()
	}

	return adapter.NewHTTPRelayAdapter(serverURL, adapterCfg, log)
}
