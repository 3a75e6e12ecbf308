package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses all configuration flags from args.
//
// Flags:
//
//	-a relay listen address in format [host]:port
//	-request-timeout relay request timeout (e.g., "30s", "1m")
//	-cors comma separated CORS origins
//	-advertise publish the relay over mDNS
//	-max-body relay upload body limit in bytes
//	-s relay URL used by the device ("auto" for discovery)
//	-n device name
//	-poll puller interval
//	-watch watcher interval
//	-protect protection window after a remote update
//	-sync-files upload files and images
//	-max-file-mb file and image ceiling in MB (0 = unlimited)
//	-sound play a cue on sync
//	-popup show notifications on sync
//	-download-dir directory for downloaded files
//	-c/-config json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	var relayAddress NetAddress
	var requestTimeout time.Duration
	var corsOrigins string
	var advertise *bool
	var maxBodyBytes int64

	var serverURL, deviceName, downloadDir string
	var pollInterval, watchInterval, protectionWindow time.Duration
	var syncFiles, soundEnabled, popupEnabled *bool
	var maxFileSizeMB *int64

	var jsonConfigPath string

	fs := flag.NewFlagSet("clip-relay", flag.ContinueOnError)

	fs.Var(&relayAddress, "a", "Relay listen address [host]:port")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Relay request timeout (e.g., 30s, 1m)")
	fs.StringVar(&corsOrigins, "cors", "", "Comma separated CORS origins")
	fs.BoolFunc("advertise", "Advertise the relay over mDNS", boolPtrFlag(&advertise))
	fs.Int64Var(&maxBodyBytes, "max-body", 0, "Relay upload body limit in bytes")

	fs.StringVar(&serverURL, "s", "", "Relay URL, or \"auto\" to discover it")
	fs.StringVar(&deviceName, "n", "", "Device name")
	fs.DurationVar(&pollInterval, "poll", 0, "Relay poll interval")
	fs.DurationVar(&watchInterval, "watch", 0, "Clipboard watch interval")
	fs.DurationVar(&protectionWindow, "protect", 0, "Protection window after a remote update")
	fs.BoolFunc("sync-files", "Upload files and images", boolPtrFlag(&syncFiles))
	fs.Func("max-file-mb", "File and image size ceiling in MB (0 = unlimited)", func(s string) error {
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return err
		}
		maxFileSizeMB = &v
		return nil
	})
	fs.BoolFunc("sound", "Play a cue on sync", boolPtrFlag(&soundEnabled))
	fs.BoolFunc("popup", "Show notifications on sync", boolPtrFlag(&popupEnabled))
	fs.StringVar(&downloadDir, "download-dir", "", "Directory for downloaded files")

	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		Relay: Relay{
			Address:        relayAddress.String(),
			RequestTimeout: requestTimeout,
			CORSOrigins:    splitList(corsOrigins),
			Advertise:      advertise,
			MaxBodyBytes:   maxBodyBytes,
		},
		Device: Device{
			ServerURL:        serverURL,
			Name:             deviceName,
			PollInterval:     pollInterval,
			WatchInterval:    watchInterval,
			ProtectionWindow: protectionWindow,
			SyncFiles:        syncFiles,
			MaxFileSizeMB:    maxFileSizeMB,
			SoundEnabled:     soundEnabled,
			PopupEnabled:     popupEnabled,
			DownloadDir:      downloadDir,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// boolPtrFlag stores an explicitly passed boolean flag; unset flags stay nil.
func boolPtrFlag(dst **bool) func(string) error {
	return func(s string) error {
		v, err := strconv.ParseBool(s)
		if err != nil {
			return err
		}
		*dst = &v
		return nil
	}
}

func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// String returns a canonical [host]:port string for a NetAddress.
// If neither Host nor Port are set, it returns "".
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses the input string of form [host]:port and populates the
// NetAddress. An empty host listens on all interfaces; otherwise the host must
// be "localhost" or an IP address.
func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `[host]:port`")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "" && host != "localhost" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
