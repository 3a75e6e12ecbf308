package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/MKhiriev/go-clip-relay/internal/clipboard"
	"github.com/MKhiriev/go-clip-relay/internal/config"
	"github.com/MKhiriev/go-clip-relay/internal/identity"
	"github.com/MKhiriev/go-clip-relay/internal/notify"
	"github.com/MKhiriev/go-clip-relay/internal/service"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newPullCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "pull",
		Short: "Copy the relay clipboard to the local clipboard now",
		Long: `Runs one manual sync: the relay clipboard is applied to the local
clipboard even when this machine uploaded it. Files are saved to
--download-dir and their path is put on the clipboard.`,
		Args:    cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE:    func(cmd *cobra.Command, _ []string) error { return runPull(cmd, v) },
	}

	addRelayFlags(cmd)
	f := cmd.Flags()
	f.Bool("sync-files", true, "apply files and images, not only text")
	f.String("download-dir", filepath.Join(os.TempDir(), "clip-relay"), "directory for downloaded files")
	f.StringP("name", "n", "", "device name (default: host name)")

	return cmd
}

func runPull(cmd *cobra.Command, v *viper.Viper) error {
	ctx := cmd.Context()
	log := commandLogger(v)

	relay, err := newRelay(ctx, v, log)
	if err != nil {
		return err
	}

	cfg := &config.DeviceConfig{
		ServerURL:        relay.BaseURL(),
		ProtectionWindow: 2 * time.Second,
		SyncFiles:        v.GetBool("sync-files"),
		DownloadDir:      v.GetString("download-dir"),
		Adapter:          adapterConfig(v),
	}

	clip := clipboard.New(log)
	defer clip.Close()

	services := service.NewClientServices(service.ClientDeps{
		Clipboard: clip,
		Relay:     relay,
		Notifier:  &printNotifier{out: cmd.OutOrStdout()},
		Cue:       notify.NewBellCue(false, io.Discard),
		Identity:  identity.New(v.GetString("name")),
	}, cfg, log)

	err = services.Puller.ManualSync(ctx)
	if errors.Is(err, service.ErrRelayEmpty) {
		// already reported by the notifier
		return nil
	}
	return err
}

// printNotifier shows sync notifications as plain lines on the terminal.
type printNotifier struct {
	out io.Writer
}

func (n *printNotifier) Notify(title, message string, severity notify.Severity) {
	style := titleStyle
	if severity == notify.SeverityError {
		style = errorStyle
	}
	fmt.Fprintf(n.out, "%s: %s\n", style.Render(title), message)
}
