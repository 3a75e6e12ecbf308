package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-clip-relay/internal/codec"
	"github.com/MKhiriev/go-clip-relay/internal/identity"
	"github.com/MKhiriev/go-clip-relay/internal/service"
	"github.com/MKhiriev/go-clip-relay/models"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var errNothingToPush = errors.New("nothing to push: stdin is empty")

func newPushCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "push",
		Short: "Upload stdin or a file to the relay",
		Long: `Replaces the relay clipboard with text read from stdin:

  echo hello | clipctl push

or with a file no larger than --max-file-mb:

  clipctl push --file report.pdf`,
		Args:    cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE:    func(cmd *cobra.Command, _ []string) error { return runPush(cmd, v) },
	}

	addRelayFlags(cmd)
	cmd.Flags().StringP("file", "f", "", "upload this file instead of stdin")
	cmd.Flags().StringP("name", "n", "", "device name shown to other devices (default: host name)")
	cmd.Flags().Int("max-file-mb", 10, "refuse files larger than this many MB, 0 for no limit")

	return cmd
}

func runPush(cmd *cobra.Command, v *viper.Viper) error {
	limit := int64(v.GetInt("max-file-mb")) * 1024 * 1024
	payload, err := readPushPayload(cmd.InOrStdin(), v.GetString("file"), limit)
	if err != nil {
		return err
	}

	wire, _, err := codec.Encode(payload)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	relay, err := newRelay(ctx, v, commandLogger(v))
	if err != nil {
		return err
	}

	id := identity.New(v.GetString("name"))
	resp, err := relay.Upload(ctx, models.UploadRequest{
		DeviceID:      id.ID,
		DeviceName:    id.Name,
		WireClipboard: wire,
	})
	if err != nil {
		return fmt.Errorf("upload: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "pushed %s (%d bytes) at %s\n", payload.Kind(), payload.Len(), resp.UpdatedAt)
	return nil
}

// readPushPayload reads the file at path, or stdin when path is empty. A
// positive limit caps the file size in bytes.
func readPushPayload(stdin io.Reader, path string, limit int64) (models.Payload, error) {
	if path != "" {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", path, err)
		}
		if info.IsDir() {
			return nil, fmt.Errorf("%w: %s is a directory", service.ErrUnsupportedContent, path)
		}
		if limit > 0 && info.Size() > limit {
			return nil, fmt.Errorf("%w: %s has %d bytes, limit %d", service.ErrOversize, path, info.Size(), limit)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		return models.NewFilePayload(filepath.Base(path), data), nil
	}

	data, err := io.ReadAll(stdin)
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	if len(data) == 0 {
		return nil, errNothingToPush
	}
	return models.TextPayload{Body: string(data)}, nil
}
