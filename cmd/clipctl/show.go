package main

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png"
	"io"
	"os"

	"github.com/MKhiriev/go-clip-relay/internal/clipboard"
	"github.com/MKhiriev/go-clip-relay/internal/codec"
	"github.com/MKhiriev/go-clip-relay/models"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// localClipboard opens the clipboard read by show --local. Tests replace it.
var localClipboard = clipboard.New

func newShowCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the relay clipboard, or the local one with --local",
		Long: `Fetches the current relay clipboard. With --local the clipboard of this
machine is printed instead and the relay is not contacted.

Text is written to stdout as is. Files and images are summarised; pass --out
to save their bytes:

  clipctl show --out screenshot.png
  clipctl show --local`,
		Args:    cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error { return bindViper(cmd, v) },
		RunE: func(cmd *cobra.Command, _ []string) error {
			if v.GetBool("local") {
				return runShowLocal(cmd, v)
			}
			return runShow(cmd, v)
		},
	}

	addRelayFlags(cmd)
	cmd.Flags().StringP("out", "o", "", "write file or image bytes to this path")
	cmd.Flags().BoolP("local", "l", false, "print the local clipboard instead of the relay one")

	return cmd
}

func runShow(cmd *cobra.Command, v *viper.Viper) error {
	ctx := cmd.Context()
	relay, err := newRelay(ctx, v, commandLogger(v))
	if err != nil {
		return err
	}

	resp, err := relay.Fetch(ctx, models.Timestamp{})
	if err != nil {
		return fmt.Errorf("fetch: %w", err)
	}
	if resp.NoUpdate() || resp.UpdatedAt.IsZero() {
		fmt.Fprintln(cmd.ErrOrStderr(), "relay clipboard is empty")
		return nil
	}

	payload, err := codec.Decode(resp.WireClipboard)
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}

	out := cmd.OutOrStdout()
	switch p := payload.(type) {
	case models.TextPayload:
		_, err = fmt.Fprint(out, p.Body)
		return err
	case models.FilePayload:
		fmt.Fprintf(out, "file %s, %d bytes, from %s at %s\n", p.Name, p.Size, orDash(resp.DeviceName), resp.UpdatedAt)
		return saveBytes(v.GetString("out"), p.Data)
	case models.ImagePayload:
		fmt.Fprintf(out, "image %dx%d, %d bytes, from %s at %s\n", p.Width, p.Height, p.Size, orDash(resp.DeviceName), resp.UpdatedAt)
		return saveBytes(v.GetString("out"), p.Data)
	}

	return nil
}

func runShowLocal(cmd *cobra.Command, v *viper.Viper) error {
	clip := localClipboard(commandLogger(v))
	defer clip.Close()

	content, err := clip.Read(cmd.Context())
	if err != nil {
		return fmt.Errorf("read %s: %w", clip.Name(), err)
	}
	if content.IsEmpty() {
		fmt.Fprintln(cmd.ErrOrStderr(), "local clipboard is empty")
		return nil
	}

	return printLocal(cmd.OutOrStdout(), content, v.GetString("out"))
}

func printLocal(out io.Writer, content models.LocalContent, path string) error {
	switch content.Kind() {
	case models.ContentFile:
		for _, f := range content.Files {
			fmt.Fprintf(out, "file %s\n", f)
		}
		return nil
	case models.ContentImage:
		var width, height int
		if cfg, _, err := image.DecodeConfig(bytes.NewReader(content.Image)); err == nil {
			width, height = cfg.Width, cfg.Height
		}
		fmt.Fprintf(out, "image %dx%d, %d bytes\n", width, height, len(content.Image))
		return saveBytes(path, content.Image)
	default:
		_, err := fmt.Fprint(out, content.Text)
		return err
	}
}

func saveBytes(path string, data []byte) error {
	if path == "" {
		return nil
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}
