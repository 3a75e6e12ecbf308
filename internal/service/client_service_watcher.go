// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/png"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-clip-relay/internal/codec"
	"github.com/MKhiriev/go-clip-relay/internal/config"
	"github.com/MKhiriev/go-clip-relay/internal/logger"
	"github.com/MKhiriev/go-clip-relay/internal/notify"
	"github.com/MKhiriev/go-clip-relay/models"
)

type changeWatcher struct {
	deps  ClientDeps
	state *SyncState
	cfg   *config.DeviceConfig

	logger *logger.Logger
}

func NewChangeWatcher(deps ClientDeps, state *SyncState, cfg *config.DeviceConfig, logger *logger.Logger) ChangeWatcher {
	return &changeWatcher{
		deps:   deps,
		state:  state,
		cfg:    cfg,
		logger: logger,
	}
}

func (w *changeWatcher) Tick(ctx context.Context) error {
	gen, ok := w.state.Observe(w.deps.now())
	if !ok {
		return nil
	}

	content, err := w.deps.Clipboard.Read(ctx)
	if err != nil {
		return fmt.Errorf("read clipboard: %w", err)
	}

	switch content.Kind() {
	case models.ContentFile:
		return w.handleFile(ctx, gen, content.Files[0])
	case models.ContentImage:
		return w.handleImage(ctx, gen, content.Image)
	default:
		return w.handleText(ctx, gen, content.Text)
	}
}

func (w *changeWatcher) handleText(ctx context.Context, gen uint64, text string) error {
	if text == "" {
		return nil
	}

	payload := models.TextPayload{Body: text}
	if !w.changed(gen, models.ContentText, codec.Fingerprint(payload)) {
		return nil
	}

	return w.upload(ctx, payload)
}

func (w *changeWatcher) handleFile(ctx context.Context, gen uint64, path string) error {
	name := filepath.Base(path)

	info, err := os.Stat(path)
	if err != nil {
		if !w.changed(gen, models.ContentFile, codec.FileIdentity(path, name, -1)) {
			return nil
		}
		return fmt.Errorf("stat %s: %w", path, err)
	}

	if !w.changed(gen, models.ContentFile, codec.FileIdentity(path, info.Name(), info.Size())) {
		return nil
	}

	if info.IsDir() {
		w.deps.Notifier.Notify("Not synced", fmt.Sprintf("%s is a folder; only single files are shared", info.Name()), notify.SeverityWarning)
		return fmt.Errorf("%w: %s is a directory", ErrUnsupportedContent, path)
	}
	if !w.cfg.SyncFiles {
		w.logger.Debug().Str("path", path).Msg("file sync disabled, skipping")
		return fmt.Errorf("%w: %s", ErrSyncDisabled, path)
	}
	if err = w.checkSize(info.Name(), info.Size()); err != nil {
		return err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	return w.upload(ctx, models.NewFilePayload(info.Name(), data))
}

func (w *changeWatcher) handleImage(ctx context.Context, gen uint64, data []byte) error {
	if !w.changed(gen, models.ContentImage, codec.Fingerprint(models.ImagePayload{Data: data})) {
		return nil
	}

	if !w.cfg.SyncFiles {
		w.logger.Debug().Int("bytes", len(data)).Msg("file sync disabled, skipping image")
		return fmt.Errorf("%w: image", ErrSyncDisabled)
	}
	if err := w.checkSize("image", int64(len(data))); err != nil {
		return err
	}

	var width, height int
	if imgCfg, _, err := image.DecodeConfig(bytes.NewReader(data)); err == nil {
		width, height = imgCfg.Width, imgCfg.Height
	}

	return w.upload(ctx, models.NewImagePayload(data, width, height))
}

// changed records a new local fingerprint unless the puller applied a
// remote record after the observation at gen began. Content read across an
// apply may already be stale and is dropped; the next tick reads again.
func (w *changeWatcher) changed(gen uint64, kind models.ContentType, fingerprint string) bool {
	return w.state.ChangedUnlessSuppressed(kind, fingerprint, w.deps.now(), gen)
}

func (w *changeWatcher) checkSize(name string, size int64) error {
	limit := w.cfg.MaxFileBytes()
	if limit <= 0 || size <= limit {
		return nil
	}

	w.deps.Notifier.Notify("Not synced",
		fmt.Sprintf("%s is %s, larger than the %d MB limit", name, humanSize(size), w.cfg.MaxFileSizeMB),
		notify.SeverityWarning)
	return fmt.Errorf("%w: %s has %d bytes, limit %d", ErrOversize, name, size, limit)
}

func (w *changeWatcher) upload(ctx context.Context, payload models.Payload) error {
	wire, _, err := codec.Encode(payload)
	if err != nil {
		return fmt.Errorf("encode clipboard: %w", err)
	}

	resp, err := w.deps.Relay.Upload(ctx, models.UploadRequest{
		DeviceID:      w.deps.Identity.ID,
		DeviceName:    w.deps.Identity.Name,
		WireClipboard: wire,
	})
	if err != nil {
		err = mapAdapterError(err)
		if errors.Is(err, ErrOversize) {
			w.deps.Notifier.Notify("Not synced", "the relay rejected the clipboard as too large", notify.SeverityWarning)
		}
		return fmt.Errorf("upload %s: %w", payload.Kind(), err)
	}

	w.logger.Info().
		Str("content_type", payload.Kind().String()).
		Int("bytes", payload.Len()).
		Str("updated_at", resp.UpdatedAt.String()).
		Msg("clipboard uploaded")

	w.deps.Notifier.Notify("Clipboard sent", describe(payload), notify.SeverityInfo)
	w.deps.Cue.Play()

	return nil
}
