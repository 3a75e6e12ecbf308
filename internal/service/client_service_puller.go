// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/MKhiriev/go-clip-relay/internal/codec"
	"github.com/MKhiriev/go-clip-relay/internal/config"
	"github.com/MKhiriev/go-clip-relay/internal/logger"
	"github.com/MKhiriev/go-clip-relay/internal/notify"
	"github.com/MKhiriev/go-clip-relay/models"
)

type syncPuller struct {
	deps  ClientDeps
	state *SyncState
	cfg   *config.DeviceConfig

	// mu serializes Tick and ManualSync so the cursor and the tracked
	// download never interleave.
	mu           sync.Mutex
	cursor       models.Timestamp
	lastDownload string

	logger *logger.Logger
}

func NewSyncPuller(deps ClientDeps, state *SyncState, cfg *config.DeviceConfig, logger *logger.Logger) SyncPuller {
	return &syncPuller{
		deps:   deps,
		state:  state,
		cfg:    cfg,
		logger: logger,
	}
}

func (p *syncPuller) Tick(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	resp, err := p.deps.Relay.Fetch(ctx, p.cursor)
	if err != nil {
		return fmt.Errorf("fetch: %w", mapAdapterError(err))
	}

	return p.apply(ctx, resp, false)
}

func (p *syncPuller) ManualSync(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	resp, err := p.deps.Relay.Fetch(ctx, models.Timestamp{})
	if err != nil {
		err = mapAdapterError(err)
		p.deps.Notifier.Notify("Sync failed", "the relay could not be reached", notify.SeverityError)
		return fmt.Errorf("manual fetch: %w", err)
	}

	if resp.NoUpdate() || resp.UpdatedAt.IsZero() {
		p.deps.Notifier.Notify("Nothing to sync", "the relay clipboard is empty", notify.SeverityWarning)
		return ErrRelayEmpty
	}

	return p.apply(ctx, resp, true)
}

// apply writes a fetched record to the local clipboard. The cursor advances
// for every record that was looked at, including ones that failed to decode
// or write, so a broken record is never fetched twice.
func (p *syncPuller) apply(ctx context.Context, resp models.FetchResponse, manual bool) error {
	if resp.NoUpdate() {
		return nil
	}

	record := resp.Record()
	if record.IsEmpty() {
		return nil
	}
	if !manual && record.UpdatedAt.Equal(p.cursor) {
		return nil
	}

	if !manual && record.OriginDeviceID == p.deps.Identity.ID {
		p.cursor = record.UpdatedAt
		return nil
	}

	defer func() { p.cursor = record.UpdatedAt }()

	payload, err := codec.Decode(record.Wire)
	if err != nil {
		return fmt.Errorf("decode record from %s: %w", record.OriginDeviceName, err)
	}

	if payload.Kind() != models.ContentText && !p.cfg.SyncFiles {
		p.logger.Debug().Str("content_type", payload.Kind().String()).Msg("file sync disabled, skipping download")
		return fmt.Errorf("%w: %s", ErrSyncDisabled, payload.Kind())
	}

	written, err := p.write(ctx, payload)
	if err != nil {
		return err
	}
	if !written {
		if manual {
			p.deps.Notifier.Notify("Up to date", "the local clipboard already matches the relay", notify.SeverityInfo)
		}
		return nil
	}

	p.logger.Info().
		Str("content_type", payload.Kind().String()).
		Str("device_name", record.OriginDeviceName).
		Str("updated_at", record.UpdatedAt.String()).
		Msg("clipboard applied")

	p.deps.Notifier.Notify("Clipboard from "+record.OriginDeviceName, describe(payload), notify.SeverityInfo)
	p.deps.Cue.Play()

	return nil
}

// write puts payload on the local clipboard under the protection window.
// It reports false when the last content seen on the clipboard, of any kind,
// is this same text or image.
func (p *syncPuller) write(ctx context.Context, payload models.Payload) (bool, error) {
	var (
		content     models.LocalContent
		fingerprint = codec.Fingerprint(payload)
		path        string
	)

	switch v := payload.(type) {
	case models.TextPayload:
		if p.state.Fingerprint(models.ContentText) == fingerprint {
			return false, nil
		}
		content.Text = v.Body

	case models.ImagePayload:
		if p.state.Fingerprint(models.ContentImage) == fingerprint {
			return false, nil
		}
		content.Image = v.Data

	case models.FilePayload:
		var err error
		path, err = p.saveFile(v)
		if err != nil {
			return false, err
		}
		content.Files = []string{path}
		fingerprint = codec.FileIdentity(path, filepath.Base(path), v.Size)
	}

	p.state.BeginApply(p.deps.now().Add(p.cfg.ProtectionWindow))
	defer p.state.EndApply()

	if err := p.deps.Clipboard.Write(ctx, content); err != nil {
		return false, fmt.Errorf("write clipboard: %w", err)
	}
	p.state.SetFingerprint(payload.Kind(), fingerprint)

	if path != "" {
		p.replaceDownload(path)
	}

	return true, nil
}

func (p *syncPuller) saveFile(file models.FilePayload) (string, error) {
	if err := os.MkdirAll(p.cfg.DownloadDir, 0o755); err != nil {
		return "", fmt.Errorf("create download dir: %w", err)
	}

	path := filepath.Join(p.cfg.DownloadDir, models.SafeFileName(file.Name))
	if err := os.WriteFile(path, file.Data, 0o644); err != nil {
		return "", fmt.Errorf("save %s: %w", path, err)
	}
	return path, nil
}

// replaceDownload deletes the previously downloaded file so at most one
// download per device is kept on disk.
func (p *syncPuller) replaceDownload(path string) {
	prev := p.lastDownload
	p.lastDownload = path

	if prev == "" || prev == path {
		return
	}
	if err := os.Remove(prev); err != nil && !errors.Is(err, os.ErrNotExist) {
		p.logger.Warn().Err(err).Str("path", prev).Msg("failed to remove previous download")
	}
}
