// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/base64"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/MKhiriev/go-clip-relay/internal/codec"
	"github.com/MKhiriev/go-clip-relay/internal/config"
	"github.com/MKhiriev/go-clip-relay/internal/logger"
	"github.com/MKhiriev/go-clip-relay/internal/notify"
	"github.com/MKhiriev/go-clip-relay/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func newTestPuller(t *testing.T) (SyncPuller, *clientMocks, *SyncState, *config.DeviceConfig) {
	t.Helper()
	m, deps := newClientMocks(t)
	state := NewSyncState()
	cfg := testDeviceConfig(t)
	return NewSyncPuller(deps, state, cfg, logger.Nop()), m, state, cfg
}

func stampAt(offset time.Duration) models.Timestamp {
	return models.NewTimestamp(relayEpoch.Add(offset))
}

func textFetch(body, deviceID string, at models.Timestamp) models.FetchResponse {
	return models.FetchResponse{
		Status:        models.StatusOK,
		WireClipboard: models.WireClipboard{ContentType: models.ContentText, Content: body},
		ContentHash:   codec.Fingerprint(models.TextPayload{Body: body}),
		UpdatedAt:     at,
		DeviceID:      deviceID,
		DeviceName:    deviceID + "-name",
	}
}

func fileFetch(name string, data []byte, deviceID string, at models.Timestamp) models.FetchResponse {
	return models.FetchResponse{
		Status: models.StatusOK,
		WireClipboard: models.WireClipboard{
			ContentType: models.ContentFile,
			FileName:    name,
			FileData:    base64.StdEncoding.EncodeToString(data),
			FileSize:    int64(len(data)),
		},
		UpdatedAt:  at,
		DeviceID:   deviceID,
		DeviceName: deviceID + "-name",
	}
}

// ── Tick ──────────────────────────────────────────────────────────────────────

func TestPuller_NoUpdate_DoesNothing(t *testing.T) {
	p, m, _, _ := newTestPuller(t)

	m.relay.EXPECT().Fetch(gomock.Any(), models.Timestamp{}).
		Return(models.FetchResponse{Status: models.StatusNoUpdate, UpdatedAt: stampAt(0)}, nil)

	assert.NoError(t, p.Tick(context.Background()))
}

func TestPuller_EmptyRelay_DoesNothing(t *testing.T) {
	p, m, _, _ := newTestPuller(t)

	m.relay.EXPECT().Fetch(gomock.Any(), gomock.Any()).
		Return(models.FetchResponse{Status: models.StatusOK, WireClipboard: models.WireClipboard{ContentType: models.ContentText}}, nil)

	assert.NoError(t, p.Tick(context.Background()))
}

func TestPuller_SelfOrigin_NeverWritesOrNotifies(t *testing.T) {
	p, m, _, _ := newTestPuller(t)
	ctx := context.Background()
	stamp := stampAt(time.Second)

	gomock.InOrder(
		m.relay.EXPECT().Fetch(gomock.Any(), models.Timestamp{}).
			Return(textFetch("mine", "laptop-abc123", stamp), nil),
		// курсор продвинулся до updated_at
		m.relay.EXPECT().Fetch(gomock.Any(), stamp).
			Return(models.FetchResponse{Status: models.StatusNoUpdate, UpdatedAt: stamp}, nil),
	)

	require.NoError(t, p.Tick(ctx))
	require.NoError(t, p.Tick(ctx))
}

func TestPuller_RemoteText_WritesUnderProtection(t *testing.T) {
	p, m, state, cfg := newTestPuller(t)
	stamp := stampAt(time.Second)

	m.relay.EXPECT().Fetch(gomock.Any(), gomock.Any()).Return(textFetch("from phone", "phone-1", stamp), nil)
	m.clipboard.EXPECT().Write(gomock.Any(), models.LocalContent{Text: "from phone"}).
		DoAndReturn(func(context.Context, models.LocalContent) error {
			assert.True(t, suppressedAt(state, m.clock.Now()), "watcher is suppressed during the write")
			return nil
		})
	m.notifier.EXPECT().Notify("Clipboard from phone-1-name", "from phone", notify.SeverityInfo)
	m.cue.EXPECT().Play()

	require.NoError(t, p.Tick(context.Background()))

	assert.Equal(t, codec.Fingerprint(models.TextPayload{Body: "from phone"}), state.Fingerprint(models.ContentText))
	assert.True(t, suppressedAt(state, m.clock.Now().Add(cfg.ProtectionWindow-time.Millisecond)))
	assert.False(t, suppressedAt(state, m.clock.Now().Add(cfg.ProtectionWindow)))
}

func TestPuller_SameStampTwice_AppliedOnce(t *testing.T) {
	p, m, _, _ := newTestPuller(t)
	ctx := context.Background()
	resp := textFetch("once", "phone-1", stampAt(time.Second))

	m.relay.EXPECT().Fetch(gomock.Any(), gomock.Any()).Return(resp, nil).Times(2)
	m.clipboard.EXPECT().Write(gomock.Any(), gomock.Any()).Return(nil).Times(1)
	m.notifier.EXPECT().Notify(gomock.Any(), gomock.Any(), gomock.Any()).Times(1)
	m.cue.EXPECT().Play().Times(1)

	require.NoError(t, p.Tick(ctx))
	require.NoError(t, p.Tick(ctx))
}

func TestPuller_TextAlreadyLocal_SkipsWriteAdvancesCursor(t *testing.T) {
	p, m, state, _ := newTestPuller(t)
	ctx := context.Background()
	stamp := stampAt(time.Second)

	state.SetFingerprint(models.ContentText, codec.Fingerprint(models.TextPayload{Body: "same"}))

	gomock.InOrder(
		m.relay.EXPECT().Fetch(gomock.Any(), models.Timestamp{}).Return(textFetch("same", "phone-1", stamp), nil),
		m.relay.EXPECT().Fetch(gomock.Any(), stamp).Return(models.FetchResponse{Status: models.StatusNoUpdate}, nil),
	)

	require.NoError(t, p.Tick(ctx))
	require.NoError(t, p.Tick(ctx))
}

func TestPuller_NetworkError(t *testing.T) {
	p, m, _, _ := newTestPuller(t)

	m.relay.EXPECT().Fetch(gomock.Any(), gomock.Any()).Return(models.FetchResponse{}, errors.New("connection refused"))

	assert.ErrorIs(t, p.Tick(context.Background()), ErrNetwork)
}

func TestPuller_DecodeError_AdvancesCursor(t *testing.T) {
	p, m, _, _ := newTestPuller(t)
	ctx := context.Background()
	stamp := stampAt(time.Second)

	broken := models.FetchResponse{
		Status:        models.StatusOK,
		WireClipboard: models.WireClipboard{ContentType: models.ContentImage, ImageData: "%%%"},
		UpdatedAt:     stamp,
		DeviceID:      "phone-1",
	}

	gomock.InOrder(
		m.relay.EXPECT().Fetch(gomock.Any(), models.Timestamp{}).Return(broken, nil),
		m.relay.EXPECT().Fetch(gomock.Any(), stamp).Return(models.FetchResponse{Status: models.StatusNoUpdate}, nil),
	)

	assert.ErrorIs(t, p.Tick(ctx), codec.ErrDecode)
	assert.NoError(t, p.Tick(ctx))
}

func TestPuller_WriteError_ClearsApplying(t *testing.T) {
	p, m, state, cfg := newTestPuller(t)

	m.relay.EXPECT().Fetch(gomock.Any(), gomock.Any()).Return(textFetch("x", "phone-1", stampAt(time.Second)), nil)
	m.clipboard.EXPECT().Write(gomock.Any(), gomock.Any()).Return(assert.AnError)

	assert.ErrorIs(t, p.Tick(context.Background()), assert.AnError)
	assert.False(t, suppressedAt(state, m.clock.Now().Add(cfg.ProtectionWindow)))
	assert.Empty(t, state.Fingerprint(models.ContentText))
}

func TestPuller_FileSyncDisabled_SkipsDownload(t *testing.T) {
	p, m, _, cfg := newTestPuller(t)
	cfg.SyncFiles = false

	m.relay.EXPECT().Fetch(gomock.Any(), gomock.Any()).Return(fileFetch("a.txt", []byte("a"), "phone-1", stampAt(time.Second)), nil)

	assert.ErrorIs(t, p.Tick(context.Background()), ErrSyncDisabled)
	entries, err := os.ReadDir(cfg.DownloadDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

// ── files ─────────────────────────────────────────────────────────────────────

func TestPuller_File_DownloadReplacesPrevious(t *testing.T) {
	p, m, state, cfg := newTestPuller(t)
	ctx := context.Background()

	first := filepath.Join(cfg.DownloadDir, "first.txt")
	second := filepath.Join(cfg.DownloadDir, "second.txt")

	gomock.InOrder(
		m.relay.EXPECT().Fetch(gomock.Any(), gomock.Any()).
			Return(fileFetch("first.txt", []byte("one"), "phone-1", stampAt(time.Second)), nil),
		m.relay.EXPECT().Fetch(gomock.Any(), gomock.Any()).
			Return(fileFetch(`C:\Users\x\second.txt`, []byte("two"), "phone-1", stampAt(2*time.Second)), nil),
	)
	gomock.InOrder(
		m.clipboard.EXPECT().Write(gomock.Any(), models.LocalContent{Files: []string{first}}).Return(nil),
		m.clipboard.EXPECT().Write(gomock.Any(), models.LocalContent{Files: []string{second}}).Return(nil),
	)
	m.notifier.EXPECT().Notify("Clipboard from phone-1-name", gomock.Any(), notify.SeverityInfo).Times(2)
	m.cue.EXPECT().Play().Times(2)

	require.NoError(t, p.Tick(ctx))
	data, err := os.ReadFile(first)
	require.NoError(t, err)
	assert.Equal(t, "one", string(data))
	assert.Equal(t, codec.FileIdentity(first, "first.txt", 3), state.Fingerprint(models.ContentFile))

	require.NoError(t, p.Tick(ctx))
	_, err = os.Stat(first)
	assert.ErrorIs(t, err, os.ErrNotExist, "previous download is deleted")
	data, err = os.ReadFile(second)
	require.NoError(t, err)
	assert.Equal(t, "two", string(data))
}

func TestPuller_File_MissingDownloadDirIsCreated(t *testing.T) {
	p, m, _, cfg := newTestPuller(t)
	cfg.DownloadDir = filepath.Join(cfg.DownloadDir, "nested", "dir")

	m.relay.EXPECT().Fetch(gomock.Any(), gomock.Any()).
		Return(fileFetch("a.txt", []byte("a"), "phone-1", stampAt(time.Second)), nil)
	m.clipboard.EXPECT().Write(gomock.Any(), gomock.Any()).Return(nil)
	m.notifier.EXPECT().Notify(gomock.Any(), gomock.Any(), gomock.Any())
	m.cue.EXPECT().Play()

	require.NoError(t, p.Tick(context.Background()))
	assert.FileExists(t, filepath.Join(cfg.DownloadDir, "a.txt"))
}

// ── ManualSync ────────────────────────────────────────────────────────────────

func TestPuller_ManualSync_AppliesOwnRecord(t *testing.T) {
	p, m, _, _ := newTestPuller(t)

	m.relay.EXPECT().Fetch(gomock.Any(), models.Timestamp{}).
		Return(textFetch("restore me", "laptop-abc123", stampAt(time.Second)), nil)
	m.clipboard.EXPECT().Write(gomock.Any(), models.LocalContent{Text: "restore me"}).Return(nil)
	m.notifier.EXPECT().Notify(gomock.Any(), "restore me", notify.SeverityInfo)
	m.cue.EXPECT().Play()

	assert.NoError(t, p.ManualSync(context.Background()))
}

func TestPuller_ManualSync_EmptyRelay(t *testing.T) {
	p, m, _, _ := newTestPuller(t)

	m.relay.EXPECT().Fetch(gomock.Any(), models.Timestamp{}).
		Return(models.FetchResponse{Status: models.StatusOK, WireClipboard: models.WireClipboard{ContentType: models.ContentText}}, nil)
	m.notifier.EXPECT().Notify("Nothing to sync", gomock.Any(), notify.SeverityWarning)

	assert.ErrorIs(t, p.ManualSync(context.Background()), ErrRelayEmpty)
}

func TestPuller_ManualSync_AlreadyUpToDate(t *testing.T) {
	p, m, state, _ := newTestPuller(t)
	state.SetFingerprint(models.ContentText, codec.Fingerprint(models.TextPayload{Body: "same"}))

	m.relay.EXPECT().Fetch(gomock.Any(), gomock.Any()).Return(textFetch("same", "phone-1", stampAt(time.Second)), nil)
	m.notifier.EXPECT().Notify("Up to date", gomock.Any(), notify.SeverityInfo)

	assert.NoError(t, p.ManualSync(context.Background()))
}

func TestPuller_ManualSync_NetworkError(t *testing.T) {
	p, m, _, _ := newTestPuller(t)

	m.relay.EXPECT().Fetch(gomock.Any(), gomock.Any()).Return(models.FetchResponse{}, errors.New("timeout"))
	m.notifier.EXPECT().Notify("Sync failed", gomock.Any(), notify.SeverityError)

	assert.ErrorIs(t, p.ManualSync(context.Background()), ErrNetwork)
}
