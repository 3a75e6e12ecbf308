// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-clip-relay/internal/codec"
	"github.com/MKhiriev/go-clip-relay/internal/logger"
	"github.com/MKhiriev/go-clip-relay/internal/store"
	"github.com/MKhiriev/go-clip-relay/models"
	"go.uber.org/atomic"
)

type clipboardService struct {
	storage store.ClipboardStorage
	version string

	uploads atomic.Uint64
	fetches atomic.Uint64

	logger *logger.Logger
}

func NewClipboardService(storage store.ClipboardStorage, version string, logger *logger.Logger) ClipboardService {
	return &clipboardService{
		storage: storage,
		version: version,
		logger:  logger,
	}
}

func (s *clipboardService) Upload(ctx context.Context, req models.UploadRequest) (models.UploadResponse, error) {
	if err := ctx.Err(); err != nil {
		return models.UploadResponse{}, err
	}

	wire := normalizeWire(req.WireClipboard)
	stored := s.storage.Replace(models.ClipboardRecord{
		Wire:             wire,
		ContentHash:      codec.WireFingerprint(wire),
		OriginDeviceID:   req.DeviceID,
		OriginDeviceName: req.DeviceName,
	})
	s.uploads.Inc()

	logger.FromContext(ctx).Info().
		Str("content_type", wire.ContentType.String()).
		Str("device_id", req.DeviceID).
		Str("device_name", req.DeviceName).
		Str("updated_at", stored.UpdatedAt.String()).
		Msg("clipboard replaced")

	return models.UploadResponse{
		Status:    models.StatusOK,
		UpdatedAt: stored.UpdatedAt,
	}, nil
}

func (s *clipboardService) Fetch(ctx context.Context, cursor string) models.FetchResponse {
	s.fetches.Inc()

	since, hasCursor := parseCursor(cursor)
	if cursor != "" && !hasCursor {
		logger.FromContext(ctx).Debug().Str("last_sync_time", cursor).Msg("ignoring unparseable cursor")
	}

	record, ok := s.storage.Read()
	if !ok {
		if hasCursor {
			return models.FetchResponse{Status: models.StatusNoUpdate}
		}
		return models.FetchResponse{
			Status:        models.StatusOK,
			WireClipboard: models.WireClipboard{ContentType: models.ContentText},
		}
	}

	if hasCursor && since.NotBefore(record.UpdatedAt) {
		return models.FetchResponse{
			Status:    models.StatusNoUpdate,
			UpdatedAt: record.UpdatedAt,
		}
	}

	return models.NewFetchResponse(record)
}

func (s *clipboardService) Status(ctx context.Context) models.StatusResponse {
	resp := models.StatusResponse{
		Running: true,
		Version: s.version,
		Uploads: s.uploads.Load(),
		Fetches: s.fetches.Load(),
	}

	if record, ok := s.storage.Read(); ok {
		resp.ContentType = record.Wire.ContentType
		resp.DeviceName = record.OriginDeviceName
		resp.UpdatedAt = record.UpdatedAt
	}

	return resp
}

// normalizeWire maps unknown content types to text and drops the field
// groups that do not belong to the resulting type.
func normalizeWire(in models.WireClipboard) models.WireClipboard {
	contentType := models.ParseContentType(string(in.ContentType))

	switch contentType {
	case models.ContentFile:
		return models.WireClipboard{
			ContentType: contentType,
			FileName:    in.FileName,
			FileData:    in.FileData,
			FileSize:    in.FileSize,
		}
	case models.ContentImage:
		return models.WireClipboard{
			ContentType: contentType,
			ImageData:   in.ImageData,
			ImageWidth:  in.ImageWidth,
			ImageHeight: in.ImageHeight,
			ImageSize:   in.ImageSize,
		}
	default:
		return models.WireClipboard{
			ContentType: models.ContentText,
			Content:     in.Content,
		}
	}
}

func parseCursor(raw string) (models.Timestamp, bool) {
	if raw == "" {
		return models.Timestamp{}, false
	}
	ts, err := models.ParseTimestamp(raw)
	if err != nil || ts.IsZero() {
		return models.Timestamp{}, false
	}
	return ts, true
}
