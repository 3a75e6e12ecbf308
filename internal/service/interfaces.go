package service

import (
	"context"

	"github.com/MKhiriev/go-clip-relay/models"
)

// ClipboardService is the relay side of clipboard synchronization. It owns
// the single shared slot and the request counters reported by Status.
type ClipboardService interface {
	// Upload normalises req and replaces the shared slot with it. The
	// returned response carries the relay timestamp of the new record.
	Upload(ctx context.Context, req models.UploadRequest) (models.UploadResponse, error)

	// Fetch returns the current record, or a no_update response when cursor
	// is a valid timestamp not older than the record. An unparseable cursor
	// is treated as absent.
	Fetch(ctx context.Context, cursor string) models.FetchResponse

	// Status summarizes the relay without returning the payload.
	Status(ctx context.Context) models.StatusResponse
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
