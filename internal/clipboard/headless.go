package clipboard

import (
	"context"

	"github.com/MKhiriev/go-clip-relay/models"
)

// headlessBackend is a no-op clipboard backend for environments without a
// display server (headless Linux servers, containers, etc.).
// It always reads an empty clipboard and silently discards writes.
type headlessBackend struct{}

// NewHeadless returns the no-op backend.
func NewHeadless() Backend {
	return &headlessBackend{}
}

func (b *headlessBackend) Name() string { return "headless (no-op)" }

func (b *headlessBackend) Read(context.Context) (models.LocalContent, error) {
	return models.LocalContent{}, nil
}

func (b *headlessBackend) Write(context.Context, models.LocalContent) error { return nil }

func (b *headlessBackend) Close() {}
