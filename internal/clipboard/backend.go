// Package clipboard provides access to the local system clipboard.
//
// Build-independent backends are selected at runtime by [New]:
//
//	native:   golang.design/x/clipboard, text and PNG images
//	text:     github.com/atotto/clipboard, text only, used when the native
//	          backend cannot initialise (no cgo display access)
//	headless: no-op, used when no clipboard is reachable at all
//
// Copied files are exchanged as a text/uri-list of file:// URIs in the text
// slot, which is what file managers on every desktop put there.
package clipboard

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-clip-relay/models"
)

//go:generate mockgen -source=backend.go -destination=../mock/clipboard_backend_mock.go -package=mock

// ErrUnsupportedFormat is returned by Write when a backend cannot hold the
// given representation (for example an image on a text-only backend).
var ErrUnsupportedFormat = errors.New("clipboard format not supported by backend")

// Backend is the interface that all clipboard implementations satisfy.
type Backend interface {
	// Name returns a human-readable name for the backend.
	Name() string

	// Read returns every representation currently on the clipboard.
	// An empty clipboard is not an error.
	Read(ctx context.Context) (models.LocalContent, error)

	// Write replaces the clipboard. Only the highest priority representation
	// of content (Files, then Image, then Text) is written. Write returns
	// once the content is visible to subsequent Read calls.
	Write(ctx context.Context, content models.LocalContent) error

	// Close releases any resources held by the backend.
	Close()
}
