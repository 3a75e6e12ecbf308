// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"path/filepath"
	"strings"
)

// DefaultFileName is used when a device uploads a file without a usable name.
const DefaultFileName = "clipboard.bin"

// Payload is the decoded clipboard value. It is a closed union: the only
// implementations are [TextPayload], [FilePayload] and [ImagePayload], and
// every consumer is expected to switch over all three.
type Payload interface {
	// Kind reports the wire discriminator of the payload.
	Kind() ContentType

	// Len returns the number of payload bytes (UTF-8 bytes for text).
	Len() int

	isPayload()
}

// TextPayload holds clipboard text.
type TextPayload struct {
	Body string
}

// FilePayload holds a single file copied on a device.
// Name is a base name only; Size always equals len(Data).
type FilePayload struct {
	Name string
	Data []byte
	Size int64
}

// ImagePayload holds a PNG-encoded raster. Width and Height are informative
// and may be zero when the sender did not decode the image.
type ImagePayload struct {
	Data   []byte
	Width  int
	Height int
	Size   int64
}

func (TextPayload) Kind() ContentType  { return ContentText }
func (FilePayload) Kind() ContentType  { return ContentFile }
func (ImagePayload) Kind() ContentType { return ContentImage }

func (p TextPayload) Len() int  { return len(p.Body) }
func (p FilePayload) Len() int  { return len(p.Data) }
func (p ImagePayload) Len() int { return len(p.Data) }

func (TextPayload) isPayload()  {}
func (FilePayload) isPayload()  {}
func (ImagePayload) isPayload() {}

// NewFilePayload builds a FilePayload with a sanitized name and a size that
// matches the data.
func NewFilePayload(name string, data []byte) FilePayload {
	return FilePayload{
		Name: SafeFileName(name),
		Data: data,
		Size: int64(len(data)),
	}
}

// NewImagePayload builds an ImagePayload whose size matches the data.
func NewImagePayload(data []byte, width, height int) ImagePayload {
	return ImagePayload{
		Data:   data,
		Width:  width,
		Height: height,
		Size:   int64(len(data)),
	}
}

// SafeFileName strips any directory component (both slash styles) from name
// so the result can be joined to a download directory without escaping it.
func SafeFileName(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	base := filepath.Base(filepath.FromSlash(name))
	base = strings.TrimSpace(base)

	switch base {
	case "", ".", "..", string(filepath.Separator):
		return DefaultFileName
	}
	return base
}
