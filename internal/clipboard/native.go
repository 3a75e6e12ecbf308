// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package clipboard

import (
	"context"

	"github.com/MKhiriev/go-clip-relay/models"
	xclipboard "golang.design/x/clipboard"
)

// nativeBackend reads and writes the system clipboard through
// golang.design/x/clipboard. xclipboard.Init must have succeeded.
type nativeBackend struct{}

func (b *nativeBackend) Name() string { return "native clipboard" }

func (b *nativeBackend) Read(ctx context.Context) (models.LocalContent, error) {
	if err := ctx.Err(); err != nil {
		return models.LocalContent{}, err
	}

	text := string(xclipboard.Read(xclipboard.FmtText))
	img := xclipboard.Read(xclipboard.FmtImage)

	return models.LocalContent{
		Files: ParseFileList(text),
		Image: img,
		Text:  text,
	}, nil
}

func (b *nativeBackend) Write(ctx context.Context, content models.LocalContent) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	switch content.Kind() {
	case models.ContentFile:
		xclipboard.Write(xclipboard.FmtText, []byte(FormatFileList(content.Files)))
	case models.ContentImage:
		xclipboard.Write(xclipboard.FmtImage, content.Image)
	default:
		xclipboard.Write(xclipboard.FmtText, []byte(content.Text))
	}
	return nil
}

func (b *nativeBackend) Close() {}
