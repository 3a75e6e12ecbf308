// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package codec

import (
	"encoding/base64"
	"fmt"
	"strconv"

	"github.com/MKhiriev/go-clip-relay/internal/utils"
	"github.com/MKhiriev/go-clip-relay/models"
)

// Encode converts payload into its wire form and returns the payload
// fingerprint alongside it.
//
// Text is passed through unchanged. File and image bytes are encoded with
// standard base64 and their sizes are copied into the *_size fields.
func Encode(payload models.Payload) (models.WireClipboard, string, error) {
	switch p := payload.(type) {
	case models.TextPayload:
		return models.WireClipboard{
			ContentType: models.ContentText,
			Content:     p.Body,
		}, Fingerprint(p), nil

	case models.FilePayload:
		if p.Size != int64(len(p.Data)) {
			return models.WireClipboard{}, "", fmt.Errorf("%w: file size %d does not match %d bytes", ErrEncode, p.Size, len(p.Data))
		}
		return models.WireClipboard{
			ContentType: models.ContentFile,
			FileName:    models.SafeFileName(p.Name),
			FileData:    base64.StdEncoding.EncodeToString(p.Data),
			FileSize:    p.Size,
		}, Fingerprint(p), nil

	case models.ImagePayload:
		if p.Size != int64(len(p.Data)) {
			return models.WireClipboard{}, "", fmt.Errorf("%w: image size %d does not match %d bytes", ErrEncode, p.Size, len(p.Data))
		}
		return models.WireClipboard{
			ContentType: models.ContentImage,
			ImageData:   base64.StdEncoding.EncodeToString(p.Data),
			ImageWidth:  p.Width,
			ImageHeight: p.Height,
			ImageSize:   p.Size,
		}, Fingerprint(p), nil

	case nil:
		return models.WireClipboard{}, "", fmt.Errorf("%w: nil payload", ErrEncode)

	default:
		return models.WireClipboard{}, "", fmt.Errorf("%w: unsupported payload %T", ErrEncode, payload)
	}
}

// Decode is the inverse of [Encode].
//
// A zero *_size field is accepted as "not declared"; any other value must
// equal the decoded length.
func Decode(wire models.WireClipboard) (models.Payload, error) {
	switch wire.ContentType {
	case models.ContentText, "":
		return models.TextPayload{Body: wire.Content}, nil

	case models.ContentFile:
		data, err := decodeBase64(wire.FileData, wire.FileSize)
		if err != nil {
			return nil, fmt.Errorf("file %q: %w", wire.FileName, err)
		}
		return models.NewFilePayload(wire.FileName, data), nil

	case models.ContentImage:
		data, err := decodeBase64(wire.ImageData, wire.ImageSize)
		if err != nil {
			return nil, fmt.Errorf("image: %w", err)
		}
		return models.NewImagePayload(data, wire.ImageWidth, wire.ImageHeight), nil

	default:
		return nil, fmt.Errorf("%w: unknown content type %q", ErrDecode, wire.ContentType)
	}
}

// Fingerprint returns the hex BLAKE2b-256 digest of the payload's raw bytes
// (UTF-8 bytes for text). A nil payload has an empty fingerprint.
func Fingerprint(payload models.Payload) string {
	switch p := payload.(type) {
	case models.TextPayload:
		return utils.HashString(p.Body)
	case models.FilePayload:
		return utils.HashHex(p.Data)
	case models.ImagePayload:
		return utils.HashHex(p.Data)
	default:
		return ""
	}
}

// FileIdentity is the fingerprint of a local file as seen by the watcher.
// Files are not read to compute it: name, size and path are enough to notice
// a new selection without hashing large files twice per second.
func FileIdentity(path, name string, size int64) string {
	return name + "|" + strconv.FormatInt(size, 10) + "|" + path
}

// WireFingerprint computes the content hash stored by the relay. A payload
// that decodes cleanly hashes exactly like [Fingerprint]; a malformed one is
// hashed over its raw wire strings so the upload can still be accepted.
func WireFingerprint(wire models.WireClipboard) string {
	payload, err := Decode(wire)
	if err == nil {
		return Fingerprint(payload)
	}

	return utils.HashHex(
		[]byte(wire.ContentType),
		[]byte(wire.Content),
		[]byte(wire.FileName),
		[]byte(wire.FileData),
		[]byte(wire.ImageData),
	)
}

func decodeBase64(s string, declared int64) ([]byte, error) {
	data, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	if declared != 0 && declared != int64(len(data)) {
		return nil, fmt.Errorf("%w: declared size %d, got %d bytes", ErrDecode, declared, len(data))
	}
	return data, nil
}
