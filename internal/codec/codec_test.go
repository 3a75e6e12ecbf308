package codec

import (
	"bytes"
	"encoding/base64"
	"testing"

	"github.com/MKhiriev/go-clip-relay/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── Round trip ──

func TestEncodeDecode_RoundTrip(t *testing.T) {
	png := []byte{0x89, 'P', 'N', 'G', 0x0d, 0x0a, 0x1a, 0x0a, 0x00, 0xff}

	tests := []struct {
		name    string
		payload models.Payload
	}{
		{name: "text", payload: models.TextPayload{Body: "hello"}},
		{name: "unicode text", payload: models.TextPayload{Body: "привет 👋"}},
		{name: "empty text", payload: models.TextPayload{}},
		{name: "file", payload: models.NewFilePayload("report.pdf", []byte("%PDF-1.7 ..."))},
		{name: "empty file", payload: models.NewFilePayload("empty.txt", []byte{})},
		{name: "image", payload: models.NewImagePayload(png, 1, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wire, fp, err := Encode(tt.payload)
			require.NoError(t, err)
			assert.Equal(t, tt.payload.Kind(), wire.ContentType)
			assert.Equal(t, Fingerprint(tt.payload), fp)

			got, err := Decode(wire)
			require.NoError(t, err)
			assert.Equal(t, tt.payload.Kind(), got.Kind())
			assert.Equal(t, tt.payload.Len(), got.Len())
			assert.Equal(t, fp, Fingerprint(got))
		})
	}
}

func TestEncode_FileIsBase64(t *testing.T) {
	data := bytes.Repeat([]byte{0x00, 0x01, 0xfe}, 100)

	wire, _, err := Encode(models.NewFilePayload("/tmp/x/blob.bin", data))
	require.NoError(t, err)

	assert.Equal(t, "blob.bin", wire.FileName)
	assert.Equal(t, int64(len(data)), wire.FileSize)
	assert.Equal(t, base64.StdEncoding.EncodeToString(data), wire.FileData)
}

// ── Encode errors ──

func TestEncode_Errors(t *testing.T) {
	t.Run("nil payload", func(t *testing.T) {
		_, _, err := Encode(nil)
		assert.ErrorIs(t, err, ErrEncode)
	})

	t.Run("file size mismatch", func(t *testing.T) {
		_, _, err := Encode(models.FilePayload{Name: "a", Data: []byte("abc"), Size: 10})
		assert.ErrorIs(t, err, ErrEncode)
	})

	t.Run("image size mismatch", func(t *testing.T) {
		_, _, err := Encode(models.ImagePayload{Data: []byte("abc"), Size: 1})
		assert.ErrorIs(t, err, ErrEncode)
	})
}

// ── Decode errors ──

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name string
		wire models.WireClipboard
	}{
		{
			name: "malformed file base64",
			wire: models.WireClipboard{ContentType: models.ContentFile, FileName: "a", FileData: "%%%"},
		},
		{
			name: "malformed image base64",
			wire: models.WireClipboard{ContentType: models.ContentImage, ImageData: "not base64!"},
		},
		{
			name: "declared size disagrees",
			wire: models.WireClipboard{
				ContentType: models.ContentFile,
				FileName:    "a",
				FileData:    base64.StdEncoding.EncodeToString([]byte("abc")),
				FileSize:    4,
			},
		},
		{
			name: "unknown content type",
			wire: models.WireClipboard{ContentType: "video"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.wire)
			assert.ErrorIs(t, err, ErrDecode)
		})
	}
}

func TestDecode_SanitizesFileName(t *testing.T) {
	wire := models.WireClipboard{
		ContentType: models.ContentFile,
		FileName:    "../../etc/passwd",
		FileData:    base64.StdEncoding.EncodeToString([]byte("x")),
		FileSize:    1,
	}

	got, err := Decode(wire)
	require.NoError(t, err)

	file, ok := got.(models.FilePayload)
	require.True(t, ok)
	assert.Equal(t, "passwd", file.Name)
}

func TestDecode_UndeclaredSizeAccepted(t *testing.T) {
	data := base64.StdEncoding.EncodeToString([]byte("abcd"))

	// нулевой размер означает "не указан": клиент мог не прислать поле
	image, err := Decode(models.WireClipboard{ContentType: models.ContentImage, ImageData: data})
	require.NoError(t, err)
	assert.Equal(t, int64(4), image.(models.ImagePayload).Size)

	file, err := Decode(models.WireClipboard{ContentType: models.ContentFile, FileName: "a.bin", FileData: data})
	require.NoError(t, err)
	assert.Equal(t, int64(4), file.(models.FilePayload).Size)
}

// ── Fingerprints ──

func TestFingerprint(t *testing.T) {
	a := Fingerprint(models.TextPayload{Body: "same"})
	b := Fingerprint(models.TextPayload{Body: "same"})
	c := Fingerprint(models.TextPayload{Body: "other"})

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 64)
	assert.Empty(t, Fingerprint(nil))
}

func TestFileIdentity(t *testing.T) {
	assert.Equal(t, "a.txt|12|/tmp/a.txt", FileIdentity("/tmp/a.txt", "a.txt", 12))
	assert.NotEqual(t, FileIdentity("/tmp/a.txt", "a.txt", 12), FileIdentity("/tmp/a.txt", "a.txt", 13))
}

func TestWireFingerprint(t *testing.T) {
	t.Run("valid wire matches payload fingerprint", func(t *testing.T) {
		payload := models.NewFilePayload("a.bin", []byte{1, 2, 3})
		wire, fp, err := Encode(payload)
		require.NoError(t, err)

		assert.Equal(t, fp, WireFingerprint(wire))
	})

	t.Run("malformed wire still hashed", func(t *testing.T) {
		wire := models.WireClipboard{ContentType: models.ContentImage, ImageData: "%%%"}

		fp := WireFingerprint(wire)
		assert.Len(t, fp, 64)
		assert.Equal(t, fp, WireFingerprint(wire))
	})
}
