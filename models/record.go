package models

// WireClipboard is the transport-safe form of a [Payload]: file and image
// bytes are base64 strings so the whole value embeds in a JSON body.
// Exactly one group of fields is meaningful, selected by ContentType.
type WireClipboard struct {
	ContentType ContentType `json:"content_type"`

	// text
	Content string `json:"content"`

	// file
	FileName string `json:"file_name"`
	FileData string `json:"file_data"`
	FileSize int64  `json:"file_size"`

	// image
	ImageData   string `json:"image_data"`
	ImageWidth  int    `json:"image_width"`
	ImageHeight int    `json:"image_height"`
	ImageSize   int64  `json:"image_size"`
}

// ClipboardRecord is the single shared clipboard slot held by the relay.
// It is replaced wholesale on every accepted upload.
type ClipboardRecord struct {
	// Wire is the payload exactly as it was uploaded.
	Wire WireClipboard

	// ContentHash is the fingerprint of the payload bytes, used by devices
	// for equality checks only.
	ContentHash string

	// OriginDeviceID identifies the uploader; devices compare it with their
	// own id to drop self-echoes.
	OriginDeviceID string

	// OriginDeviceName is the human label of the uploader.
	OriginDeviceName string

	// UpdatedAt is stamped by the relay clock when the upload is accepted.
	UpdatedAt Timestamp
}

// IsEmpty reports whether the relay has not accepted any upload yet.
func (r ClipboardRecord) IsEmpty() bool {
	return r.UpdatedAt.IsZero()
}
