package models

// Response status values shared by the relay and its clients.
const (
	StatusOK       = "ok"
	StatusNoUpdate = "no_update"
)

// UploadRequest is the body of POST /upload.
type UploadRequest struct {
	DeviceID   string `json:"device_id"`
	DeviceName string `json:"device_name"`

	WireClipboard
}

// UploadResponse is returned by POST /upload.
type UploadResponse struct {
	Status    string    `json:"status"`
	UpdatedAt Timestamp `json:"updated_at"`
}

// FetchResponse is returned by GET /fetch. When Status is [StatusNoUpdate]
// only UpdatedAt is meaningful.
type FetchResponse struct {
	Status string `json:"status"`

	WireClipboard

	ContentHash string    `json:"content_hash"`
	UpdatedAt   Timestamp `json:"updated_at"`
	DeviceID    string    `json:"device_id"`
	DeviceName  string    `json:"device_name"`
}

// NoUpdate reports whether the relay short-circuited the fetch.
func (r FetchResponse) NoUpdate() bool {
	return r.Status == StatusNoUpdate
}

// Record converts a full fetch response back into a [ClipboardRecord].
func (r FetchResponse) Record() ClipboardRecord {
	return ClipboardRecord{
		Wire:             r.WireClipboard,
		ContentHash:      r.ContentHash,
		OriginDeviceID:   r.DeviceID,
		OriginDeviceName: r.DeviceName,
		UpdatedAt:        r.UpdatedAt,
	}
}

// NewFetchResponse renders a record as a full fetch body.
func NewFetchResponse(record ClipboardRecord) FetchResponse {
	return FetchResponse{
		Status:        StatusOK,
		WireClipboard: record.Wire,
		ContentHash:   record.ContentHash,
		UpdatedAt:     record.UpdatedAt,
		DeviceID:      record.OriginDeviceID,
		DeviceName:    record.OriginDeviceName,
	}
}

// StatusResponse is returned by GET /status. Running is always true; the
// remaining fields summarize the current slot without its payload.
type StatusResponse struct {
	Running     bool        `json:"running"`
	Version     string      `json:"version,omitempty"`
	ContentType ContentType `json:"content_type,omitempty"`
	DeviceName  string      `json:"device_name,omitempty"`
	UpdatedAt   Timestamp   `json:"updated_at"`
	Uploads     uint64      `json:"uploads"`
	Fetches     uint64      `json:"fetches"`
}
