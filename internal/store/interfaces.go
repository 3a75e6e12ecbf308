package store

import "github.com/MKhiriev/go-clip-relay/models"

// ClipboardStorage holds the single shared clipboard slot of the relay.
type ClipboardStorage interface {
	// Replace overwrites the slot wholesale and stamps UpdatedAt with the
	// relay clock. The stored copy is returned.
	Replace(record models.ClipboardRecord) models.ClipboardRecord

	// Read returns a copy of the slot; ok is false until the first Replace.
	Read() (record models.ClipboardRecord, ok bool)
}
