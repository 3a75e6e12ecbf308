package service

import (
	"time"

	"github.com/MKhiriev/go-clip-relay/internal/adapter"
	"github.com/MKhiriev/go-clip-relay/internal/clipboard"
	"github.com/MKhiriev/go-clip-relay/internal/identity"
	"github.com/MKhiriev/go-clip-relay/internal/notify"
)

// ClientDeps are the collaborators shared by the device loops.
type ClientDeps struct {
	Clipboard clipboard.Backend
	Relay     adapter.RelayAdapter
	Notifier  notify.Notifier
	Cue       notify.Cue
	Identity  identity.Identity

	// Clock defaults to time.Now.
	Clock func() time.Time
}

func (d ClientDeps) now() time.Time {
	if d.Clock == nil {
		return time.Now()
	}
	return d.Clock()
}
