// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the device-side transport to the relay.
//
// The primary abstraction is [RelayAdapter], which decouples the sync loops
// from the underlying protocol. The package ships an HTTP/JSON
// implementation ([NewHTTPRelayAdapter]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrRequestTooLarge] for 413).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-clip-relay/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/relay_adapter_mock.go -package=mock

// RelayAdapter defines transport-agnostic communication with the relay.
// Implementations are responsible for serialisation, per-request timeouts and
// mapping transport-level errors to the sentinel values defined in this
// package.
type RelayAdapter interface {
	// Upload replaces the relay clipboard with req. Text uploads use the
	// short request timeout; file and image uploads use the payload timeout.
	Upload(ctx context.Context, req models.UploadRequest) (models.UploadResponse, error)

	// Fetch asks the relay for its clipboard. A zero cursor requests the
	// full record unconditionally; otherwise the relay may answer
	// [models.StatusNoUpdate].
	Fetch(ctx context.Context, cursor models.Timestamp) (models.FetchResponse, error)

	// Status returns the relay liveness summary.
	Status(ctx context.Context) (models.StatusResponse, error)

	// BaseURL returns the relay address requests are sent to.
	BaseURL() string
}
