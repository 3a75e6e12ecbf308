// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"time"

	"github.com/MKhiriev/go-clip-relay/internal/discovery"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the agent and blocks until ctx is cancelled.
	Run(ctx context.Context) error
}

// relayFinder locates a relay on the local network.
type relayFinder interface {
	Find(ctx context.Context, timeout time.Duration) (discovery.Relay, error)
}
