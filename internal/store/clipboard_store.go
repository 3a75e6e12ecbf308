// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"sync"
	"time"

	"github.com/MKhiriev/go-clip-relay/models"
)

// Clock returns the current time. It is injected so tests can pin the relay
// clock.
type Clock func() time.Time

// Option configures a [ClipboardStore].
type Option func(*ClipboardStore)

// WithClock replaces the wall clock used to stamp records.
func WithClock(clock Clock) Option {
	return func(s *ClipboardStore) {
		s.clock = clock
	}
}

// ClipboardStore is the in-memory [ClipboardStorage].
//
// A single mutex guards the record, so every reader observes either the full
// previous record or the full new one. Timestamps issued by Replace are
// strictly increasing at millisecond resolution: if the clock has not moved
// past the previous stamp (same millisecond, or a backwards step) the new
// stamp is the previous one plus one millisecond. Devices compare their
// cursor with this stamp, so two uploads must never share it.
type ClipboardStore struct {
	mu     sync.RWMutex
	record models.ClipboardRecord
	clock  Clock
}

// NewClipboardStore creates an empty store.
func NewClipboardStore(opts ...Option) *ClipboardStore {
	s := &ClipboardStore{clock: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *ClipboardStore) Replace(record models.ClipboardRecord) models.ClipboardRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	stamp := models.NewTimestamp(s.clock())
	if prev := s.record.UpdatedAt; !prev.IsZero() && !stamp.After(prev.Time) {
		stamp = models.NewTimestamp(prev.Add(time.Millisecond))
	}

	record.UpdatedAt = stamp
	s.record = record

	return s.record
}

func (s *ClipboardStore) Read() (models.ClipboardRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.record, !s.record.IsEmpty()
}
