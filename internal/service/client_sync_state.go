// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"sync"
	"time"

	"github.com/MKhiriev/go-clip-relay/models"
)

// SyncState is shared by the watcher and the puller of one device.
//
// While the puller writes a remote record to the local clipboard it holds
// the applying flag, and it leaves a protection deadline behind so the
// watcher does not read its own write back as a user change. Every apply
// bumps a generation counter, which lets the watcher notice an apply that
// happened between its read and its compare.
//
// A single fingerprint slot describes whatever the local clipboard held
// last, whichever kind it was. A text fingerprint therefore stops matching
// as soon as an image or a file replaces it.
type SyncState struct {
	mu sync.Mutex

	applying   bool
	deadline   time.Time
	generation uint64

	kind        models.ContentType
	fingerprint string
}

func NewSyncState() *SyncState {
	return &SyncState{}
}

// BeginApply marks a remote write in progress and extends the protection
// window to deadline. An earlier deadline never shortens the window.
func (s *SyncState) BeginApply(deadline time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.applying = true
	s.generation++
	if deadline.After(s.deadline) {
		s.deadline = deadline
	}
}

// EndApply clears the applying flag. The protection window stays open until
// its deadline.
func (s *SyncState) EndApply() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.applying = false
}

// Observe starts a watcher observation. It returns the current apply
// generation and false when the observation must be skipped.
func (s *SyncState) Observe(now time.Time) (uint64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.generation, !s.suppressed(now)
}

func (s *SyncState) suppressed(now time.Time) bool {
	return s.applying || now.Before(s.deadline)
}

// Fingerprint returns the last known fingerprint if the clipboard last held
// content of kind, and "" otherwise.
func (s *SyncState) Fingerprint(kind models.ContentType) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.kind != kind {
		return ""
	}
	return s.fingerprint
}

func (s *SyncState) SetFingerprint(kind models.ContentType, fingerprint string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.kind, s.fingerprint = kind, fingerprint
}

// ChangedUnlessSuppressed stores kind and fingerprint and reports whether
// they differ from the previous pair. gen comes from the [SyncState.Observe]
// call that started the observation. Nothing is stored and false is returned
// when an apply is running, the window is still open at now, or an apply
// started after the observation began.
func (s *SyncState) ChangedUnlessSuppressed(kind models.ContentType, fingerprint string, now time.Time, gen uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.suppressed(now) || s.generation != gen {
		return false
	}
	return s.swap(kind, fingerprint)
}

func (s *SyncState) swap(kind models.ContentType, fingerprint string) bool {
	if s.kind == kind && s.fingerprint == fingerprint {
		return false
	}
	s.kind, s.fingerprint = kind, fingerprint
	return true
}
