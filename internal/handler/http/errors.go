// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrInvalidJSON is returned when an upload body is empty or cannot be
	// decoded. It is the only reason the relay rejects an upload as 400.
	ErrInvalidJSON = errors.New("invalid JSON body")

	// ErrBodyTooLarge is returned when an upload exceeds the configured body
	// limit.
	ErrBodyTooLarge = errors.New("request body too large")
)
