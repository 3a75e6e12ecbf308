// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-clip-relay/internal/adapter"
)

// mapAdapterError translates the adapter's transport error into a service business error
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, adapter.ErrRequestTooLarge):
		return fmt.Errorf("%w: %v", ErrOversize, err)
	case errors.Is(err, context.Canceled):
		return err
	}

	return fmt.Errorf("%w: %v", ErrNetwork, err)
}
