package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-clip-relay/internal/service"
)

var errorStatusMap = map[error]int{
	ErrInvalidJSON:  http.StatusBadRequest,
	ErrBodyTooLarge: http.StatusRequestEntityTooLarge,

	service.ErrVersionIsNotSpecified: http.StatusInternalServerError,

	context.Canceled:         http.StatusServiceUnavailable,
	context.DeadlineExceeded: http.StatusServiceUnavailable,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// classifyReadError tags a body decoding error with the sentinel that
// decides its status code.
func classifyReadError(err error) error {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return errors.Join(ErrBodyTooLarge, err)
	}
	return errors.Join(ErrInvalidJSON, err)
}
