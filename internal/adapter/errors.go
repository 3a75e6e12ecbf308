package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrNotFound            = errors.New("not found")
	ErrMethodNotAllowed    = errors.New("method not allowed")
	ErrRequestTooLarge     = errors.New("request entity too large")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")

	// ErrRelayUnavailable is returned for 503: the relay is shutting down or
	// gave up on the request.
	ErrRelayUnavailable = errors.New("relay unavailable")

	// ErrUnexpectedResponse is returned when the relay answers 2xx with a
	// body that cannot be decoded.
	ErrUnexpectedResponse = errors.New("unexpected relay response")
)
