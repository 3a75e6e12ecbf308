package service

import "errors"

var (
	// ErrUnsupportedContent is returned when the clipboard holds something
	// that cannot be synchronized, such as a directory.
	ErrUnsupportedContent = errors.New("unsupported clipboard content")
	// ErrOversize is returned when a file or image exceeds the configured
	// ceiling, or when the relay rejects the body as too large.
	ErrOversize = errors.New("content exceeds the size limit")
	// ErrNetwork wraps every transport failure talking to the relay.
	ErrNetwork = errors.New("relay unreachable")
	// ErrSyncDisabled is returned for files and images while file sync is off.
	ErrSyncDisabled = errors.New("file sync is disabled")
	// ErrRelayEmpty is returned by a manual sync when nothing was uploaded yet.
	ErrRelayEmpty = errors.New("relay clipboard is empty")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
