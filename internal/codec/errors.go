package codec

import "errors"

var (
	// ErrEncode is returned when a payload cannot be put on the wire.
	ErrEncode = errors.New("cannot encode clipboard payload")

	// ErrDecode is returned when wire data is malformed: bad base64, a
	// declared size that disagrees with the data, or an unknown content type.
	ErrDecode = errors.New("cannot decode clipboard payload")
)
