package client

import "errors"

var errNoRelayAddress = errors.New("relay address is not configured and discovery is unavailable")
