// Package identity names the running device.
//
// A device id is generated once per process and never persisted: restarting
// the agent makes it a new device as far as the relay is concerned.
package identity

import (
	"os"
	"strings"

	"github.com/MKhiriev/go-clip-relay/internal/utils"
)

const suffixLen = 6

// Identity is the pair of names a device sends with every upload.
type Identity struct {
	// ID is "<hostname>-<6 hex chars>". The relay echoes it back on fetch so
	// the device can drop its own uploads.
	ID string
	// Name is the human-readable label shown to other devices.
	Name string
}

// hostname is swapped in tests.
var hostname = os.Hostname

// New builds the identity of this process. name is the configured label; when
// empty the host name is used instead.
func New(name string) Identity {
	host := hostName()

	name = strings.TrimSpace(name)
	if name == "" {
		name = friendlyName(host)
	}

	return Identity{
		ID:   host + "-" + utils.RandomHex(suffixLen),
		Name: name,
	}
}

func hostName() string {
	h, err := hostname()
	if err != nil || strings.TrimSpace(h) == "" {
		return "unknown"
	}
	return strings.TrimSpace(h)
}

// friendlyName shortens container-id style host names, which are otherwise
// unreadable in notifications.
func friendlyName(host string) string {
	if isContainerID(host) {
		return "container-" + host[:8]
	}
	return host
}

func isContainerID(s string) bool {
	if len(s) < 12 || len(s) > 64 {
		return false
	}
	for _, c := range s {
		if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'f')) {
			return false
		}
	}
	return true
}
