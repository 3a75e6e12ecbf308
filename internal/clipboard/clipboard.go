package clipboard

import (
	"github.com/MKhiriev/go-clip-relay/internal/logger"
	atotto "github.com/atotto/clipboard"
	xclipboard "golang.design/x/clipboard"
)

// New returns the best clipboard backend available on this machine.
//
// xclipboard.Init is called here rather than in init() so that binaries
// which never touch the clipboard (the relay, clipctl status) don't pay for
// display access.
func New(logger *logger.Logger) Backend {
	err := xclipboard.Init()
	if err == nil {
		return &nativeBackend{}
	}

	if !atotto.Unsupported {
		logger.Warn().Err(err).Msg("native clipboard unavailable, falling back to text-only clipboard")
		return &textBackend{}
	}

	logger.Warn().Err(err).Msg("clipboard unavailable, running headless")
	return NewHeadless()
}
