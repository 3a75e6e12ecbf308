// Package notify delivers user-facing sync notifications and the audible
// cue that accompanies them.
//
// Desktop popups are out of scope for the agent, so notifications are
// rendered as structured log lines on the device log.
package notify

import (
	"io"
	"sync"

	"github.com/MKhiriev/go-clip-relay/internal/logger"
)

//go:generate mockgen -source=notify.go -destination=../mock/notify_mock.go -package=mock

// Severity classifies a notification.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "info"
	}
}

// Notifier shows a short message to the user.
type Notifier interface {
	Notify(title, message string, severity Severity)
}

// Cue plays a short audible signal.
type Cue interface {
	Play()
}

type logNotifier struct {
	enabled bool
	logger  *logger.Logger
}

// NewLogNotifier returns a Notifier that writes notifications to logger.
// When enabled is false every notification is dropped.
func NewLogNotifier(enabled bool, logger *logger.Logger) Notifier {
	return &logNotifier{enabled: enabled, logger: logger}
}

func (n *logNotifier) Notify(title, message string, severity Severity) {
	if !n.enabled {
		return
	}

	event := n.logger.Info()
	switch severity {
	case SeverityWarning:
		event = n.logger.Warn()
	case SeverityError:
		event = n.logger.Error()
	}

	event.
		Str("title", title).
		Str("severity", severity.String()).
		Msg(message)
}

type bellCue struct {
	enabled bool

	mu  sync.Mutex
	out io.Writer
}

// NewBellCue returns a Cue that writes the terminal bell character to out.
func NewBellCue(enabled bool, out io.Writer) Cue {
	return &bellCue{enabled: enabled, out: out}
}

func (c *bellCue) Play() {
	if !c.enabled || c.out == nil {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	_, _ = c.out.Write([]byte{'\a'})
}
