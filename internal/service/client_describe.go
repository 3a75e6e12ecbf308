package service

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-clip-relay/models"
)

const previewRunes = 40

// describe renders a payload as a one-line notification body.
func describe(payload models.Payload) string {
	switch p := payload.(type) {
	case models.TextPayload:
		return preview(p.Body)
	case models.FilePayload:
		return fmt.Sprintf("%s (%s)", p.Name, humanSize(p.Size))
	case models.ImagePayload:
		if p.Width > 0 && p.Height > 0 {
			return fmt.Sprintf("image %dx%d (%s)", p.Width, p.Height, humanSize(p.Size))
		}
		return fmt.Sprintf("image (%s)", humanSize(p.Size))
	default:
		return ""
	}
}

func preview(text string) string {
	text = strings.Join(strings.Fields(text), " ")
	if utf8.RuneCountInString(text) <= previewRunes {
		return text
	}
	return string([]rune(text)[:previewRunes]) + "..."
}

func humanSize(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(n)/float64(div), "KMGTPE"[exp])
}
