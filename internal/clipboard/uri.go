package clipboard

import (
	"net/url"
	"path/filepath"
	"strings"
)

// ParseFileList extracts local paths from a text/uri-list. It returns nil
// unless every non-comment line is a file:// URI, so ordinary text that
// happens to mention a URI is never mistaken for a file selection.
func ParseFileList(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	var paths []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		u, err := url.Parse(line)
		if err != nil || u.Scheme != "file" || u.Path == "" {
			return nil
		}
		if u.Host != "" && u.Host != "localhost" {
			return nil
		}

		paths = append(paths, filepath.FromSlash(u.Path))
	}
	return paths
}

// FormatFileList renders paths as a text/uri-list with CRLF line endings.
func FormatFileList(paths []string) string {
	lines := make([]string, 0, len(paths))
	for _, p := range paths {
		u := url.URL{Scheme: "file", Path: filepath.ToSlash(p)}
		lines = append(lines, u.String())
	}
	return strings.Join(lines, "\r\n")
}
