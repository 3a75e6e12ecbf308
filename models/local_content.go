package models

// LocalContent is what a platform clipboard exposes at one instant. Several
// representations may be present at once; [LocalContent.Kind] applies the
// fixed File > Image > Text priority.
type LocalContent struct {
	// Files are absolute paths of copied files, in selection order.
	Files []string

	// Image is a PNG-encoded raster, nil when absent.
	Image []byte

	// Text is the plain text representation, "" when absent.
	Text string
}

// Kind classifies the content. A multi-file selection is still a file
// clipboard; only Files[0] is synchronized.
func (c LocalContent) Kind() ContentType {
	switch {
	case len(c.Files) > 0:
		return ContentFile
	case len(c.Image) > 0:
		return ContentImage
	default:
		return ContentText
	}
}

// IsEmpty reports whether no representation is present.
func (c LocalContent) IsEmpty() bool {
	return len(c.Files) == 0 && len(c.Image) == 0 && c.Text == ""
}
