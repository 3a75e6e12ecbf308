package models

// ContentType is the discriminator carried by every upload and fetch body.
// It selects which group of wire fields holds the clipboard payload.
type ContentType string

const (
	// ContentText marks a plain UTF-8 text clipboard.
	ContentText ContentType = "text"

	// ContentFile marks a single file carried as base64 in file_data.
	ContentFile ContentType = "file"

	// ContentImage marks a PNG raster carried as base64 in image_data.
	ContentImage ContentType = "image"
)

// ParseContentType converts the raw discriminator received from a device.
// Empty and unknown values fall back to [ContentText]; the relay never
// rejects an upload because of its content type.
func ParseContentType(s string) ContentType {
	switch ContentType(s) {
	case ContentFile:
		return ContentFile
	case ContentImage:
		return ContentImage
	default:
		return ContentText
	}
}

// String implements fmt.Stringer.
func (c ContentType) String() string {
	return string(c)
}
