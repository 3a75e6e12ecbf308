package clipboard

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-clip-relay/models"
	atotto "github.com/atotto/clipboard"
)

// textBackend shells out to the platform clipboard utilities (pbcopy,
// xclip, xsel, wl-copy, clip.exe) through atotto/clipboard. Images are not
// supported.
type textBackend struct{}

func (b *textBackend) Name() string { return "text clipboard" }

func (b *textBackend) Read(ctx context.Context) (models.LocalContent, error) {
	if err := ctx.Err(); err != nil {
		return models.LocalContent{}, err
	}

	text, err := atotto.ReadAll()
	if err != nil {
		return models.LocalContent{}, fmt.Errorf("read text clipboard: %w", err)
	}

	return models.LocalContent{
		Files: ParseFileList(text),
		Text:  text,
	}, nil
}

func (b *textBackend) Write(ctx context.Context, content models.LocalContent) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var text string
	switch content.Kind() {
	case models.ContentFile:
		text = FormatFileList(content.Files)
	case models.ContentImage:
		return fmt.Errorf("%w: image", ErrUnsupportedFormat)
	default:
		text = content.Text
	}

	if err := atotto.WriteAll(text); err != nil {
		return fmt.Errorf("write text clipboard: %w", err)
	}
	return nil
}

func (b *textBackend) Close() {}
