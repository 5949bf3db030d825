package platform

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"strings"

	"github.com/h2non/filetype"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// SniffSize is how many leading bytes are inspected to detect a file type
const SniffSize = 8192

// ImageMIMEPrefix marks MIME types the uploader accepts
const ImageMIMEPrefix = "image/"

// FileType describes sniffed content
type FileType struct {
	MIME      string
	Extension string
}

// DetectType sniffs the content type from the leading bytes.
// Unknown content yields an empty FileType.
func DetectType(data []byte) FileType {
	head := data
	if len(head) > SniffSize {
		head = head[:SniffSize]
	}

	kind, err := filetype.Match(head)
	if err != nil || kind == filetype.Unknown {
		return FileType{}
	}
	return FileType{MIME: kind.MIME.Value, Extension: kind.Extension}
}

// IsImageMIME reports whether the MIME type is an image type
func IsImageMIME(mimeType string) bool {
	return strings.HasPrefix(mimeType, ImageMIMEPrefix)
}

// ImageDimensions reads width and height from the image header without decoding pixels
func ImageDimensions(data []byte) (int, int, error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return 0, 0, fmt.Errorf("decode image header: %w", err)
	}
	return cfg.Width, cfg.Height, nil
}
