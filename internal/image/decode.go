package imagepkg

import (
	"bytes"
	"encoding/base64"
	"errors"
	"image"
	"io"
	"net/url"
	"os"
	"strings"

	"github.com/disintegration/imaging"
)

// ErrEmpty is returned for empty image payloads.
var ErrEmpty = errors.New("empty image data")

// Decode reads a JPEG, PNG, GIF, BMP or TIFF image, rotated upright
// according to its EXIF orientation tag.
func Decode(r io.Reader) (image.Image, error) {
	return imaging.Decode(r, imaging.AutoOrientation(true))
}

// DecodeBytes is Decode over a byte slice; SVG documents are rasterised
// at their viewBox size.
func DecodeBytes(b []byte) (image.Image, error) {
	if len(b) == 0 {
		return nil, ErrEmpty
	}
	if IsSVG(b) {
		return RasterizeSVG(bytes.NewReader(b), 0, 0)
	}
	return Decode(bytes.NewReader(b))
}

// DecodeBase64 decodes a base64 image, with or without a data: URI
// prefix. Data URIs without ";base64" are read as percent-encoded.
func DecodeBase64(s string) (image.Image, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "data:") {
		i := strings.Index(s, ",")
		if i < 0 {
			return nil, errors.New("malformed data uri")
		}
		header, payload := s[:i], s[i+1:]
		if !strings.HasSuffix(header, ";base64") {
			// percent-encoded payload, as inline SVG frames use
			raw, err := url.PathUnescape(payload)
			if err != nil {
				return nil, err
			}
			return DecodeBytes([]byte(raw))
		}
		s = payload
	}
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, err
	}
	return DecodeBytes(b)
}

// Open loads an image file, rotated upright. SVG files are rasterised.
func Open(path string) (image.Image, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return DecodeBytes(b)
}
