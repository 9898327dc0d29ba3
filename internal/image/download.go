package imagepkg

import (
	"context"
	"fmt"
	"image"

	"github.com/youruser/photobooth/internal/util"
)

// ErrStatus is returned when a download gets a non-2xx response.
var ErrStatus = util.ErrStatus

// Download fetches url and decodes it, applying EXIF orientation.
func Download(ctx context.Context, url string) (image.Image, error) {
	body, err := util.GetBytes(ctx, url)
	if err != nil {
		return nil, err
	}
	img, err := DecodeBytes(body)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", url, err)
	}
	return img, nil
}
