package effects

import (
	"image"

	"github.com/disintegration/imaging"
)

// Lighting is the flattering booth light filter, equivalent to CSS
// brightness(1.15) contrast(0.95) saturate(1.05), applied in that order.
func Lighting(img image.Image) *image.NRGBA {
	out := Brightness(img, 1.15)
	out = imaging.AdjustContrast(out, -5)
	return imaging.AdjustSaturation(out, 5)
}
