package effects

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"

	"github.com/youruser/photobooth/internal/blend"
	"github.com/youruser/photobooth/internal/vector"
)

const (
	bloomBlur       = 10
	bloomBrightness = 1.2
	bloomOpacity    = 0.6
	bloomTint       = 0.2
)

var bloomPink = vector.ParseColor("#ffb6c1")

// Bloom adds the soft "moe" glow: subject is the placed subject alone on
// a transparent layer the size of dst. A blurred, brightened copy is
// screened over dst, then the subject area is tinted pink with soft-light.
func Bloom(dst *image.RGBA, subject image.Image, area image.Rectangle) {
	if dst == nil || subject == nil {
		return
	}
	glow := imaging.Blur(subject, bloomBlur)
	glow = Brightness(glow, bloomBrightness)
	blend.Draw(dst, dst.Bounds(), glow, image.Point{}, blend.Screen, bloomOpacity)
	blend.Fill(dst, area, bloomPink, blend.SoftLight, bloomTint)
}

// Brightness scales each colour channel by f, like CSS brightness().
func Brightness(img image.Image, f float64) *image.NRGBA {
	return imaging.AdjustFunc(img, func(c color.NRGBA) color.NRGBA {
		return color.NRGBA{
			R: scale8(c.R, f),
			G: scale8(c.G, f),
			B: scale8(c.B, f),
			A: c.A,
		}
	})
}

func scale8(v uint8, f float64) uint8 {
	x := float64(v)*f + 0.5
	switch {
	case x >= 255:
		return 255
	case x <= 0:
		return 0
	}
	return uint8(x)
}
