// Package blend implements the separable W3C blend modes the compositor
// needs (screen, overlay, soft-light) as explicit per-pixel formulas,
// since the rasteriser only offers plain source-over.
package blend

import (
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
)

// Mode selects the blend function B(Cb, Cs).
type Mode int

const (
	Normal Mode = iota
	Multiply
	Screen
	Overlay
	SoftLight
)

func (m Mode) String() string {
	switch m {
	case Multiply:
		return "multiply"
	case Screen:
		return "screen"
	case Overlay:
		return "overlay"
	case SoftLight:
		return "soft-light"
	default:
		return "normal"
	}
}

// Channel applies the blend function to one backdrop/source channel pair,
// both in [0,1].
func (m Mode) Channel(cb, cs float64) float64 {
	switch m {
	case Multiply:
		return cb * cs
	case Screen:
		return screen(cb, cs)
	case Overlay:
		// overlay is hard-light with the layers swapped
		return hardLight(cb, cs)
	case SoftLight:
		return softLight(cb, cs)
	default:
		return cs
	}
}

func screen(cb, cs float64) float64 { return cb + cs - cb*cs }

// hardLight(s, b): s decides between multiply and screen against b.
func hardLight(s, b float64) float64 {
	if s <= 0.5 {
		return b * 2 * s
	}
	return screen(b, 2*s-1)
}

func softLight(cb, cs float64) float64 {
	if cs <= 0.5 {
		return cb - (1-2*cs)*cb*(1-cb)
	}
	var d float64
	if cb <= 0.25 {
		d = ((16*cb-12)*cb + 4) * cb
	} else {
		d = math.Sqrt(cb)
	}
	return cb + (2*cs-1)*(d-cb)
}

// sampler returns the non-premultiplied source colour at dst pixel (x, y).
type sampler func(x, y int) (r, g, b, a float64)

// Draw composites src onto dst inside r using mode at the given opacity.
// sp is the source point aligned with r.Min, as in image/draw.
func Draw(dst *image.RGBA, r image.Rectangle, src image.Image, sp image.Point, mode Mode, opacity float64) {
	if src == nil {
		return
	}
	if _, ok := src.(*image.NRGBA); !ok {
		// toNRGBA rebases the clone to the origin
		sp = sp.Sub(src.Bounds().Min)
	}
	s := toNRGBA(src)
	off := sp.Sub(r.Min)
	sb := s.Bounds()
	composite(dst, r.Intersect(sb.Sub(off)), mode, opacity, func(x, y int) (float64, float64, float64, float64) {
		return pixel(s, x+off.X, y+off.Y)
	})
}

// Tile repeats a small tile across r, anchored at r.Min.
func Tile(dst *image.RGBA, r image.Rectangle, tile image.Image, mode Mode, opacity float64) {
	if tile == nil {
		return
	}
	t := toNRGBA(tile)
	tb := t.Bounds()
	tw, th := tb.Dx(), tb.Dy()
	if tw == 0 || th == 0 {
		return
	}
	composite(dst, r, mode, opacity, func(x, y int) (float64, float64, float64, float64) {
		tx := (x - r.Min.X) % tw
		ty := (y - r.Min.Y) % th
		return pixel(t, tb.Min.X+tx, tb.Min.Y+ty)
	})
}

// Fill composites a uniform colour over r.
func Fill(dst *image.RGBA, r image.Rectangle, c color.Color, mode Mode, opacity float64) {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	cr, cg, cb, ca := float64(n.R)/255, float64(n.G)/255, float64(n.B)/255, float64(n.A)/255
	composite(dst, r, mode, opacity, func(int, int) (float64, float64, float64, float64) {
		return cr, cg, cb, ca
	})
}

func composite(dst *image.RGBA, r image.Rectangle, mode Mode, opacity float64, src sampler) {
	if dst == nil || opacity <= 0 {
		return
	}
	if opacity > 1 {
		opacity = 1
	}
	r = r.Intersect(dst.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		i := dst.PixOffset(r.Min.X, y)
		for x := r.Min.X; x < r.Max.X; x, i = x+1, i+4 {
			sr, sg, sb, sa := src(x, y)
			sa *= opacity
			if sa <= 0 {
				continue
			}
			p := dst.Pix[i : i+4 : i+4]
			da := float64(p[3]) / 255
			var br, bg, bb float64
			if da > 0 {
				br = float64(p[0]) / 255 / da
				bg = float64(p[1]) / 255 / da
				bb = float64(p[2]) / 255 / da
			}
			// Cs' = (1 - ab)·Cs + ab·B(Cb, Cs), then source-over.
			mr := (1-da)*sr + da*mode.Channel(clamp01(br), sr)
			mg := (1-da)*sg + da*mode.Channel(clamp01(bg), sg)
			mb := (1-da)*sb + da*mode.Channel(clamp01(bb), sb)

			p[0] = to8(sa*mr + (1-sa)*da*br)
			p[1] = to8(sa*mg + (1-sa)*da*bg)
			p[2] = to8(sa*mb + (1-sa)*da*bb)
			p[3] = to8(sa + da*(1-sa))
		}
	}
}

func pixel(img *image.NRGBA, x, y int) (float64, float64, float64, float64) {
	i := img.PixOffset(x, y)
	p := img.Pix[i : i+4 : i+4]
	return float64(p[0]) / 255, float64(p[1]) / 255, float64(p[2]) / 255, float64(p[3]) / 255
}

func toNRGBA(img image.Image) *image.NRGBA {
	if n, ok := img.(*image.NRGBA); ok {
		return n
	}
	return imaging.Clone(img)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func to8(v float64) uint8 {
	return uint8(clamp01(v)*255 + 0.5)
}
