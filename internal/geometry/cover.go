// Package geometry holds the placement math used to put a raster into a
// box: aspect-fill (cover) with optional top or focus alignment, and
// aspect-fit (contain) for letterboxing.
package geometry

import (
	"image"
	"math"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
)

// Rect is a float rectangle in canvas pixels.
type Rect struct {
	X, Y, W, H float64
}

// RectOf converts an integer rectangle.
func RectOf(r image.Rectangle) Rect {
	return Rect{X: float64(r.Min.X), Y: float64(r.Min.Y), W: float64(r.Dx()), H: float64(r.Dy())}
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return !(r.W > 0) || !(r.H > 0)
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Bounds rounds the rectangle outward to integer pixels.
func (r Rect) Bounds() image.Rectangle {
	return image.Rect(
		int(math.Floor(r.X)), int(math.Floor(r.Y)),
		int(math.Ceil(r.X+r.W)), int(math.Ceil(r.Y+r.H)),
	)
}

// Align controls where the overflow of a cover placement is cropped from.
// The zero value centres on both axes.
type Align struct {
	// Top pins the image to the top edge when it is taller than the box.
	Top bool
	// Focus, when HasFocus is set, removes Focus×overflow from the top and
	// the rest from the bottom. 0 keeps the top, 1 keeps the bottom.
	Focus    float64
	HasFocus bool
}

// Centered crops overflow evenly.
func Centered() Align { return Align{} }

// TopAligned keeps the top edge of tall images.
func TopAligned() Align { return Align{Top: true} }

// FocusY weights the vertical crop; 0.15 keeps heads in ID-photo crops.
func FocusY(f float64) Align { return Align{Focus: f, HasFocus: true} }

// AspectFill computes where to draw an iw×ih source so that it covers dst
// with a uniform scale. ok is false for a degenerate source or box.
func AspectFill(iw, ih float64, dst Rect, a Align) (r Rect, ok bool) {
	if !(iw > 0) || !(ih > 0) || dst.Empty() {
		return Rect{}, false
	}
	scale := math.Max(dst.W/iw, dst.H/ih)
	nw := iw * scale
	nh := ih * scale
	nx := dst.X - (nw-dst.W)/2

	var ny float64
	switch {
	case a.HasFocus:
		ny = dst.Y - (nh-dst.H)*a.Focus
	case a.Top && nh > dst.H:
		ny = dst.Y
	default:
		ny = dst.Y - (nh-dst.H)/2
	}
	return Rect{X: nx, Y: ny, W: nw, H: nh}, true
}

// AspectFit computes the largest uniformly scaled placement of an iw×ih
// source that fits inside dst, centred.
func AspectFit(iw, ih float64, dst Rect) (r Rect, ok bool) {
	if !(iw > 0) || !(ih > 0) || dst.Empty() {
		return Rect{}, false
	}
	scale := math.Min(dst.W/iw, dst.H/ih)
	nw := iw * scale
	nh := ih * scale
	return Rect{X: dst.X + (dst.W-nw)/2, Y: dst.Y + (dst.H-nh)/2, W: nw, H: nh}, true
}

// Loaded reports whether img can be sampled: non-nil with a positive size.
func Loaded(img image.Image) bool {
	if img == nil {
		return false
	}
	b := img.Bounds()
	return b.Dx() > 0 && b.Dy() > 0
}

// DrawCover draws img into dst with cover semantics, clipped to exactly dst.
func DrawCover(dc *gg.Context, img image.Image, dst Rect, a Align) {
	if !Loaded(img) {
		return
	}
	b := img.Bounds()
	r, ok := AspectFill(float64(b.Dx()), float64(b.Dy()), dst, a)
	if !ok {
		return
	}
	dc.Push()
	dc.DrawRectangle(dst.X, dst.Y, dst.W, dst.H)
	dc.Clip()
	drawVisible(dc, img, r, canvas(dc).Bounds().Intersect(dst.Bounds()))
	dc.Pop()
}

// DrawScaled resamples img to the size of r and draws it at r's origin
// under the context's current clip. Only the part of r that lands on the
// canvas is resampled.
func DrawScaled(dc *gg.Context, img image.Image, r Rect) {
	if !Loaded(img) {
		return
	}
	drawVisible(dc, img, r, canvas(dc).Bounds())
}

func canvas(dc *gg.Context) Rect {
	return Rect{W: float64(dc.Width()), H: float64(dc.Height())}
}

// maxOverdraw bounds the resampled buffer relative to the visible area.
// Crops that would exceed it are drawn through the context matrix instead.
const maxOverdraw = 4

func drawVisible(dc *gg.Context, img image.Image, r Rect, vis image.Rectangle) {
	if r.Empty() {
		return
	}
	w := int(math.Round(r.W))
	h := int(math.Round(r.H))
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	x0 := int(math.Round(r.X))
	y0 := int(math.Round(r.Y))
	full := image.Rect(x0, y0, x0+w, y0+h)
	vis = vis.Intersect(r.Bounds())
	if vis.Empty() {
		return
	}
	b := img.Bounds()
	if vis.Intersect(full) == full {
		scaled := img
		switch {
		case b.Dx() != w || b.Dy() != h:
			scaled = imaging.Resize(img, w, h, imaging.Lanczos)
		case b.Min != image.Point{}:
			// gg maps source bounds through the matrix; rebase to the origin.
			scaled = imaging.Clone(img)
		}
		dc.DrawImage(scaled, x0, y0)
		return
	}

	kx := r.W / float64(b.Dx())
	ky := r.H / float64(b.Dy())
	cx0, cx1 := sourceSpan(vis.Min.X, vis.Max.X, r.X, kx, b.Dx())
	cy0, cy1 := sourceSpan(vis.Min.Y, vis.Max.Y, r.Y, ky, b.Dy())
	if cx1 <= cx0 || cy1 <= cy0 {
		return
	}
	crop := imaging.Crop(img, image.Rect(b.Min.X+cx0, b.Min.Y+cy0, b.Min.X+cx1, b.Min.Y+cy1))

	ox := r.X + float64(cx0)*kx
	oy := r.Y + float64(cy0)*ky
	dx0, dx1 := int(math.Round(ox)), int(math.Round(r.X+float64(cx1)*kx))
	dy0, dy1 := int(math.Round(oy)), int(math.Round(r.Y+float64(cy1)*ky))
	cw, ch := max(dx1-dx0, 1), max(dy1-dy0, 1)

	if float64(cw)*float64(ch) > maxOverdraw*float64(vis.Dx()*vis.Dy()) {
		// heavy upscale: let gg sample the crop on the fly
		dc.Push()
		dc.Translate(ox, oy)
		dc.Scale(kx, ky)
		dc.DrawImage(crop, 0, 0)
		dc.Pop()
		return
	}
	dc.DrawImage(imaging.Resize(crop, cw, ch, imaging.Lanczos), dx0, dy0)
}

// sourceSpan maps the device span [lo, hi) of a placement starting at
// origin with scale k back to source pixels, widened by the filter
// support and clamped to [0, n].
func sourceSpan(lo, hi int, origin, k float64, n int) (int, int) {
	margin := int(math.Ceil(3 * math.Max(1, 1/k)))
	s0 := int(math.Floor((float64(lo)-origin)/k)) - margin
	s1 := int(math.Ceil((float64(hi)-origin)/k)) + margin
	return max(s0, 0), min(s1, n)
}
