package compose

import (
	"image"
	"image/color"
	"math"
	"math/rand"
	"time"

	"github.com/fogleman/gg"

	"github.com/youruser/photobooth/internal/effects"
	"github.com/youruser/photobooth/internal/fonts"
	"github.com/youruser/photobooth/internal/geometry"
	"github.com/youruser/photobooth/internal/sticker"
	"github.com/youruser/photobooth/internal/vector"
)

// Renderer produces composites. It holds only immutable collaborators, so
// one Renderer may serve concurrent calls.
type Renderer struct {
	painter *vector.Painter
	newRand func() *rand.Rand
}

// NewRenderer returns a Renderer drawing text with fm; nil uses the
// embedded fonts.
func NewRenderer(fm *fonts.Manager) *Renderer {
	return &Renderer{
		painter: vector.NewPainter(fm),
		newRand: func() *rand.Rand {
			return rand.New(rand.NewSource(time.Now().UnixNano()))
		},
	}
}

var defaultRenderer = NewRenderer(nil)

// Render draws the edit preview, including the selected sticker's chrome.
func Render(p RenderParams) *image.RGBA { return defaultRenderer.Render(p) }

// RenderExport draws the composite for output, never drawing chrome.
func RenderExport(p RenderParams) *image.RGBA { return defaultRenderer.RenderExport(p) }

func (r *Renderer) Render(p RenderParams) *image.RGBA {
	return r.render(p, true)
}

func (r *Renderer) RenderExport(p RenderParams) *image.RGBA {
	return r.render(p, false)
}

// render runs the fixed pipeline: background, subject, bloom, strokes,
// stickers, grain, date stamp, frame.
func (r *Renderer) render(p RenderParams, preview bool) *image.RGBA {
	w, h := Dimensions(p.AspectRatio)
	canvas := image.NewRGBA(image.Rect(0, 0, w, h))
	dc := gg.NewContextForRGBA(canvas)

	paintBackground(dc, p.Background)

	if subject, place, ok := subjectPlacement(p, w, h); ok {
		geometry.DrawScaled(dc, subject, place)
		if p.Moe {
			layer := gg.NewContext(w, h)
			geometry.DrawScaled(layer, subject, place)
			area := place.Bounds().Intersect(canvas.Bounds())
			effects.Bloom(canvas, layer.Image(), area)
		}
	}

	for _, s := range p.Decorations.Strokes {
		r.painter.Paint(dc, vector.Place(0, 0), strokeDrawing(s))
	}

	for _, item := range p.Decorations.Stickers {
		at := vector.Placement{
			X:        item.X,
			Y:        item.Y,
			Rotation: item.Rotation,
			Scale:    item.Scale,
			Flip:     item.IsFlipped,
		}
		r.painter.Paint(dc, at, sticker.Draw(item.Kind()))
		if preview && item.ID != "" && item.ID == p.SelectedStickerID {
			r.painter.Paint(dc, at, sticker.Chrome(item.Scale))
		}
	}

	if effects.ClampLevel(p.NoiseLevel) > 0 {
		rng := p.Rand
		if rng == nil {
			rng = r.newRand()
		}
		effects.Grain(canvas, p.NoiseLevel, rng)
	}

	if p.ShowDate {
		now := p.Now
		if now.IsZero() {
			now = time.Now()
		}
		effects.DateStamp(dc, r.painter, now)
	}

	if geometry.Loaded(p.Frame) {
		geometry.DrawScaled(dc, p.Frame, geometry.Rect{W: float64(w), H: float64(h)})
	}
	return canvas
}

// subjectPlacement returns the subject (lit if requested) and where it
// lands on a w×h canvas after the automatic fit and the user transform.
func subjectPlacement(p RenderParams, w, h int) (image.Image, geometry.Rect, bool) {
	if !geometry.Loaded(p.Subject) {
		return nil, geometry.Rect{}, false
	}
	b := p.Subject.Bounds()
	iw, ih := float64(b.Dx()), float64(b.Dy())
	box := geometry.Rect{W: float64(w), H: float64(h)}

	var (
		place geometry.Rect
		ok    bool
	)
	if p.FitMode {
		place, ok = geometry.AspectFit(iw, ih, box)
	} else {
		align := geometry.FocusY(DefaultFocusY)
		if p.Crop != nil {
			align = *p.Crop
		}
		place, ok = geometry.AspectFill(iw, ih, box, align)
	}
	if !ok {
		return nil, geometry.Rect{}, false
	}

	// zoom about the canvas centre, then pan
	s := p.Transform.zoom()
	dx, dy := p.Transform.pan()
	cx, cy := box.Center()
	place = geometry.Rect{
		X: cx + (place.X-cx)*s + dx,
		Y: cy + (place.Y-cy)*s + dy,
		W: place.W * s,
		H: place.H * s,
	}

	var subject image.Image = p.Subject
	if p.Lighting {
		subject = effects.Lighting(subject)
	}
	return subject, place, true
}

const (
	strokeAlpha = 0.9
	neonBlur    = 15
)

// strokeDrawing builds a translucent round-capped line, or for neon
// strokes a glowing coloured pass under a thin white core.
func strokeDrawing(s Stroke) vector.Drawing {
	var d vector.Drawing
	if len(s.Points) < 2 || !(s.Width > 0) || math.IsInf(s.Width, 0) {
		return d
	}
	path := vector.NewPath().MoveTo(s.Points[0].X, s.Points[0].Y)
	for _, pt := range s.Points[1:] {
		path.LineTo(pt.X, pt.Y)
	}

	c := vector.ParseColor(s.Color)
	if s.IsNeon {
		d.Stroke(path, vector.Solid(c), s.Width, vector.Rounded(), vector.Glowing(c, neonBlur))
		d.Stroke(path, vector.Solid(color.White), math.Max(1, s.Width*0.4), vector.Rounded())
		return d
	}
	d.Stroke(path, vector.Solid(vector.WithAlpha(c, strokeAlpha)), s.Width, vector.Rounded())
	return d
}
