// Package layout arranges finished composites into printable sheets and
// letterboxes them onto a standard print canvas.
package layout

import (
	"errors"
	"image"
	"image/color"
	"sort"
	"time"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"

	"github.com/youruser/photobooth/internal/fonts"
	"github.com/youruser/photobooth/internal/geometry"
	imagepkg "github.com/youruser/photobooth/internal/image"
	"github.com/youruser/photobooth/internal/vector"
)

// ErrNoSources is returned when there is nothing loaded to lay out.
var ErrNoSources = errors.New("layout: no source images")

// Print canvas sizes: 3.5"×5" at 300 DPI.
const (
	PrintShort = 1050
	PrintLong  = 1500
)

// Options carries the optional text printed on some templates.
type Options struct {
	Location string
	Name     string
	// Date replaces the formatted Now when set.
	Date string
	// Now is the sheet date; zero means time.Now().
	Now time.Time
	// Fonts overrides the embedded fonts.
	Fonts *fonts.Manager
}

func (o Options) date(layout string) string {
	if o.Date != "" {
		return o.Date
	}
	now := o.Now
	if now.IsZero() {
		now = time.Now()
	}
	return now.Format(layout)
}

func (o Options) location() string {
	if o.Location != "" {
		return o.Location
	}
	return "TOKYO"
}

type template struct {
	slots int
	draw  func(s *sheet, photos []image.Image) *image.RGBA
}

var templates = map[string]template{
	"cinema":         {slots: 4, draw: drawCinema},
	"standard":       {slots: 1, draw: drawStandard},
	"magazine":       {slots: 4, draw: drawMagazine},
	"driver_license": {slots: 1, draw: drawLicense},
	"wanted":         {slots: 1, draw: drawWanted},
	"polaroid":       {slots: 1, draw: drawPolaroid},
}

// Templates lists the known template ids.
func Templates() []string {
	ids := make([]string, 0, len(templates))
	for id := range templates {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Slots reports how many poses a template asks for; unknown ids take one.
func Slots(id string) int {
	if t, ok := templates[id]; ok {
		return t.slots
	}
	return 1
}

// Sheet is a letterboxed, print-sized layout.
type Sheet struct {
	Template string
	Image    *image.NRGBA
}

// JPEG encodes the sheet; quality outside 1..100 uses 95.
func (s *Sheet) JPEG(quality int) ([]byte, error) {
	return imagepkg.JPEG(s.Image, quality)
}

// DataURI returns the sheet as a base64 JPEG data URI.
func (s *Sheet) DataURI() (string, error) {
	b, err := s.JPEG(imagepkg.DefaultJPEGQuality)
	if err != nil {
		return "", err
	}
	return imagepkg.DataURI("image/jpeg", b), nil
}

// Generate lays sources out with the template and letterboxes the result.
// Unloaded sources are ignored; with none left it returns ErrNoSources.
func Generate(sources []image.Image, templateID string, opts Options) (*Sheet, error) {
	raw, err := Build(sources, templateID, opts)
	if err != nil {
		return nil, err
	}
	return &Sheet{Template: templateID, Image: Letterbox(raw)}, nil
}

// Build draws the template at its native size without letterboxing.
func Build(sources []image.Image, templateID string, opts Options) (*image.RGBA, error) {
	photos := loaded(sources)
	if len(photos) == 0 {
		return nil, ErrNoSources
	}
	s := &sheet{opts: opts, fonts: opts.Fonts}
	if s.fonts == nil {
		s.fonts = fonts.Default()
	}
	s.painter = vector.NewPainter(s.fonts)

	t, ok := templates[templateID]
	if !ok {
		return drawOriginal(photos[0]), nil
	}
	return t.draw(s, photos), nil
}

func loaded(sources []image.Image) []image.Image {
	var out []image.Image
	for _, img := range sources {
		if geometry.Loaded(img) {
			out = append(out, img)
		}
	}
	return out
}

// slot returns the photo for slot i, repeating the first photo once the
// supplied ones run out.
func slot(photos []image.Image, i int) image.Image {
	if i < len(photos) {
		return photos[i]
	}
	return photos[0]
}

// drawOriginal is the fallback: the first photo at its own size.
func drawOriginal(img image.Image) *image.RGBA {
	b := img.Bounds()
	canvas := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	dc := gg.NewContextForRGBA(canvas)
	geometry.DrawScaled(dc, img, geometry.Rect{W: float64(b.Dx()), H: float64(b.Dy())})
	return canvas
}

// Letterbox fits img, uncropped and centred, onto the portrait or
// landscape print canvas matching its orientation, with white margins.
func Letterbox(img image.Image) *image.NRGBA {
	b := img.Bounds()
	w, h := PrintShort, PrintLong
	if b.Dx() > b.Dy() {
		w, h = PrintLong, PrintShort
	}
	canvas := imaging.New(w, h, color.White)
	fit, ok := geometry.AspectFit(float64(b.Dx()), float64(b.Dy()), geometry.Rect{W: float64(w), H: float64(h)})
	if !ok {
		return canvas
	}
	fw := max(1, int(fit.W+0.5))
	fh := max(1, int(fit.H+0.5))
	scaled := imaging.Resize(img, fw, fh, imaging.Lanczos)
	return imaging.OverlayCenter(canvas, scaled, 1)
}
