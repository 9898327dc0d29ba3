package layout

import (
	"image"
	"log"

	"github.com/fogleman/gg"
	"golang.org/x/image/font"

	"github.com/youruser/photobooth/internal/fonts"
	"github.com/youruser/photobooth/internal/geometry"
	"github.com/youruser/photobooth/internal/vector"
)

// sheet is the drawing state of one Build call.
type sheet struct {
	opts    Options
	fonts   *fonts.Manager
	painter *vector.Painter

	canvas *image.RGBA
	dc     *gg.Context
}

func (s *sheet) init(w, h int) {
	s.canvas = image.NewRGBA(image.Rect(0, 0, w, h))
	s.dc = gg.NewContextForRGBA(s.canvas)
}

func (s *sheet) width() float64  { return float64(s.dc.Width()) }
func (s *sheet) height() float64 { return float64(s.dc.Height()) }

func (s *sheet) fill(c string) {
	s.rect(0, 0, s.width(), s.height(), c)
}

func (s *sheet) rect(x, y, w, h float64, c string) {
	s.dc.DrawRectangle(x, y, w, h)
	s.dc.SetColor(vector.ParseColor(c))
	s.dc.Fill()
}

func (s *sheet) strokeRect(x, y, w, h, width float64, c string) {
	s.dc.DrawRectangle(x, y, w, h)
	s.dc.SetColor(vector.ParseColor(c))
	s.dc.SetLineWidth(width)
	s.dc.Stroke()
}

func (s *sheet) gradient(x0, y0, x1, y1 float64, from, to string) {
	g := gg.NewLinearGradient(x0, y0, x1, y1)
	g.AddColorStop(0, vector.ParseColor(from))
	g.AddColorStop(1, vector.ParseColor(to))
	s.dc.SetFillStyle(g)
	s.dc.DrawRectangle(0, 0, s.width(), s.height())
	s.dc.Fill()
}

// photo cover-fits img into the box.
func (s *sheet) photo(img image.Image, x, y, w, h float64, a geometry.Align) {
	geometry.DrawCover(s.dc, img, geometry.Rect{X: x, Y: y, W: w, H: h}, a)
}

type textStyle struct {
	size  float64
	style fonts.Style
	color string
	// anchor is 0 for left, 0.5 for centre and 1 for right alignment.
	anchor float64
}

// text draws str with its baseline at y.
func (s *sheet) text(str string, x, y float64, ts textStyle, opts ...vector.Option) {
	var d vector.Drawing
	d.Text(vector.Text{
		S:       str,
		X:       x,
		Y:       y,
		Size:    ts.size,
		Style:   ts.style,
		AnchorX: ts.anchor,
	}, vector.Hex(ts.color), opts...)
	s.painter.Paint(s.dc, vector.Place(0, 0), d)
}

// truncate shortens str with an ellipsis until it fits in maxW pixels.
func (s *sheet) truncate(str string, ts textStyle, maxW float64) string {
	face, err := s.fonts.Face(ts.style, ts.size)
	if err != nil {
		log.Println("measure text:", err)
		return str
	}
	defer face.Close()

	measure := func(v string) float64 {
		return float64(font.MeasureString(face, v)) / 64
	}
	if measure(str) <= maxW {
		return str
	}
	runes := []rune(str)
	for n := len(runes) - 1; n > 0; n-- {
		v := string(runes[:n]) + "…"
		if measure(v) <= maxW {
			return v
		}
	}
	return "…"
}
