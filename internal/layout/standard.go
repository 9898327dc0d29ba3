package layout

import (
	"image"
	"math"

	"github.com/youruser/photobooth/internal/fonts"
	"github.com/youruser/photobooth/internal/geometry"
	"github.com/youruser/photobooth/internal/vector"
)

// Cutting-mat sheet geometry. The photo block holds two large crops over
// four small ones; the sidebar to its right has the same height.
const (
	stdMargin = 60
	stdGap    = 40
	stdLargeW = 420
	stdLargeH = 560
	stdSmallW = 190
	stdSmallH = 250
	stdSideW  = 360
	stdStripe = 80

	stdBlockW = 2*stdLargeW + stdGap
	stdBlockH = stdLargeH + stdGap + stdSmallH

	stdSideX = stdMargin + stdBlockW + stdMargin
	stdSideY = stdMargin

	stdW = stdSideX + stdSideW + stdMargin
	stdH = stdMargin + stdBlockH + stdMargin

	stdFinePitch   = 20
	stdCoarsePitch = 100
	stdCutMark     = 16
)

// stdFocus keeps heads in frame on ID-photo crops.
var stdFocus = geometry.FocusY(0.15)

type box struct{ x, y, w, h float64 }

// standardBoxes returns the photo boxes in slot order: two large, four
// small, then the sidebar photo.
func standardBoxes() []box {
	boxes := []box{
		{stdMargin, stdMargin, stdLargeW, stdLargeH},
		{stdMargin + stdLargeW + stdGap, stdMargin, stdLargeW, stdLargeH},
	}
	for i := 0; i < 4; i++ {
		boxes = append(boxes, box{
			x: float64(stdMargin + i*(stdSmallW+stdGap)),
			y: stdMargin + stdLargeH + stdGap,
			w: stdSmallW,
			h: stdSmallH,
		})
	}
	side := standardSidebar()
	boxes = append(boxes, box{
		x: side.x + stdStripe + (stdSideW-stdStripe-stdSmallW)/2,
		y: side.y + side.h - stdSmallH - stdGap,
		w: stdSmallW,
		h: stdSmallH,
	})
	return boxes
}

func standardSidebar() box {
	return box{stdSideX, stdSideY, stdSideW, stdBlockH}
}

func drawStandard(s *sheet, photos []image.Image) *image.RGBA {
	s.init(stdW, stdH)
	s.fill("#f5f9fc")
	s.grid(stdFinePitch, 1, "#dbe7f0")
	s.grid(stdCoarsePitch, 2, "#8fb8de")

	side := standardSidebar()
	s.rect(side.x, side.y, side.w, side.h, "#ffffff")
	s.rect(side.x, side.y, stdStripe, side.h, "#1e293b")
	s.strokeRect(side.x, side.y, side.w, side.h, 3, "#333333")

	for i, b := range standardBoxes() {
		s.photo(slot(photos, i), b.x, b.y, b.w, b.h, stdFocus)
		s.cutMarks(b)
	}

	// vertical title
	var title vector.Drawing
	title.Text(vector.Text{
		S:       "PHOTO ID",
		Size:    44,
		Style:   fonts.Bold,
		AnchorX: 0.5,
		AnchorY: 0.5,
	}, vector.Hex("#ffffff"))
	s.painter.Paint(s.dc, vector.Placement{
		X:        side.x + stdStripe/2,
		Y:        side.y + side.h/2,
		Rotation: -math.Pi / 2,
		Scale:    1,
	}, title)

	label := textStyle{size: 16, style: fonts.Mono, color: "#64748b"}
	value := textStyle{size: 26, style: fonts.Bold, color: "#0f172a"}
	x := side.x + stdStripe + 24
	maxW := side.w - stdStripe - 48
	fields := []struct{ label, value string }{
		{"NAME", s.opts.Name},
		{"DATE", s.opts.date("2006.01.02")},
		{"PLACE", s.opts.location()},
	}
	y := side.y + 40
	for _, f := range fields {
		v := f.value
		if v == "" {
			v = "-"
		}
		s.text(f.label, x, y, label)
		s.text(s.truncate(v, value, maxW), x, y+32, value)
		y += 90
	}
	return s.canvas
}

// grid rules the mat with lines every pitch pixels.
func (s *sheet) grid(pitch int, width float64, c string) {
	w, h := s.width(), s.height()
	for x := 0.0; x <= w; x += float64(pitch) {
		s.dc.DrawLine(x, 0, x, h)
	}
	for y := 0.0; y <= h; y += float64(pitch) {
		s.dc.DrawLine(0, y, w, y)
	}
	s.dc.SetColor(vector.ParseColor(c))
	s.dc.SetLineWidth(width)
	s.dc.Stroke()
}

// cutMarks puts a small triangle outside each corner of b.
func (s *sheet) cutMarks(b box) {
	const m = stdCutMark
	corners := [][6]float64{
		{b.x, b.y, b.x - m, b.y, b.x, b.y - m},
		{b.x + b.w, b.y, b.x + b.w + m, b.y, b.x + b.w, b.y - m},
		{b.x, b.y + b.h, b.x - m, b.y + b.h, b.x, b.y + b.h + m},
		{b.x + b.w, b.y + b.h, b.x + b.w + m, b.y + b.h, b.x + b.w, b.y + b.h + m},
	}
	for _, c := range corners {
		s.dc.MoveTo(c[0], c[1])
		s.dc.LineTo(c[2], c[3])
		s.dc.LineTo(c[4], c[5])
		s.dc.ClosePath()
	}
	s.dc.SetColor(vector.ParseColor("#333333"))
	s.dc.Fill()
}
