package layout

import (
	"image"

	"github.com/youruser/photobooth/internal/fonts"
	"github.com/youruser/photobooth/internal/geometry"
)

// Film strip geometry.
const (
	cinemaPhotoW     = 400
	cinemaPhotoH     = 560
	cinemaGapY       = 20
	cinemaHoleW      = 12
	cinemaHoleH      = 8
	cinemaHoleGap    = 15
	cinemaSidePad    = 30
	cinemaTopMargin  = 50
	cinemaFootMargin = 100
	cinemaStripGap   = 50
	cinemaOuterPad   = 40
	cinemaFrames     = 4

	cinemaStripW = cinemaPhotoW + 2*cinemaSidePad
	cinemaStripH = cinemaTopMargin + cinemaFrames*cinemaPhotoH + (cinemaFrames-1)*cinemaGapY + cinemaFootMargin
)

// cinemaFrame returns the top-left of frame i on the strip at offset.
func cinemaFrame(offset, i int) (int, int) {
	x := cinemaOuterPad + offset + cinemaSidePad
	y := cinemaOuterPad + cinemaTopMargin + i*(cinemaPhotoH+cinemaGapY)
	return x, y
}

// drawCinema prints two identical black film strips of four frames side
// by side on white paper.
func drawCinema(s *sheet, photos []image.Image) *image.RGBA {
	w := 2*cinemaStripW + cinemaStripGap + 2*cinemaOuterPad
	h := cinemaStripH + 2*cinemaOuterPad
	s.init(w, h)
	s.fill("#ffffff")

	inner := float64(cinemaOuterPad)
	s.rect(inner, inner, float64(w-2*cinemaOuterPad), float64(h-2*cinemaOuterPad), "#111111")

	for _, offset := range []int{0, cinemaStripW + cinemaStripGap} {
		// sprocket holes
		left := inner + float64(offset) + (cinemaSidePad-cinemaHoleW)/2.0
		right := inner + float64(offset) + cinemaStripW - (cinemaSidePad+cinemaHoleW)/2.0
		for y := 0; y < cinemaStripH; y += cinemaHoleH + cinemaHoleGap {
			s.rect(left, inner+float64(y), cinemaHoleW, cinemaHoleH, "#555555")
			s.rect(right, inner+float64(y), cinemaHoleW, cinemaHoleH, "#555555")
		}

		for i := 0; i < cinemaFrames; i++ {
			x, y := cinemaFrame(offset, i)
			s.photo(slot(photos, i), float64(x), float64(y), cinemaPhotoW, cinemaPhotoH, geometry.Centered())
		}

		_, last := cinemaFrame(offset, cinemaFrames)
		cx := inner + float64(offset) + cinemaStripW/2.0
		foot := float64(last) + 50
		s.text("LIFE4CUTS", cx, foot, textStyle{size: 28, style: fonts.Bold, color: "#ffffff", anchor: 0.5})
		s.text(s.opts.date("2006.01.02"), cx, foot+25, textStyle{size: 16, style: fonts.Regular, color: "#888888", anchor: 0.5})
	}
	return s.canvas
}
