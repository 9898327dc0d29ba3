package layout

import (
	"image"
	"math/rand"
	"strings"

	"github.com/youruser/photobooth/internal/effects"
	"github.com/youruser/photobooth/internal/fonts"
	"github.com/youruser/photobooth/internal/geometry"
	"github.com/youruser/photobooth/internal/vector"
)

const (
	wantedW      = 1200
	wantedH      = 1800
	wantedPhotoW = 900
	wantedPhotoH = 1260
	wantedPhotoY = 250
	wantedInk    = "#3e2723"

	// paperSeed fixes the poster's paper texture.
	paperSeed = 1885
)

// drawWanted is an old west poster around the first photo.
func drawWanted(s *sheet, photos []image.Image) *image.RGBA {
	s.init(wantedW, wantedH)
	s.fill("#e8dcb5")
	effects.Grain(s.canvas, 0.1, rand.New(rand.NewSource(paperSeed)))

	cx := float64(wantedW) / 2
	s.text("WANTED", cx, 180, textStyle{size: 140, style: fonts.Bold, color: wantedInk, anchor: 0.5})

	x := float64(wantedW-wantedPhotoW) / 2
	y := float64(wantedPhotoY)
	s.photo(photos[0], x, y, wantedPhotoW, wantedPhotoH, geometry.Centered())
	s.strokeRect(x, y, wantedPhotoW, wantedPhotoH, 15, wantedInk)

	if s.opts.Name != "" {
		name := s.truncate(strings.ToUpper(s.opts.Name), textStyle{size: 48, style: fonts.Bold}, wantedPhotoW)
		s.text(name, cx, y+wantedPhotoH+45, textStyle{size: 48, style: fonts.Bold, color: wantedInk, anchor: 0.5})
	}
	s.text("REWARD", cx, y+wantedPhotoH+100+20, textStyle{size: 80, style: fonts.Bold, color: wantedInk, anchor: 0.5})
	s.text("$1,000,000", cx, y+wantedPhotoH+220+20, textStyle{size: 100, style: fonts.Bold, color: "#d32f2f", anchor: 0.5})
	return s.canvas
}

const (
	polaroidW      = 1200
	polaroidH      = 1400
	polaroidCardX  = 100
	polaroidCardY  = 100
	polaroidCardW  = 1000
	polaroidCardH  = 1200
	polaroidBorder = 60
)

// drawPolaroid is one instant-film card on a blue gradient.
func drawPolaroid(s *sheet, photos []image.Image) *image.RGBA {
	s.init(polaroidW, polaroidH)
	s.gradient(0, 0, 0, polaroidH, "#a1c4fd", "#c2e9fb")

	var card vector.Drawing
	card.Fill(vector.NewPath().Rect(polaroidCardX, polaroidCardY, polaroidCardW, polaroidCardH),
		vector.Hex("#fdfdfb"),
		vector.Glowing(vector.ParseColor("rgba(0,0,0,0.25)"), 20))
	s.painter.Paint(s.dc, vector.Place(0, 0), card)

	side := float64(polaroidCardW - 2*polaroidBorder)
	px := float64(polaroidCardX + polaroidBorder)
	py := float64(polaroidCardY + polaroidBorder)
	s.photo(photos[0], px, py, side, side, geometry.Centered())

	caption := s.opts.Name
	if caption == "" {
		caption = s.opts.location()
	}
	capStyle := textStyle{size: 64, style: fonts.Script, color: "#333333", anchor: 0.5}
	caption = s.truncate(caption, capStyle, side)
	s.text(caption, polaroidW/2, py+side+130, capStyle)
	s.text(s.opts.date("2006.01.02"), px+side, py+side+200,
		textStyle{size: 28, style: fonts.Mono, color: "#888888", anchor: 1})
	return s.canvas
}
