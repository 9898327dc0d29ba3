package layout

import (
	"image"

	"github.com/youruser/photobooth/internal/fonts"
	"github.com/youruser/photobooth/internal/geometry"
	"github.com/youruser/photobooth/internal/vector"
)

const (
	magazinePhotoW = 600
	magazinePhotoH = 840
	magazineMargin = 60
	magazineHeader = 200
	magazineMat    = 10
)

// magazineCell returns the top-left of grid cell i.
func magazineCell(i int) (int, int) {
	col, row := i%2, i/2
	return magazineMargin + col*(magazinePhotoW+magazineMargin),
		magazineHeader + row*(magazinePhotoH+magazineMargin)
}

// drawMagazine is a two-column collage of every photo, at least 2×2,
// under a big script title on a pink card.
func drawMagazine(s *sheet, photos []image.Image) *image.RGBA {
	cells := max(4, len(photos))
	cells += cells % 2
	rows := cells / 2

	w := 2*magazinePhotoW + 3*magazineMargin
	h := magazineHeader + rows*(magazinePhotoH+magazineMargin) + magazineMargin
	s.init(w, h)
	s.gradient(0, 0, float64(w), float64(h), "#ff9a9e", "#fecfef")

	s.text("Besties", float64(w)/2, 140,
		textStyle{size: 100, style: fonts.BoldItalic, color: "#ffffff", anchor: 0.5},
		vector.Glowing(vector.ParseColor("rgba(0,0,0,0.2)"), 10))

	for i := 0; i < cells; i++ {
		x, y := magazineCell(i)
		fx, fy := float64(x), float64(y)
		s.rect(fx-magazineMat, fy-magazineMat, magazinePhotoW+2*magazineMat, magazinePhotoH+2*magazineMat, "#ffffff")
		s.photo(slot(photos, i), fx, fy, magazinePhotoW, magazinePhotoH, geometry.Centered())
	}
	return s.canvas
}
