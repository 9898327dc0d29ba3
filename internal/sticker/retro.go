package sticker

import (
	"github.com/youruser/photobooth/internal/vector"
)

// Vintage Christmas palette.
const (
	retroRed    = "#C4423F"
	retroGreen  = "#2E5E4E"
	retroGold   = "#D4AF37"
	retroCream  = "#F2E8C9"
	retroStroke = "#4A3328"
)

// retroLine is the brown ink outline every retro shape gets.
func retroLine(d *vector.Drawing, p *vector.Path) {
	d.Stroke(p, vector.Hex(retroStroke), 3.5, vector.Rounded())
}

// retroShape fills p and outlines it in ink.
func retroShape(d *vector.Drawing, p *vector.Path, fill string, opts ...vector.Option) {
	d.Fill(p, vector.Hex(fill), opts...)
	retroLine(d, p)
}

func drawRetro(k Kind) vector.Drawing {
	var d vector.Drawing
	switch k.Variant {
	case Holly:
		retroHolly(&d)
	case Light:
		retroLight(&d)
	case Stocking:
		retroStocking(&d)
	case Tree:
		retroTree(&d)
	default:
		retroBauble(&d)
	}
	return d
}

func retroBauble(d *vector.Drawing) {
	ball := circle(0, 10, 45)
	d.Fill(ball, vector.Hex(retroRed))

	// cream band with green dots
	d.Save()
	d.Clip(ball)
	d.Fill(rect(-50, 0, 100, 20), vector.Hex(retroCream))
	dots := vector.NewPath().Circle(-25, 10, 4).Circle(0, 10, 4).Circle(25, 10, 4)
	d.Fill(dots, vector.Hex(retroGreen))
	d.Restore()

	retroLine(d, ball)

	retroShape(d, rect(-10, -40, 20, 10), retroGold)
	retroLine(d, circle(0, -45, 5))
}

func retroHolly(d *vector.Drawing) {
	for _, angle := range []float64{-0.5, 0.5} {
		d.Save()
		d.Rotate(angle)
		leaf := vector.NewPath().
			MoveTo(0, 0).
			QuadTo(15, -10, 30, 0).
			QuadTo(45, -10, 60, 0).
			QuadTo(45, 10, 30, 0).
			QuadTo(15, 10, 0, 0)
		retroShape(d, leaf, retroGreen)
		vein := vector.NewPath().MoveTo(0, 0).LineTo(55, 0)
		d.Stroke(vein, vector.Hex(retroCream), 1)
		d.Restore()
	}

	berries := [][2]float64{{-5, -5}, {8, 0}, {0, 8}}
	for _, b := range berries {
		retroShape(d, circle(b[0], b[1], 8), retroRed)
		d.Fill(circle(b[0]-2, b[1]-2, 2), vector.Hex("white"))
	}
}

func retroLight(d *vector.Drawing) {
	bulb := vector.NewPath().
		MoveTo(0, -40).
		CubicTo(30, -10, 30, 30, 0, 50).
		CubicTo(-30, 30, -30, -10, 0, -40)
	retroShape(d, bulb, retroGold, vector.Glowing(vector.ParseColor(retroGold), 25))

	retroShape(d, rect(-12, -55, 24, 15), "#C0C0C0")
	ridges := vector.NewPath().
		MoveTo(-12, -50).LineTo(12, -50).
		MoveTo(-12, -45).LineTo(12, -45)
	d.Stroke(ridges, vector.Hex(retroStroke), 1)
}

func retroStocking(d *vector.Drawing) {
	sock := vector.NewPath().
		MoveTo(-15, -50).
		LineTo(15, -50).
		LineTo(15, 0).
		CubicTo(15, 30, 20, 35, 35, 40).
		LineTo(35, 55).
		CubicTo(0, 55, -20, 45, -25, 35).
		LineTo(-25, 0).
		LineTo(-15, -50).
		Close()
	retroShape(d, sock, retroRed)
	retroShape(d, rect(-20, -50, 40, 15), retroCream)

	// toe and heel patches
	patches := vector.NewPath().
		Polygon(35, 40, 35, 55, 20, 50).
		Polygon(-25, 35, -15, 30, -15, 45)
	d.Fill(patches, vector.Hex(retroGreen))
}

func retroTree(d *vector.Drawing) {
	retroShape(d, rect(-10, 35, 20, 25), "#5C4033")

	tiers := [][3]float64{{40, 45, 40}, {15, 35, 35}, {-10, 25, 30}}
	for _, t := range tiers {
		y, w, h := t[0], t[1], t[2]
		tier := vector.NewPath().Polygon(0, y-h, w, y, -w, y)
		retroShape(d, tier, retroGreen)
	}

	red := vector.NewPath().Circle(-15, 30, 4).Circle(10, 5, 4)
	d.Fill(red, vector.Hex(retroRed))
	cream := vector.NewPath().Circle(15, 30, 4).Circle(-5, -5, 4)
	d.Fill(cream, vector.Hex(retroCream))

	star := vector.NewPath().Polygon(
		0, -45, 5, -35, 15, -35, 7, -25, 10, -15,
		0, -20, -10, -15, -7, -25, -15, -35, -5, -35,
	)
	retroShape(d, star, retroGold)
}
