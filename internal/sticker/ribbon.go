package sticker

import (
	"github.com/youruser/photobooth/internal/vector"
)

type ribbonColors struct {
	base, dark string
}

var ribbonPalette = map[Variant]ribbonColors{
	BowPink: {base: "#FFC0CB", dark: "#FF69B4"},
	BowBlue: {base: "#87CEFA", dark: "#4682B4"},
	BowRed:  {base: "#D22B2B", dark: "#8B0000"},
}

// bowPath is a two-loop bow with notched tails.
func bowPath() *vector.Path {
	p := vector.NewPath()
	// loops
	p.MoveTo(0, 0).CubicTo(-40, -40, -80, -20, -40, 20).LineTo(0, 0)
	p.CubicTo(40, -40, 80, -20, 40, 20).LineTo(0, 0)
	// tails
	p.MoveTo(0, 0).QuadTo(-20, 50, -50, 60).LineTo(-30, 60).QuadTo(-15, 50, 0, 10)
	p.MoveTo(0, 0).QuadTo(20, 50, 50, 60).LineTo(30, 60).QuadTo(15, 50, 0, 10)
	return p
}

func drawRibbon(k Kind) vector.Drawing {
	colors, ok := ribbonPalette[k.Variant]
	if !ok {
		colors = ribbonPalette[BowRed]
	}
	base := vector.Hex(colors.base)
	dark := vector.Hex(colors.dark)
	bow := bowPath()

	var d vector.Drawing
	if k.Check {
		// gingham: white ground, crossed stripes clipped to the bow
		d.Fill(bow, vector.Hex("white"))
		d.Save()
		d.Clip(bow)
		stripes := vector.NewPath()
		for i := -100.0; i < 100; i += 8 {
			stripes.MoveTo(i, -100).LineTo(i, 100)
			stripes.MoveTo(-100, i).LineTo(100, i)
		}
		d.Stroke(stripes, base, 4)
		d.Restore()
	} else {
		d.Fill(bow, vector.Linear(-40, -40, 40, 40,
			vector.At(0, colors.base),
			vector.At(0.5, "white"),
			vector.At(1, colors.base),
		))
	}

	d.Stroke(bow, dark, 1)

	knot := dark
	if k.Check {
		knot = base
	}
	d.Fill(circle(0, 0, 8), knot)
	return d
}
