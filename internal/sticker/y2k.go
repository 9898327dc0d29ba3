package sticker

import (
	"math"

	"github.com/youruser/photobooth/internal/vector"
)

// Metallic and holographic shapes: crescent moon, sharp four-point cross,
// or a five-point star, with a coloured glow and a white bevel.
func drawY2K(k Kind) vector.Drawing {
	var (
		fill vector.Paint
		glow string
	)
	if k.Holo {
		fill = vector.Linear(-50, -50, 50, 50,
			vector.At(0, "#FFC3EB"),
			vector.At(0.5, "#C3FBD8"),
			vector.At(1, "#ACE0F9"),
		)
		glow = "#FF69B4"
	} else {
		fill = vector.Linear(-50, -50, 50, 50,
			vector.At(0, "#E0E0E0"),
			vector.At(0.4, "#FFFFFF"),
			vector.At(0.6, "#FFFFFF"),
			vector.At(1, "#A0A0A0"),
		)
		glow = "#ACE0F9"
	}

	var shape *vector.Path
	switch k.Variant {
	case Moon:
		shape = vector.NewPath().
			Arc(0, 0, 50, 2.0, 5.5).
			CubicTo(20, -30, 20, 30, -21, 35).
			Close()
	case Cross:
		shape = vector.NewPath().
			MoveTo(0, -60).
			QuadTo(5, -10, 60, 0).
			QuadTo(5, 10, 0, 60).
			QuadTo(-5, 10, -60, 0).
			QuadTo(-5, -10, 0, -60).
			Close()
	default:
		shape = starPath(5, 55, 25)
	}

	var d vector.Drawing
	d.Fill(shape, fill, vector.Glowing(vector.ParseColor(glow), 15))
	d.Stroke(shape, vector.Hex("rgba(255, 255, 255, 0.9)"), 2)
	return d
}

// starPath traces a star with the given number of spikes, starting at the
// top point.
func starPath(spikes int, outer, inner float64) *vector.Path {
	p := vector.NewPath().MoveTo(0, -outer)
	rot := math.Pi / 2 * 3
	step := math.Pi / float64(spikes)
	for i := 0; i < spikes; i++ {
		p.LineTo(math.Cos(rot)*outer, math.Sin(rot)*outer)
		rot += step
		p.LineTo(math.Cos(rot)*inner, math.Sin(rot)*inner)
		rot += step
	}
	return p.Close()
}
