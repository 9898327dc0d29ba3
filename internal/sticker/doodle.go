package sticker

import (
	"math"

	"github.com/youruser/photobooth/internal/vector"
)

const (
	doodleOutline = "#FF69B4"
	doodleCore    = "#FFFFFF"
)

// Marker doodles: every path is stroked thick in hot pink, then thin in
// white on top.
func drawDoodle(k Kind) vector.Drawing {
	p := vector.NewPath()
	switch k.Variant {
	case Heart:
		p.MoveTo(0, 15).
			CubicTo(-20, -10, -40, 10, 0, 40).
			CubicTo(40, 10, 20, -10, 0, 15)
		// scribble fill
		p.MoveTo(-10, 20).LineTo(10, 20)
	case Wings:
		p.MoveTo(-10, 0).
			QuadTo(-40, -30, -70, -10).
			QuadTo(-60, 10, -50, 10).
			QuadTo(-40, 20, -10, 10)
		p.MoveTo(10, 0).
			QuadTo(40, -30, 70, -10).
			QuadTo(60, 10, 50, 10).
			QuadTo(40, 20, 10, 10)
	case Whiskers:
		for _, side := range []float64{-1, 1} {
			p.MoveTo(60*side, -10).LineTo(100*side, -20)
			p.MoveTo(60*side, 10).LineTo(100*side, 10)
			p.MoveTo(60*side, 30).LineTo(100*side, 40)
		}
	case Crown:
		p.MoveTo(-30, 20).
			LineTo(-30, -10).LineTo(-15, 10).
			LineTo(0, -20).LineTo(15, 10).
			LineTo(30, -10).LineTo(30, 20).
			Close()
		// jewel
		p.MoveTo(0, -25).Arc(0, -25, 2, 0, 2*math.Pi)
	default:
		p.MoveTo(0, -30).LineTo(0, 30)
		p.MoveTo(-20, 0).LineTo(20, 0)
		p.MoveTo(15, -15).LineTo(18, -18)
	}

	var d vector.Drawing
	d.Stroke(p, vector.Hex(doodleOutline), 6, vector.Rounded())
	d.Stroke(p, vector.Hex(doodleCore), 3, vector.Rounded())
	return d
}
