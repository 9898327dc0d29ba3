package sticker

import (
	"math"

	"github.com/youruser/photobooth/internal/vector"
)

type metal uint8

const (
	silver metal = iota
	holo
	titanium
	gold
)

var metalStops = map[metal][]vector.Stop{
	silver: {
		vector.At(0, "#FFFFFF"),
		vector.At(0.3, "#E0E0E0"),
		vector.At(0.7, "#909090"),
		vector.At(1, "#505050"),
	},
	holo: {
		vector.At(0, "#FFFFFF"),
		vector.At(0.4, "#E0FFFF"),
		vector.At(0.7, "#FFB6C1"),
		vector.At(1, "#9370DB"),
	},
	titanium: {
		vector.At(0, "#F0F0F0"),
		vector.At(0.5, "#A9A9A9"),
		vector.At(1, "#2F4F4F"),
	},
	gold: {
		vector.At(0, "#FFFACD"),
		vector.At(0.4, "#FFD700"),
		vector.At(1, "#B8860B"),
	},
}

// metallic is a radial sheen lit from the upper left of a disc of
// radius r at (x, y).
func metallic(x, y, r float64, m metal) vector.Paint {
	return vector.Radial(x-r/3, y-r/3, 0, x, y, r, metalStops[m]...)
}

// Chrome animal heads built from shaded ellipses.
func drawCyber(k Kind) vector.Drawing {
	var d vector.Drawing
	switch k.Variant {
	case Bunny:
		cyberBunny(&d)
	case Kitty:
		cyberKitty(&d)
	case Puppy:
		cyberPuppy(&d)
	case Bird:
		cyberBird(&d)
	default:
		cyberBear(&d)
	}
	return d
}

func cyberBear(d *vector.Drawing) {
	d.Fill(circle(-35, -35, 18), metallic(-35, -35, 18, silver))
	d.Fill(circle(35, -35, 18), metallic(35, -35, 18, silver))
	d.Fill(circle(0, 0, 50), metallic(0, 0, 50, silver))

	d.Fill(ellipse(-20, -20, 15, 8, -math.Pi/4), vector.Hex("rgba(255,255,255,0.9)"))

	face := vector.NewPath().
		Circle(-15, 0, 4).
		Circle(15, 0, 4).
		Ellipse(0, 10, 8, 5, 0)
	d.Fill(face, vector.Hex("#000"))
}

func cyberBunny(d *vector.Drawing) {
	cyan := vector.Glowing(vector.ParseColor("cyan"), 15)
	d.Fill(ellipse(-25, -50, 15, 40, -0.2), metallic(-25, -50, 40, holo), cyan)
	d.Fill(ellipse(25, -50, 15, 40, 0.2), metallic(25, -50, 40, holo), cyan)

	d.Fill(circle(0, 0, 45), metallic(0, 0, 45, holo))

	eyes := vector.NewPath().Circle(-15, -5, 3).Circle(15, -5, 3)
	d.Fill(eyes, vector.Hex("#FFF"))
	d.Fill(vector.NewPath().Polygon(-5, 10, 5, 10, 0, 15), vector.Hex("#FFB6C1"))
}

func cyberKitty(d *vector.Drawing) {
	left := vector.NewPath().Polygon(-40, -20, -55, -60, -10, -35)
	d.Fill(left, metallic(-35, -40, 25, titanium))
	right := vector.NewPath().Polygon(40, -20, 55, -60, 10, -35)
	d.Fill(right, metallic(35, -40, 25, titanium))

	d.Fill(ellipse(0, 0, 55, 40, 0), metallic(0, 0, 55, titanium))

	eyes := vector.NewPath().Circle(-20, 0, 6).Circle(20, 0, 6)
	d.Fill(eyes, vector.Hex("#00FF00"), vector.Glowing(vector.ParseColor("#00FF00"), 10))

	whiskers := vector.NewPath().
		MoveTo(-40, 10).LineTo(-65, 10).
		MoveTo(-40, 18).LineTo(-60, 22).
		MoveTo(40, 10).LineTo(65, 10).
		MoveTo(40, 18).LineTo(60, 22)
	d.Stroke(whiskers, vector.Hex("#FFF"), 1)
}

func cyberPuppy(d *vector.Drawing) {
	d.Fill(ellipse(-45, -10, 15, 35, 0.4), metallic(-45, -10, 35, silver))
	d.Fill(ellipse(45, -10, 15, 35, -0.4), metallic(45, -10, 35, silver))

	d.Fill(circle(0, 0, 48), metallic(0, 0, 48, silver))

	eyes := vector.NewPath().Circle(-18, -5, 6).Circle(18, -5, 6)
	d.Fill(eyes, vector.Hex("#111"))
	shine := vector.NewPath().Circle(-20, -8, 2).Circle(16, -8, 2)
	d.Fill(shine, vector.Hex("#FFF"))

	d.Fill(ellipse(0, 15, 12, 8, 0), vector.Hex("#333"))
}

func cyberBird(d *vector.Drawing) {
	halo := vector.Glowing(vector.ParseColor("gold"), 10)
	d.Fill(ellipse(-35, 10, 15, 8, -0.5), metallic(-35, 10, 15, gold), halo)
	d.Fill(ellipse(35, 10, 15, 8, 0.5), metallic(35, 10, 15, gold), halo)

	d.Fill(circle(0, 0, 40), metallic(0, 0, 40, gold), halo)

	eyes := vector.NewPath().Circle(-15, -10, 4).Circle(15, -10, 4)
	d.Fill(eyes, vector.Hex("#000"))
	d.Fill(vector.NewPath().Polygon(-5, 0, 5, 0, 0, 8), vector.Hex("#FF4500"))

	tuft := vector.NewPath().MoveTo(0, -40).QuadTo(5, -55, 15, -50)
	d.Stroke(tuft, vector.Hex("#DAA520"), 2)
}
