package sticker

import (
	"image/color"

	"github.com/youruser/photobooth/internal/fonts"
	"github.com/youruser/photobooth/internal/vector"
)

// BaseSize is the nominal sticker extent in local units; text stickers are
// set at this pixel size and the selection box is 1.2× it.
const BaseSize = 150

// Draw builds the drawing for k in local coordinates.
func Draw(k Kind) vector.Drawing {
	switch k.Family {
	case Y2K:
		return drawY2K(k)
	case Ribbon:
		return drawRibbon(k)
	case Doodle:
		return drawDoodle(k)
	case Retro:
		return drawRetro(k)
	case Cyber:
		return drawCyber(k)
	default:
		return drawText(k.Content)
	}
}

func drawText(s string) vector.Drawing {
	var d vector.Drawing
	d.Text(vector.Text{
		S:       s,
		Size:    BaseSize,
		Style:   fonts.Emoji,
		AnchorX: 0.5,
		AnchorY: 0.5,
	}, vector.Solid(color.Black))
	return d
}

// circle is shorthand for a fresh path holding one circle.
func circle(x, y, r float64) *vector.Path {
	return vector.NewPath().Circle(x, y, r)
}

func ellipse(x, y, rx, ry, rot float64) *vector.Path {
	return vector.NewPath().Ellipse(x, y, rx, ry, rot)
}

func rect(x, y, w, h float64) *vector.Path {
	return vector.NewPath().Rect(x, y, w, h)
}
