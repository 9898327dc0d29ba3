package sticker

import (
	"math"

	"github.com/youruser/photobooth/internal/vector"
)

const (
	chromeBlue = "#3b82f6"
	chromeRed  = "#ef4444"

	// handleRadius is the on-screen radius of the corner handles.
	handleRadius = 24
)

// HandleRadius returns the local-space radius of the corner handles for a
// sticker drawn at scale, so they keep a constant on-screen size.
func HandleRadius(scale float64) float64 {
	return handleRadius / math.Abs(scale)
}

// BoxHalf is half the side of the selection box in local units.
func BoxHalf() float64 {
	return BaseSize * 1.2 / 2
}

// Chrome draws the selection overlay for a sticker at scale: a dashed box,
// a delete handle top-right and a resize handle bottom-right. Widths and
// radii are divided by scale; the dash pattern scales with the sticker.
func Chrome(scale float64) vector.Drawing {
	var d vector.Drawing
	if scale == 0 || math.IsNaN(scale) || math.IsInf(scale, 0) {
		return d
	}
	half := BoxHalf()
	r := HandleRadius(scale)
	unit := 1 / math.Abs(scale)

	box := vector.NewPath().Rect(-half, -half, half*2, half*2)
	d.Stroke(box, vector.Hex(chromeBlue), 4*unit, vector.Dashed(15, 10))

	// delete: red disc with a white cross
	d.Fill(circle(half, -half, r), vector.Hex(chromeRed))
	cross := r * 0.4
	x := vector.NewPath().
		MoveTo(half-cross, -half-cross).LineTo(half+cross, -half+cross).
		MoveTo(half+cross, -half-cross).LineTo(half-cross, -half+cross)
	d.Stroke(x, vector.Hex("white"), 3*unit, vector.Rounded())

	// resize: blue disc with a diagonal double arrow
	d.Fill(circle(half, half, r), vector.Hex(chromeBlue))
	a := r * 0.5
	tip := 5 * unit
	arrow := vector.NewPath().
		MoveTo(half-a, half-a).LineTo(half+a, half+a).
		MoveTo(half+a-tip, half+a).LineTo(half+a, half+a).LineTo(half+a, half+a-tip).
		MoveTo(half-a+tip, half-a).LineTo(half-a, half-a).LineTo(half-a, half-a+tip)
	d.Stroke(arrow, vector.Hex("white"), 2*unit, vector.Rounded())
	return d
}
