package vector

import (
	"image/color"
	"math"
	"testing"

	"github.com/fogleman/gg"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.NRGBA
		ok   bool
	}{
		{"#ffffff", color.NRGBA{255, 255, 255, 255}, true},
		{"#FF69B4", color.NRGBA{0xff, 0x69, 0xb4, 0xff}, true},
		{"#abc", color.NRGBA{0xaa, 0xbb, 0xcc, 0xff}, true},
		{"#11223380", color.NRGBA{0x11, 0x22, 0x33, 0x80}, true},
		{"rgba(255, 255, 255, 0.9)", color.NRGBA{255, 255, 255, 230}, true},
		{"rgb(10,20,30)", color.NRGBA{10, 20, 30, 255}, true},
		{"white", color.NRGBA{255, 255, 255, 255}, true},
		{"linear-gradient(45deg, #fff, #000)", color.NRGBA{}, false},
		{"#12345", color.NRGBA{}, false},
	}
	for _, tt := range tests {
		got, ok := LookupColor(tt.in)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("LookupColor(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
	if got := ParseColor("nonsense"); got != (color.NRGBA{255, 255, 255, 255}) {
		t.Errorf("ParseColor fallback = %v, want white", got)
	}
}

func TestPathBounds(t *testing.T) {
	p := NewPath().MoveTo(-10, 5).QuadTo(0, -20, 10, 5).Circle(30, 0, 4)
	minX, minY, maxX, maxY := p.Bounds()
	if minX != -10 || minY != -20 || maxX != 34 || maxY != 5 {
		t.Errorf("Bounds = %v %v %v %v", minX, minY, maxX, maxY)
	}
	if x0, y0, x1, y1 := (*Path)(nil).Bounds(); x0 != 0 || y0 != 0 || x1 != 0 || y1 != 0 {
		t.Error("nil path should have zero bounds")
	}
}

func TestDrawingCount(t *testing.T) {
	var d Drawing
	if d.Paints() {
		t.Fatal("empty drawing should not paint")
	}
	d.Save()
	d.Fill(NewPath().Rect(0, 0, 1, 1), Hex("#000"))
	d.Stroke(NewPath().Rect(0, 0, 1, 1), Hex("#000"), 1, Rounded(), Dashed(2, 2))
	d.Restore()
	if d.Count(OpFill) != 1 || d.Count(OpStroke) != 1 || !d.Paints() {
		t.Errorf("unexpected counts in %v", d.Ops)
	}
	if d.Ops[2].Cap != CapRound || len(d.Ops[2].Dash) != 2 {
		t.Errorf("options not applied: %+v", d.Ops[2])
	}
}

func rgba(dc *gg.Context, x, y int) color.RGBA {
	return color.RGBAModel.Convert(dc.Image().At(x, y)).(color.RGBA)
}

func TestPainter_PlacementTranslatesAndScales(t *testing.T) {
	var d Drawing
	d.Fill(NewPath().Rect(-5, -5, 10, 10), Hex("#ff0000"))

	dc := gg.NewContext(100, 100)
	NewPainter(nil).Paint(dc, Placement{X: 50, Y: 50, Scale: 2}, d)

	if got := rgba(dc, 50, 50); got.R != 255 || got.A != 255 {
		t.Errorf("centre = %v, want red", got)
	}
	// scaled square spans 40..60
	if got := rgba(dc, 58, 58); got.R != 255 {
		t.Errorf("scaled edge = %v, want red", got)
	}
	if got := rgba(dc, 62, 50); got.A != 0 {
		t.Errorf("outside = %v, want transparent", got)
	}
}

func TestPainter_FlipMirrors(t *testing.T) {
	var d Drawing
	d.Fill(NewPath().Rect(0, -5, 20, 10), Hex("#00ff00"))

	dc := gg.NewContext(100, 100)
	NewPainter(nil).Paint(dc, Placement{X: 50, Y: 50, Scale: 1, Flip: true}, d)

	if got := rgba(dc, 40, 50); got.G != 255 {
		t.Errorf("mirrored side = %v, want green", got)
	}
	if got := rgba(dc, 60, 50); got.A != 0 {
		t.Errorf("original side = %v, want transparent", got)
	}
}

func TestPainter_StrokeWidthFollowsScale(t *testing.T) {
	var d Drawing
	d.Stroke(NewPath().MoveTo(-20, 0).LineTo(20, 0), Hex("#0000ff"), 2)

	for _, s := range []float64{1, 4} {
		dc := gg.NewContext(100, 100)
		NewPainter(nil).Paint(dc, Placement{X: 50, Y: 50, Scale: s}, d)
		covered := 0
		for y := 0; y < 100; y++ {
			if rgba(dc, 50, y).A > 128 {
				covered++
			}
		}
		want := int(2 * s)
		if math.Abs(float64(covered-want)) > 1 {
			t.Errorf("scale %v: stroke covers %d rows, want ≈%d", s, covered, want)
		}
	}
}

func TestPainter_GlowExtendsBeyondShape(t *testing.T) {
	var plain, glowing Drawing
	shape := NewPath().Rect(-10, -10, 20, 20)
	plain.Fill(shape, Hex("#ffffff"))
	glowing.Fill(shape, Hex("#ffffff"), Glowing(ParseColor("#ff69b4"), 15))

	a := gg.NewContext(100, 100)
	b := gg.NewContext(100, 100)
	NewPainter(nil).Paint(a, Place(50, 50), plain)
	NewPainter(nil).Paint(b, Place(50, 50), glowing)

	if got := rgba(a, 50, 64); got.A != 0 {
		t.Fatalf("plain fill leaked to %v", got)
	}
	if got := rgba(b, 50, 64); got.A == 0 {
		t.Error("glow did not reach outside the shape")
	}
	if got := rgba(b, 50, 50); got != rgba(a, 50, 50) {
		t.Errorf("glow changed the shape itself: %v vs %v", got, rgba(a, 50, 50))
	}
}

func TestPainter_ClipRestored(t *testing.T) {
	var d Drawing
	d.Save()
	d.Clip(NewPath().Rect(0, 0, 10, 10))
	d.Fill(NewPath().Rect(-50, -50, 100, 100), Hex("#ff0000"))
	d.Restore()
	d.Fill(NewPath().Rect(-30, -30, 10, 10), Hex("#0000ff"))

	dc := gg.NewContext(100, 100)
	NewPainter(nil).Paint(dc, Place(50, 50), d)

	if got := rgba(dc, 55, 55); got.R != 255 {
		t.Errorf("inside clip = %v, want red", got)
	}
	if got := rgba(dc, 45, 45); got.R != 0 {
		t.Errorf("outside clip = %v, want untouched", got)
	}
	if got := rgba(dc, 25, 25); got.B != 255 {
		t.Errorf("after restore = %v, want blue", got)
	}
}

func TestPainter_LinearGradientFollowsTransform(t *testing.T) {
	var d Drawing
	d.Fill(NewPath().Rect(-50, -10, 100, 20), Linear(-50, 0, 50, 0, At(0, "#000000"), At(1, "#ffffff")))

	dc := gg.NewContext(200, 100)
	NewPainter(nil).Paint(dc, Placement{X: 100, Y: 50, Scale: 1, Flip: true}, d)

	left, right := rgba(dc, 55, 50), rgba(dc, 145, 50)
	if left.R <= right.R {
		t.Errorf("flipped gradient should be bright on the left: left=%v right=%v", left, right)
	}
}

func TestPainter_ZeroScaleIsNoop(t *testing.T) {
	var d Drawing
	d.Fill(NewPath().Rect(-5, -5, 10, 10), Hex("#ff0000"))
	dc := gg.NewContext(20, 20)
	NewPainter(nil).Paint(dc, Placement{X: 10, Y: 10, Scale: 0}, d)
	if got := rgba(dc, 10, 10); got.A != 0 {
		t.Errorf("zero scale drew %v", got)
	}
}

func TestPainter_EvenOddCutsWindow(t *testing.T) {
	window := func() *Path {
		return NewPath().Rect(0, 0, 100, 100).Rect(30, 30, 40, 40)
	}
	var d Drawing
	d.Fill(window(), Hex("#ff0000"), EvenOdd())
	dc := gg.NewContext(100, 100)
	NewPainter(nil).Paint(dc, Place(0, 0), d)
	if got := rgba(dc, 50, 50); got.A != 0 {
		t.Errorf("window = %v, want transparent", got)
	}
	if got := rgba(dc, 10, 10); got.R != 255 {
		t.Errorf("border = %v, want red", got)
	}

	var nz Drawing
	nz.Fill(window(), Hex("#ff0000"))
	dc = gg.NewContext(100, 100)
	NewPainter(nil).Paint(dc, Place(0, 0), nz)
	if got := rgba(dc, 50, 50); got.R != 255 {
		t.Errorf("nonzero fill centre = %v, want red", got)
	}
}
