package effects

import (
	"image"
	"image/color"
	"math/rand"
	"testing"
	"time"

	"github.com/fogleman/gg"
)

func filled(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = c.R, c.G, c.B, c.A
	}
	return img
}

func TestGrainTileDistribution(t *testing.T) {
	tile := GrainTile(rand.New(rand.NewSource(7)))
	if b := tile.Bounds(); b.Dx() != GrainSize || b.Dy() != GrainSize {
		t.Fatalf("tile size = %v", b)
	}
	var sum float64
	lo, hi := 255, 0
	for i := 0; i < len(tile.Pix); i += 4 {
		r, g, b, a := tile.Pix[i], tile.Pix[i+1], tile.Pix[i+2], tile.Pix[i+3]
		if r != g || g != b || a != 0xff {
			t.Fatalf("pixel %d not opaque grey: %v %v %v %v", i/4, r, g, b, a)
		}
		v := int(r)
		sum += float64(v)
		lo = min(lo, v)
		hi = max(hi, v)
	}
	mean := sum / (GrainSize * GrainSize)
	if mean < 122 || mean > 133 {
		t.Errorf("mean = %.1f, want ~127.5", mean)
	}
	if lo > 3 || hi < 252 {
		t.Errorf("range = [%d, %d], want close to [0, 255]", lo, hi)
	}
}

func TestClampLevel(t *testing.T) {
	tests := []struct{ in, want float64 }{
		{-1, 0}, {0, 0}, {0.35, 0.35}, {1, 1}, {4, 1},
	}
	for _, tt := range tests {
		if got := ClampLevel(tt.in); got != tt.want {
			t.Errorf("ClampLevel(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestGrainLevels(t *testing.T) {
	grey := color.RGBA{128, 128, 128, 255}

	img := filled(120, 120, grey)
	Grain(img, 0, rand.New(rand.NewSource(1)))
	ref := [4]uint8{grey.R, grey.G, grey.B, grey.A}
	for i, v := range img.Pix {
		if v != ref[i%4] {
			t.Fatal("level 0 changed the image")
		}
	}

	over := filled(120, 120, grey)
	Grain(over, 3, rand.New(rand.NewSource(1)))
	full := filled(120, 120, grey)
	Grain(full, 1, rand.New(rand.NewSource(1)))
	for i := range over.Pix {
		if over.Pix[i] != full.Pix[i] {
			t.Fatal("level above 1 should behave as 1")
		}
	}

	distinct := map[uint8]bool{}
	for i := 0; i < len(full.Pix); i += 4 {
		distinct[full.Pix[i]] = true
		if full.Pix[i+3] != 0xff {
			t.Fatal("grain changed alpha of an opaque canvas")
		}
	}
	if len(distinct) < 100 {
		t.Errorf("only %d distinct values after grain", len(distinct))
	}
}

func TestDateText(t *testing.T) {
	now := time.Date(2024, time.March, 7, 15, 4, 5, 0, time.UTC)
	if got, want := DateText(now), "'24 . 03 . 07"; got != want {
		t.Errorf("DateText = %q, want %q", got, want)
	}
}

func TestDateStampBottomRight(t *testing.T) {
	dc := gg.NewContext(400, 300)
	dc.SetRGB(1, 1, 1)
	dc.Clear()
	DateStamp(dc, nil, time.Date(2023, 12, 24, 0, 0, 0, 0, time.UTC))

	img := dc.Image()
	count := func(r image.Rectangle) int {
		n := 0
		for y := r.Min.Y; y < r.Max.Y; y++ {
			for x := r.Min.X; x < r.Max.X; x++ {
				if c := color.RGBAModel.Convert(img.At(x, y)).(color.RGBA); c.B < 0xf0 {
					n++
				}
			}
		}
		return n
	}
	if n := count(image.Rect(200, 200, 400, 300)); n < 100 {
		t.Errorf("bottom-right has %d tinted pixels", n)
	}
	if n := count(image.Rect(0, 0, 200, 150)); n != 0 {
		t.Errorf("top-left has %d tinted pixels", n)
	}
}

func TestLightingBrightensGrey(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	for i := 0; i < len(src.Pix); i += 4 {
		src.Pix[i], src.Pix[i+1], src.Pix[i+2], src.Pix[i+3] = 128, 128, 128, 255
	}
	out := Lighting(src)
	r, g, b := out.Pix[0], out.Pix[1], out.Pix[2]
	if r < 140 || r > 152 || r != g || g != b {
		t.Errorf("lit grey = %d %d %d", r, g, b)
	}
}

func TestBloom(t *testing.T) {
	dst := filled(100, 100, color.RGBA{100, 100, 100, 255})
	subject := image.NewNRGBA(image.Rect(0, 0, 100, 100))
	area := image.Rect(40, 40, 60, 60)
	for y := area.Min.Y; y < area.Max.Y; y++ {
		for x := area.Min.X; x < area.Max.X; x++ {
			subject.SetNRGBA(x, y, color.NRGBA{255, 255, 255, 255})
		}
	}

	Bloom(dst, subject, area)

	if c := dst.RGBAAt(50, 50); c.R <= 100 {
		t.Errorf("centre not brightened: %v", c)
	}
	if c := dst.RGBAAt(50, 50); c.R <= c.G {
		t.Errorf("centre lacks pink tint: %v", c)
	}
	if c := dst.RGBAAt(0, 0); c != (color.RGBA{100, 100, 100, 255}) {
		t.Errorf("far corner changed: %v", c)
	}
}
