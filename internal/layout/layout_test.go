package layout

import (
	"errors"
	"image"
	"image/color"
	"strings"
	"testing"
	"time"

	"github.com/youruser/photobooth/internal/fonts"
)

// pattern returns a w×h image with a colour ramp so crops are comparable.
func pattern(w, h int, tint uint8) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{uint8(x * 255 / w), uint8(y * 255 / h), tint, 255})
		}
	}
	return img
}

func solidImage(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = c.R, c.G, c.B, c.A
	}
	return img
}

func sameRegion(img *image.RGBA, a, b image.Point, w, h int) bool {
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if img.RGBAAt(a.X+x, a.Y+y) != img.RGBAAt(b.X+x, b.Y+y) {
				return false
			}
		}
	}
	return true
}

func TestEmptyInput(t *testing.T) {
	inputs := [][]image.Image{
		nil,
		{},
		{nil, image.NewNRGBA(image.Rect(0, 0, 0, 0))},
	}
	for _, in := range inputs {
		sheet, err := Generate(in, "cinema", Options{})
		if !errors.Is(err, ErrNoSources) || sheet != nil {
			t.Errorf("Generate(%v) = %v, %v; want nil, ErrNoSources", in, sheet, err)
		}
	}
}

func TestCinemaRepeatsFirstPhoto(t *testing.T) {
	raw, err := Build([]image.Image{pattern(100, 140, 40)}, "cinema", Options{})
	if err != nil {
		t.Fatal(err)
	}
	x0, y0 := cinemaFrame(0, 0)
	first := image.Pt(x0, y0)
	for _, offset := range []int{0, cinemaStripW + cinemaStripGap} {
		for i := 0; i < cinemaFrames; i++ {
			x, y := cinemaFrame(offset, i)
			if !sameRegion(raw, first, image.Pt(x, y), cinemaPhotoW, cinemaPhotoH) {
				t.Errorf("strip %d frame %d differs from the first frame", offset, i)
			}
		}
	}
}

func TestMagazineSlots(t *testing.T) {
	a := pattern(60, 84, 10)
	b := pattern(60, 84, 200)
	raw, err := Build([]image.Image{a, b}, "magazine", Options{})
	if err != nil {
		t.Fatal(err)
	}
	cell := func(i int) image.Point {
		x, y := magazineCell(i)
		return image.Pt(x, y)
	}
	if sameRegion(raw, cell(0), cell(1), magazinePhotoW, magazinePhotoH) {
		t.Error("cell 1 should show the second photo")
	}
	for _, i := range []int{2, 3} {
		if !sameRegion(raw, cell(0), cell(i), magazinePhotoW, magazinePhotoH) {
			t.Errorf("cell %d should repeat the first photo", i)
		}
	}

	six := []image.Image{a, b, a, b, a}
	raw, err = Build(six, "magazine", Options{})
	if err != nil {
		t.Fatal(err)
	}
	// five photos round up to three rows
	wantH := magazineHeader + 3*(magazinePhotoH+magazineMargin) + magazineMargin
	if raw.Bounds().Dy() != wantH {
		t.Errorf("height = %d, want %d", raw.Bounds().Dy(), wantH)
	}
}

func TestStandardSidebarMatchesBlock(t *testing.T) {
	boxes := standardBoxes()
	if len(boxes) != 7 {
		t.Fatalf("got %d boxes", len(boxes))
	}
	top := boxes[0].y
	bottom := boxes[2].y + boxes[2].h
	side := standardSidebar()
	if side.y != top || side.h != bottom-top {
		t.Errorf("sidebar %+v, photo block spans %v..%v", side, top, bottom)
	}
	last := boxes[6]
	if last.x < side.x || last.x+last.w > side.x+side.w || last.y+last.h > side.y+side.h {
		t.Errorf("sidebar photo %+v outside sidebar %+v", last, side)
	}
}

func TestLetterbox(t *testing.T) {
	red := color.NRGBA{255, 0, 0, 255}
	tests := []struct {
		w, h       int
		outW, outH int
		fit        image.Rectangle
	}{
		{2000, 1000, PrintLong, PrintShort, image.Rect(0, 150, 1500, 900)},
		{1000, 2000, PrintShort, PrintLong, image.Rect(150, 0, 900, 1500)},
		{500, 500, PrintShort, PrintLong, image.Rect(0, 225, 1050, 1275)},
	}
	for _, tt := range tests {
		out := Letterbox(solidImage(tt.w, tt.h, red))
		if b := out.Bounds(); b.Dx() != tt.outW || b.Dy() != tt.outH {
			t.Fatalf("%dx%d: output %v", tt.w, tt.h, b)
		}
		inner := tt.fit.Inset(3)
		for y := 0; y < tt.outH; y += 7 {
			for x := 0; x < tt.outW; x += 7 {
				c := out.NRGBAAt(x, y)
				p := image.Pt(x, y)
				switch {
				case !p.In(tt.fit) && c != (color.NRGBA{255, 255, 255, 255}):
					t.Fatalf("%dx%d: margin pixel %v = %v", tt.w, tt.h, p, c)
				case p.In(inner) && (c.R < 250 || c.G > 5):
					t.Fatalf("%dx%d: sheet pixel %v = %v", tt.w, tt.h, p, c)
				}
			}
		}
	}
}

func TestGenerateTemplatesPrintSize(t *testing.T) {
	src := []image.Image{pattern(100, 140, 90)}
	opts := Options{
		Name:     "Hanako Yamada",
		Location: "Osaka",
		Now:      time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC),
	}
	for _, id := range append(Templates(), "unknown") {
		sheet, err := Generate(src, id, opts)
		if err != nil {
			t.Fatalf("%s: %v", id, err)
		}
		b := sheet.Image.Bounds()
		portrait := b.Dx() == PrintShort && b.Dy() == PrintLong
		landscape := b.Dx() == PrintLong && b.Dy() == PrintShort
		if !portrait && !landscape {
			t.Errorf("%s: sheet size %v", id, b)
		}
	}
}

func TestFallbackKeepsSourceSize(t *testing.T) {
	src := pattern(37, 53, 5)
	raw, err := Build([]image.Image{src}, "no-such-template", Options{})
	if err != nil {
		t.Fatal(err)
	}
	if raw.Bounds().Dx() != 37 || raw.Bounds().Dy() != 53 {
		t.Fatalf("size = %v", raw.Bounds())
	}
	for _, p := range []image.Point{{0, 0}, {20, 30}, {36, 52}} {
		want := src.NRGBAAt(p.X, p.Y)
		got := raw.RGBAAt(p.X, p.Y)
		if got.R != want.R || got.G != want.G || got.B != want.B {
			t.Errorf("pixel %v = %v, want %v", p, got, want)
		}
	}
}

func TestSheetEncoding(t *testing.T) {
	sheet, err := Generate([]image.Image{pattern(100, 140, 0)}, "polaroid", Options{})
	if err != nil {
		t.Fatal(err)
	}
	uri, err := sheet.DataURI()
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(uri, "data:image/jpeg;base64,") {
		t.Errorf("uri prefix = %.30s", uri)
	}
	b, err := sheet.JPEG(80)
	if err != nil || len(b) < 2 || b[0] != 0xff || b[1] != 0xd8 {
		t.Errorf("JPEG: %v", err)
	}
}

func TestOptionsDate(t *testing.T) {
	o := Options{Now: time.Date(2023, 1, 9, 0, 0, 0, 0, time.UTC)}
	if got := o.date("2006.01.02"); got != "2023.01.09" {
		t.Errorf("date = %q", got)
	}
	o.Date = "1999.12.31"
	if got := o.date("2006.01.02"); got != "1999.12.31" {
		t.Errorf("override = %q", got)
	}
	if (Options{}).location() != "TOKYO" {
		t.Error("default location")
	}
}

func TestLicenseNumber(t *testing.T) {
	a := licenseNumber("Hanako", "2024.08.01")
	if a != licenseNumber("Hanako", "2024.08.01") {
		t.Error("licence number not stable")
	}
	if !strings.HasPrefix(a, "PB ") || len(a) != len("PB 000000000") {
		t.Errorf("licence number = %q", a)
	}
}

func TestTruncate(t *testing.T) {
	s := &sheet{fonts: fonts.Default()}
	ts := textStyle{size: 26, style: fonts.Bold}
	if got := s.truncate("Amy", ts, 500); got != "Amy" {
		t.Errorf("short text changed: %q", got)
	}
	long := strings.Repeat("Wolfeschlegelsteinhausen", 4)
	got := s.truncate(long, ts, 200)
	if !strings.HasSuffix(got, "…") || len(got) >= len(long) {
		t.Errorf("truncate = %q", got)
	}
}
