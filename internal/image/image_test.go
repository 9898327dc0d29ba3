package imagepkg

import (
	"context"
	"errors"
	"image"
	"image/color"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func checker() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 8, 6))
	for y := 0; y < 6; y++ {
		for x := 0; x < 8; x++ {
			if (x+y)%2 == 0 {
				img.SetNRGBA(x, y, color.NRGBA{255, 0, 0, 255})
			}
		}
	}
	return img
}

func TestDecodeBase64(t *testing.T) {
	b, err := PNG(checker())
	if err != nil {
		t.Fatal(err)
	}
	for _, s := range []string{DataURI("image/png", b), strings.TrimPrefix(DataURI("image/png", b), "data:image/png;base64,")} {
		img, err := DecodeBase64(s)
		if err != nil {
			t.Fatalf("DecodeBase64: %v", err)
		}
		if got := img.Bounds().Size(); got != image.Pt(8, 6) {
			t.Errorf("size = %v", got)
		}
	}
	if _, err := DecodeBase64("data:image/png;base64"); err == nil {
		t.Error("expected error for malformed uri")
	}
	if _, err := DecodeBytes(nil); !errors.Is(err, ErrEmpty) {
		t.Errorf("err = %v, want ErrEmpty", err)
	}
}

func TestJPEGQuality(t *testing.T) {
	src := checker()
	hi, err := JPEG(src, 95)
	if err != nil {
		t.Fatal(err)
	}
	if len(hi) < 4 || hi[0] != 0xff || hi[1] != 0xd8 {
		t.Fatal("not a jpeg")
	}
	def, err := JPEG(src, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(def) != len(hi) {
		t.Errorf("quality 0 should use the default of %d", DefaultJPEGQuality)
	}
}

func TestQR(t *testing.T) {
	b, err := QRPNG("booth:test", 256)
	if err != nil {
		t.Fatal(err)
	}
	img, err := DecodeBytes(b)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dx() != 256 {
		t.Errorf("png width = %d", img.Bounds().Dx())
	}

	navy := color.RGBA{0x1e, 0x3a, 0x8a, 0xff}
	q, err := QRImage("booth:test", 120, navy, color.White)
	if err != nil {
		t.Fatal(err)
	}
	if q.Bounds().Dx() < 100 {
		t.Errorf("qr width = %d", q.Bounds().Dx())
	}
	fg := 0
	bb := q.Bounds()
	for y := bb.Min.Y; y < bb.Max.Y; y++ {
		for x := bb.Min.X; x < bb.Max.X; x++ {
			if r, g, b, _ := q.At(x, y).RGBA(); r>>8 == 0x1e && g>>8 == 0x3a && b>>8 == 0x8a {
				fg++
			}
		}
	}
	if fg == 0 {
		t.Error("no foreground modules in the qr image")
	}
}

func TestDownload(t *testing.T) {
	body, err := PNG(checker())
	if err != nil {
		t.Fatal(err)
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/ok.png" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "image/png")
		w.Write(body)
	}))
	defer srv.Close()

	img, err := Download(context.Background(), srv.URL+"/ok.png")
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Size() != image.Pt(8, 6) {
		t.Errorf("size = %v", img.Bounds().Size())
	}

	if _, err := Download(context.Background(), srv.URL+"/missing.png"); !errors.Is(err, ErrStatus) {
		t.Errorf("err = %v, want ErrStatus", err)
	}
}

const frameSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100 120">
  <path d="M0,0 H100 V120 H0 Z M20,20 V100 H80 V20 Z" fill="#fce7f3" fill-rule="evenodd" />
  <text x="50" y="115" font-size="10">Cute!</text>
</svg>`

func checkFrame(t *testing.T, img image.Image) {
	t.Helper()
	if got := img.Bounds().Size(); got != image.Pt(100, 120) {
		t.Fatalf("size = %v", got)
	}
	if _, _, _, a := img.At(5, 5).RGBA(); a == 0 {
		t.Error("border should be painted")
	}
	if _, _, _, a := img.At(50, 60).RGBA(); a != 0 {
		t.Error("window should be transparent")
	}
}

func TestSVG(t *testing.T) {
	if !IsSVG([]byte("\n  <?xml version=\"1.0\"?><svg/>")) || IsSVG([]byte("<html>")) {
		t.Error("IsSVG sniffing")
	}
	img, err := DecodeBytes([]byte(frameSVG))
	if err != nil {
		t.Fatal(err)
	}
	checkFrame(t, img)

	img, err = DecodeBase64("data:image/svg+xml;charset=utf-8," + url.PathEscape(frameSVG))
	if err != nil {
		t.Fatal(err)
	}
	checkFrame(t, img)

	path := filepath.Join(t.TempDir(), "frame.svg")
	if err := os.WriteFile(path, []byte(frameSVG), 0o644); err != nil {
		t.Fatal(err)
	}
	img, err = Open(path)
	if err != nil {
		t.Fatal(err)
	}
	checkFrame(t, img)

	big, err := RasterizeSVG(strings.NewReader(frameSVG), 200, 240)
	if err != nil {
		t.Fatal(err)
	}
	if big.Bounds().Dx() != 200 {
		t.Errorf("explicit size ignored: %v", big.Bounds())
	}
}
