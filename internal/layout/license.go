package layout

import (
	"fmt"
	"hash/fnv"
	"image"
	"image/color"
	"log"
	"strings"

	"github.com/fogleman/gg"

	"github.com/youruser/photobooth/internal/blend"
	"github.com/youruser/photobooth/internal/fonts"
	"github.com/youruser/photobooth/internal/geometry"
	imagepkg "github.com/youruser/photobooth/internal/image"
	"github.com/youruser/photobooth/internal/vector"
)

// ID card geometry.
const (
	licenseW      = 1500
	licenseH      = 1000
	licenseCardX  = 50
	licenseCardY  = 60
	licenseCardW  = 1400
	licenseCardH  = 880
	licenseRadius = 36
	licenseHeader = 120

	licensePhotoX = 100
	licensePhotoY = 230
	licensePhotoW = 380
	licensePhotoH = 500

	licenseFieldX = 540
	licenseQR     = 200
	licenseHoloR  = 90
)

const licenseNavy = "#1e3a8a"

// drawLicense mocks up a driver licence: header bar, ID photo, labelled
// fields, a script signature, a QR of the card data and a hologram seal.
func drawLicense(s *sheet, photos []image.Image) *image.RGBA {
	s.init(licenseW, licenseH)
	s.fill("#f1f5f9")

	dc := s.dc
	dc.Push()
	dc.DrawRoundedRectangle(licenseCardX, licenseCardY, licenseCardW, licenseCardH, licenseRadius)
	dc.Clip()
	s.gradient(licenseCardX, licenseCardY, licenseCardX+licenseCardW, licenseCardY+licenseCardH, "#eef6ff", "#fdf2f8")
	s.rect(licenseCardX, licenseCardY, licenseCardW, licenseHeader, licenseNavy)
	dc.Pop()
	dc.DrawRoundedRectangle(licenseCardX, licenseCardY, licenseCardW, licenseCardH, licenseRadius)
	dc.SetColor(vector.ParseColor("#94a3b8"))
	dc.SetLineWidth(2)
	dc.Stroke()

	headerY := float64(licenseCardY + 80)
	s.text("DRIVER LICENSE", licenseCardX+50, headerY, textStyle{size: 54, style: fonts.Bold, color: "#ffffff"})
	s.text(strings.ToUpper(s.opts.location()), licenseCardX+licenseCardW-50, headerY,
		textStyle{size: 36, style: fonts.Bold, color: "#fde68a", anchor: 1})

	s.photo(photos[0], licensePhotoX, licensePhotoY, licensePhotoW, licensePhotoH, stdFocus)
	s.strokeRect(licensePhotoX, licensePhotoY, licensePhotoW, licensePhotoH, 4, "#1e293b")

	name := s.opts.Name
	if name == "" {
		name = "YOUR NAME"
	}
	issued := s.opts.date("2006.01.02")
	label := textStyle{size: 20, style: fonts.Mono, color: "#64748b"}
	value := textStyle{size: 34, style: fonts.Bold, color: "#0f172a"}
	maxW := float64(licenseCardX + licenseCardW - licenseFieldX - licenseQR - 80)
	fields := []struct{ label, value string }{
		{"NO.", licenseNumber(name, issued)},
		{"NAME", strings.ToUpper(name)},
		{"DOB", "**** . ** . **"},
		{"ISSUED", issued},
		{"ADDRESS", s.opts.location()},
	}
	y := float64(licensePhotoY + 30)
	for _, f := range fields {
		s.text(f.label, licenseFieldX, y, label)
		s.text(s.truncate(f.value, value, maxW), licenseFieldX, y+40, value)
		y += 95
	}

	s.text("SIGNATURE", licensePhotoX, 800, label)
	sig := textStyle{size: 52, style: fonts.Script, color: "#1e293b"}
	s.text(s.truncate(name, sig, licensePhotoW+40), licensePhotoX, 870, sig)
	dc.DrawLine(licensePhotoX, 885, licensePhotoX+licensePhotoW+40, 885)
	dc.SetColor(vector.ParseColor("#94a3b8"))
	dc.SetLineWidth(2)
	dc.Stroke()

	qrX := licenseCardX + licenseCardW - 50 - licenseQR
	qrY := licenseCardY + licenseCardH - 50 - licenseQR
	payload := strings.Join([]string{name, issued, s.opts.location()}, "|")
	if qr, err := imagepkg.QRImage(payload, licenseQR, vector.ParseColor(licenseNavy), color.White); err != nil {
		log.Println("license qr skipped:", err)
	} else {
		geometry.DrawScaled(dc, qr, geometry.Rect{X: float64(qrX), Y: float64(qrY), W: licenseQR, H: licenseQR})
	}

	s.hologram(licensePhotoX+licensePhotoW-40, licensePhotoY+licensePhotoH-40, licenseHoloR)
	return s.canvas
}

// hologram overlays an iridescent seal centred at (cx, cy).
func (s *sheet) hologram(cx, cy, r int) {
	size := 2 * r
	layer := gg.NewContext(size, size)
	g := gg.NewLinearGradient(0, 0, float64(size), float64(size))
	for i, c := range []string{"#ff9a9e", "#fad0c4", "#a1c4fd", "#c2e9fb", "#d4fc79"} {
		g.AddColorStop(float64(i)/4, vector.ParseColor(c))
	}
	layer.DrawCircle(float64(r), float64(r), float64(r))
	layer.SetFillStyle(g)
	layer.Fill()
	for rr := r - 15; rr > 0; rr -= 20 {
		layer.DrawCircle(float64(r), float64(r), float64(rr))
	}
	layer.SetColor(color.NRGBA{0xff, 0xff, 0xff, 0x80})
	layer.SetLineWidth(3)
	layer.Stroke()

	dst := image.Rect(cx-r, cy-r, cx+r, cy+r)
	blend.Draw(s.canvas, dst, layer.Image(), image.Point{}, blend.Overlay, 0.7)
}

// licenseNumber derives a stable card number from the printed fields.
func licenseNumber(name, date string) string {
	h := fnv.New32a()
	h.Write([]byte(name + "|" + date))
	return fmt.Sprintf("PB %09d", h.Sum32()%1_000_000_000)
}
