package imagepkg

import (
	"bytes"
	"fmt"
	"image"
	"io"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// SVGFallbackSize is the raster size for SVGs without a usable viewBox.
const SVGFallbackSize = 1000

// IsSVG sniffs b for an XML or <svg> prologue.
func IsSVG(b []byte) bool {
	b = bytes.TrimLeft(b, " \t\r\n\ufeff")
	return bytes.HasPrefix(b, []byte("<svg")) ||
		(bytes.HasPrefix(b, []byte("<?xml")) && bytes.Contains(b, []byte("<svg")))
}

// RasterizeSVG draws an SVG at w×h. Non-positive sizes use the viewBox,
// or SVGFallbackSize when it has none. Unsupported elements such as text
// are skipped.
func RasterizeSVG(r io.Reader, w, h int) (*image.RGBA, error) {
	icon, err := oksvg.ReadIconStream(r, oksvg.IgnoreErrorMode)
	if err != nil {
		return nil, fmt.Errorf("parse svg: %w", err)
	}
	if w <= 0 || h <= 0 {
		w, h = int(icon.ViewBox.W+0.5), int(icon.ViewBox.H+0.5)
		if w <= 0 || h <= 0 {
			w, h = SVGFallbackSize, SVGFallbackSize
		}
	}
	icon.SetTarget(0, 0, float64(w), float64(h))
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(w, h, scanner), 1)
	return img, nil
}
