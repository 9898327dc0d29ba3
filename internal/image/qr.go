package imagepkg

import (
	"image"
	"image/color"

	qrcode "github.com/skip2/go-qrcode"
)

// QRPNG returns PNG bytes of a QR code for text, size pixels square.
func QRPNG(text string, size int) ([]byte, error) {
	return qrcode.Encode(text, qrcode.Medium, size)
}

// QRImage renders text as a QR code in fg on bg, without the quiet-zone
// border, for drawing onto a sheet.
func QRImage(text string, size int, fg, bg color.Color) (image.Image, error) {
	q, err := qrcode.New(text, qrcode.Medium)
	if err != nil {
		return nil, err
	}
	q.DisableBorder = true
	if fg != nil {
		q.ForegroundColor = fg
	}
	if bg != nil {
		q.BackgroundColor = bg
	}
	return q.Image(size), nil
}
