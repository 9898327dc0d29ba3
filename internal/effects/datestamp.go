package effects

import (
	"time"

	"github.com/fogleman/gg"

	"github.com/youruser/photobooth/internal/fonts"
	"github.com/youruser/photobooth/internal/vector"
)

const (
	stampSize    = 32
	stampPadding = 30
)

var (
	stampGlow  = vector.ParseColor("#ff5e00")
	stampFill  = vector.ParseColor("#ff9900")
	stampInner = vector.ParseColor("#ffcc80")
)

// DateText formats now the way disposable film cameras print it.
func DateText(now time.Time) string {
	return now.Format("'06 . 01 . 02")
}

// DateStamp prints the glowing orange date in the bottom-right corner of
// dc: a wide orange glow pass, then a light inner pass.
func DateStamp(dc *gg.Context, p *vector.Painter, now time.Time) {
	if dc == nil {
		return
	}
	if p == nil {
		p = vector.NewPainter(nil)
	}
	t := vector.Text{
		S:       DateText(now),
		X:       float64(dc.Width() - stampPadding),
		Y:       float64(dc.Height() - stampPadding),
		Size:    stampSize,
		Style:   fonts.Bold,
		AnchorX: 1,
	}

	var d vector.Drawing
	d.Text(t, vector.Solid(stampFill), vector.Glowing(stampGlow, 10))
	d.Text(t, vector.Solid(stampInner), vector.Glowing(stampFill, 2))
	p.Paint(dc, vector.Place(0, 0), d)
}
