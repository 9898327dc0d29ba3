package compose

import (
	"image/color"
	"strings"

	"github.com/fogleman/gg"

	"github.com/youruser/photobooth/internal/vector"
)

type gradient struct {
	key        string
	start, end string
}

// gradients is searched in order; the first key contained in the id wins.
var gradients = []gradient{
	{"grad-1", "#fbc2eb", "#a6c1ee"},
	{"grad-2", "#f6d365", "#fda085"},
	{"grad-3", "#a18cd1", "#fbc2eb"},
	{"grad-pink", "#ff9a9e", "#fad0c4"},
	{"grad-blue", "#a1c4fd", "#c2e9fb"},
	{"grad-lavender", "#cfd9df", "#e2ebf0"},
	{"grad-aurora", "#a18cd1", "#fbc2eb"},
}

var neutralGradient = gradient{start: "#ffffff", end: "#eeeeee"}

// GradientStops returns the two stops for a gradient background id.
func GradientStops(id string) (color.NRGBA, color.NRGBA) {
	g := neutralGradient
	for _, cand := range gradients {
		if strings.Contains(id, cand.key) {
			g = cand
			break
		}
	}
	return vector.ParseColor(g.start), vector.ParseColor(g.end)
}

const (
	polkaPitch  = 60
	polkaRadius = 12
	polkaBase   = "#fce7f3"
)

func paintBackground(dc *gg.Context, bg *BackgroundSpec) {
	w, h := float64(dc.Width()), float64(dc.Height())
	if bg == nil {
		fillCanvas(dc, color.White)
		return
	}
	switch bg.Type {
	case BackgroundGradient:
		start, end := GradientStops(bg.ID)
		g := gg.NewLinearGradient(0, 0, w, h)
		g.AddColorStop(0, start)
		g.AddColorStop(1, end)
		dc.SetFillStyle(g)
		dc.DrawRectangle(0, 0, w, h)
		dc.Fill()
	case BackgroundPattern:
		polkaDots(dc, bg.Value)
	default:
		fillCanvas(dc, vector.ParseColor(bg.Value))
	}
}

func fillCanvas(dc *gg.Context, c color.Color) {
	dc.SetColor(c)
	dc.DrawRectangle(0, 0, float64(dc.Width()), float64(dc.Height()))
	dc.Fill()
}

// polkaDots fills the canvas with the value colour (pale pink when
// unparsable) and a staggered grid of white dots.
func polkaDots(dc *gg.Context, value string) {
	base, ok := vector.LookupColor(value)
	if !ok {
		base = vector.ParseColor(polkaBase)
	}
	fillCanvas(dc, base)

	w, h := float64(dc.Width()), float64(dc.Height())
	for row, y := 0, polkaPitch/2.0; y-polkaRadius < h; row, y = row+1, y+polkaPitch {
		x := polkaPitch / 2.0
		if row%2 == 1 {
			x += polkaPitch / 2.0
		}
		for ; x-polkaRadius < w; x += polkaPitch {
			dc.DrawCircle(x, y, polkaRadius)
		}
	}
	dc.SetColor(color.NRGBA{0xff, 0xff, 0xff, 0xcc})
	dc.Fill()
}
