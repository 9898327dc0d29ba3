package vector

import (
	"image/color"
	"strconv"
	"strings"
)

// PaintKind tags the Paint union.
type PaintKind uint8

const (
	PaintSolid PaintKind = iota
	PaintLinear
	PaintRadial
)

// Stop is one gradient colour stop.
type Stop struct {
	Offset float64
	Color  color.Color
}

// Paint is a fill or stroke source. Gradient geometry is in the same local
// space as the path it paints.
type Paint struct {
	Kind  PaintKind
	Color color.Color

	X0, Y0, R0 float64
	X1, Y1, R1 float64
	Stops      []Stop
}

// Solid paints one colour.
func Solid(c color.Color) Paint {
	return Paint{Kind: PaintSolid, Color: c}
}

// Hex paints one colour given as a CSS hex string.
func Hex(s string) Paint {
	return Solid(ParseColor(s))
}

// Linear paints a linear gradient from (x0, y0) to (x1, y1).
func Linear(x0, y0, x1, y1 float64, stops ...Stop) Paint {
	return Paint{Kind: PaintLinear, X0: x0, Y0: y0, X1: x1, Y1: y1, Stops: stops}
}

// Radial paints a two-circle radial gradient, as the canvas API defines it.
func Radial(x0, y0, r0, x1, y1, r1 float64, stops ...Stop) Paint {
	return Paint{Kind: PaintRadial, X0: x0, Y0: y0, R0: r0, X1: x1, Y1: y1, R1: r1, Stops: stops}
}

// At builds a stop from a CSS colour string.
func At(offset float64, c string) Stop {
	return Stop{Offset: offset, Color: ParseColor(c)}
}

var named = map[string]color.NRGBA{
	"white":       {0xff, 0xff, 0xff, 0xff},
	"black":       {0x00, 0x00, 0x00, 0xff},
	"red":         {0xff, 0x00, 0x00, 0xff},
	"pink":        {0xff, 0xc0, 0xcb, 0xff},
	"hotpink":     {0xff, 0x69, 0xb4, 0xff},
	"blue":        {0x00, 0x00, 0xff, 0xff},
	"gold":        {0xff, 0xd7, 0x00, 0xff},
	"cyan":        {0x00, 0xff, 0xff, 0xff},
	"silver":      {0xc0, 0xc0, 0xc0, 0xff},
	"transparent": {0, 0, 0, 0},
}

// ParseColor reads "#rgb", "#rrggbb", "#rrggbbaa", "rgb(r,g,b)",
// "rgba(r,g,b,a)" or a few CSS colour names. Anything else is white.
func ParseColor(s string) color.NRGBA {
	c, ok := LookupColor(s)
	if !ok {
		return color.NRGBA{0xff, 0xff, 0xff, 0xff}
	}
	return c
}

// LookupColor is ParseColor that reports whether s was understood.
func LookupColor(s string) (color.NRGBA, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := named[s]; ok {
		return c, true
	}
	if strings.HasPrefix(s, "#") {
		return parseHex(s[1:])
	}
	for _, fn := range []string{"rgba(", "rgb("} {
		if strings.HasPrefix(s, fn) && strings.HasSuffix(s, ")") {
			return parseFunc(s[len(fn) : len(s)-1])
		}
	}
	return color.NRGBA{}, false
}

func parseHex(h string) (color.NRGBA, bool) {
	if len(h) == 3 || len(h) == 4 {
		var b strings.Builder
		for _, r := range h {
			b.WriteRune(r)
			b.WriteRune(r)
		}
		h = b.String()
	}
	if len(h) == 6 {
		h += "ff"
	}
	if len(h) != 8 {
		return color.NRGBA{}, false
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.NRGBA{}, false
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, true
}

func parseFunc(args string) (color.NRGBA, bool) {
	parts := strings.Split(args, ",")
	if len(parts) != 3 && len(parts) != 4 {
		return color.NRGBA{}, false
	}
	var ch [3]uint8
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseFloat(strings.TrimSpace(parts[i]), 64)
		if err != nil {
			return color.NRGBA{}, false
		}
		ch[i] = clampByte(v)
	}
	a := uint8(0xff)
	if len(parts) == 4 {
		v, err := strconv.ParseFloat(strings.TrimSpace(parts[3]), 64)
		if err != nil {
			return color.NRGBA{}, false
		}
		a = clampByte(v * 255)
	}
	return color.NRGBA{R: ch[0], G: ch[1], B: ch[2], A: a}, true
}

// WithAlpha returns c with its alpha multiplied by a.
func WithAlpha(c color.Color, a float64) color.NRGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.A = clampByte(float64(n.A) * a)
	return n
}

func clampByte(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
