package vector

import (
	"image"
	"image/color"
	"log"
	"math"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"

	"github.com/youruser/photobooth/internal/fonts"
)

// Placement is the single enclosing transform of one drawn element:
// translate to (X, Y), rotate, then scale (mirrored on X when Flip).
type Placement struct {
	X, Y     float64
	Rotation float64
	Scale    float64
	Flip     bool
}

// Place puts a drawing at (x, y) with no rotation and unit scale.
func Place(x, y float64) Placement {
	return Placement{X: x, Y: y, Scale: 1}
}

// Painter replays drawings onto gg contexts.
type Painter struct {
	Fonts *fonts.Manager
}

// NewPainter returns a Painter using fm for text ops; nil uses the
// embedded fonts.
func NewPainter(fm *fonts.Manager) *Painter {
	if fm == nil {
		fm = fonts.Default()
	}
	return &Painter{Fonts: fm}
}

type stepKind uint8

const (
	stepTranslate stepKind = iota
	stepRotate
	stepScale
)

type step struct {
	kind stepKind
	a, b float64
}

// exec is the per-call replay state; the steps slice mirrors the
// context's matrix so off-screen glow layers can reproduce it.
type exec struct {
	fonts *fonts.Manager
	dc    *gg.Context
	steps []step
	saved []int
	scale float64
}

// Paint draws d on dc under at. The context's state is restored on return.
func (p *Painter) Paint(dc *gg.Context, at Placement, d Drawing) {
	s := at.Scale
	if s == 0 || math.IsNaN(s) || math.IsInf(s, 0) {
		return
	}
	sx := s
	if at.Flip {
		sx = -s
	}
	x := &exec{
		fonts: p.Fonts,
		dc:    dc,
		scale: math.Abs(s),
		steps: []step{
			{kind: stepTranslate, a: at.X, b: at.Y},
			{kind: stepRotate, a: at.Rotation},
			{kind: stepScale, a: sx, b: s},
		},
	}
	if x.fonts == nil {
		x.fonts = fonts.Default()
	}

	dc.Push()
	x.apply(dc)
	for _, op := range d.Ops {
		x.run(op)
	}
	// unbalanced Save ops
	for range x.saved {
		dc.Pop()
	}
	dc.Pop()
}

func (x *exec) apply(dc *gg.Context) {
	for _, s := range x.steps {
		switch s.kind {
		case stepTranslate:
			dc.Translate(s.a, s.b)
		case stepRotate:
			dc.Rotate(s.a)
		case stepScale:
			dc.Scale(s.a, s.b)
		}
	}
}

func (x *exec) run(op Op) {
	dc := x.dc
	switch op.Kind {
	case OpSave:
		dc.Push()
		x.saved = append(x.saved, len(x.steps))
	case OpRestore:
		if n := len(x.saved); n > 0 {
			dc.Pop()
			x.steps = x.steps[:x.saved[n-1]]
			x.saved = x.saved[:n-1]
		}
	case OpRotate:
		dc.Rotate(op.Angle)
		x.steps = append(x.steps, step{kind: stepRotate, a: op.Angle})
	case OpClip:
		if op.Path.Empty() {
			return
		}
		trace(dc, op.Path)
		dc.Clip()
	case OpFill, OpStroke, OpText:
		if op.Glow != nil {
			x.glow(op)
		}
		x.draw(dc, op)
	}
}

// draw renders a fill, stroke or text op on dc, whose matrix must match
// the current steps.
func (x *exec) draw(dc *gg.Context, op Op) {
	switch op.Kind {
	case OpFill:
		if op.Path.Empty() {
			return
		}
		trace(dc, op.Path)
		dc.SetFillStyle(x.pattern(dc, op.Paint))
		if op.EvenOdd {
			dc.SetFillRule(gg.FillRuleEvenOdd)
			defer dc.SetFillRule(gg.FillRuleWinding)
		}
		dc.Fill()
	case OpStroke:
		if op.Path.Empty() {
			return
		}
		trace(dc, op.Path)
		dc.SetStrokeStyle(x.pattern(dc, op.Paint))
		// gg strokes in device pixels
		dc.SetLineWidth(op.Width * x.scale)
		dc.SetLineCap(lineCap(op.Cap))
		if op.Round {
			dc.SetLineJoin(gg.LineJoinRound)
		} else {
			dc.SetLineJoin(gg.LineJoinBevel)
		}
		if len(op.Dash) > 0 {
			dash := make([]float64, len(op.Dash))
			for i, v := range op.Dash {
				dash[i] = v * x.scale
			}
			dc.SetDash(dash...)
		}
		dc.Stroke()
		dc.SetDash()
	case OpText:
		t := op.Text
		if t == nil || t.S == "" {
			return
		}
		face, err := x.fonts.Face(x.fonts.Resolve(t.Style, t.S), t.Size)
		if err != nil {
			log.Println("text op skipped:", err)
			return
		}
		defer face.Close()
		dc.SetFontFace(face)
		dc.SetColor(solidColor(op.Paint))
		dc.DrawStringAnchored(t.S, t.X, t.Y, t.AnchorX, t.AnchorY)
	}
}

// glow renders the op's silhouette in the glow colour on an off-screen
// layer, blurs it and draws it beneath the shape.
func (x *exec) glow(op Op) {
	g := op.Glow
	if g.Color == nil {
		return
	}
	if _, _, _, a := g.Color.RGBA(); a == 0 {
		return
	}

	minX, minY, maxX, maxY, ok := x.localBounds(op)
	if !ok {
		return
	}
	dev := image.Rectangle{Min: image.Pt(math.MaxInt32, math.MaxInt32), Max: image.Pt(math.MinInt32, math.MinInt32)}
	for _, c := range [][2]float64{{minX, minY}, {maxX, minY}, {maxX, maxY}, {minX, maxY}} {
		px, py := x.dc.TransformPoint(c[0], c[1])
		dev.Min.X = min(dev.Min.X, int(math.Floor(px)))
		dev.Min.Y = min(dev.Min.Y, int(math.Floor(py)))
		dev.Max.X = max(dev.Max.X, int(math.Ceil(px)))
		dev.Max.Y = max(dev.Max.Y, int(math.Ceil(py)))
	}
	pad := int(math.Ceil(g.Blur*1.5)) + 2
	dev = dev.Inset(-pad).Intersect(image.Rect(0, 0, x.dc.Width(), x.dc.Height()))
	if dev.Empty() {
		return
	}

	layer := gg.NewContext(dev.Dx(), dev.Dy())
	layer.Translate(-float64(dev.Min.X), -float64(dev.Min.Y))
	x.apply(layer)
	silhouette := op
	silhouette.Glow = nil
	silhouette.Paint = Solid(g.Color)
	x.draw(layer, silhouette)

	var halo image.Image = layer.Image()
	if g.Blur > 0 {
		halo = imaging.Blur(halo, g.Blur/2)
	}
	x.dc.Push()
	x.dc.Identity()
	x.dc.DrawImage(halo, dev.Min.X, dev.Min.Y)
	x.dc.Pop()
}

func (x *exec) localBounds(op Op) (minX, minY, maxX, maxY float64, ok bool) {
	switch op.Kind {
	case OpFill, OpStroke:
		if op.Path.Empty() {
			return 0, 0, 0, 0, false
		}
		minX, minY, maxX, maxY = op.Path.Bounds()
		hw := op.Width / 2
		return minX - hw, minY - hw, maxX + hw, maxY + hw, true
	case OpText:
		t := op.Text
		if t == nil || t.S == "" {
			return 0, 0, 0, 0, false
		}
		face, err := x.fonts.Face(x.fonts.Resolve(t.Style, t.S), t.Size)
		if err != nil {
			return 0, 0, 0, 0, false
		}
		defer face.Close()
		m := gg.NewContext(1, 1)
		m.SetFontFace(face)
		w, h := m.MeasureString(t.S)
		left := t.X - t.AnchorX*w
		base := t.Y + t.AnchorY*h
		return left, base - h*1.2, left + w, base + h*0.4, true
	}
	return 0, 0, 0, 0, false
}

func (x *exec) pattern(dc *gg.Context, p Paint) gg.Pattern {
	switch p.Kind {
	case PaintLinear:
		// gg evaluates gradients in device space
		x0, y0 := dc.TransformPoint(p.X0, p.Y0)
		x1, y1 := dc.TransformPoint(p.X1, p.Y1)
		g := gg.NewLinearGradient(x0, y0, x1, y1)
		addStops(g, p.Stops)
		return g
	case PaintRadial:
		x0, y0 := dc.TransformPoint(p.X0, p.Y0)
		x1, y1 := dc.TransformPoint(p.X1, p.Y1)
		g := gg.NewRadialGradient(x0, y0, p.R0*x.scale, x1, y1, p.R1*x.scale)
		addStops(g, p.Stops)
		return g
	default:
		return gg.NewSolidPattern(solidColor(p))
	}
}

func addStops(g gg.Gradient, stops []Stop) {
	for _, s := range stops {
		g.AddColorStop(s.Offset, s.Color)
	}
}

func solidColor(p Paint) color.Color {
	if p.Color != nil {
		return p.Color
	}
	if len(p.Stops) > 0 {
		return p.Stops[0].Color
	}
	return color.Black
}

func lineCap(c Cap) gg.LineCap {
	switch c {
	case CapRound:
		return gg.LineCapRound
	case CapSquare:
		return gg.LineCapSquare
	default:
		return gg.LineCapButt
	}
}

// trace replaces dc's current path with p.
func trace(dc *gg.Context, p *Path) {
	dc.ClearPath()
	open := false
	for _, s := range p.segs {
		switch s.kind {
		case segMove:
			dc.MoveTo(s.x, s.y)
			open = true
		case segLine:
			dc.LineTo(s.x, s.y)
			open = true
		case segQuad:
			dc.QuadraticTo(s.x1, s.y1, s.x, s.y)
			open = true
		case segCubic:
			dc.CubicTo(s.x1, s.y1, s.x2, s.y2, s.x, s.y)
			open = true
		case segArc:
			arc(dc, s, open)
			open = true
		case segClose:
			dc.ClosePath()
		}
	}
}

// arc approximates an elliptical arc with quadratic pieces, the same
// construction gg uses for DrawEllipticalArc, extended with rotation.
func arc(dc *gg.Context, s segment, open bool) {
	sweep := s.a1 - s.a0
	n := int(math.Ceil(math.Abs(sweep) / (2 * math.Pi) * 32))
	if n < 4 {
		n = 4
	}
	for i := 0; i < n; i++ {
		t1 := s.a0 + sweep*float64(i)/float64(n)
		t2 := s.a0 + sweep*float64(i+1)/float64(n)
		x0, y0 := ellipsePoint(s.x, s.y, s.rx, s.ry, s.rot, t1)
		xm, ym := ellipsePoint(s.x, s.y, s.rx, s.ry, s.rot, (t1+t2)/2)
		x2, y2 := ellipsePoint(s.x, s.y, s.rx, s.ry, s.rot, t2)
		if i == 0 {
			if open {
				dc.LineTo(x0, y0)
			} else {
				dc.MoveTo(x0, y0)
			}
		}
		dc.QuadraticTo(2*xm-x0/2-x2/2, 2*ym-y0/2-y2/2, x2, y2)
	}
}
