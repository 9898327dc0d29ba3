// Package vector describes procedural artwork as plain data: paths,
// paints and an ordered list of drawing ops in a local coordinate frame.
// A Painter replays a Drawing onto a gg context under one enclosing
// transform, so no drawing state leaks between elements.
package vector

import "math"

type segKind uint8

const (
	segMove segKind = iota
	segLine
	segQuad
	segCubic
	segArc
	segClose
)

// segment is one path instruction. Arcs are elliptical, rotated by rot,
// swept from a0 to a1 clockwise in canvas orientation.
type segment struct {
	kind           segKind
	x, y           float64
	x1, y1, x2, y2 float64
	rx, ry, rot    float64
	a0, a1         float64
}

// Path is a sequence of subpaths in local coordinates. Methods return the
// receiver so paths read like the canvas calls they describe.
type Path struct {
	segs []segment
}

// NewPath starts an empty path.
func NewPath() *Path { return &Path{} }

// Empty reports whether the path has no segments.
func (p *Path) Empty() bool { return p == nil || len(p.segs) == 0 }

func (p *Path) MoveTo(x, y float64) *Path {
	p.segs = append(p.segs, segment{kind: segMove, x: x, y: y})
	return p
}

func (p *Path) LineTo(x, y float64) *Path {
	p.segs = append(p.segs, segment{kind: segLine, x: x, y: y})
	return p
}

func (p *Path) QuadTo(cx, cy, x, y float64) *Path {
	p.segs = append(p.segs, segment{kind: segQuad, x1: cx, y1: cy, x: x, y: y})
	return p
}

func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) *Path {
	p.segs = append(p.segs, segment{kind: segCubic, x1: c1x, y1: c1y, x2: c2x, y2: c2y, x: x, y: y})
	return p
}

// Arc appends a circular arc. Like the canvas call, it connects from the
// current point with a straight line if a subpath is open.
func (p *Path) Arc(cx, cy, r, a0, a1 float64) *Path {
	return p.EllipseArc(cx, cy, r, r, 0, a0, a1)
}

// EllipseArc appends an arc of an ellipse rotated by rot radians.
func (p *Path) EllipseArc(cx, cy, rx, ry, rot, a0, a1 float64) *Path {
	p.segs = append(p.segs, segment{kind: segArc, x: cx, y: cy, rx: rx, ry: ry, rot: rot, a0: a0, a1: a1})
	return p
}

// Circle appends a closed circle as its own subpath.
func (p *Path) Circle(cx, cy, r float64) *Path {
	return p.Ellipse(cx, cy, r, r, 0)
}

// Ellipse appends a closed, rotated ellipse as its own subpath.
func (p *Path) Ellipse(cx, cy, rx, ry, rot float64) *Path {
	sx, sy := ellipsePoint(cx, cy, rx, ry, rot, 0)
	p.MoveTo(sx, sy)
	p.EllipseArc(cx, cy, rx, ry, rot, 0, 2*math.Pi)
	return p.Close()
}

// Rect appends a closed axis-aligned rectangle.
func (p *Path) Rect(x, y, w, h float64) *Path {
	return p.MoveTo(x, y).LineTo(x+w, y).LineTo(x+w, y+h).LineTo(x, y+h).Close()
}

// Polygon appends a closed polygon through pts (x0, y0, x1, y1, ...).
func (p *Path) Polygon(pts ...float64) *Path {
	for i := 0; i+1 < len(pts); i += 2 {
		if i == 0 {
			p.MoveTo(pts[0], pts[1])
		} else {
			p.LineTo(pts[i], pts[i+1])
		}
	}
	return p.Close()
}

// Append adds the segments of other after p's.
func (p *Path) Append(other *Path) *Path {
	if other != nil {
		p.segs = append(p.segs, other.segs...)
	}
	return p
}

func (p *Path) Close() *Path {
	p.segs = append(p.segs, segment{kind: segClose})
	return p
}

// Bounds returns a local-space box containing the path: the hull of all
// end and control points plus the full ellipse box of each arc.
func (p *Path) Bounds() (minX, minY, maxX, maxY float64) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	add := func(x, y float64) {
		minX, maxX = math.Min(minX, x), math.Max(maxX, x)
		minY, maxY = math.Min(minY, y), math.Max(maxY, y)
	}
	if p == nil {
		return 0, 0, 0, 0
	}
	for _, s := range p.segs {
		switch s.kind {
		case segMove, segLine:
			add(s.x, s.y)
		case segQuad:
			add(s.x1, s.y1)
			add(s.x, s.y)
		case segCubic:
			add(s.x1, s.y1)
			add(s.x2, s.y2)
			add(s.x, s.y)
		case segArc:
			r := math.Max(s.rx, s.ry)
			add(s.x-r, s.y-r)
			add(s.x+r, s.y+r)
		}
	}
	if math.IsInf(minX, 1) {
		return 0, 0, 0, 0
	}
	return minX, minY, maxX, maxY
}

func ellipsePoint(cx, cy, rx, ry, rot, a float64) (float64, float64) {
	ex, ey := rx*math.Cos(a), ry*math.Sin(a)
	sin, cos := math.Sincos(rot)
	return cx + ex*cos - ey*sin, cy + ex*sin + ey*cos
}
