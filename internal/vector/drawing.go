package vector

import (
	"image/color"

	"github.com/youruser/photobooth/internal/fonts"
)

// OpKind tags a drawing op.
type OpKind uint8

const (
	OpFill OpKind = iota
	OpStroke
	OpClip
	OpSave
	OpRestore
	OpRotate
	OpText
)

var opKindNames = [...]string{
	OpFill:    "Fill",
	OpStroke:  "Stroke",
	OpClip:    "Clip",
	OpSave:    "Save",
	OpRestore: "Restore",
	OpRotate:  "Rotate",
	OpText:    "Text",
}

func (k OpKind) String() string {
	if int(k) < len(opKindNames) {
		return opKindNames[k]
	}
	return "Unknown"
}

// Cap is a stroke line cap; the zero value is butt, as on a canvas.
type Cap uint8

const (
	CapButt Cap = iota
	CapRound
	CapSquare
)

// Glow is a blurred copy of the shape drawn beneath it.
type Glow struct {
	Color color.Color
	Blur  float64
}

// Text is a single line of text anchored at (X, Y). AnchorX/AnchorY are
// fractions of the measured box: (0.5, 0.5) centres, (1, 0) is right/baseline.
type Text struct {
	S       string
	X, Y    float64
	Size    float64
	Style   fonts.Style
	AnchorX float64
	AnchorY float64
}

// Op is one drawing instruction.
type Op struct {
	Kind  OpKind
	Path  *Path
	Paint Paint
	Width float64
	Cap   Cap
	Round bool // round joins
	// EvenOdd fills with the even-odd rule so inner subpaths cut holes.
	EvenOdd bool
	Dash    []float64
	Glow    *Glow
	Angle   float64
	Text    *Text
}

// Option adjusts a fill, stroke or text op.
type Option func(*Op)

// Glowing adds a blurred halo of colour c beneath the op.
func Glowing(c color.Color, blur float64) Option {
	return func(o *Op) { o.Glow = &Glow{Color: c, Blur: blur} }
}

// Rounded uses round caps and joins.
func Rounded() Option {
	return func(o *Op) {
		o.Cap = CapRound
		o.Round = true
	}
}

// EvenOdd fills with the even-odd rule.
func EvenOdd() Option {
	return func(o *Op) { o.EvenOdd = true }
}

// Dashed strokes with the given on/off lengths.
func Dashed(d ...float64) Option {
	return func(o *Op) { o.Dash = d }
}

// Drawing is an ordered list of ops in a local coordinate frame.
type Drawing struct {
	Ops []Op
}

func (d *Drawing) add(op Op, opts []Option) {
	for _, fn := range opts {
		fn(&op)
	}
	d.Ops = append(d.Ops, op)
}

// Fill fills p with paint.
func (d *Drawing) Fill(p *Path, paint Paint, opts ...Option) {
	d.add(Op{Kind: OpFill, Path: p, Paint: paint}, opts)
}

// Stroke strokes p with paint at the given local line width.
func (d *Drawing) Stroke(p *Path, paint Paint, width float64, opts ...Option) {
	d.add(Op{Kind: OpStroke, Path: p, Paint: paint, Width: width}, opts)
}

// FillStroke fills p and then strokes its outline.
func (d *Drawing) FillStroke(p *Path, fill, stroke Paint, width float64, opts ...Option) {
	d.Fill(p, fill, opts...)
	d.Stroke(p, stroke, width, opts...)
}

// Clip intersects the clip with p until the matching Restore.
func (d *Drawing) Clip(p *Path) {
	d.Ops = append(d.Ops, Op{Kind: OpClip, Path: p})
}

// Save pushes transform and clip state.
func (d *Drawing) Save() { d.Ops = append(d.Ops, Op{Kind: OpSave}) }

// Restore pops the state pushed by the matching Save.
func (d *Drawing) Restore() { d.Ops = append(d.Ops, Op{Kind: OpRestore}) }

// Rotate rotates the local frame by angle radians.
func (d *Drawing) Rotate(angle float64) {
	d.Ops = append(d.Ops, Op{Kind: OpRotate, Angle: angle})
}

// Text draws t filled with paint (solid colours only).
func (d *Drawing) Text(t Text, paint Paint, opts ...Option) {
	d.add(Op{Kind: OpText, Text: &t, Paint: paint}, opts)
}

// Append adds all ops of other.
func (d *Drawing) Append(other Drawing) {
	d.Ops = append(d.Ops, other.Ops...)
}

// Count returns how many ops of kind k the drawing has.
func (d Drawing) Count(k OpKind) int {
	n := 0
	for _, op := range d.Ops {
		if op.Kind == k {
			n++
		}
	}
	return n
}

// Paints reports whether the drawing produces any pixels.
func (d Drawing) Paints() bool {
	return d.Count(OpFill)+d.Count(OpStroke)+d.Count(OpText) > 0
}
