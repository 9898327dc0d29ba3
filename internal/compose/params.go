// Package compose renders one booth composite: background, subject,
// decorations and finishing effects on a fixed-size canvas.
package compose

import (
	"encoding/json"
	"image"
	"math"
	"math/rand"
	"time"

	"github.com/youruser/photobooth/internal/geometry"
	"github.com/youruser/photobooth/internal/sticker"
)

// BackgroundType selects how a BackgroundSpec's value is read.
type BackgroundType string

const (
	BackgroundColor    BackgroundType = "color"
	BackgroundGradient BackgroundType = "gradient"
	BackgroundPattern  BackgroundType = "pattern"
)

// BackgroundSpec describes the canvas fill beneath the subject.
type BackgroundSpec struct {
	ID    string         `json:"id" yaml:"id"`
	Type  BackgroundType `json:"type" yaml:"type"`
	Value string         `json:"value" yaml:"value"`
}

// ImageTransform is the user's pan and zoom on top of the automatic fit.
// The zero value behaves as {0, 0, 1}.
type ImageTransform struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Scale float64 `json:"scale"`
}

// MaxZoom caps the user zoom.
const MaxZoom = 100

func (t *ImageTransform) zoom() float64 {
	if t == nil || !(t.Scale > 0) {
		return 1
	}
	return math.Min(t.Scale, MaxZoom)
}

func (t *ImageTransform) pan() (float64, float64) {
	if t == nil {
		return 0, 0
	}
	return t.X, t.Y
}

// Point is a canvas pixel position.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Stroke is a freehand polyline in canvas space.
type Stroke struct {
	Color  string  `json:"color"`
	Width  float64 `json:"width"`
	Points []Point `json:"points"`
	IsNeon bool    `json:"isNeon,omitempty"`
}

// StickerItem places one sticker. Its content string is resolved to a
// sticker.Kind when the item is built or decoded.
type StickerItem struct {
	ID        string  `json:"id"`
	Content   string  `json:"content"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Scale     float64 `json:"scale"`
	Rotation  float64 `json:"rotation"`
	IsFlipped bool    `json:"isFlipped,omitempty"`

	kind   sticker.Kind
	parsed bool
}

// NewStickerItem returns an unrotated sticker of unit scale at (x, y).
func NewStickerItem(id, content string, x, y float64) StickerItem {
	return StickerItem{
		ID:      id,
		Content: content,
		X:       x,
		Y:       y,
		Scale:   1,
		kind:    sticker.Parse(content),
		parsed:  true,
	}
}

// Kind returns the parsed sticker kind. Items built as struct literals, or
// whose Content was changed after parsing, are parsed on demand.
func (s StickerItem) Kind() sticker.Kind {
	if s.parsed && s.kind.Content == s.Content {
		return s.kind
	}
	return sticker.Parse(s.Content)
}

func (s *StickerItem) UnmarshalJSON(data []byte) error {
	type plain StickerItem
	v := plain{Scale: 1}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*s = StickerItem(v)
	s.kind = sticker.Parse(s.Content)
	s.parsed = true
	return nil
}

// DecorationState holds strokes and stickers in z-order; strokes are
// always drawn beneath stickers.
type DecorationState struct {
	Strokes  []Stroke      `json:"strokes"`
	Stickers []StickerItem `json:"stickers"`
}

// DefaultFocusY keeps faces in frame when a portrait is cover-cropped.
const DefaultFocusY = 0.2

// RenderParams is everything one composite render consumes. Only Subject
// is expected; every other field has a usable zero value.
type RenderParams struct {
	Subject    image.Image
	Background *BackgroundSpec
	Frame      image.Image
	Transform  *ImageTransform

	Lighting   bool
	Moe        bool
	ShowDate   bool
	NoiseLevel float64

	Decorations       DecorationState
	SelectedStickerID string

	// AspectRatio above 1 selects the landscape canvas.
	AspectRatio float64
	// FitMode letterboxes the subject instead of cover-cropping it.
	FitMode bool
	// Crop overrides the cover crop alignment; nil uses DefaultFocusY.
	Crop *geometry.Align

	// Now dates the stamp; zero means time.Now().
	Now time.Time
	// Rand seeds the grain; nil uses a fresh time-seeded source.
	Rand *rand.Rand
}

// Portrait and landscape canvas sizes.
const (
	CanvasShort = 1000
	CanvasLong  = 1400
)

// Dimensions returns the canvas size for an aspect ratio hint.
func Dimensions(aspect float64) (w, h int) {
	if aspect > 1 {
		return CanvasLong, CanvasShort
	}
	return CanvasShort, CanvasLong
}
