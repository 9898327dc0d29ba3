// Package presets holds the booth's selectable catalogs: backgrounds,
// frames, layout templates and sticker packs.
package presets

import (
	"strings"

	"github.com/youruser/photobooth/internal/compose"
)

// Kind is the catalog a preset belongs to.
type Kind string

const (
	KindBackground Kind = "background"
	KindFrame      Kind = "frame"
	KindTemplate   Kind = "template"
	KindSticker    Kind = "sticker"
)

// Preset is one catalog entry. Which fields are meaningful depends on Kind:
// backgrounds use Type and Value, frames Src, templates Slots and
// AspectRatio, stickers Pack.
type Preset struct {
	ID          string   `json:"id" yaml:"id"`
	Name        string   `json:"name" yaml:"name"`
	Kind        Kind     `json:"kind" yaml:"kind"`
	Type        string   `json:"type,omitempty" yaml:"type,omitempty"`
	Value       string   `json:"value,omitempty" yaml:"value,omitempty"`
	Src         string   `json:"src,omitempty" yaml:"src,omitempty"`
	Slots       int      `json:"slots,omitempty" yaml:"slots,omitempty"`
	AspectRatio float64  `json:"aspect_ratio,omitempty" yaml:"aspect_ratio,omitempty"`
	Pack        string   `json:"pack,omitempty" yaml:"pack,omitempty"`
	Description string   `json:"description,omitempty" yaml:"description,omitempty"`
	Tags        []string `json:"tags,omitempty" yaml:"tags,omitempty"`
}

// Background converts a background preset into the renderer's spec.
func (p Preset) Background() (compose.BackgroundSpec, bool) {
	if p.Kind != KindBackground {
		return compose.BackgroundSpec{}, false
	}
	t := compose.BackgroundType(strings.ToLower(p.Type))
	switch t {
	case compose.BackgroundColor, compose.BackgroundGradient, compose.BackgroundPattern:
	default:
		t = compose.BackgroundColor
	}
	return compose.BackgroundSpec{ID: p.ID, Type: t, Value: p.Value}, true
}

// Find returns the first preset of kind k with the given id.
func Find(items []Preset, k Kind, id string) (Preset, bool) {
	for _, p := range items {
		if p.Kind == k && p.ID == id {
			return p, true
		}
	}
	return Preset{}, false
}

// Merge appends extra to base, replacing base entries that share a kind
// and id.
func Merge(base, extra []Preset) []Preset {
	out := make([]Preset, 0, len(base)+len(extra))
	index := map[string]int{}
	for _, list := range [][]Preset{base, extra} {
		for _, p := range list {
			key := string(p.Kind) + "/" + p.ID
			if i, ok := index[key]; ok {
				out[i] = p
				continue
			}
			index[key] = len(out)
			out = append(out, p)
		}
	}
	return out
}
