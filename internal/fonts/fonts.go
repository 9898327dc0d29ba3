// fonts.go - Font management for sheet typography, date stamps and text
// stickers. Uses golang.org/x/image/font/opentype with the embedded Go font
// family, optionally overridden per style by a TTF/OTF file on disk.
package fonts

import (
	"fmt"
	"log"
	"os"
	"sync"
	"unicode"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// Style names one member of the font family.
type Style int

const (
	Regular Style = iota
	Bold
	Italic
	BoldItalic
	Mono
	// Emoji sets text stickers. Without an override it is the regular Go
	// font, which has no emoji glyphs.
	Emoji
)

func (s Style) String() string {
	switch s {
	case Bold:
		return "bold"
	case Italic:
		return "italic"
	case BoldItalic:
		return "bold-italic"
	case Mono:
		return "mono"
	case Emoji:
		return "emoji"
	default:
		return "regular"
	}
}

// Script is the style used for handwritten fields such as signatures.
const Script = Italic

var embedded = map[Style][]byte{
	Regular:    goregular.TTF,
	Bold:       gobold.TTF,
	Italic:     goitalic.TTF,
	BoldItalic: gobolditalic.TTF,
	Mono:       gomono.TTF,
	Emoji:      goregular.TTF,
}

// Manager holds parsed fonts. Parsed fonts are immutable and safe to
// share; faces are not, so Face returns a fresh one per call.
type Manager struct {
	parsed map[Style]*opentype.Font
}

// New parses the embedded Go fonts. overrides maps a style to a font file
// that replaces the embedded face; unreadable files fall back with a warning.
func New(overrides map[Style]string) (*Manager, error) {
	m := &Manager{parsed: make(map[Style]*opentype.Font, len(embedded))}
	for style, data := range embedded {
		if path := overrides[style]; path != "" {
			custom, err := os.ReadFile(path)
			if err != nil {
				log.Printf("Warning: could not load %s font %q, using default: %v", style, path, err)
			} else {
				data = custom
			}
		}
		f, err := opentype.Parse(data)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s font: %w", style, err)
		}
		m.parsed[style] = f
	}
	return m, nil
}

var (
	defaultOnce sync.Once
	defaultMgr  *Manager
)

// Default is a shared Manager over the embedded fonts only.
func Default() *Manager {
	defaultOnce.Do(func() {
		m, err := New(nil)
		if err != nil {
			// embedded fonts always parse
			panic(err)
		}
		defaultMgr = m
	})
	return defaultMgr
}

// Face returns a face at size pixels.
func (m *Manager) Face(style Style, size float64) (font.Face, error) {
	f, ok := m.parsed[style]
	if !ok {
		f = m.parsed[Regular]
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create font face: %w", err)
	}
	return face, nil
}

// Resolve returns style, unless style is Emoji and the emoji font lacks a
// glyph that s needs, in which case s is set in Regular.
func (m *Manager) Resolve(style Style, s string) Style {
	if style != Emoji {
		return style
	}
	f, ok := m.parsed[Emoji]
	if !ok {
		return Regular
	}
	var buf sfnt.Buffer
	for _, r := range s {
		if unicode.IsSpace(r) || unicode.Is(unicode.Variation_Selector, r) || r == '\u200d' {
			continue
		}
		if g, err := f.GlyphIndex(&buf, r); err != nil || g == 0 {
			return Regular
		}
	}
	return Emoji
}
