// Package sticker draws the procedural sticker packs. A sticker's content
// string is parsed once into a Kind; each family then builds a
// vector.Drawing in a local frame centred on the origin with an extent of
// roughly ±100 units.
package sticker

import (
	"fmt"
	"strings"
)

// Family is the sticker pack, chosen by content prefix.
type Family uint8

const (
	// Text renders the content itself, e.g. a plain emoji.
	Text Family = iota
	Y2K
	Ribbon
	Doodle
	Retro
	Cyber
)

var familyPrefixes = []struct {
	prefix string
	family Family
}{
	{"y2k", Y2K},
	{"ribbon", Ribbon},
	{"doodle", Doodle},
	{"retro", Retro},
	{"cyber", Cyber},
}

func (f Family) String() string {
	for _, fp := range familyPrefixes {
		if fp.family == f {
			return fp.prefix
		}
	}
	return "text"
}

// Variant is the shape within a family.
type Variant uint8

const (
	None Variant = iota

	Star
	Moon
	Cross

	BowRed
	BowPink
	BowBlue

	Sparkle
	Heart
	Wings
	Whiskers
	Crown

	Bauble
	Holly
	Light
	Stocking
	Tree

	Bear
	Bunny
	Kitty
	Puppy
	Bird
)

var variantNames = [...]string{
	None:     "none",
	Star:     "star",
	Moon:     "moon",
	Cross:    "cross",
	BowRed:   "red",
	BowPink:  "pink",
	BowBlue:  "blue",
	Sparkle:  "sparkle",
	Heart:    "heart",
	Wings:    "wings",
	Whiskers: "whiskers",
	Crown:    "crown",
	Bauble:   "bauble",
	Holly:    "holly",
	Light:    "light",
	Stocking: "stocking",
	Tree:     "tree",
	Bear:     "bear",
	Bunny:    "bunny",
	Kitty:    "kitty",
	Puppy:    "puppy",
	Bird:     "bird",
}

func (v Variant) String() string {
	if int(v) < len(variantNames) {
		return variantNames[v]
	}
	return "unknown"
}

// match pairs an id substring with a variant. Order matters: the first
// matching entry wins, and the last entry of each table is the fallback.
type match struct {
	sub     string
	variant Variant
}

var variantTables = map[Family][]match{
	Y2K:    {{"moon", Moon}, {"cross", Cross}, {"", Star}},
	Ribbon: {{"pink", BowPink}, {"blue", BowBlue}, {"", BowRed}},
	Doodle: {{"sparkle", Sparkle}, {"heart", Heart}, {"wings", Wings}, {"whiskers", Whiskers}, {"crown", Crown}, {"", Sparkle}},
	Retro:  {{"bauble", Bauble}, {"holly", Holly}, {"light", Light}, {"stocking", Stocking}, {"tree", Tree}, {"", Bauble}},
	Cyber:  {{"bear", Bear}, {"bunny", Bunny}, {"kitty", Kitty}, {"puppy", Puppy}, {"bird", Bird}, {"", Bear}},
}

// Kind is a parsed sticker content string.
type Kind struct {
	Family  Family
	Variant Variant
	// Holo selects the holographic gradient for Y2K shapes.
	Holo bool
	// Check selects the gingham fill for ribbons.
	Check bool
	// Content is the original string, drawn verbatim for Text.
	Content string
}

// Parse resolves a content string into its Kind. It never fails: any
// unrecognised prefix is a Text sticker.
func Parse(content string) Kind {
	k := Kind{Family: Text, Content: content}
	for _, fp := range familyPrefixes {
		if strings.HasPrefix(content, fp.prefix) {
			k.Family = fp.family
			break
		}
	}
	if k.Family == Text {
		return k
	}
	for _, m := range variantTables[k.Family] {
		if strings.Contains(content, m.sub) {
			k.Variant = m.variant
			break
		}
	}
	switch k.Family {
	case Y2K:
		k.Holo = strings.Contains(content, "holo")
	case Ribbon:
		k.Check = strings.Contains(content, "check")
	}
	return k
}

func (k Kind) String() string {
	if k.Family == Text {
		return fmt.Sprintf("text(%q)", k.Content)
	}
	s := k.Family.String() + "/" + k.Variant.String()
	if k.Holo {
		s += "+holo"
	}
	if k.Check {
		s += "+check"
	}
	return s
}
