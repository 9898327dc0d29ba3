package fonts

import (
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

func TestFace_AllStyles(t *testing.T) {
	m := Default()
	for _, s := range []Style{Regular, Bold, Italic, BoldItalic, Mono, Emoji} {
		face, err := m.Face(s, 32)
		if err != nil {
			t.Fatalf("Face(%v): %v", s, err)
		}
		if w := font.MeasureString(face, "'25 . 02 . 14"); w.Ceil() <= 0 {
			t.Errorf("%v: zero advance", s)
		}
		face.Close()
	}
}

func TestNew_MissingOverrideFallsBack(t *testing.T) {
	m, err := New(map[Style]string{Bold: "/nonexistent/font.ttf"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if _, err := m.Face(Bold, 12); err != nil {
		t.Fatalf("Face: %v", err)
	}
}

func TestResolve(t *testing.T) {
	m := Default()
	tests := []struct {
		style Style
		s     string
		want  Style
	}{
		{Bold, "😀", Bold},
		{Emoji, "hello", Emoji},
		// the embedded fallback has no emoji glyphs
		{Emoji, "😀", Regular},
		{Emoji, "hi ❤️", Regular},
	}
	for _, tt := range tests {
		if got := m.Resolve(tt.style, tt.s); got != tt.want {
			t.Errorf("Resolve(%v, %q) = %v, want %v", tt.style, tt.s, got, tt.want)
		}
	}
}

func TestNew_EmojiOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "emoji.ttf")
	if err := os.WriteFile(path, gomono.TTF, 0o644); err != nil {
		t.Fatal(err)
	}
	m, err := New(map[Style]string{Emoji: path})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if got := m.Resolve(Emoji, "{}"); got != Emoji {
		t.Errorf("Resolve = %v, want emoji", got)
	}
	if _, err := m.Face(Emoji, 24); err != nil {
		t.Fatalf("Face: %v", err)
	}
}
