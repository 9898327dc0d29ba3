package presets

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/youruser/photobooth/internal/compose"
	"github.com/youruser/photobooth/internal/layout"
	"github.com/youruser/photobooth/internal/sticker"
	"github.com/youruser/photobooth/internal/vector"
)

func TestBuiltinIDsUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, p := range Builtin() {
		key := string(p.Kind) + "/" + p.ID
		if seen[key] {
			t.Errorf("duplicate preset %s", key)
		}
		seen[key] = true
	}
}

func TestBuiltinTemplatesMatchLayout(t *testing.T) {
	for _, p := range Filter(Builtin(), FilterOptions{Kinds: []Kind{KindTemplate}}) {
		if got := layout.Slots(p.ID); got != p.Slots {
			t.Errorf("%s: catalog slots %d, layout slots %d", p.ID, p.Slots, got)
		}
	}
}

func TestBuiltinStickersAreProcedural(t *testing.T) {
	stickers := Filter(Builtin(), FilterOptions{Kinds: []Kind{KindSticker}})
	if len(stickers) == 0 {
		t.Fatal("no stickers")
	}
	for _, p := range stickers {
		k := sticker.Parse(p.ID)
		if k.Family == sticker.Text {
			t.Errorf("%s parses as text", p.ID)
		}
		if k.Family.String() != p.Pack {
			t.Errorf("%s: family %s, pack %s", p.ID, k.Family, p.Pack)
		}
	}
}

func TestBackgroundConversion(t *testing.T) {
	items := Builtin()
	p, ok := Find(items, KindBackground, "bg-grad-aurora")
	if !ok {
		t.Fatal("bg-grad-aurora missing")
	}
	spec, ok := p.Background()
	if !ok || spec.Type != compose.BackgroundGradient || spec.ID != "bg-grad-aurora" {
		t.Errorf("spec = %+v, %v", spec, ok)
	}

	odd := Preset{ID: "x", Kind: KindBackground, Type: "Plaid", Value: "#000"}
	if spec, _ := odd.Background(); spec.Type != compose.BackgroundColor {
		t.Errorf("unknown type mapped to %q", spec.Type)
	}
	if _, ok := (Preset{Kind: KindFrame}).Background(); ok {
		t.Error("frame converted to background")
	}
}

func TestFrames(t *testing.T) {
	if _, ok := Frame("none"); ok {
		t.Error(`Frame("none") should report false`)
	}
	for _, fd := range frameDesigns {
		img, ok := Frame(fd.id)
		if !ok {
			t.Fatalf("%s: not drawn", fd.id)
		}
		if b := img.Bounds(); b.Dx() != FrameW || b.Dy() != FrameH {
			t.Errorf("%s: bounds %v", fd.id, b)
		}
		// corner is border, centre is window
		if _, _, _, a := img.At(5, 5).RGBA(); a == 0 {
			t.Errorf("%s: corner is transparent", fd.id)
		}
		if _, _, _, a := img.At(500, 600).RGBA(); a != 0 {
			t.Errorf("%s: window centre is painted", fd.id)
		}
	}
}

func TestOutsideSkipsWindow(t *testing.T) {
	win := [4]float64{100, 100, 200, 200}

	p := vector.NewPath()
	outside(p, 150, 150, 50, 50, win)
	if !p.Empty() {
		t.Error("rect inside the window produced border pieces")
	}

	p = vector.NewPath()
	outside(p, 0, 140, 400, 40, win)
	x0, y0, x1, y1 := p.Bounds()
	if x0 != 0 || y0 != 140 || x1 != 400 || y1 != 180 {
		t.Errorf("bounds = %v %v %v %v, want 0 140 400 180", x0, y0, x1, y1)
	}
}

func TestFilter(t *testing.T) {
	items := []Preset{
		{ID: "a", Name: "Sakura", Kind: KindBackground, Type: "color", Tags: []string{"spring"}},
		{ID: "b", Name: "Ocean", Kind: KindBackground, Type: "gradient"},
		{ID: "cyber_bear", Name: "Cyber Pets", Kind: KindSticker, Pack: "cyber"},
	}
	tests := []struct {
		name string
		opt  FilterOptions
		want []string
	}{
		{"all", FilterOptions{}, []string{"a", "b", "cyber_bear"}},
		{"kind", FilterOptions{Kinds: []Kind{KindSticker}}, []string{"cyber_bear"}},
		{"type", FilterOptions{Types: []string{"gradient"}}, []string{"b"}},
		{"pack", FilterOptions{Packs: []string{"cyber"}}, []string{"cyber_bear"}},
		{"tag", FilterOptions{Tags: []string{"spring"}}, []string{"a"}},
		{"words", FilterOptions{FreeWords: "cyber BEAR"}, []string{"cyber_bear"}},
		{"no match", FilterOptions{FreeWords: "plaid"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []string
			for _, p := range Filter(items, tt.opt) {
				got = append(got, p.ID)
			}
			if strings.Join(got, ",") != strings.Join(tt.want, ",") {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMerge(t *testing.T) {
	base := []Preset{{ID: "a", Kind: KindFrame, Name: "old"}, {ID: "a", Kind: KindTemplate}}
	extra := []Preset{{ID: "a", Kind: KindFrame, Name: "new"}, {ID: "z", Kind: KindFrame}}
	got := Merge(base, extra)
	if len(got) != 3 || got[0].Name != "new" || got[2].ID != "z" {
		t.Errorf("Merge = %+v", got)
	}
}

func write(t *testing.T, dir, name, body string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, "presets.yaml", `
backgrounds:
  - id: bg-night
    name: Night
    type: color
    value: "#0f172a"
frames:
  - id: neon
    name: Neon
    src: frames/neon.png
`)
	write(t, dir, "templates.csv", "id,name,slots,aspect_ratio,description\ncinema,Strip,4,1.25,Two strips\n,skipped,1,1,\n")
	write(t, dir, "stickers.csv", "id,pack,name,tags\ncyber_bird,cyber,Bird,cute / neon / -\n")

	got, err := LoadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 4 {
		t.Fatalf("loaded %d presets: %+v", len(got), got)
	}
	if p, ok := Find(got, KindBackground, "bg-night"); !ok || p.Value != "#0f172a" {
		t.Errorf("yaml background = %+v", p)
	}
	if p, ok := Find(got, KindFrame, "neon"); !ok || p.Src != "frames/neon.png" {
		t.Errorf("yaml frame = %+v", p)
	}
	if p, ok := Find(got, KindTemplate, "cinema"); !ok || p.Slots != 4 || p.AspectRatio != 1.25 {
		t.Errorf("csv template = %+v", p)
	}
	if p, ok := Find(got, KindSticker, "cyber_bird"); !ok || strings.Join(p.Tags, ",") != "cute,neon" {
		t.Errorf("csv sticker = %+v", p)
	}
}

func TestLoadDirErrors(t *testing.T) {
	if _, err := LoadDir(t.TempDir()); !errors.Is(err, ErrNoCatalog) {
		t.Errorf("empty dir: %v", err)
	}

	dir := t.TempDir()
	write(t, dir, "templates.csv", "id,slots\ncinema,four\n")
	if _, err := LoadDir(dir); err == nil {
		t.Error("bad slots should fail")
	}

	dir = t.TempDir()
	write(t, dir, "presets.yaml", "backgrounds: [unclosed")
	if _, err := LoadDir(dir); err == nil {
		t.Error("bad yaml should fail")
	}
}

func TestParseListCell(t *testing.T) {
	got := parseListCell(" a ／ b / - /  ")
	if strings.Join(got, "|") != "a|b" {
		t.Errorf("parseListCell = %q", got)
	}
}
