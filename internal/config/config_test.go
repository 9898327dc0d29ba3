package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/youruser/photobooth/internal/fonts"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("BOOTH_PRESETS", "")
	t.Setenv("BOOTH_OUT", "")
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Server.Port != "8080" || cfg.Paths.Presets != "data" || cfg.Render.JPEGQuality != 95 {
		t.Errorf("defaults = %+v", cfg)
	}
	if d, _ := cfg.Timeout(); d != 15*time.Second {
		t.Errorf("timeout = %v", d)
	}
	if len(cfg.FontOverrides()) != 0 {
		t.Error("unexpected font overrides")
	}
}

func TestLoadFileThenEnv(t *testing.T) {
	dir := t.TempDir()
	yml := `
server:
  port: "9000"
  max_poses: 4
render:
  location: OSAKA
paths:
  presets: catalog
fonts:
  bold: /fonts/Bold.ttf
  emoji: /fonts/NotoEmoji.ttf
`
	if err := os.WriteFile(filepath.Join(dir, FileName), []byte(yml), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PORT", "")
	t.Setenv("BOOTH_PRESETS", "")
	t.Setenv("BOOTH_OUT", "/tmp/booth")

	cfg, err := Load(dir)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Server.Port != "9000" || cfg.Server.MaxPoses != 4 {
		t.Errorf("server = %+v", cfg.Server)
	}
	// fields absent from the file keep their defaults
	if cfg.Render.Location != "OSAKA" || cfg.Render.JPEGQuality != 95 {
		t.Errorf("render = %+v", cfg.Render)
	}
	if cfg.Paths.Presets != "catalog" || cfg.Paths.Out != "/tmp/booth" {
		t.Errorf("paths = %+v", cfg.Paths)
	}
	if got := cfg.FontOverrides(); len(got) != 2 || got[fonts.Bold] != "/fonts/Bold.ttf" || got[fonts.Emoji] != "/fonts/NotoEmoji.ttf" {
		t.Errorf("font overrides = %v", got)
	}

	t.Setenv("PORT", "7000")
	cfg, err = Load(dir)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Server.Port != "7000" {
		t.Errorf("PORT not applied: %q", cfg.Server.Port)
	}
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name, yml string
	}{
		{"syntax", "server: [port"},
		{"poses", "server:\n  max_poses: -1\n"},
		{"timeout", "server:\n  fetch_timeout: soon\n"},
		{"quality", "render:\n  jpeg_quality: 101\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			if err := os.WriteFile(filepath.Join(dir, FileName), []byte(tt.yml), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(dir); err == nil {
				t.Error("expected an error")
			}
		})
	}
}
