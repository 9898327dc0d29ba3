// booth renders composites and a print sheet from photos on disk.
//
// Usage:
//
//	booth [options] <photo> [photo...]
//	booth presets [-kind <kind>] [-q <words>]
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"image"
	"math/rand"
	"os"
	"path/filepath"
	"strings"

	"github.com/youruser/photobooth/internal/compose"
	"github.com/youruser/photobooth/internal/config"
	"github.com/youruser/photobooth/internal/fonts"
	imagepkg "github.com/youruser/photobooth/internal/image"
	"github.com/youruser/photobooth/internal/layout"
	"github.com/youruser/photobooth/internal/presets"
	"github.com/youruser/photobooth/internal/util"
)

func main() {
	cfg, err := config.Load(".")
	if err != nil {
		fatal(err)
	}
	catalog := presets.Builtin()
	if extra, err := presets.LoadDir(cfg.Paths.Presets); err == nil {
		catalog = presets.Merge(catalog, extra)
	}

	if len(os.Args) > 1 && os.Args[1] == "presets" {
		if err := runPresets(catalog, os.Args[2:]); err != nil {
			fatal(err)
		}
		return
	}
	if err := run(cfg, catalog, os.Args[1:]); err != nil {
		fatal(err)
	}
}

func run(cfg *config.Config, catalog []presets.Preset, args []string) error {
	fs := flag.NewFlagSet("booth", flag.ExitOnError)

	var (
		outDir     string
		templateID string
		frameID    string
		bgID       string
		decorPath  string
		name       string
		location   string
		date       string
		noise      float64
		aspect     float64
		seed       int64
		moe        bool
		lighting   bool
		showDate   bool
		fit        bool
	)
	fs.StringVar(&outDir, "o", cfg.Paths.Out, "Output directory")
	fs.StringVar(&templateID, "template", "cinema", "Sheet template id")
	fs.StringVar(&frameID, "frame", "none", "Frame preset id")
	fs.StringVar(&bgID, "bg", "bg-white", "Background preset id")
	fs.StringVar(&decorPath, "decor", "", "Decorations JSON file (strokes and stickers)")
	fs.StringVar(&name, "name", "", "Name printed on the sheet")
	fs.StringVar(&location, "location", cfg.Render.Location, "Location printed on the sheet")
	fs.StringVar(&date, "date", "", "Date printed on the sheet (default today)")
	fs.Float64Var(&noise, "noise", 0, "Film grain level, 0..1")
	fs.Float64Var(&aspect, "aspect", 0, "Aspect ratio hint; above 1 renders landscape")
	fs.Int64Var(&seed, "seed", 0, "Grain seed (0 picks one)")
	fs.BoolVar(&moe, "moe", false, "Soft bloom on the subject")
	fs.BoolVar(&lighting, "lighting", false, "Brighten the subject")
	fs.BoolVar(&showDate, "stamp", false, "Print the date stamp on composites")
	fs.BoolVar(&fit, "fit", false, "Letterbox the subject instead of cropping")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return fmt.Errorf("at least one photo is required")
	}

	fm, err := fonts.New(cfg.FontOverrides())
	if err != nil {
		return err
	}
	renderer := compose.NewRenderer(fm)

	base := compose.RenderParams{
		Lighting:    lighting,
		Moe:         moe,
		ShowDate:    showDate,
		NoiseLevel:  noise,
		AspectRatio: aspect,
		FitMode:     fit,
	}
	if p, ok := presets.Find(catalog, presets.KindBackground, bgID); ok {
		bg, _ := p.Background()
		base.Background = &bg
	} else {
		fmt.Fprintf(os.Stderr, "Warning: unknown background %q, using white\n", bgID)
	}
	if frame, ok := presets.Frame(frameID); ok {
		base.Frame = frame
	} else if p, ok := presets.Find(catalog, presets.KindFrame, frameID); ok && p.Src != "" {
		src := p.Src
		if !filepath.IsAbs(src) {
			src = filepath.Join(cfg.Paths.Presets, src)
		}
		if base.Frame, err = imagepkg.Open(src); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: frame %s skipped: %v\n", frameID, err)
		}
	}
	if decorPath != "" {
		data, err := os.ReadFile(decorPath)
		if err != nil {
			return fmt.Errorf("read decorations: %w", err)
		}
		if err := json.Unmarshal(data, &base.Decorations); err != nil {
			return fmt.Errorf("parse decorations: %w", err)
		}
	}
	if seed != 0 {
		base.Rand = rand.New(rand.NewSource(seed))
	}

	var composites []image.Image
	for i, path := range fs.Args() {
		img, err := imagepkg.Open(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %s skipped: %v\n", path, err)
			continue
		}
		p := base
		p.Subject = img
		out := renderer.RenderExport(p)
		b, err := imagepkg.PNG(out)
		if err != nil {
			return err
		}
		dst := filepath.Join(outDir, fmt.Sprintf("composite_%02d.png", i+1))
		if err := util.WriteFile(dst, b); err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", dst)
		composites = append(composites, out)
	}

	sheet, err := layout.Generate(composites, templateID, layout.Options{
		Location: location,
		Name:     name,
		Date:     date,
		Fonts:    fm,
	})
	if err != nil {
		return fmt.Errorf("sheet: %w", err)
	}
	b, err := sheet.JPEG(cfg.Render.JPEGQuality)
	if err != nil {
		return err
	}
	dst := filepath.Join(outDir, "sheet_"+templateID+".jpg")
	if err := util.WriteFile(dst, b); err != nil {
		return err
	}
	fmt.Printf("Done: %s\n", dst)
	return nil
}

func runPresets(catalog []presets.Preset, args []string) error {
	fs := flag.NewFlagSet("presets", flag.ExitOnError)
	kind := fs.String("kind", "", "Only list this kind (background, frame, template, sticker)")
	words := fs.String("q", "", "Free words to match")
	if err := fs.Parse(args); err != nil {
		return err
	}
	opt := presets.FilterOptions{FreeWords: *words}
	if *kind != "" {
		opt.Kinds = []presets.Kind{presets.Kind(*kind)}
	}
	for _, p := range presets.Filter(catalog, opt) {
		detail := strings.TrimSpace(strings.Join([]string{p.Type, p.Pack, p.Description}, " "))
		fmt.Printf("%-10s %-20s %-18s %s\n", p.Kind, p.ID, p.Name, detail)
	}
	return nil
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
