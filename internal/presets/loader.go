package presets

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrNoCatalog is returned by LoadDir when the directory holds none of
// the catalog files.
var ErrNoCatalog = errors.New("no preset files found")

// catalogFile is the layout of presets.yaml; each section sets the kind
// of its entries.
type catalogFile struct {
	Backgrounds []Preset `yaml:"backgrounds"`
	Frames      []Preset `yaml:"frames"`
	Templates   []Preset `yaml:"templates"`
	Stickers    []Preset `yaml:"stickers"`
}

var csvFiles = []struct {
	name string
	kind Kind
}{
	{"backgrounds.csv", KindBackground},
	{"frames.csv", KindFrame},
	{"templates.csv", KindTemplate},
	{"stickers.csv", KindSticker},
}

// LoadDir reads presets.yaml and any of backgrounds.csv, frames.csv,
// templates.csv and stickers.csv from dir. Missing files are skipped; a
// file that exists but does not parse is an error.
func LoadDir(dir string) ([]Preset, error) {
	var all []Preset
	found := false

	yml := filepath.Join(dir, "presets.yaml")
	if _, err := os.Stat(yml); err == nil {
		found = true
		ps, err := loadYAML(yml)
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", yml, err)
		}
		all = append(all, ps...)
	}

	for _, f := range csvFiles {
		path := filepath.Join(dir, f.name)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		found = true
		ps, err := loadCSV(path, f.kind)
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", path, err)
		}
		all = append(all, ps...)
	}
	if !found {
		return nil, fmt.Errorf("%w in %s", ErrNoCatalog, dir)
	}
	return all, nil
}

func loadYAML(path string) ([]Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cf catalogFile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, err
	}
	var out []Preset
	for _, sec := range []struct {
		kind  Kind
		items []Preset
	}{
		{KindBackground, cf.Backgrounds},
		{KindFrame, cf.Frames},
		{KindTemplate, cf.Templates},
		{KindSticker, cf.Stickers},
	} {
		for _, p := range sec.items {
			if p.ID == "" {
				continue
			}
			p.Kind = sec.kind
			out = append(out, p)
		}
	}
	return out, nil
}

// parseListCell splits a "a / b / c" cell, dropping blanks and "-".
func parseListCell(s string) []string {
	s = strings.ReplaceAll(s, "／", "/")
	out := []string{}
	for _, p := range strings.Split(s, "/") {
		t := strings.TrimSpace(p)
		if t != "" && t != "-" {
			out = append(out, t)
		}
	}
	return out
}

func loadCSV(path string, kind Kind) ([]Preset, error) {
	fp, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fp.Close()

	r := csv.NewReader(fp)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) < 1 {
		return nil, fmt.Errorf("csv %s has no header", path)
	}
	cols := map[string]int{}
	for i, h := range rows[0] {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}
	get := func(row []string, name string) string {
		if idx, ok := cols[name]; ok && idx < len(row) {
			return strings.TrimSpace(row[idx])
		}
		return ""
	}

	out := []Preset{}
	for n, row := range rows[1:] {
		p := Preset{
			ID:          get(row, "id"),
			Name:        get(row, "name"),
			Kind:        kind,
			Type:        get(row, "type"),
			Value:       get(row, "value"),
			Src:         get(row, "src"),
			Pack:        get(row, "pack"),
			Description: get(row, "description"),
			Tags:        parseListCell(get(row, "tags")),
		}
		if p.ID == "" {
			continue
		}
		if s := get(row, "slots"); s != "" && s != "-" {
			v, err := strconv.Atoi(s)
			if err != nil {
				return nil, fmt.Errorf("row %d: slots: %w", n+2, err)
			}
			p.Slots = v
		}
		if s := get(row, "aspect_ratio"); s != "" && s != "-" {
			v, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return nil, fmt.Errorf("row %d: aspect_ratio: %w", n+2, err)
			}
			p.AspectRatio = v
		}
		out = append(out, p)
	}
	return out, nil
}
