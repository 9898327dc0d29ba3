package presets

import "strings"

// FilterOptions narrows a catalog. Empty fields match everything.
type FilterOptions struct {
	Kinds     []Kind   `json:"kinds"`
	Types     []string `json:"types"`
	Packs     []string `json:"packs"`
	Tags      []string `json:"tags"`
	FreeWords string   `json:"free_words"`
}

func containsAny(hay []string, needles []string) bool {
	for _, n := range needles {
		for _, h := range hay {
			if strings.Contains(h, n) {
				return true
			}
		}
	}
	return false
}

func oneOf[T comparable](v T, set []T) bool {
	for _, s := range set {
		if v == s {
			return true
		}
	}
	return false
}

// Filter returns the presets matching every option, in catalog order.
func Filter(items []Preset, opt FilterOptions) []Preset {
	var out []Preset
	for _, p := range items {
		if len(opt.Kinds) > 0 && !oneOf(p.Kind, opt.Kinds) {
			continue
		}
		if len(opt.Types) > 0 && !oneOf(p.Type, opt.Types) {
			continue
		}
		if len(opt.Packs) > 0 && !oneOf(p.Pack, opt.Packs) {
			continue
		}
		if len(opt.Tags) > 0 && !containsAny(p.Tags, opt.Tags) {
			continue
		}
		if opt.FreeWords != "" {
			hay := strings.ToLower(strings.Join(append([]string{p.ID, p.Name, p.Description}, p.Tags...), " "))
			ok := true
			for _, k := range strings.Fields(opt.FreeWords) {
				if !strings.Contains(hay, strings.ToLower(k)) {
					ok = false
					break
				}
			}
			if !ok {
				continue
			}
		}
		out = append(out, p)
	}
	return out
}
