package presets

func colorBg(id, name, value string) Preset {
	return Preset{ID: id, Name: name, Kind: KindBackground, Type: "color", Value: value}
}

func gradientBg(id, name, desc string) Preset {
	return Preset{ID: id, Name: name, Kind: KindBackground, Type: "gradient", Description: desc}
}

func templateOf(id, name, desc string, slots int, aspect float64) Preset {
	return Preset{ID: id, Name: name, Kind: KindTemplate, Slots: slots, AspectRatio: aspect, Description: desc}
}

func pack(pack, name string, ids ...string) []Preset {
	out := make([]Preset, len(ids))
	for i, id := range ids {
		out[i] = Preset{ID: id, Name: name, Kind: KindSticker, Pack: pack}
	}
	return out
}

// Builtin returns a fresh copy of the catalog shipped with the booth.
func Builtin() []Preset {
	out := []Preset{
		colorBg("bg-white", "White", "#ffffff"),
		colorBg("bg-pink", "Sakura", "#fce7f3"),
		colorBg("bg-blue", "Sky", "#e0f2fe"),
		colorBg("bg-green", "Mint", "#f0fdf4"),
		colorBg("bg-cream", "Cream", "#fffbeb"),
		gradientBg("bg-grad-pink", "Sunset", "#ff9a9e to #fad0c4"),
		gradientBg("bg-grad-blue", "Ocean", "#a1c4fd to #c2e9fb"),
		gradientBg("bg-grad-lavender", "Dream", "#cfd9df to #e2ebf0"),
		gradientBg("bg-grad-aurora", "Aurora", "#a18cd1 to #fbc2eb"),
		{ID: "bg-polka", Name: "Polka", Kind: KindBackground, Type: "pattern", Value: "#fce7f3"},

		{ID: "none", Name: "No Frame", Kind: KindFrame},
	}
	for _, d := range frameDesigns {
		out = append(out, Preset{ID: d.id, Name: d.name, Kind: KindFrame})
	}
	out = append(out,
		templateOf("cinema", "Life4Cuts", "Double Strip (White/Pink)", 4, 1.25),
		templateOf("polaroid", "Polaroid", "Blue Gradient", 1, 1),
		templateOf("standard", "ID Photo", "Blue Grid", 1, 0.77),
		templateOf("driver_license", "License", "Pink Card", 1, 0.77),
		templateOf("magazine", "Besties", "Pink Collage", 4, 0.71),
		templateOf("wanted", "Wanted", "Old West Poster", 1, 0.71),
	)
	out = append(out, pack("y2k", "Y2K Galactic",
		"y2k_star_chrome", "y2k_moon_chrome", "y2k_star_holo", "y2k_cross_star")...)
	out = append(out, pack("ribbon", "Coquette",
		"ribbon_bow_red", "ribbon_bow_pink", "ribbon_bow_blue", "ribbon_check_pink")...)
	out = append(out, pack("doodle", "Doodles",
		"doodle_sparkle", "doodle_heart", "doodle_wings", "doodle_whiskers", "doodle_crown")...)
	out = append(out, pack("cyber", "Cyber Pets",
		"cyber_bear", "cyber_bunny", "cyber_kitty", "cyber_puppy", "cyber_bird")...)
	out = append(out, pack("retro", "Xmas Party",
		"retro_bauble", "retro_holly", "retro_light", "retro_stocking", "retro_tree")...)
	return out
}
