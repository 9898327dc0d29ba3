package presets

import (
	"image"

	"github.com/fogleman/gg"

	"github.com/youruser/photobooth/internal/fonts"
	"github.com/youruser/photobooth/internal/vector"
)

// Frame overlays are drawn on a portrait artboard and stretched over the
// canvas by the renderer.
const (
	FrameW = 1000
	FrameH = 1333
)

type frameDesign struct {
	id, name string
	draw     func(d *vector.Drawing)
}

var frameDesigns = []frameDesign{
	{"tea_party", "Tea Party", teaParty},
	{"dreamy_life", "Dreamy Life", dreamyLife},
	{"star_gazer", "Star Gazer", starGazer},
	{"love_struck", "Love Struck", loveStruck},
	{"dreamy_skies", "Dreamy Skies", dreamySkies},
	{"dog_flowers", "Dog & Flowers", dogFlowers},
	{"constellations", "Star Bear", constellations},
	{"cute_gingham", "Cute Gingham", cuteGingham},
	{"magic_vibes", "Magic Vibes", magicVibes},
	{"mermaid_vibes", "Mermaid Vibes", mermaidVibes},
	{"frog_mush", "Frog & Mushroom", frogMush},
	{"bestie_vibes", "Bestie Vibes", bestieVibes},
}

// Frame renders the built-in overlay with the given id. It reports false
// for "none" and for ids that are not drawn procedurally.
func Frame(id string) (image.Image, bool) {
	for _, fd := range frameDesigns {
		if fd.id != id {
			continue
		}
		var d vector.Drawing
		fd.draw(&d)
		dc := gg.NewContext(FrameW, FrameH)
		vector.NewPainter(nil).Paint(dc, vector.Place(0, 0), d)
		return dc.Image(), true
	}
	return nil, false
}

// border fills the artboard except for the photo window.
func border(d *vector.Drawing, paint vector.Paint, window *vector.Path) {
	p := vector.NewPath().Rect(0, 0, FrameW, FrameH)
	p.Append(window)
	d.Fill(p, paint, vector.EvenOdd())
}

// outside adds the parts of the x,y,w,h rectangle that lie outside the
// window rectangle win.
func outside(p *vector.Path, x, y, w, h float64, win [4]float64) {
	add := func(x0, y0, x1, y1 float64) {
		if x1 > x0 && y1 > y0 {
			p.Rect(x0, y0, x1-x0, y1-y0)
		}
	}
	x1, y1 := x+w, y+h
	wx0, wy0, wx1, wy1 := win[0], win[1], win[0]+win[2], win[1]+win[3]
	add(x, y, x1, min(y1, wy0))
	add(x, max(y, wy1), x1, y1)
	my0, my1 := max(y, wy0), min(y1, wy1)
	add(x, my0, min(x1, wx0), my1)
	add(max(x, wx1), my0, x1, my1)
}

func caption(d *vector.Drawing, s string, y float64, c string) {
	d.Text(vector.Text{S: s, X: FrameW / 2, Y: y, Size: 80, Style: fonts.Bold, AnchorX: 0.5}, vector.Hex(c))
}

func dot(d *vector.Drawing, x, y, r float64, c string) {
	d.Fill(vector.NewPath().Circle(x, y, r), vector.Hex(c))
}

func flower(d *vector.Drawing, x, y float64, petal string) {
	dot(d, x, y, 15, "#fde047")
	for _, o := range [][2]float64{{0, -20}, {18, -8}, {12, 15}, {-12, 15}, {-18, -8}} {
		dot(d, x+o[0], y+o[1], 12, petal)
	}
}

func strawberry(d *vector.Drawing, x, y float64) {
	d.Fill(vector.NewPath().MoveTo(x, y+20).
		QuadTo(x-25, y+20, x-20, y-15).
		QuadTo(x, y-35, x+20, y-15).
		QuadTo(x+25, y+20, x, y+20).Close(), vector.Hex("#f87171"))
	dot(d, x-5, y-5, 2, "rgba(255,255,255,0.6)")
	dot(d, x+8, y+5, 2, "rgba(255,255,255,0.6)")
	d.Fill(vector.NewPath().MoveTo(x-15, y-22).QuadTo(x, y-40, x+15, y-22).LineTo(x, y-25).Close(),
		vector.Hex("#4ade80"))
}

// crescent is a moon whose outer edge runs from (x, y) down to (x, y+h).
func crescent(d *vector.Drawing, x, y, h float64) {
	d.Fill(vector.NewPath().MoveTo(x, y).
		QuadTo(x-h/2, y, x-h/2, y+h/2).
		QuadTo(x-h/2, y+h, x, y+h).
		QuadTo(x-h*0.3, y+h/2, x, y).Close(), vector.Hex("#fde047"))
}

func wand(d *vector.Drawing, x, y float64) {
	d.Fill(vector.NewPath().Rect(x-5, y, 10, 100), vector.Hex("#b45309"))
	d.Fill(vector.NewPath().Polygon(x-20, y, x, y-30, x+20, y, x, y+30), vector.Hex("#fde047"))
}

func teaParty(d *vector.Drawing) {
	border(d, vector.Hex("#fce7f3"), vector.NewPath().Rect(120, 120, 760, 1093))

	cake := vector.NewPath().MoveTo(50, 110).
		QuadTo(20, 110, 20, 80).QuadTo(20, 50, 50, 50).
		LineTo(120, 50).
		QuadTo(150, 50, 150, 80).QuadTo(150, 110, 120, 110)
	d.FillStroke(cake, vector.Hex("#ffffff"), vector.Hex("#db2777"), 4)
	d.Stroke(vector.NewPath().MoveTo(80, 50).LineTo(80, 40).MoveTo(100, 50).LineTo(100, 40),
		vector.Hex("#db2777"), 4, vector.Rounded())
	dot(d, 85, 80, 10, "#f472b6")

	const cx, cy = 850, 80
	cup := vector.NewPath().MoveTo(cx, cy+40).
		QuadTo(cx+40, cy+40, cx+40, cy+20).QuadTo(cx+40, cy, cx+20, cy).
		LineTo(cx-20, cy).
		QuadTo(cx-40, cy, cx-40, cy+20).QuadTo(cx-40, cy+40, cx, cy+40).Close()
	d.FillStroke(cup, vector.Hex("#f9fafb"), vector.Hex("#374151"), 3)
	d.Stroke(vector.NewPath().MoveTo(cx+40, cy+20).QuadTo(cx+55, cy+20, cx+55, cy+10).QuadTo(cx+55, cy, cx+40, cy),
		vector.Hex("#374151"), 3)
	d.Stroke(vector.NewPath().MoveTo(cx, cy+15).LineTo(cx, cy+5), vector.Hex("#92400e"), 8)

	strawberry(d, 500, 70)
	strawberry(d, 500, 1260)
	flower(d, 60, 400, "#c084fc")
	flower(d, 940, 400, "#c084fc")
	flower(d, 60, 900, "#60a5fa")
	flower(d, 940, 900, "#60a5fa")
}

func dreamyLife(d *vector.Drawing) {
	sky := vector.Linear(0, 0, 0, FrameH, vector.At(0, "#bae6fd"), vector.At(1, "#ddd6fe"))
	border(d, sky, vector.NewPath().Rect(120, 120, 760, 900))
	caption(d, "Dreamy Life", 1200, "#6d28d9")
	crescent(d, 850, 100, 100)
	cloud := vector.NewPath().Circle(100, 180, 30).Circle(140, 180, 40).Circle(180, 180, 30)
	d.Fill(cloud, vector.Hex("rgba(255,255,255,0.9)"))
	dot(d, 500, 60, 5, "#ffffff")
	dot(d, 200, 1100, 5, "#ffffff")
}

func starGazer(d *vector.Drawing) {
	star := vector.NewPath().Polygon(500, 150, 600, 450, 915, 450, 660, 635, 755, 935,
		500, 750, 245, 935, 340, 635, 85, 450, 400, 450)
	border(d, vector.Hex("#ddd6fe"), star)
	caption(d, "Star Gazer", 1220, "#4c1d95")

	d.FillStroke(vector.NewPath().Circle(100, 1100, 40), vector.Hex("#ffffff"), vector.Hex("#3b82f6"), 4)
	d.Fill(vector.NewPath().Rect(80, 1090, 40, 20), vector.Hex("#3b82f6"))

	d.Fill(vector.NewPath().Polygon(850, 150, 870, 190, 830, 190), vector.Hex("#ef4444"))
	d.Fill(vector.NewPath().Rect(840, 190, 20, 40), vector.Hex("#d1d5db"))

	dot(d, 50, 100, 30, "#fb923c")
	d.Stroke(vector.NewPath().MoveTo(10, 100).LineTo(90, 100), vector.Hex("rgba(234,88,12,0.6)"), 4)
}

func loveStruck(d *vector.Drawing) {
	heart := vector.NewPath().MoveTo(500, 1100).
		CubicTo(100, 750, 150, 250, 500, 250).
		CubicTo(850, 250, 900, 750, 500, 1100).Close()
	border(d, vector.Hex("#fce7f3"), heart)
	caption(d, "Love Struck", 1220, "#be185d")
	dot(d, 150, 150, 40, "#fef3c7")
	wand(d, 100, 1150)
	clouds := vector.NewPath().Circle(850, 150, 30).Circle(900, 150, 25).Circle(100, 1000, 25)
	d.Fill(clouds, vector.Hex("rgba(255,255,255,0.8)"))
}

func dreamySkies(d *vector.Drawing) {
	blob := vector.NewPath().MoveTo(500, 200).
		CubicTo(300, 200, 200, 400, 200, 600).
		CubicTo(200, 800, 350, 900, 500, 900).
		CubicTo(650, 900, 800, 800, 800, 600).
		CubicTo(800, 400, 700, 200, 500, 200).Close()
	border(d, vector.Hex("#fef9c3"), blob)
	caption(d, "Dreamy Skies", 1220, "#a16207")

	d.Fill(vector.NewPath().MoveTo(100, 150).QuadTo(130, 130, 160, 150).LineTo(130, 190).Close(), vector.Hex("#60a5fa"))
	dot(d, 110, 155, 2, "#000000")

	for i, c := range []string{"#f87171", "#fbbf24", "#60a5fa"} {
		y := 100 + float64(i)*20
		d.Stroke(vector.NewPath().MoveTo(750, y).QuadTo(800, y-50, 850, y), vector.Hex(c), 8)
	}
}

func dogFlowers(d *vector.Drawing) {
	border(d, vector.Hex("#fefce8"), vector.NewPath().Rect(120, 120, 760, 900))
	paw := vector.NewPath().Circle(850, 1200, 40).Circle(815, 1190, 20).Circle(885, 1190, 20).Circle(850, 1245, 10)
	d.Fill(paw, vector.Hex("#d6d3d1"))
	flower(d, 200, 1240, "#fbcfe8")
	flower(d, 400, 1260, "#bfdbfe")
	flower(d, 600, 1240, "#fef08a")
	d.Fill(vector.NewPath().MoveTo(50, 100).QuadTo(80, 70, 110, 100).QuadTo(80, 130, 50, 100).Close(),
		vector.Hex("rgba(253,224,71,0.7)"))
}

func constellations(d *vector.Drawing) {
	border(d, vector.Hex("#e0e7ff"), vector.NewPath().Rect(120, 120, 760, 900))

	bear := vector.NewPath().Circle(850, 1200, 60).Circle(800, 1160, 25).Circle(900, 1160, 25)
	d.Fill(bear, vector.Hex("#a8a29e"))
	d.Stroke(vector.NewPath().MoveTo(835, 1190).QuadTo(850, 1195, 865, 1190), vector.Hex("#ffffff"), 3)

	pts := []float64{100, 100, 200, 150, 150, 250, 50, 200}
	d.Stroke(vector.NewPath().Polygon(pts...), vector.Hex("#818cf8"), 2, vector.Dashed(5, 5))
	for i := 0; i < len(pts); i += 2 {
		dot(d, pts[i], pts[i+1], 4, "#818cf8")
	}
	crescent(d, 850, 100, 60)
}

func cuteGingham(d *vector.Drawing) {
	win := [4]float64{120, 120, 760, 1093}
	border(d, vector.Hex("#ffffff"), vector.NewPath().Rect(win[0], win[1], win[2], win[3]))

	rows, cols := vector.NewPath(), vector.NewPath()
	for y := 0.0; y < FrameH; y += 80 {
		outside(rows, 0, y, FrameW, 40, win)
	}
	for x := 0.0; x < FrameW; x += 80 {
		outside(cols, x, 0, 40, FrameH, win)
	}
	d.Fill(rows, vector.Hex("rgba(251,207,232,0.4)"))
	d.Fill(cols, vector.Hex("rgba(204,251,241,0.4)"))
	caption(d, "Cute!", 1260, "#ec4899")

	drop := func(x float64, c string) {
		d.Fill(vector.NewPath().MoveTo(x, 60).
			QuadTo(x+20, 20, x+40, 60).
			QuadTo(x+60, 100, x+20, 100).
			QuadTo(x-20, 100, x, 60).Close(), vector.Hex(c))
	}
	drop(60, "#f472b6")
	drop(880, "#a78bfa")
	d.Fill(vector.NewPath().Polygon(60, 1200, 100, 1200, 80, 1240), vector.Hex("#fde047"))
	dot(d, 900, 1220, 25, "#fb7185")
	d.Stroke(vector.NewPath().MoveTo(870, 1220).LineTo(930, 1220), vector.Hex("#ffffff"), 4, vector.Rounded())
}

func magicVibes(d *vector.Drawing) {
	border(d, vector.Hex("#d1fae5"), vector.NewPath().Rect(100, 100, 800, 950))
	caption(d, "Magic Vibes", 1200, "#059669")

	potion := vector.NewPath().MoveTo(80, 110).
		LineTo(80, 80).LineTo(100, 80).LineTo(100, 110).
		QuadTo(100, 130, 80, 130).
		QuadTo(60, 130, 60, 110).Close()
	d.Fill(potion, vector.Hex("#a78bfa"))
	d.Fill(vector.NewPath().Rect(75, 70, 30, 10), vector.Hex("#78350f"))

	frog := vector.NewPath().MoveTo(860, 1220).
		QuadTo(840, 1180, 900, 1160).
		QuadTo(960, 1180, 940, 1220)
	d.Fill(frog, vector.Hex("#4ade80"))
	dot(d, 885, 1185, 4, "#166534")
	d.Stroke(vector.NewPath().MoveTo(940, 1180).LineTo(960, 1160), vector.Hex("#166534"), 4)

	d.Stroke(vector.NewPath().MoveTo(50, 1250).LineTo(150, 1150), vector.Hex("#b45309"), 8, vector.Rounded())
	d.Fill(vector.NewPath().Polygon(150, 1150, 170, 1130, 190, 1150, 170, 1170), vector.Hex("#fde047"))
}

func mermaidVibes(d *vector.Drawing) {
	border(d, vector.Hex("#e0f2fe"), vector.NewPath().Rect(120, 100, 760, 950))
	caption(d, "Mermaid Vibes", 1220, "#0369a1")

	// scallop shells, the lower one mirrored
	shell := func(x, y, dir float64) *vector.Path {
		return vector.NewPath().MoveTo(x, y).
			QuadTo(x+30*dir, y-40, x+60*dir, y).
			QuadTo(x+60*dir, y+60, x, y+100).
			QuadTo(x-60*dir, y+60, x-60*dir, y).
			QuadTo(x-30*dir, y-40, x, y).Close()
	}
	d.Fill(shell(850, 150, 1), vector.Hex("rgba(244,114,182,0.8)"))
	ribs := vector.NewPath().
		MoveTo(850, 190).QuadTo(830, 230, 810, 270).
		MoveTo(850, 190).QuadTo(870, 230, 890, 270)
	d.Stroke(ribs, vector.Hex("#ec4899"), 3)
	d.Fill(shell(80, 1150, -1), vector.Hex("rgba(96,165,250,0.8)"))

	bubbles := vector.NewPath().Circle(200, 50, 8).Circle(800, 60, 12)
	d.Fill(bubbles, vector.Hex("rgba(255,255,255,0.5)"))
	d.Fill(vector.NewPath().Polygon(50, 80, 70, 100, 50, 120, 30, 100), vector.Hex("#fde047"))
}

func frogMush(d *vector.Drawing) {
	border(d, vector.Hex("#ecfdf5"), vector.NewPath().Rect(120, 120, 760, 950))

	frog := vector.NewPath().Ellipse(80, 100, 40, 30, 0).Circle(60, 75, 15).Circle(100, 75, 15)
	d.Fill(frog, vector.Hex("#4ade80"))
	d.Fill(vector.NewPath().Circle(60, 75, 5).Circle(100, 75, 5), vector.Hex("#000000"))

	shroom := vector.NewPath().MoveTo(850, 190).
		LineTo(850, 150).
		QuadTo(850, 110, 880, 110).
		QuadTo(910, 110, 910, 150).
		LineTo(910, 190).Close()
	d.Fill(shroom, vector.Hex("#f87171"))
	d.Fill(vector.NewPath().Rect(870, 190, 20, 30), vector.Hex("#fef3c7"))
	d.Fill(vector.NewPath().Circle(870, 135, 5).Circle(895, 155, 5), vector.Hex("#ffffff"))

	d.Fill(vector.NewPath().Ellipse(500, 1200, 30, 20, 0), vector.Hex("#fed7aa"))
	d.Stroke(vector.NewPath().MoveTo(530, 1200).QuadTo(550, 1200, 550, 1180), vector.Hex("#f97316"), 4)
	d.Stroke(vector.NewPath().MoveTo(300, 60).QuadTo(320, 40, 340, 60), vector.Hex("#10b981"), 6, vector.Rounded())
}

func bestieVibes(d *vector.Drawing) {
	pastel := vector.Linear(0, 0, FrameW, FrameH,
		vector.At(0, "#fecaca"), vector.At(0.5, "#bfdbfe"), vector.At(1, "#fef08a"))
	border(d, pastel, vector.NewPath().Rect(120, 120, 760, 900))
	caption(d, "Bestie Vibes", 1200, "#db2777")

	wand(d, 100, 1150)
	clouds := vector.NewPath().
		Circle(830, 150, 30).Circle(870, 140, 38).Circle(910, 150, 30).
		Circle(880, 1150, 25).Circle(915, 1145, 30)
	d.Fill(clouds, vector.Hex("rgba(255,255,255,0.8)"))
	for _, p := range [][2]float64{{80, 80}, {500, 60}, {940, 1260}} {
		x, y := p[0], p[1]
		d.Fill(vector.NewPath().Polygon(x, y-15, x+5, y, x, y+15, x-5, y), vector.Hex("#ffffff"))
	}
}
