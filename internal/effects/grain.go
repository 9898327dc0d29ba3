// Package effects holds the photographic finishing passes applied to a
// composite: film grain, the date stamp, bloom and the lighting filter.
package effects

import (
	"image"
	"image/color"
	"math"
	"math/rand"
	"time"

	"github.com/youruser/photobooth/internal/blend"
)

// GrainSize is the side of the noise tile.
const GrainSize = 100

// GrainTile returns a fresh GrainSize×GrainSize opaque tile of uniform grey
// noise drawn from rng.
func GrainTile(rng *rand.Rand) *image.NRGBA {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	tile := image.NewNRGBA(image.Rect(0, 0, GrainSize, GrainSize))
	for y := 0; y < GrainSize; y++ {
		for x := 0; x < GrainSize; x++ {
			v := uint8(rng.Intn(256))
			tile.SetNRGBA(x, y, color.NRGBA{v, v, v, 0xff})
		}
	}
	return tile
}

// ClampLevel maps a noise level to the usable [0, 1] opacity range.
// NaN counts as 0.
func ClampLevel(level float64) float64 {
	if math.IsNaN(level) || level <= 0 {
		return 0
	}
	return math.Min(level, 1)
}

// Grain tiles fresh noise over all of dst with overlay blending at the
// clamped level. A level of 0 leaves dst untouched.
func Grain(dst *image.RGBA, level float64, rng *rand.Rand) {
	level = ClampLevel(level)
	if level == 0 || dst == nil {
		return
	}
	blend.Tile(dst, dst.Bounds(), GrainTile(rng), blend.Overlay, level)
}
