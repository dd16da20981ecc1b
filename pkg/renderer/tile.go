package renderer

import (
	"image"
	"math/rand"

	"github.com/df07/go-drt-raytracer/pkg/core"
)

// Tile represents a horizontal band of the image to be rendered
type Tile struct {
	ID     int             // Unique tile identifier
	Bounds image.Rectangle // Pixel bounds in camera coordinates (y grows upward)
	Random *rand.Rand      // Tile-specific random generator for deterministic results
}

// NewTile creates a new tile whose generator is derived from seed and id
func NewTile(id int, bounds image.Rectangle, seed int64) *Tile {
	return &Tile{
		ID:     id,
		Bounds: bounds,
		Random: core.NewRandom(seed, id),
	}
}

// NewTileGrid splits the image into bands of rows, starting from the top row
// so tiles complete in the same order Walk visits pixels.
func NewTileGrid(width, height, rows int, seed int64) []*Tile {
	if rows <= 0 {
		rows = height
	}

	var tiles []*Tile
	tileID := 0
	for y1 := height; y1 > 0; y1 -= rows {
		y0 := max(y1-rows, 0)
		tiles = append(tiles, NewTile(tileID, image.Rect(0, y0, width, y1), seed))
		tileID++
	}

	return tiles
}

// PixelCount returns the number of pixels covered by the tile
func (t *Tile) PixelCount() int {
	return t.Bounds.Dx() * t.Bounds.Dy()
}

// render shades every pixel of the tile in Walk order, top row first
func (t *Tile) render(fb *FrameBuffer, shader PixelShader) {
	for y := t.Bounds.Max.Y - 1; y >= t.Bounds.Min.Y; y-- {
		for x := t.Bounds.Min.X; x < t.Bounds.Max.X; x++ {
			fb.Set(x, y, shader(x, y, fb.Width, fb.Height, t.Random))
		}
	}
}
