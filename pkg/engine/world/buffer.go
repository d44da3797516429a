package world

import (
	"strings"
)

// TileBuffer is the width × height output grid of a generation run.
// Tiles are stored row-major; later writes replace earlier ones.
type TileBuffer struct {
	tiles  []Tile
	width  int
	height int
}

// NewTileBuffer creates a buffer filled with empty tiles
func NewTileBuffer(width, height int) *TileBuffer {
	if width <= 0 || height <= 0 {
		panic("TileBuffer dimensions must be positive")
	}

	b := &TileBuffer{
		tiles:  make([]Tile, width*height),
		width:  width,
		height: height,
	}
	b.Fill(NewTile(TileEmpty))
	return b
}

// Width returns the number of columns in the buffer
func (b *TileBuffer) Width() int {
	return b.width
}

// Height returns the number of rows in the buffer
func (b *TileBuffer) Height() int {
	return b.height
}

// IsValidPosition checks if an x/y position is within buffer bounds
func (b *TileBuffer) IsValidPosition(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Get returns the tile at the given position, or false if out of bounds
func (b *TileBuffer) Get(x, y int) (Tile, bool) {
	if !b.IsValidPosition(x, y) {
		return Tile{}, false
	}
	return b.tiles[y*b.width+x], true
}

// At returns the tile at the given position; out of bounds reads as empty space
func (b *TileBuffer) At(x, y int) Tile {
	t, ok := b.Get(x, y)
	if !ok {
		return NewTile(TileEmpty)
	}
	return t
}

// Set writes a tile, replacing whatever was there. Returns false if out of bounds.
func (b *TileBuffer) Set(x, y int, t Tile) bool {
	if !b.IsValidPosition(x, y) {
		return false
	}
	b.tiles[y*b.width+x] = t
	return true
}

// SetPoint writes a tile at p
func (b *TileBuffer) SetPoint(p Point, t Tile) bool {
	return b.Set(p.X, p.Y, t)
}

// Fill overwrites every tile with t
func (b *TileBuffer) Fill(t Tile) {
	for i := range b.tiles {
		b.tiles[i] = t
	}
}

// Clone returns an independent copy of the buffer
func (b *TileBuffer) Clone() *TileBuffer {
	c := &TileBuffer{
		tiles:  make([]Tile, len(b.tiles)),
		width:  b.width,
		height: b.height,
	}
	copy(c.tiles, b.tiles)
	return c
}

// Equal reports whether both buffers have the same size and tiles
func (b *TileBuffer) Equal(other *TileBuffer) bool {
	if other == nil || b.width != other.width || b.height != other.height {
		return false
	}
	for i := range b.tiles {
		if b.tiles[i] != other.tiles[i] {
			return false
		}
	}
	return true
}

// ForEachTile iterates over all tiles row by row
func (b *TileBuffer) ForEachTile(fn func(x, y int, t Tile)) {
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			fn(x, y, b.tiles[y*b.width+x])
		}
	}
}

// Count returns how many tiles are of the given kind
func (b *TileBuffer) Count(kind TileKind) int {
	n := 0
	for _, t := range b.tiles {
		if t.Kind == kind {
			n++
		}
	}
	return n
}

// Rows returns each row of glyphs as a string
func (b *TileBuffer) Rows() []string {
	rows := make([]string, b.height)
	var sb strings.Builder
	for y := 0; y < b.height; y++ {
		sb.Reset()
		for x := 0; x < b.width; x++ {
			sb.WriteRune(b.tiles[y*b.width+x].Glyph)
		}
		rows[y] = sb.String()
	}
	return rows
}

// String returns the glyphs of the whole buffer, one line per row
func (b *TileBuffer) String() string {
	return strings.Join(b.Rows(), "\n") + "\n"
}
