// Package world provides generic 2D tile primitives: directions, points,
// tiles and the tile buffer a generator draws into.
package world

// TileKind identifies what occupies a tile
type TileKind uint8

const (
	TileEmpty TileKind = iota
	TileGround
	TileWallHorizontal
	TileWallVertical
	TileWallTopLeft
	TileWallTopRight
	TileWallBottomLeft
	TileWallBottomRight
	TileDoor
	TileCorridor
	TileMonster
	TileStairsUp
	TileStairsDown
)

// Colour is a display attribute. The generator never reads it.
type Colour uint8

const (
	ColourDefault Colour = iota
	ColourGround
	ColourWall
	ColourDoor
	ColourCorridor
	ColourStairs
	ColourMonster
)

// Glyphs for each tile kind (monsters carry their own)
const (
	GlyphEmpty           = ' '
	GlyphGround          = '·'
	GlyphWallVertical    = '║'
	GlyphWallHorizontal  = '═'
	GlyphWallTopLeft     = '╔'
	GlyphWallTopRight    = '╗'
	GlyphWallBottomLeft  = '╚'
	GlyphWallBottomRight = '╝'
	GlyphDoor            = '╬'
	GlyphCorridor        = '▒'
	GlyphStairsUp        = 'U'
	GlyphStairsDown      = 'D'
	GlyphUnknownOccupant = '?'
)

// Tile is the content of one buffer cell
type Tile struct {
	Kind   TileKind
	Glyph  rune
	Colour Colour
}

// NewTile returns the tile of the given kind with its standard glyph and colour.
// Monster tiles should be built with NewMonsterTile instead.
func NewTile(kind TileKind) Tile {
	switch kind {
	case TileGround:
		return Tile{Kind: kind, Glyph: GlyphGround, Colour: ColourGround}
	case TileWallHorizontal:
		return Tile{Kind: kind, Glyph: GlyphWallHorizontal, Colour: ColourWall}
	case TileWallVertical:
		return Tile{Kind: kind, Glyph: GlyphWallVertical, Colour: ColourWall}
	case TileWallTopLeft:
		return Tile{Kind: kind, Glyph: GlyphWallTopLeft, Colour: ColourWall}
	case TileWallTopRight:
		return Tile{Kind: kind, Glyph: GlyphWallTopRight, Colour: ColourWall}
	case TileWallBottomLeft:
		return Tile{Kind: kind, Glyph: GlyphWallBottomLeft, Colour: ColourWall}
	case TileWallBottomRight:
		return Tile{Kind: kind, Glyph: GlyphWallBottomRight, Colour: ColourWall}
	case TileDoor:
		return Tile{Kind: kind, Glyph: GlyphDoor, Colour: ColourDoor}
	case TileCorridor:
		return Tile{Kind: kind, Glyph: GlyphCorridor, Colour: ColourCorridor}
	case TileStairsUp:
		return Tile{Kind: kind, Glyph: GlyphStairsUp, Colour: ColourStairs}
	case TileStairsDown:
		return Tile{Kind: kind, Glyph: GlyphStairsDown, Colour: ColourStairs}
	case TileMonster:
		return Tile{Kind: kind, Glyph: GlyphUnknownOccupant, Colour: ColourMonster}
	default:
		return Tile{Kind: TileEmpty, Glyph: GlyphEmpty, Colour: ColourDefault}
	}
}

// NewMonsterTile returns a monster occupant tile drawn with glyph
func NewMonsterTile(glyph rune) Tile {
	return Tile{Kind: TileMonster, Glyph: glyph, Colour: ColourMonster}
}

// IsWall reports whether the tile is any of the six wall segments
func (t Tile) IsWall() bool {
	return t.Kind >= TileWallHorizontal && t.Kind <= TileWallBottomRight
}
