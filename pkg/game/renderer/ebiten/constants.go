// Package ebiten provides an Ebiten-based graphical viewer for generated dungeons.
package ebiten

import (
	"image/color"

	"roguegen/pkg/engine/world"
)

// Color palette for the viewer
var (
	colorBackground  = color.RGBA{15, 15, 26, 255}    // Near black
	colorStatusBar   = color.RGBA{30, 30, 50, 220}    // Semi-transparent dark
	colorText        = color.RGBA{200, 210, 245, 255} // Soft off-white
	colorSubtle      = color.RGBA{120, 130, 180, 255} // Soft blue-gray
	colorGround      = color.RGBA{0, 200, 0, 255}     // Green
	colorWall        = color.RGBA{190, 170, 40, 255}  // Dark yellow
	colorWallBg      = color.RGBA{50, 45, 20, 255}    // Darker backing for walls
	colorCorridor    = color.RGBA{110, 110, 120, 255} // Dark gray
	colorCorridorBg  = color.RGBA{35, 35, 45, 255}
	colorStairs      = color.RGBA{255, 255, 255, 255} // White
	colorMonster     = color.RGBA{255, 80, 80, 255}   // Red
	colorDefaultTile = color.RGBA{220, 220, 220, 255}
)

// Tile sizing in pixels
const (
	tileWidth    = 12
	tileHeight   = 20
	baseFontSize = 16.0
	statusLines  = 2
)

// tileColor returns the foreground colour of a tile
func tileColor(c world.Colour) color.Color {
	switch c {
	case world.ColourGround:
		return colorGround
	case world.ColourWall, world.ColourDoor:
		return colorWall
	case world.ColourCorridor:
		return colorCorridor
	case world.ColourStairs:
		return colorStairs
	case world.ColourMonster:
		return colorMonster
	default:
		return colorDefaultTile
	}
}

// tileBackground returns the block background drawn behind a tile, if any
func tileBackground(t world.Tile) (color.Color, bool) {
	switch {
	case t.IsWall():
		return colorWallBg, true
	case t.Kind == world.TileCorridor, t.Kind == world.TileDoor:
		return colorCorridorBg, true
	default:
		return nil, false
	}
}
