package generator

import (
	"math"

	"roguegen/pkg/engine/world"
)

// createRooms sizes and places every room inside its cell, then draws the
// walls. Cells are visited x outer, y inner: each placement depends on the
// room to its left and the room above it.
func (g *Generator) createRooms() {
	for x := 0; x < g.cfg.HorizontalRooms; x++ {
		for y := 0; y < g.cfg.VerticalRooms; y++ {
			startX := max(g.cellWidth*x, edgeMargin)
			startY := max(g.cellHeight*y, edgeMargin)

			roomWidth := g.rng.Range(MinRoomWidth, g.maxRoomWidth)
			roomHeight := g.rng.Range(MinRoomHeight, g.maxRoomHeight)

			// Keep a gap to the rooms already placed above and to the left
			if y > 0 {
				above := &g.rooms[g.index(x, y-1)]
				startY = max(startY, above.Y+above.Height+roomGap)
			}
			if x > 0 {
				left := &g.rooms[g.index(x-1, y)]
				startX = max(startX, left.X+left.Width+roomGap)
			}

			offsetX := int(math.RoundToEven(float64(g.rng.Intn(g.cellWidth-roomWidth)) * 0.5))
			offsetY := int(math.RoundToEven(float64(g.rng.Intn(g.cellHeight-roomHeight)) * 0.5))

			for startX+offsetX+roomWidth >= g.cfg.Width-1 {
				if offsetX > 0 {
					offsetX--
				} else if roomWidth > MinRoomWidth {
					roomWidth--
				} else {
					break
				}
			}

			for startY+offsetY+roomHeight >= g.cfg.Height-1 {
				if offsetY > 0 {
					offsetY--
				} else if roomHeight > MinRoomHeight {
					roomHeight--
				} else {
					break
				}
			}

			room := &g.rooms[g.index(x, y)]
			room.X = startX + offsetX
			room.Y = startY + offsetY
			room.Width = roomWidth
			room.Height = roomHeight

			if !room.IsGone {
				g.fillRect(room.X, room.Y, room.Width, room.Height, world.NewTile(world.TileGround))
			}

			g.notifyStep()
		}
	}

	g.createRoomWalls()
}

// createRoomWalls draws the wall ring around every non-gone room
func (g *Generator) createRoomWalls() {
	for i := range g.rooms {
		room := &g.rooms[i]
		if room.IsGone {
			continue
		}

		top, bottom := room.Y-1, room.Y+room.Height
		left, right := room.X-1, room.X+room.Width

		for x := left; x <= right; x++ {
			g.tiles.Set(x, top, world.NewTile(world.TileWallHorizontal))
			g.tiles.Set(x, bottom, world.NewTile(world.TileWallHorizontal))
		}

		for y := room.Y; y < room.Y+room.Height; y++ {
			g.tiles.Set(left, y, world.NewTile(world.TileWallVertical))
			g.tiles.Set(right, y, world.NewTile(world.TileWallVertical))
		}

		g.tiles.Set(left, top, world.NewTile(world.TileWallTopLeft))
		g.tiles.Set(left, bottom, world.NewTile(world.TileWallBottomLeft))
		g.tiles.Set(right, top, world.NewTile(world.TileWallTopRight))
		g.tiles.Set(right, bottom, world.NewTile(world.TileWallBottomRight))

		g.notifyStep()
	}
}

func (g *Generator) fillRect(x0, y0, width, height int, t world.Tile) {
	for x := x0; x < x0+width; x++ {
		for y := y0; y < y0+height; y++ {
			g.tiles.Set(x, y, t)
		}
	}
}
