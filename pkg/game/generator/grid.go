package generator

import (
	"roguegen/pkg/engine/world"
)

// index maps a cell coordinate to its position in the room slice.
// Rooms are stored x outer, y inner, which is also the grid iteration order.
func (g *Generator) index(ix, iy int) int {
	return ix*g.cfg.VerticalRooms + iy
}

// inGrid checks if a cell coordinate is within the room grid
func (g *Generator) inGrid(ix, iy int) bool {
	return ix >= 0 && ix < g.cfg.HorizontalRooms && iy >= 0 && iy < g.cfg.VerticalRooms
}

// neighbour returns the index of the room next to room in direction dir
func (g *Generator) neighbour(room int, dir world.Direction) (int, bool) {
	dx, dy := dir.Delta()
	nx := g.rooms[room].IX + dx
	ny := g.rooms[room].IY + dy
	if !g.inGrid(nx, ny) {
		return 0, false
	}
	return g.index(nx, ny), true
}

// initRooms creates the empty room grid and tile buffer, then marks up to
// MaxGoneRooms cells as gone
func (g *Generator) initRooms() {
	g.rooms = make([]Room, g.cfg.HorizontalRooms*g.cfg.VerticalRooms)
	for x := 0; x < g.cfg.HorizontalRooms; x++ {
		for y := 0; y < g.cfg.VerticalRooms; y++ {
			g.rooms[g.index(x, y)] = Room{IX: x, IY: y}
		}
	}

	g.tiles.Fill(world.NewTile(world.TileEmpty))
	g.monsters = nil
	g.corridors = nil
	g.firstRoom = 0
	g.finalRoom = 0

	numGoneRooms := g.rng.Intn(MaxGoneRooms + 1)
	if numGoneRooms > len(g.rooms) {
		numGoneRooms = len(g.rooms)
	}

	for i := 0; i < numGoneRooms; i++ {
		for {
			room := &g.rooms[g.index(g.rng.Intn(g.cfg.HorizontalRooms), g.rng.Intn(g.cfg.VerticalRooms))]
			if !room.IsGone {
				room.IsGone = true
				break
			}
		}
	}
}
