package generator

import (
	"roguegen/pkg/engine/rng"
)

// connectNeighbouringRooms visits the rooms in a random order and links each
// to the first isolated neighbour found. The first and last non-gone rooms of
// that order become the entry and exit rooms.
func (g *Generator) connectNeighbouringRooms() {
	order := make([]int, len(g.rooms))
	for i := range order {
		order[i] = i
	}
	rng.Shuffle(g.rng, order)

	g.firstRoom = g.index(0, 0)
	g.finalRoom = g.index(0, 0)
	for _, idx := range order {
		if !g.rooms[idx].IsGone {
			g.firstRoom = idx
			break
		}
	}
	for i := len(order) - 1; i >= 0; i-- {
		if !g.rooms[order[i]].IsGone {
			g.finalRoom = order[i]
			break
		}
	}

	for _, idx := range order {
		rng.Shuffle(g.rng, g.dirToCheck)

		for _, dir := range g.dirToCheck {
			next, ok := g.neighbour(idx, dir)
			if !ok || len(g.rooms[next].Connections) > 0 {
				continue
			}
			if g.rooms[idx].HasConnectionTo(next) {
				break
			}

			g.rooms[idx].connect(next, dir)
			break
		}
	}
}

// connectUnconnectedRooms gives rooms left without edges by the neighbour
// pass one more chance. Gone rooms keep trying until they have two edges so
// they can act as pass-through junctions. Rooms may still end up isolated.
func (g *Generator) connectUnconnectedRooms() {
	for idx := range g.rooms {
		room := &g.rooms[idx]
		if !room.IsGone && len(room.Connections) > 0 {
			continue
		}
		if room.IsGone && len(room.Connections) > 1 {
			continue
		}

		rng.Shuffle(g.rng, g.dirToCheck)

		for _, dir := range g.dirToCheck {
			next, ok := g.neighbour(idx, dir)
			if !ok || g.rooms[next].HasConnectionTo(idx) {
				continue
			}
			if room.IsGone && room.HasConnectionTo(next) {
				continue
			}

			room.connect(next, dir)
			break
		}
	}
}
