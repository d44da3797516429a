package generator

import (
	"roguegen/pkg/engine/world"
	"roguegen/pkg/game/entities"
)

// placeMonsters gives each non-gone room a MonsterChance percent chance of
// holding one monster of a random kind
func (g *Generator) placeMonsters() {
	kinds := entities.AllMonsterKinds()

	for i := range g.rooms {
		room := &g.rooms[i]
		if room.IsGone {
			continue
		}
		if g.rng.Intn(100) >= g.cfg.MonsterChance {
			continue
		}

		monsterX := g.rng.Range(room.X, room.X+room.Width)
		monsterY := g.rng.Range(room.Y, room.Y+room.Height)

		monster := entities.NewMonster(kinds[g.rng.Intn(len(kinds))], monsterX, monsterY)
		g.monsters = append(g.monsters, monster)
		g.tiles.Set(monster.X, monster.Y, monster.Tile())

		g.notifyStep()
	}
}

// placeStairs puts the up staircase in the entry room and the down staircase
// in the exit room. They are written last so they win over anything below.
func (g *Generator) placeStairs() {
	first := &g.rooms[g.firstRoom]
	final := &g.rooms[g.finalRoom]

	g.stairsUp = world.Point{
		X: g.rng.Range(first.X, first.X+first.Width),
		Y: g.rng.Range(first.Y, first.Y+first.Height),
	}
	g.stairsDown = world.Point{
		X: g.rng.Range(final.X, final.X+final.Width),
		Y: g.rng.Range(final.Y, final.Y+final.Height),
	}

	g.tiles.SetPoint(g.stairsUp, world.NewTile(world.TileStairsUp))
	g.tiles.SetPoint(g.stairsDown, world.NewTile(world.TileStairsDown))
}
