package generator

import (
	"math"

	"roguegen/pkg/engine/world"
)

// createCorridors realises every connection as a corridor. Non-gone endpoints
// get a door in the facing wall; gone endpoints use their centre instead.
func (g *Generator) createCorridors() {
	for i := range g.rooms {
		room := &g.rooms[i]

		for e, target := range room.Connections {
			connection := &g.rooms[target]
			direction := room.ConnectionDirections[e]

			c := Corridor{From: i, To: target, Direction: direction}

			if room.IsGone {
				c.Start = room.Center()
			} else {
				door, anchor := g.createDoorInWall(room, direction)
				c.Start = anchor
				c.Doors = append(c.Doors, door)
			}

			if connection.IsGone {
				c.End = connection.Center()
			} else {
				door, anchor := g.createDoorInWall(connection, direction.Opposite())
				c.End = anchor
				c.Doors = append(c.Doors, door)
			}

			c.Path = g.DigPath(c.Start, c.End)
			g.corridors = append(g.corridors, c)

			g.notifyStep()
		}
	}
}

// CreateDoorInWall carves a door at a random non-corner position of the wall
// of room facing dir and returns the first corridor tile beyond it.
func (g *Generator) CreateDoorInWall(room *Room, dir world.Direction) world.Point {
	_, anchor := g.createDoorInWall(room, dir)
	return anchor
}

func (g *Generator) createDoorInWall(room *Room, dir world.Direction) (door, anchor world.Point) {
	switch dir {
	case world.Right:
		door = world.Point{X: room.X + room.Width, Y: g.rng.Range(room.Y+1, room.Y+room.Height)}
	case world.Down:
		door = world.Point{X: g.rng.Range(room.X+1, room.X+room.Width), Y: room.Y + room.Height}
	case world.Up:
		door = world.Point{X: g.rng.Range(room.X+1, room.X+room.Width), Y: room.Y - 1}
	default:
		dir = world.Left
		door = world.Point{X: room.X - 1, Y: g.rng.Range(room.Y+1, room.Y+room.Height)}
	}

	g.tiles.SetPoint(door, world.NewTile(world.TileDoor))
	g.notifyStep()

	return door, door.Step(dir)
}

// DigPath digs a corridor of at most three straight legs from start to end,
// overwriting whatever lies in the way. It returns the dug tiles in order.
func (g *Generator) DigPath(start, end world.Point) []world.Point {
	moves := PlanPath(start, end, g.rng.Float64())

	path := []world.Point{start}
	g.tiles.SetPoint(start, world.NewTile(world.TileCorridor))

	pos := start
	for _, move := range moves {
		for dist := move.Distance; dist > 0; dist-- {
			pos = pos.Step(move.Direction)
			g.tiles.SetPoint(pos, world.NewTile(world.TileCorridor))
			path = append(path, pos)
		}
	}

	return path
}

// PlanPath splits the walk from start to end into three legs along the
// dominant axis, the cross axis, then the dominant axis again. f in [0, 1)
// decides where the bend falls.
func PlanPath(start, end world.Point, f float64) []world.PathMove {
	xOffset := end.X - start.X
	yOffset := end.Y - start.Y
	xAbs := abs(xOffset)
	yAbs := abs(yOffset)

	xDir := world.Right
	if xOffset < 0 {
		xDir = world.Left
	}
	yDir := world.Up
	if yOffset > 0 {
		yDir = world.Down
	}

	// The second leg takes what the first left over so the legs always sum
	// to the full distance.
	if xAbs < yAbs {
		first := int(math.Ceil(float64(yAbs) * f))
		return []world.PathMove{
			{Direction: yDir, Distance: first},
			{Direction: xDir, Distance: xAbs},
			{Direction: yDir, Distance: yAbs - first},
		}
	}

	first := int(math.Ceil(float64(xAbs) * f))
	return []world.PathMove{
		{Direction: xDir, Distance: first},
		{Direction: yDir, Distance: yAbs},
		{Direction: xDir, Distance: xAbs - first},
	}
}

// abs returns the absolute value of an integer
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
