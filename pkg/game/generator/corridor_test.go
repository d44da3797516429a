package generator

import (
	"math/rand"
	"reflect"
	"testing"

	"roguegen/pkg/engine/world"
)

// onWall reports whether p is a non-corner tile of the wall of r facing dir
func onWall(r Room, dir world.Direction, p world.Point) bool {
	switch dir {
	case world.Up:
		return p.Y == r.Y-1 && p.X > r.X && p.X < r.X+r.Width
	case world.Down:
		return p.Y == r.Y+r.Height && p.X > r.X && p.X < r.X+r.Width
	case world.Left:
		return p.X == r.X-1 && p.Y > r.Y && p.Y < r.Y+r.Height
	case world.Right:
		return p.X == r.X+r.Width && p.Y > r.Y && p.Y < r.Y+r.Height
	}
	return false
}

func TestCreateDoorInWall_Up(t *testing.T) {
	g := newTestGenerator(t, 1)
	room := &Room{X: 10, Y: 10, Width: 5, Height: 2}

	for i := 0; i < 20; i++ {
		g.Tiles().Fill(world.NewTile(world.TileEmpty))
		anchor := g.CreateDoorInWall(room, world.Up)

		if anchor.Y != room.Y-2 {
			t.Errorf("anchor.Y = %d, want %d (one tile beyond the top wall)", anchor.Y, room.Y-2)
		}
		if anchor.X <= room.X-1 || anchor.X >= room.X+room.Width {
			t.Errorf("anchor.X = %d, want strictly between wall columns %d and %d", anchor.X, room.X-1, room.X+room.Width)
		}
		doors := 0
		for x := room.X - 1; x <= room.X+room.Width; x++ {
			if g.Tiles().At(x, room.Y-1).Kind == world.TileDoor {
				doors++
				if x != anchor.X {
					t.Errorf("door at column %d, anchor at column %d", x, anchor.X)
				}
			}
		}
		if doors != 1 {
			t.Errorf("top wall has %d doors, want 1", doors)
		}
	}
}

func TestCreateDoorInWall_AllDirections(t *testing.T) {
	g := newTestGenerator(t, 2)
	room := Room{X: 20, Y: 8, Width: 7, Height: 4}

	for _, dir := range world.AllDirections() {
		t.Run(dir.String(), func(t *testing.T) {
			g.Tiles().Fill(world.NewTile(world.TileEmpty))
			anchor := g.CreateDoorInWall(&room, dir)
			door := anchor.Step(dir.Opposite())

			if !onWall(room, dir, door) {
				t.Errorf("door %v is not on the %v wall of %+v", door, dir, room)
			}
			if got := g.Tiles().At(door.X, door.Y).Kind; got != world.TileDoor {
				t.Errorf("tile at door %v = %v, want TileDoor", door, got)
			}
			if got := g.Tiles().Count(world.TileDoor); got != 1 {
				t.Errorf("Count(TileDoor) = %d, want 1", got)
			}
		})
	}
}

func TestPlanPath(t *testing.T) {
	tests := []struct {
		name       string
		start, end world.Point
		f          float64
		want       []world.PathMove
	}{
		{
			name:  "mostly horizontal",
			start: world.Point{X: 0, Y: 0}, end: world.Point{X: 10, Y: 2}, f: 0.5,
			want: []world.PathMove{{Direction: world.Right, Distance: 5}, {Direction: world.Down, Distance: 2}, {Direction: world.Right, Distance: 5}},
		},
		{
			name:  "mostly vertical",
			start: world.Point{X: 5, Y: 1}, end: world.Point{X: 2, Y: 8}, f: 0.25,
			want: []world.PathMove{{Direction: world.Down, Distance: 2}, {Direction: world.Left, Distance: 3}, {Direction: world.Down, Distance: 5}},
		},
		{
			name:  "upwards with zero fraction",
			start: world.Point{X: 4, Y: 9}, end: world.Point{X: 4, Y: 3}, f: 0,
			want: []world.PathMove{{Direction: world.Up, Distance: 0}, {Direction: world.Right, Distance: 0}, {Direction: world.Up, Distance: 6}},
		},
		{
			name:  "same point",
			start: world.Point{X: 3, Y: 3}, end: world.Point{X: 3, Y: 3}, f: 0.9,
			want: []world.PathMove{{Direction: world.Right, Distance: 0}, {Direction: world.Up, Distance: 0}, {Direction: world.Right, Distance: 0}},
		},
		{
			name:  "diagonal ties go horizontal first",
			start: world.Point{X: 6, Y: 6}, end: world.Point{X: 2, Y: 2}, f: 0.6,
			want: []world.PathMove{{Direction: world.Left, Distance: 3}, {Direction: world.Up, Distance: 4}, {Direction: world.Left, Distance: 1}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PlanPath(tt.start, tt.end, tt.f)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("PlanPath(%v, %v, %v) = %v, want %v", tt.start, tt.end, tt.f, got, tt.want)
			}
		})
	}
}

// countBends returns how many times consecutive steps change direction
func countBends(path []world.Point) int {
	bends := 0
	var lastDX, lastDY int
	for i := 1; i < len(path); i++ {
		dx, dy := path[i].X-path[i-1].X, path[i].Y-path[i-1].Y
		if i > 1 && (dx != lastDX || dy != lastDY) {
			bends++
		}
		lastDX, lastDY = dx, dy
	}
	return bends
}

func TestDigPath_Continuity(t *testing.T) {
	g := newTestGenerator(t, 4)
	r := rand.New(rand.NewSource(4))
	w, h := g.Tiles().Width(), g.Tiles().Height()

	for i := 0; i < 200; i++ {
		g.Tiles().Fill(world.NewTile(world.TileEmpty))
		start := world.Point{X: r.Intn(w), Y: r.Intn(h)}
		end := world.Point{X: r.Intn(w), Y: r.Intn(h)}

		path := g.DigPath(start, end)

		if path[0] != start {
			t.Fatalf("path starts at %v, want %v", path[0], start)
		}
		if last := path[len(path)-1]; last != end {
			t.Fatalf("path %v -> %v ends at %v", start, end, last)
		}
		for j := 1; j < len(path); j++ {
			if d := abs(path[j].X-path[j-1].X) + abs(path[j].Y-path[j-1].Y); d != 1 {
				t.Fatalf("path %v -> %v jumps from %v to %v", start, end, path[j-1], path[j])
			}
		}
		if b := countBends(path); b > 2 {
			t.Errorf("path %v -> %v has %d bends, want at most 2", start, end, b)
		}
		for _, p := range path {
			if g.Tiles().At(p.X, p.Y).Kind != world.TileCorridor {
				t.Errorf("path tile %v is not a corridor", p)
			}
		}
		if want := abs(end.X-start.X) + abs(end.Y-start.Y) + 1; len(path) != want {
			t.Errorf("len(path) = %d, want %d", len(path), want)
		}
	}
}

func TestDigPath_OverwritesWalls(t *testing.T) {
	g := newTestGenerator(t, 8)
	g.Tiles().Set(5, 5, world.NewTile(world.TileWallVertical))
	g.DigPath(world.Point{X: 2, Y: 5}, world.Point{X: 9, Y: 5})
	if got := g.Tiles().At(5, 5).Kind; got != world.TileCorridor {
		t.Errorf("tile 5,5 = %v, want TileCorridor over the wall", got)
	}
}

func TestCreateCorridors_DoorsOnEndpointWalls(t *testing.T) {
	for seed := int64(1); seed <= 50; seed++ {
		g := generated(t, seed)
		rooms := g.Rooms()

		edges := 0
		for _, r := range rooms {
			edges += len(r.Connections)
		}
		if len(g.Corridors()) != edges {
			t.Fatalf("seed=%d: %d corridors for %d edges", seed, len(g.Corridors()), edges)
		}

		for _, c := range g.Corridors() {
			from, to := rooms[c.From], rooms[c.To]
			want := 0
			if !from.IsGone {
				want++
			}
			if !to.IsGone {
				want++
			}
			if len(c.Doors) != want {
				t.Errorf("seed=%d corridor %d->%d: %d doors, want %d", seed, c.From, c.To, len(c.Doors), want)
				continue
			}

			doors := c.Doors
			if !from.IsGone {
				if !onWall(from, c.Direction, doors[0]) {
					t.Errorf("seed=%d: door %v not on %v wall of room %d", seed, doors[0], c.Direction, c.From)
				}
				if c.Start != doors[0].Step(c.Direction) {
					t.Errorf("seed=%d: start %v is not beyond door %v", seed, c.Start, doors[0])
				}
				doors = doors[1:]
			} else if c.Start != from.Center() {
				t.Errorf("seed=%d: gone room %d starts at %v, want centre %v", seed, c.From, c.Start, from.Center())
			}

			if !to.IsGone {
				if !onWall(to, c.Direction.Opposite(), doors[0]) {
					t.Errorf("seed=%d: door %v not on %v wall of room %d", seed, doors[0], c.Direction.Opposite(), c.To)
				}
			} else if c.End != to.Center() {
				t.Errorf("seed=%d: gone room %d ends at %v, want centre %v", seed, c.To, c.End, to.Center())
			}

			if c.Path[0] != c.Start || c.Path[len(c.Path)-1] != c.End {
				t.Errorf("seed=%d: corridor path runs %v -> %v, want %v -> %v",
					seed, c.Path[0], c.Path[len(c.Path)-1], c.Start, c.End)
			}
		}
	}
}

func TestRoomCenter_RoundsHalfToEven(t *testing.T) {
	tests := []struct {
		room Room
		want world.Point
	}{
		{Room{X: 0, Y: 0, Width: 5, Height: 2}, world.Point{X: 2, Y: 1}},
		{Room{X: 10, Y: 4, Width: 7, Height: 3}, world.Point{X: 14, Y: 6}},
		{Room{X: 1, Y: 1, Width: 6, Height: 4}, world.Point{X: 4, Y: 3}},
	}
	for _, tt := range tests {
		if got := tt.room.Center(); got != tt.want {
			t.Errorf("%+v.Center() = %v, want %v", tt.room, got, tt.want)
		}
	}
}
