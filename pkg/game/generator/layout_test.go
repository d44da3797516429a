package generator

import (
	"testing"

	"roguegen/pkg/engine/world"
)

// laidOut runs only the grid and layout phases
func laidOut(t *testing.T, seed int64) *Generator {
	t.Helper()
	g := newTestGenerator(t, seed)
	g.initRooms()
	g.createRooms()
	return g
}

func TestCreateRooms_WithinBounds(t *testing.T) {
	for seed := int64(1); seed <= 50; seed++ {
		g := generated(t, seed)
		cfg := g.Config()
		for i, r := range g.Rooms() {
			if r.Width < MinRoomWidth || r.Height < MinRoomHeight {
				t.Errorf("seed=%d room %d: size %dx%d below minimum", seed, i, r.Width, r.Height)
			}
			// Rectangle plus its one-tile wall ring
			if r.X-1 < 0 || r.Y-1 < 0 || r.X+r.Width > cfg.Width-1 || r.Y+r.Height > cfg.Height-1 {
				t.Errorf("seed=%d room %d: rect %d,%d %dx%d leaves the %dx%d map",
					seed, i, r.X, r.Y, r.Width, r.Height, cfg.Width, cfg.Height)
			}
		}
	}
}

// Every configuration Validate accepts keeps rooms, walls and stairs on the map
func TestCreateRooms_WithinBoundsForValidConfigs(t *testing.T) {
	checked := 0
	for width := 20; width <= 110; width += 6 {
		for height := 10; height <= 46; height += 3 {
			for hrooms := 1; hrooms <= 5; hrooms++ {
				for vrooms := 1; vrooms <= 4; vrooms++ {
					cfg := Config{Width: width, Height: height, HorizontalRooms: hrooms, VerticalRooms: vrooms, MonsterChance: 50}
					if cfg.Validate() != nil {
						continue
					}
					checked++
					for seed := int64(1); seed <= 3; seed++ {
						cfg.Seed = seed
						checkGeneratedWithinBounds(t, cfg)
					}
				}
			}
		}
	}
	if checked < 100 {
		t.Errorf("only %d configurations passed Validate, want a broader sweep", checked)
	}
}

func TestCreateRooms_WithinBoundsTightConfigs(t *testing.T) {
	configs := []Config{
		{Width: 31, Height: 20, HorizontalRooms: 3, VerticalRooms: 3},
		{Width: 70, Height: 40, HorizontalRooms: 5, VerticalRooms: 4},
		{Width: 100, Height: 30, HorizontalRooms: 4, VerticalRooms: 2},
		{Width: 20, Height: 10, HorizontalRooms: 1, VerticalRooms: 1},
	}
	for _, cfg := range configs {
		cfg.MonsterChance = DefaultMonsterChance
		if err := cfg.Validate(); err != nil {
			t.Fatalf("Validate(%+v) error = %v", cfg, err)
		}
		for seed := int64(1); seed <= 100; seed++ {
			cfg.Seed = seed
			checkGeneratedWithinBounds(t, cfg)
		}
	}
}

func checkGeneratedWithinBounds(t *testing.T, cfg Config) {
	t.Helper()
	g, err := New(cfg)
	if err != nil {
		t.Fatalf("New(%+v) error = %v", cfg, err)
	}
	g.Generate(false)

	for i, r := range g.Rooms() {
		if r.X-1 < 0 || r.Y-1 < 0 || r.X+r.Width > cfg.Width-1 || r.Y+r.Height > cfg.Height-1 {
			t.Fatalf("%+v room %d: rect %d,%d %dx%d leaves the map", cfg, i, r.X, r.Y, r.Width, r.Height)
		}
	}

	tiles := g.Tiles()
	up, down := g.Stairs()
	if tiles.At(down.X, down.Y).Kind != world.TileStairsDown {
		t.Fatalf("%+v: no down staircase at %v", cfg, down)
	}
	if up != down && tiles.At(up.X, up.Y).Kind != world.TileStairsUp {
		t.Fatalf("%+v: no up staircase at %v", cfg, up)
	}
}

func TestCreateRooms_GapBetweenNeighbours(t *testing.T) {
	for seed := int64(1); seed <= 50; seed++ {
		g := generated(t, seed)
		for ix := 0; ix < 3; ix++ {
			for iy := 0; iy < 3; iy++ {
				r := g.Room(ix, iy)
				if ix > 0 {
					left := g.Room(ix-1, iy)
					if gap := r.X - (left.X + left.Width); gap < roomGap {
						t.Errorf("seed=%d: horizontal gap between (%d,%d) and (%d,%d) = %d, want >= %d",
							seed, ix-1, iy, ix, iy, gap, roomGap)
					}
				}
				if iy > 0 {
					above := g.Room(ix, iy-1)
					if gap := r.Y - (above.Y + above.Height); gap < roomGap {
						t.Errorf("seed=%d: vertical gap between (%d,%d) and (%d,%d) = %d, want >= %d",
							seed, ix, iy-1, ix, iy, gap, roomGap)
					}
				}
			}
		}
	}
}

func TestCreateRooms_FloorsAndWalls(t *testing.T) {
	for seed := int64(1); seed <= 30; seed++ {
		g := laidOut(t, seed)
		tiles := g.Tiles()
		for i, r := range g.Rooms() {
			for x := r.X; x < r.X+r.Width; x++ {
				for y := r.Y; y < r.Y+r.Height; y++ {
					kind := tiles.At(x, y).Kind
					if r.IsGone && kind != world.TileEmpty {
						t.Fatalf("seed=%d gone room %d: tile %d,%d = %v, want empty", seed, i, x, y, kind)
					}
					if !r.IsGone && kind != world.TileGround {
						t.Fatalf("seed=%d room %d: tile %d,%d = %v, want ground", seed, i, x, y, kind)
					}
				}
			}
			if r.IsGone {
				continue
			}
			for x := r.X - 1; x <= r.X+r.Width; x++ {
				if !tiles.At(x, r.Y-1).IsWall() || !tiles.At(x, r.Y+r.Height).IsWall() {
					t.Errorf("seed=%d room %d: missing horizontal wall at column %d", seed, i, x)
				}
			}
			for y := r.Y; y < r.Y+r.Height; y++ {
				if !tiles.At(r.X-1, y).IsWall() || !tiles.At(r.X+r.Width, y).IsWall() {
					t.Errorf("seed=%d room %d: missing vertical wall at row %d", seed, i, y)
				}
			}
		}
	}
}

func TestCreateRooms_FloorsDoNotOverlap(t *testing.T) {
	for seed := int64(1); seed <= 30; seed++ {
		g := generated(t, seed)
		rooms := g.Rooms()
		for i := 0; i < len(rooms); i++ {
			for j := i + 1; j < len(rooms); j++ {
				a, b := rooms[i], rooms[j]
				if a.X < b.X+b.Width && b.X < a.X+a.Width && a.Y < b.Y+b.Height && b.Y < a.Y+a.Height {
					t.Errorf("seed=%d: room %d %+v overlaps room %d %+v", seed, i, a, j, b)
				}
			}
		}
	}
}

// Orthogonal neighbours keep a roomGap of empty tiles between floors, so
// their wall rings never share a tile. Diagonal neighbours are not held
// apart and their rings may touch at a corner.
func TestCreateRooms_OrthogonalWallRingsDisjoint(t *testing.T) {
	ring := func(r *Room) (x0, y0, x1, y1 int) {
		return r.X - 1, r.Y - 1, r.X + r.Width, r.Y + r.Height
	}
	disjoint := func(a, b *Room) bool {
		ax0, ay0, ax1, ay1 := ring(a)
		bx0, by0, bx1, by1 := ring(b)
		return ax1 < bx0 || bx1 < ax0 || ay1 < by0 || by1 < ay0
	}

	for seed := int64(1); seed <= 100; seed++ {
		g := laidOut(t, seed)
		for ix := 0; ix < 3; ix++ {
			for iy := 0; iy < 3; iy++ {
				r := g.Room(ix, iy)
				if ix > 0 && !disjoint(g.Room(ix-1, iy), r) {
					t.Errorf("seed=%d: wall rings of (%d,%d) and (%d,%d) share a tile", seed, ix-1, iy, ix, iy)
				}
				if iy > 0 && !disjoint(g.Room(ix, iy-1), r) {
					t.Errorf("seed=%d: wall rings of (%d,%d) and (%d,%d) share a tile", seed, ix, iy-1, ix, iy)
				}
			}
		}
	}
}
