// Package generator builds Rogue-style dungeons: a grid of cells each holding
// a room (or a vacant "gone" room), linked by corridors and populated with
// monsters and a pair of staircases.
package generator

import (
	"roguegen/pkg/engine/rng"
	"roguegen/pkg/engine/world"
	"roguegen/pkg/game/entities"
)

// StepFunc is called synchronously after each visible change while generating
// step by step. It may block; its completion is all the generator waits for.
type StepFunc func()

// Corridor records how one connection was realised on the map
type Corridor struct {
	From, To  int             // Room indices
	Direction world.Direction // Direction of the edge from From to To
	Start     world.Point     // Door anchor or centre of From
	End       world.Point     // Door anchor or centre of To
	Doors     []world.Point   // One door per non-gone endpoint
	Path      []world.Point   // Every tile dug, Start first
}

// Generator owns the room grid and tile buffer of one dungeon at a time.
// It is not safe for concurrent use.
type Generator struct {
	cfg Config

	cellWidth     int
	cellHeight    int
	maxRoomWidth  int
	maxRoomHeight int

	rng *rng.Source

	rooms []Room
	tiles *world.TileBuffer

	firstRoom int
	finalRoom int

	dirToCheck []world.Direction

	monsters   []*entities.Monster
	corridors  []Corridor
	stairsUp   world.Point
	stairsDown world.Point

	step         StepFunc
	isStepByStep bool
}

// New validates cfg and creates a generator seeded from cfg.Seed
func New(cfg Config) (*Generator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	g := &Generator{
		cfg:        cfg,
		rng:        rng.New(cfg.Seed),
		tiles:      world.NewTileBuffer(cfg.Width, cfg.Height),
		dirToCheck: world.AllDirections(),
	}
	g.cellWidth, g.cellHeight = cfg.CellSize()
	g.maxRoomWidth, g.maxRoomHeight = cfg.MaxRoomSize()

	return g, nil
}

// SetSeed restarts the random sequence for reproducible dungeons
func (g *Generator) SetSeed(seed int64) {
	g.rng.SetSeed(seed)
	g.dirToCheck = world.AllDirections()
}

// Seed returns the seed the current random sequence started from
func (g *Generator) Seed() int64 {
	return g.rng.Seed()
}

// SetStepHook installs the callback used in step mode. nil disables it.
func (g *Generator) SetStepHook(fn StepFunc) {
	g.step = fn
}

// Config returns the parameters the generator was built with
func (g *Generator) Config() Config {
	return g.cfg
}

// CellSize returns the width and height of one grid cell in tiles
func (g *Generator) CellSize() (width, height int) {
	return g.cellWidth, g.cellHeight
}

// Generate runs the whole pipeline once, replacing any previous dungeon.
// With stepMode set the step hook is invoked after each visible change.
func (g *Generator) Generate(stepMode bool) {
	g.isStepByStep = stepMode

	g.initRooms()
	g.connectNeighbouringRooms()
	g.connectUnconnectedRooms()
	g.createRooms()
	g.createCorridors()
	g.placeMonsters()
	g.placeStairs()
}

// Tiles returns the tile buffer. Callers must treat it as read-only.
func (g *Generator) Tiles() *world.TileBuffer {
	return g.tiles
}

// Rooms returns the rooms in grid order (x outer, y inner)
func (g *Generator) Rooms() []Room {
	return g.rooms
}

// Room returns the room in cell ix, iy, or nil if out of range
func (g *Generator) Room(ix, iy int) *Room {
	if !g.inGrid(ix, iy) || g.rooms == nil {
		return nil
	}
	return &g.rooms[g.index(ix, iy)]
}

// EntryRoom returns the index of the room holding the up staircase
func (g *Generator) EntryRoom() int {
	return g.firstRoom
}

// ExitRoom returns the index of the room holding the down staircase
func (g *Generator) ExitRoom() int {
	return g.finalRoom
}

// Monsters returns the monsters placed by the last run
func (g *Generator) Monsters() []*entities.Monster {
	return g.monsters
}

// Corridors returns every dug corridor of the last run, in digging order
func (g *Generator) Corridors() []Corridor {
	return g.corridors
}

// Stairs returns the positions of the up and down staircases
func (g *Generator) Stairs() (up, down world.Point) {
	return g.stairsUp, g.stairsDown
}

// notifyStep invokes the step hook when generating step by step
func (g *Generator) notifyStep() {
	if g.isStepByStep && g.step != nil {
		g.step()
	}
}
