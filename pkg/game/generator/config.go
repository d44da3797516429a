package generator

import (
	"errors"
	"fmt"
)

// Constants for cell-grid generation
const (
	MinRoomWidth  = 5 // Narrowest floor a room may shrink to
	MinRoomHeight = 2 // Shortest floor a room may shrink to
	MaxGoneRooms  = 3 // Upper bound on vacant cells per dungeon

	cellGapWidth  = 4 // Columns of a cell reserved for walls and gaps
	cellGapHeight = 2 // Rows of a cell reserved for walls and gaps
	roomGap       = 3 // Empty tiles kept between neighbouring rooms
	edgeMargin    = 2 // First row/column a room may start at

	DefaultMonsterChance = 20 // Percent chance a room holds a monster

	MaxWidth  = 500 // Widest tile buffer a generator will allocate
	MaxHeight = 200 // Tallest tile buffer a generator will allocate
)

// ErrInvalidConfig is returned when the dungeon parameters cannot fit a minimum room per cell
var ErrInvalidConfig = errors.New("invalid dungeon configuration")

// Config holds the construction parameters of a generator
type Config struct {
	Width           int   // Tile buffer columns
	Height          int   // Tile buffer rows
	HorizontalRooms int   // Cell grid columns
	VerticalRooms   int   // Cell grid rows
	Seed            int64 // 0 picks a time-based seed
	MonsterChance   int   // Percent chance per room, 0-100
}

// DefaultConfig returns the classic 80x25 screen split into 3x3 cells
func DefaultConfig() Config {
	return Config{
		Width:           80,
		Height:          25,
		HorizontalRooms: 3,
		VerticalRooms:   3,
		MonsterChance:   DefaultMonsterChance,
	}
}

// CellSize returns the width and height of one cell of the grid
func (c Config) CellSize() (width, height int) {
	if c.HorizontalRooms <= 0 || c.VerticalRooms <= 0 {
		return 0, 0
	}
	return c.Width / c.HorizontalRooms, c.Height / c.VerticalRooms
}

// MaxRoomSize returns the exclusive upper bounds for random room dimensions
func (c Config) MaxRoomSize() (width, height int) {
	cw, ch := c.CellSize()
	return cw - cellGapWidth, ch - cellGapHeight
}

// Validate checks that every cell can hold a minimum-size room and that the
// last column and row of rooms still fit inside the map with their walls
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: dungeon size %dx%d must be positive", ErrInvalidConfig, c.Width, c.Height)
	}
	if c.Width > MaxWidth || c.Height > MaxHeight {
		return fmt.Errorf("%w: dungeon size %dx%d exceeds %dx%d", ErrInvalidConfig, c.Width, c.Height, MaxWidth, MaxHeight)
	}
	if c.HorizontalRooms < 1 || c.VerticalRooms < 1 {
		return fmt.Errorf("%w: room grid %dx%d must have at least one cell", ErrInvalidConfig, c.HorizontalRooms, c.VerticalRooms)
	}
	maxW, maxH := c.MaxRoomSize()
	if maxW < MinRoomWidth {
		return fmt.Errorf("%w: cells are %d wide, need at least %d for %d horizontal rooms",
			ErrInvalidConfig, maxW+cellGapWidth, MinRoomWidth+cellGapWidth, c.HorizontalRooms)
	}
	if maxH < MinRoomHeight {
		return fmt.Errorf("%w: cells are %d high, need at least %d for %d vertical rooms",
			ErrInvalidConfig, maxH+cellGapHeight, MinRoomHeight+cellGapHeight, c.VerticalRooms)
	}
	cw, ch := c.CellSize()
	if start := lastRoomStart(cw, c.HorizontalRooms); start+MinRoomWidth >= c.Width-1 {
		return fmt.Errorf("%w: last column of rooms may start at x=%d, too close to the right edge of a %d wide map",
			ErrInvalidConfig, start, c.Width)
	}
	if start := lastRoomStart(ch, c.VerticalRooms); start+MinRoomHeight >= c.Height-1 {
		return fmt.Errorf("%w: last row of rooms may start at y=%d, too close to the bottom edge of a %d high map",
			ErrInvalidConfig, start, c.Height)
	}
	if c.MonsterChance < 0 || c.MonsterChance > 100 {
		return fmt.Errorf("%w: monster chance %d is not a percentage", ErrInvalidConfig, c.MonsterChance)
	}
	return nil
}

// lastRoomStart returns the furthest position the last room along an axis
// can be pushed to. A room starts at its cell origin, the edge margin or
// roomGap past the previous room, whichever is furthest, and a room never
// ends more than cellSize-2 tiles past its own start.
func lastRoomStart(cellSize, cells int) int {
	return edgeMargin + (cells-1)*(cellSize-2+roomGap)
}
