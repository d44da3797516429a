package generator

import (
	"math"

	"roguegen/pkg/engine/world"
)

// Room is the content of one cell of the grid.
// Connections hold indices into the generator's room slice; ConnectionDirections
// is parallel to it.
type Room struct {
	IX, IY              int // Cell coordinates
	X, Y, Width, Height int // Floor rectangle, valid after layout
	IsGone              bool

	Connections          []int
	ConnectionDirections []world.Direction
}

// Center returns the rounded geometric centre of the room's rectangle
func (r *Room) Center() world.Point {
	return world.Point{
		X: r.X + int(math.RoundToEven(float64(r.Width)/2.0)),
		Y: r.Y + int(math.RoundToEven(float64(r.Height)/2.0)),
	}
}

// HasConnectionTo returns true if the room has an outgoing edge to index
func (r *Room) HasConnectionTo(index int) bool {
	for _, c := range r.Connections {
		if c == index {
			return true
		}
	}
	return false
}

func (r *Room) connect(index int, dir world.Direction) {
	r.Connections = append(r.Connections, index)
	r.ConnectionDirections = append(r.ConnectionDirections, dir)
}
