package world

import "fmt"

// Point is an integer tile coordinate
type Point struct {
	X int
	Y int
}

// Step returns the point one tile away in the given direction
func (p Point) Step(dir Direction) Point {
	dx, dy := dir.Delta()
	return Point{X: p.X + dx, Y: p.Y + dy}
}

func (p Point) String() string {
	return fmt.Sprintf("%d,%d", p.X, p.Y)
}
