// Package entities contains the occupants a generator can drop into a dungeon.
// The generator only needs a typed marker and its glyph; stats and behaviour
// belong to whoever consumes the finished map.
package entities

import (
	"fmt"

	"roguegen/pkg/engine/world"
)

// MonsterKind is the closed set of monsters a room can hold
type MonsterKind int

// Monster kinds
const (
	Medusa MonsterKind = iota
	Phantom
	Zombie
)

// AllMonsterKinds returns every kind a room may be populated with
func AllMonsterKinds() []MonsterKind {
	return []MonsterKind{Medusa, Phantom, Zombie}
}

// String returns the name of the monster kind
func (k MonsterKind) String() string {
	switch k {
	case Medusa:
		return "Medusa"
	case Phantom:
		return "Phantom"
	case Zombie:
		return "Zombie"
	default:
		return "Unknown"
	}
}

// Glyph returns the character drawn for this kind
func (k MonsterKind) Glyph() rune {
	switch k {
	case Medusa:
		return 'M'
	case Phantom:
		return 'P'
	case Zombie:
		return 'Z'
	default:
		return world.GlyphUnknownOccupant
	}
}

// Colour returns the display attribute for this kind
func (k MonsterKind) Colour() world.Colour {
	return world.ColourMonster
}

// Monster is a placed occupant marker
type Monster struct {
	Kind MonsterKind
	X    int
	Y    int
}

// NewMonster creates a monster of the given kind at x, y
func NewMonster(kind MonsterKind, x, y int) *Monster {
	return &Monster{Kind: kind, X: x, Y: y}
}

// Tile returns the buffer tile representing this monster
func (m *Monster) Tile() world.Tile {
	return world.Tile{Kind: world.TileMonster, Glyph: m.Kind.Glyph(), Colour: m.Kind.Colour()}
}

// Position returns the monster's coordinate
func (m *Monster) Position() world.Point {
	return world.Point{X: m.X, Y: m.Y}
}

func (m *Monster) String() string {
	return fmt.Sprintf("%s at %d,%d", m.Kind, m.X, m.Y)
}
