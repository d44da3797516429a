package server

import (
	"roguegen/pkg/game/generator"
)

// Message types sent on /stream
const (
	TypeHello     = "Hello"
	TypeFrame     = "Frame"
	TypeGenerated = "Generated"
)

// Envelope wraps every message sent to watchers
type Envelope struct {
	Sequence uint64 `json:"sequence"`
	Type     string `json:"type"`
	Payload  any    `json:"payload"`
}

// Frame is the partial map after one generation step
type Frame struct {
	Step int      `json:"step"`
	Rows []string `json:"rows"`
}

type PointView struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type RoomView struct {
	Index       int   `json:"index"`
	IX          int   `json:"ix"`
	IY          int   `json:"iy"`
	X           int   `json:"x"`
	Y           int   `json:"y"`
	Width       int   `json:"width"`
	Height      int   `json:"height"`
	Gone        bool  `json:"gone"`
	Connections []int `json:"connections"`
}

type MonsterView struct {
	Kind string    `json:"kind"`
	At   PointView `json:"at"`
}

// Snapshot is the JSON view of a finished dungeon
type Snapshot struct {
	Seed        int64         `json:"seed"`
	Width       int           `json:"width"`
	Height      int           `json:"height"`
	Rows        []string      `json:"rows"`
	Rooms       []RoomView    `json:"rooms"`
	Corridors   int           `json:"corridors"`
	Monsters    []MonsterView `json:"monsters"`
	StairsUp    PointView     `json:"stairsUp"`
	StairsDown  PointView     `json:"stairsDown"`
	EntryRoom   int           `json:"entryRoom"`
	ExitRoom    int           `json:"exitRoom"`
	Unreachable []int         `json:"unreachable"`
}

// NewSnapshot captures the last dungeon generated by g
func NewSnapshot(g *generator.Generator) Snapshot {
	cfg := g.Config()
	up, down := g.Stairs()

	snap := Snapshot{
		Seed:        g.Seed(),
		Width:       cfg.Width,
		Height:      cfg.Height,
		Rows:        g.Tiles().Rows(),
		Corridors:   len(g.Corridors()),
		StairsUp:    PointView{X: up.X, Y: up.Y},
		StairsDown:  PointView{X: down.X, Y: down.Y},
		EntryRoom:   g.EntryRoom(),
		ExitRoom:    g.ExitRoom(),
		Unreachable: g.UnreachableRooms(),
	}
	if snap.Unreachable == nil {
		snap.Unreachable = []int{}
	}

	for i, r := range g.Rooms() {
		snap.Rooms = append(snap.Rooms, RoomView{
			Index:       i,
			IX:          r.IX,
			IY:          r.IY,
			X:           r.X,
			Y:           r.Y,
			Width:       r.Width,
			Height:      r.Height,
			Gone:        r.IsGone,
			Connections: append([]int{}, r.Connections...),
		})
	}

	snap.Monsters = []MonsterView{}
	for _, m := range g.Monsters() {
		snap.Monsters = append(snap.Monsters, MonsterView{
			Kind: m.Kind.String(),
			At:   PointView{X: m.X, Y: m.Y},
		})
	}

	return snap
}
