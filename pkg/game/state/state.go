package state

import (
	"time"

	"github.com/zyedidia/generic/mapset"

	"roguegen/pkg/game/generator"
)

const maxMessages = 5

// Session holds what an interactive front end keeps between generations
type Session struct {
	Generator *generator.Generator

	Messages []string

	Generations int // Number of dungeons generated so far

	SeenSeeds mapset.Set[int64]

	clock func() int64 // Source of fresh seeds
}

// NewSession creates a session around a ready generator
func NewSession(gen *generator.Generator) *Session {
	return &Session{
		Generator: gen,
		Messages:  make([]string, 0),
		SeenSeeds: mapset.New[int64](),
		clock:     func() int64 { return time.Now().UnixNano() },
	}
}

// AddMessage adds a message to the session's message log
func (s *Session) AddMessage(msg string) {
	s.Messages = append(s.Messages, msg)

	// Keep only the last maxMessages
	if len(s.Messages) > maxMessages {
		s.Messages = s.Messages[len(s.Messages)-maxMessages:]
	}
}

// ClearMessages clears all messages
func (s *Session) ClearMessages() {
	s.Messages = make([]string, 0)
}

// Generate builds a new dungeon with the session's generator and records it.
// The first dungeon uses the configured seed; later ones get a fresh
// time-based seed that no earlier dungeon of the session used, so each
// dungeon is new and can be reproduced from the seed returned.
func (s *Session) Generate(stepByStep bool) int64 {
	if s.Generations > 0 {
		s.Generator.SetSeed(s.freshSeed())
	}

	seed := s.Generator.Seed()
	s.Generator.Generate(stepByStep)

	s.Generations++
	s.SeenSeeds.Put(seed)

	return seed
}

func (s *Session) freshSeed() int64 {
	seed := s.clock()
	for s.HasSeen(seed) {
		seed++
	}
	return seed
}

// HasSeen reports whether a dungeon was already generated from seed
func (s *Session) HasSeen(seed int64) bool {
	return s.SeenSeeds.Has(seed)
}
