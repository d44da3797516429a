// Package server exposes the generator over HTTP and streams step-by-step
// generation to websocket watchers.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"sync"

	"github.com/coder/websocket"

	"roguegen/pkg/game/devtools"
	"roguegen/pkg/game/generator"
)

// Server serves dungeons generated from a base configuration
type Server struct {
	cfg generator.Config
	hub *Hub

	// Only one broadcast generation runs at a time so frames never interleave
	generateMutex sync.Mutex
}

// New creates a server whose requests start from cfg
func New(cfg generator.Config) *Server {
	return &Server{
		cfg: cfg,
		hub: NewHub(),
	}
}

// Hub returns the watcher hub
func (s *Server) Hub() *Hub {
	return s.hub
}

// Handler returns the HTTP routes of the server
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", s.handleHealthz)
	mux.HandleFunc("/dungeon", s.handleDungeon)
	mux.HandleFunc("/dungeon.html", s.handleDungeonHTML)
	mux.HandleFunc("/generate", s.handleGenerate)
	mux.HandleFunc("/stream", s.handleStream)
	return mux
}

// ListenAndServe serves Handler on addr until it fails
func (s *Server) ListenAndServe(addr string) error {
	log.Printf("Serving dungeons on %s", addr)
	return http.ListenAndServe(addr, s.Handler())
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprintln(w, "ok")
}

// handleDungeon generates a dungeon without broadcasting and returns it as JSON
func (s *Server) handleDungeon(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	gen, err := s.newGenerator(r.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	gen.Generate(false)

	writeJSON(w, NewSnapshot(gen))
}

// handleDungeonHTML generates a dungeon and returns it as an HTML screenshot
func (s *Server) handleDungeonHTML(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	gen, err := s.newGenerator(r.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	gen.Generate(false)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := devtools.WriteScreenshotHTML(w, gen); err != nil {
		log.Printf("Writing screenshot failed: %v", err)
	}
}

// handleGenerate generates a dungeon, broadcasting one frame per step when
// step=1, then the finished snapshot
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	query := r.URL.Query()
	gen, err := s.newGenerator(query)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	stepByStep := query.Get("step") == "1"

	s.generateMutex.Lock()
	defer s.generateMutex.Unlock()

	step := 0
	gen.SetStepHook(func() {
		step++
		s.broadcast(TypeFrame, Frame{Step: step, Rows: gen.Tiles().Rows()})
	})
	gen.Generate(stepByStep)

	snap := NewSnapshot(gen)
	s.broadcast(TypeGenerated, snap)

	log.Printf("Generated dungeon seed=%d steps=%d watchers=%d", snap.Seed, step, s.hub.Count())
	writeJSON(w, snap)
}

// handleStream upgrades to a websocket and registers the watcher
func (s *Server) handleStream(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{InsecureSkipVerify: true})
	if err != nil {
		return
	}

	hello := map[string]any{"width": s.cfg.Width, "height": s.cfg.Height}
	if err := s.hub.Join(r.Context(), conn, hello); err != nil {
		_ = conn.Close(websocket.StatusInternalError, "")
		return
	}
	log.Printf("Watcher connected from %s (%d watching)", r.RemoteAddr, s.hub.Count())

	// Watchers only listen; reading keeps control frames flowing and
	// notices when they go away
	go func(c *websocket.Conn) {
		defer s.hub.Leave(c)
		defer c.Close(websocket.StatusNormalClosure, "")
		for {
			if _, _, err := c.Read(context.Background()); err != nil {
				log.Printf("Watcher disconnected: %v", err)
				return
			}
		}
	}(conn)
}

// broadcast publishes one envelope to every watcher
func (s *Server) broadcast(msgType string, payload any) {
	if err := s.hub.Publish(msgType, payload); err != nil {
		log.Printf("Broadcasting failed: %v", err)
	}
}

// newGenerator builds a generator from the base config and query overrides
func (s *Server) newGenerator(query url.Values) (*generator.Generator, error) {
	cfg, err := ConfigFromQuery(s.cfg, query)
	if err != nil {
		return nil, err
	}
	return generator.New(cfg)
}

// ConfigFromQuery applies the seed, width, height, hrooms, vrooms and
// monsters query parameters to base
func ConfigFromQuery(base generator.Config, query url.Values) (generator.Config, error) {
	cfg := base

	ints := []struct {
		name string
		dst  *int
	}{
		{"width", &cfg.Width},
		{"height", &cfg.Height},
		{"hrooms", &cfg.HorizontalRooms},
		{"vrooms", &cfg.VerticalRooms},
		{"monsters", &cfg.MonsterChance},
	}
	for _, p := range ints {
		raw := query.Get(p.name)
		if raw == "" {
			continue
		}
		v, err := strconv.Atoi(raw)
		if err != nil {
			return cfg, fmt.Errorf("invalid %s %q: %w", p.name, raw, err)
		}
		*p.dst = v
	}

	if raw := query.Get("seed"); raw != "" {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("invalid seed %q: %w", raw, err)
		}
		cfg.Seed = seed
	}

	return cfg, nil
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Writing JSON response failed: %v", err)
	}
}
