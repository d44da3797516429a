package server

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/coder/websocket"
)

const writeTimeout = 3 * time.Second

// Hub numbers generation events and fans them out to every /stream watcher.
// Watchers get a hello with sequence 0 on joining, then every published
// envelope in order.
type Hub struct {
	mu       sync.Mutex
	watchers map[*websocket.Conn]struct{}

	sequence atomic.Uint64
}

func NewHub() *Hub {
	return &Hub{watchers: make(map[*websocket.Conn]struct{})}
}

// Join sends the hello envelope to conn and starts including it in broadcasts
func (h *Hub) Join(ctx context.Context, conn *websocket.Conn, hello any) error {
	data, err := json.Marshal(Envelope{Sequence: 0, Type: TypeHello, Payload: hello})
	if err != nil {
		return fmt.Errorf("encoding hello: %w", err)
	}
	if err := conn.Write(ctx, websocket.MessageText, data); err != nil {
		return err
	}

	h.mu.Lock()
	h.watchers[conn] = struct{}{}
	h.mu.Unlock()
	return nil
}

// Leave stops broadcasting to conn
func (h *Hub) Leave(conn *websocket.Conn) {
	h.mu.Lock()
	delete(h.watchers, conn)
	h.mu.Unlock()
}

// Count returns the number of connected watchers
func (h *Hub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.watchers)
}

// Sequence returns the number of envelopes published so far
func (h *Hub) Sequence() uint64 {
	return h.sequence.Load()
}

// Publish wraps payload in the next numbered envelope and sends it to every
// watcher. The sequence advances even when nobody is watching.
func (h *Hub) Publish(msgType string, payload any) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	data, err := json.Marshal(Envelope{
		Sequence: h.sequence.Add(1),
		Type:     msgType,
		Payload:  payload,
	})
	if err != nil {
		return fmt.Errorf("encoding %s message: %w", msgType, err)
	}

	for conn := range h.watchers {
		ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
		err := conn.Write(ctx, websocket.MessageText, data)
		cancel()
		if err != nil {
			_ = conn.Close(websocket.StatusNormalClosure, "")
			delete(h.watchers, conn)
		}
	}
	return nil
}
