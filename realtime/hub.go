// File: realtime/hub.go
package realtime

import (
	"sync"

	"go.uber.org/zap"
)

// Event is the envelope written to a websocket client.
type Event struct {
	Event string `json:"event"`
	Data  any    `json:"data,omitempty"`
}

// conn is the subset of *websocket.Conn the hub needs.
type conn interface {
	WriteJSON(v any) error
	Close() error
}

type client struct {
	mu   sync.Mutex // serializes writes to the socket
	conn conn
}

func (c *client) writeJSON(v any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteJSON(v)
}

// Hub tracks the active websocket connection per user. One connection per
// user: a new registration replaces and closes the previous one. The booking
// workflow only reads this table; connect/disconnect is driven by the
// websocket handler.
type Hub struct {
	logger *zap.Logger

	mu      sync.RWMutex
	clients map[string]*client
}

// NewHub constructs an empty hub.
func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		logger:  logger,
		clients: make(map[string]*client),
	}
}

// Register makes conn the active connection for userID.
func (h *Hub) Register(userID string, c conn) {
	h.mu.Lock()
	old := h.clients[userID]
	h.clients[userID] = &client{conn: c}
	h.mu.Unlock()

	if old != nil {
		old.conn.Close()
	}
	h.logger.Debug("realtime: connection registered", zap.String("userId", userID))
}

// Unregister removes the connection for userID, but only if it is still the
// one passed in; a replacement connection is left alone.
func (h *Hub) Unregister(userID string, c conn) {
	h.mu.Lock()
	if current, ok := h.clients[userID]; ok && current.conn == c {
		delete(h.clients, userID)
	}
	h.mu.Unlock()
	h.logger.Debug("realtime: connection unregistered", zap.String("userId", userID))
}

// HasActiveConnection reports whether userID currently holds a live socket.
func (h *Hub) HasActiveConnection(userID string) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	_, ok := h.clients[userID]
	return ok
}

// TrySend delivers an event to userID if connected. Fire-and-forget: the
// return value only reports whether a frame was written; callers must not
// treat false as an operation failure.
func (h *Hub) TrySend(userID, event string, payload any) bool {
	h.mu.RLock()
	c, ok := h.clients[userID]
	h.mu.RUnlock()
	if !ok {
		return false
	}

	if err := c.writeJSON(Event{Event: event, Data: payload}); err != nil {
		h.logger.Debug("realtime: send failed",
			zap.String("userId", userID),
			zap.String("event", event),
			zap.Error(err),
		)
		return false
	}
	return true
}
