package live

import (
	"sync"
)

// Hub tracks the open sessions.
type Hub struct {
	sessions map[*Session]bool
	mu       sync.RWMutex
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{
		sessions: make(map[*Session]bool),
	}
}

func (h *Hub) add(s *Session) {
	h.mu.Lock()
	h.sessions[s] = true
	h.mu.Unlock()
}

func (h *Hub) remove(s *Session) {
	h.mu.Lock()
	delete(h.sessions, s)
	h.mu.Unlock()
}

// Count returns the number of open sessions.
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.sessions)
}

// Close closes every session's connection. The sessions' loops exit on
// their next read.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for s := range h.sessions {
		s.conn.Close()
		delete(h.sessions, s)
	}
}
