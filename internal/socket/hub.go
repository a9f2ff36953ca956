package socket

import (
	"log"
	"sync"

	"restaurant-foh-api-server/internal/models"

	"github.com/gorilla/websocket"
)

// client pairs a connection with the role whose view it renders. The
// per-client mutex serializes writes: gorilla/websocket forbids
// concurrent writers on one connection, and broadcasts arrive from
// both the HTTP handlers and the change-stream pump.
type client struct {
	conn *websocket.Conn
	role models.Role
	mu   sync.Mutex
}

func (c *client) send(message []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteMessage(websocket.TextMessage, message)
}

// Hub tracks every connected dashboard. Clients register under the
// role whose view they render; store events are broadcast to the roles
// that care about them.
type Hub struct {
	clients map[*websocket.Conn]*client
	// mu guards the clients map; each client's own mutex guards its
	// connection writes.
	mu sync.RWMutex
}

// NewHub creates an empty Hub.
func NewHub() *Hub {
	return &Hub{
		clients: make(map[*websocket.Conn]*client),
	}
}

// Register adds a connection under a role.
func (h *Hub) Register(conn *websocket.Conn, role models.Role) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[conn] = &client{conn: conn, role: role}
	log.Printf("WebSocket client registered for role %s", role)
}

// Unregister removes a connection.
func (h *Hub) Unregister(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if c, ok := h.clients[conn]; ok {
		delete(h.clients, conn)
		log.Printf("WebSocket client unregistered for role %s", c.role)
	}
}

// Broadcast sends a message to every client whose role is in roles;
// with no roles it goes to everyone. Concurrent broadcasts may
// interleave across clients but never on one connection. A failed
// write is not fatal, the client's own read loop will tear the
// connection down.
func (h *Hub) Broadcast(message []byte, roles ...models.Role) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, c := range h.clients {
		if len(roles) > 0 && !containsRole(roles, c.role) {
			continue
		}
		if err := c.send(message); err != nil {
			log.Printf("WebSocket write to %s client failed: %v", c.role, err)
		}
	}
}

// Count returns how many clients are connected for a role.
func (h *Hub) Count(role models.Role) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	n := 0
	for _, c := range h.clients {
		if c.role == role {
			n++
		}
	}
	return n
}

func containsRole(roles []models.Role, role models.Role) bool {
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}
