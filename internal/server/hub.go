package server

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/mtreloar/souschef/internal/logging"
)

// hub tracks connected companion clients and fans state messages out to
// them. Clients with a full send buffer are dropped rather than allowed
// to stall everyone else's updates.
type hub struct {
	mu      sync.Mutex
	clients map[*client]bool
	closed  bool
}

func newHub() *hub {
	return &hub{
		clients: make(map[*client]bool),
	}
}

// run blocks until the context is cancelled, then closes every client.
func (h *hub) run(ctx context.Context) {
	<-ctx.Done()
	h.close()
}

// register adds a client. Returns false if the hub is already closed.
func (h *hub) register(c *client) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return false
	}
	h.clients[c] = true
	logging.Debug("Companion registered", zap.Int("clients", len(h.clients)))
	return true
}

// unregister removes a client and closes its send channel.
func (h *hub) unregister(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
}

// broadcast queues a message for every connected client. Slow clients
// are disconnected instead of blocking the broadcast.
func (h *hub) broadcast(data []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		select {
		case c.send <- data:
		default:
			logging.Warn("Dropping slow companion",
				zap.String("remote_addr", c.remoteAddr),
			)
			delete(h.clients, c)
			close(c.send)
		}
	}
}

// send queues a message for a single client. All writes to a client's
// send channel go through the hub lock so they cannot race the close in
// unregister, broadcast, or close. Returns false if the client has been
// dropped.
func (h *hub) send(c *client, data []byte) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[c]; !ok {
		return false
	}
	select {
	case c.send <- data:
		return true
	default:
		logging.Warn("Dropping slow companion",
			zap.String("remote_addr", c.remoteAddr),
		)
		delete(h.clients, c)
		close(c.send)
		return false
	}
}

// count returns the number of connected clients.
func (h *hub) count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// close disconnects all clients and refuses new registrations.
func (h *hub) close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	h.closed = true
	for c := range h.clients {
		delete(h.clients, c)
		close(c.send)
	}
}
