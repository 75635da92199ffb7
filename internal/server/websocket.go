package server

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/mtreloar/souschef/internal/logging"
	"github.com/mtreloar/souschef/internal/protocol"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period (must be less than pongWait)
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer. Commands are tiny; anything
	// bigger is a misbehaving client.
	maxMessageSize = 512

	// Per-client broadcast buffer
	sendBufferSize = 16
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Companions are phones and tablets on the same LAN; there is no
	// browser origin to check against.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// client is one companion WebSocket connection.
type client struct {
	conn       *websocket.Conn
	send       chan []byte
	remoteAddr string
}

// handleWebSocket upgrades the HTTP connection and runs the read/write
// pumps until the companion disconnects.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logging.Warn("WebSocket upgrade failed",
			zap.String("remote_addr", r.RemoteAddr),
			zap.Error(err),
		)
		return
	}

	c := &client{
		conn:       conn,
		send:       make(chan []byte, sendBufferSize),
		remoteAddr: r.RemoteAddr,
	}

	if !s.hub.register(c) {
		_ = conn.Close()
		return
	}
	logging.LogConnection(c.remoteAddr, "websocket_opened")

	// Greet the new companion with the current state so it can render
	// immediately instead of waiting for the next cursor move.
	if data, err := protocol.EncodeState(s.session.Snapshot()); err == nil {
		s.hub.send(c, data)
	}

	go c.writePump()
	c.readPump(s)
}

// readPump reads companion commands and applies them to the shared
// session. Runs on the connection's goroutine.
func (c *client) readPump(s *Server) {
	defer func() {
		s.hub.unregister(c)
		_ = c.conn.Close()
		logging.LogConnection(c.remoteAddr, "websocket_closed")
	}()

	c.conn.SetReadLimit(maxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logging.Warn("Companion connection error",
					zap.String("remote_addr", c.remoteAddr),
					zap.Error(err),
				)
			}
			return
		}

		cmd, err := protocol.ParseCommand(data)
		if err != nil {
			logging.Warn("Rejected companion message",
				zap.String("remote_addr", c.remoteAddr),
				zap.Error(err),
			)
			if reply, encErr := protocol.EncodeError(err.Error()); encErr == nil {
				s.hub.send(c, reply)
			}
			continue
		}

		logging.LogCommand(c.remoteAddr, cmd.Action, cmd.Target)

		// Applying the command notifies session listeners, which
		// broadcasts the new state to every companion including this one.
		// A boundary no-op produces no broadcast, so answer the sender
		// directly to keep the protocol request/response-ish. The hub
		// owns the send channel; if the client was dropped mid-command
		// the reply is simply discarded.
		st := protocol.Apply(cmd, s.session)
		if data, err := protocol.EncodeState(st); err == nil {
			s.hub.send(c, data)
		}
	}
}

// writePump forwards queued messages to the connection and keeps it
// alive with pings.
func (c *client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case data, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// Hub closed the channel
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
