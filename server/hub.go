package server

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/1byung/tepdash/engine"
	"github.com/1byung/tepdash/model"
)

// sendBuffer is the per-client outbound queue. Clients that stop reading
// long enough to fill it are dropped rather than stalling the broadcast.
const sendBuffer = 8

// command is the only inbound message type: a selection toggle.
type command struct {
	Op string `json:"op"`
	ID int    `json:"id"`
}

type client struct {
	id   string
	conn *websocket.Conn
	send chan []byte
}

// hub fans snapshots out to websocket clients and applies toggle commands
// back onto the engine.
type hub struct {
	engine   *engine.Engine
	log      *logrus.Logger
	upgrader websocket.Upgrader

	mu      sync.Mutex
	clients map[string]*client
	closed  bool
}

func newHub(eng *engine.Engine, log *logrus.Logger) *hub {
	return &hub{
		engine:  eng,
		log:     log,
		clients: make(map[string]*client),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// The feed carries no credentials and is meant for local
			// dashboards, so any origin may connect.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// handleWS upgrades the connection and runs the read loop until the
// client disconnects.
func (h *hub) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.WithError(err).Warn("websocket upgrade failed")
		return
	}

	c := &client{
		id:   uuid.NewString(),
		conn: conn,
		send: make(chan []byte, sendBuffer),
	}

	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		conn.Close()
		return
	}
	h.clients[c.id] = c
	total := len(h.clients)
	h.mu.Unlock()

	h.log.WithFields(logrus.Fields{"client": c.id, "remote": r.RemoteAddr, "total": total}).
		Info("client connected")

	go c.writePump()
	h.readPump(c)
}

// readPump consumes toggle commands until the connection dies.
func (h *hub) readPump(c *client) {
	defer h.drop(c)
	for {
		var cmd command
		if err := c.conn.ReadJSON(&cmd); err != nil {
			return
		}
		if cmd.Op == "toggle" {
			h.engine.Toggle(cmd.ID)
			h.log.WithFields(logrus.Fields{"client": c.id, "id": cmd.ID}).Debug("selection toggled")
		}
	}
}

func (c *client) writePump() {
	for msg := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			return
		}
	}
	_ = c.conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseGoingAway, "shutting down"))
}

// drop unregisters a client and closes its connection.
func (h *hub) drop(c *client) {
	h.mu.Lock()
	if _, ok := h.clients[c.id]; ok {
		delete(h.clients, c.id)
		close(c.send)
	}
	total := len(h.clients)
	h.mu.Unlock()

	c.conn.Close()
	h.log.WithFields(logrus.Fields{"client": c.id, "total": total}).Info("client disconnected")
}

// broadcast sends one snapshot to every connected client. Marshals once;
// clients with full queues are dropped.
func (h *hub) broadcast(snap *model.Snapshot) {
	data, err := json.Marshal(snap)
	if err != nil {
		h.log.WithError(err).Error("snapshot marshal failed")
		return
	}

	h.mu.Lock()
	var stalled []*client
	for _, c := range h.clients {
		select {
		case c.send <- data:
		default:
			stalled = append(stalled, c)
		}
	}
	h.mu.Unlock()

	for _, c := range stalled {
		h.log.WithField("client", c.id).Warn("dropping stalled client")
		h.drop(c)
	}
}

// count returns the number of connected clients.
func (h *hub) count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// close disconnects every client and refuses new ones.
func (h *hub) close() {
	h.mu.Lock()
	h.closed = true
	clients := make([]*client, 0, len(h.clients))
	for _, c := range h.clients {
		clients = append(clients, c)
	}
	h.mu.Unlock()

	for _, c := range clients {
		h.drop(c)
	}
}
