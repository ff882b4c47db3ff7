package render

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/inference-sim/sidewalk-sim/sim"
)

const writeWait = 5 * time.Second

// AgentMessage is one agent in a SnapshotMessage.
type AgentMessage struct {
	ID   int    `json:"id"`
	X    int    `json:"x"`
	Y    int    `json:"y"`
	Team string `json:"team"`
}

// SnapshotMessage is the JSON document pushed to viewers once per tick.
type SnapshotMessage struct {
	Tick   int64          `json:"tick"`
	Length int            `json:"length"`
	Width  int            `json:"width"`
	Agents []AgentMessage `json:"agents"`
}

// NewSnapshotMessage converts a tick's agent views into the wire form.
func NewSnapshotMessage(tick int64, cfg sim.SidewalkConfig, agents []sim.AgentView) SnapshotMessage {
	msg := SnapshotMessage{
		Tick:   tick,
		Length: cfg.Length,
		Width:  cfg.Width,
		Agents: make([]AgentMessage, 0, len(agents)),
	}
	for _, a := range agents {
		msg.Agents = append(msg.Agents, AgentMessage{ID: a.ID, X: a.X, Y: a.Y, Team: a.Team.String()})
	}
	return msg
}

// Hub fans snapshots out to websocket viewers. Viewers are read-only: any
// message they send is discarded, and a read error disconnects them.
type Hub struct {
	upgrader websocket.Upgrader

	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
	last    *SnapshotMessage // replayed to viewers that join mid-run
}

// NewHub creates a hub accepting connections from any origin.
func NewHub() *Hub {
	return &Hub{
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		clients: make(map[*websocket.Conn]struct{}),
	}
}

// ServeHTTP upgrades the request and registers the viewer.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logrus.Warnf("websocket upgrade from %s failed: %v", r.RemoteAddr, err)
		return
	}

	h.mu.Lock()
	h.clients[conn] = struct{}{}
	if h.last != nil {
		h.write(conn, *h.last)
	}
	h.mu.Unlock()
	logrus.Infof("viewer %s connected", r.RemoteAddr)

	go h.readLoop(conn)
}

// Broadcast sends msg to every viewer, dropping those that fail.
func (h *Hub) Broadcast(msg SnapshotMessage) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.last = &msg
	for conn := range h.clients {
		h.write(conn, msg)
	}
}

// Clients returns the number of connected viewers.
func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Observer returns a TickObserver that broadcasts every tick and then waits
// interval before letting the run continue. It stops the run when ctx is done.
func (h *Hub) Observer(ctx context.Context, cfg sim.SidewalkConfig, interval time.Duration) sim.TickObserver {
	return func(tick int64, agents []sim.AgentView) bool {
		h.Broadcast(NewSnapshotMessage(tick, cfg, agents))
		if interval <= 0 {
			return ctx.Err() == nil
		}
		timer := time.NewTimer(interval)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return false
		case <-timer.C:
			return true
		}
	}
}

// write must be called with h.mu held.
func (h *Hub) write(conn *websocket.Conn, msg SnapshotMessage) {
	_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := conn.WriteJSON(msg); err != nil {
		logrus.Debugf("dropping viewer %s: %v", conn.RemoteAddr(), err)
		delete(h.clients, conn)
		_ = conn.Close()
	}
}

func (h *Hub) readLoop(conn *websocket.Conn) {
	defer func() {
		h.mu.Lock()
		delete(h.clients, conn)
		h.mu.Unlock()
		_ = conn.Close()
		logrus.Infof("viewer %s disconnected", conn.RemoteAddr())
	}()
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
