package remote

import (
	_ "embed"
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"gridsnake/internal/session"

	"github.com/gorilla/websocket"
)

// WebSocketPath is where pads connect.
const WebSocketPath = "/ws"

//go:embed pad.html
var padPage []byte

var upgrader = websocket.Upgrader{
	// Pads are served from the same process; any origin may steer.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Hub fans state frames out to every connected pad and forwards their
// commands to the session owner.
type Hub struct {
	sessionID string
	cmds      chan<- session.Command
	logger    *log.Logger

	mu    sync.RWMutex
	conns map[string]*Conn
	last  []byte
}

// NewHub returns a hub forwarding commands to cmds.
func NewHub(sessionID string, cmds chan<- session.Command, logger *log.Logger) *Hub {
	if logger == nil {
		logger = log.Default()
	}
	return &Hub{sessionID: sessionID, cmds: cmds, logger: logger, conns: make(map[string]*Conn)}
}

// Handler returns the HTTP routes: the pad page at / and the websocket at
// WebSocketPath.
func (h *Hub) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(padPage)
	})
	mux.Handle(WebSocketPath, h)
	return mux
}

// ServeHTTP upgrades the request and serves one pad until it disconnects.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ws, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Printf("ws upgrade error: %v", err)
		return
	}
	c := NewConn(ws)
	if err := c.Send(WelcomeMsg{Type: MsgWelcome, ID: c.ID, Session: h.sessionID}); err != nil {
		c.Close()
		return
	}

	// The cached frame is queued under the lock so a concurrent Publish can
	// only ever queue a newer one behind it.
	h.mu.Lock()
	if h.last != nil && !c.Enqueue(h.last) {
		h.mu.Unlock()
		c.Close()
		return
	}
	h.conns[c.ID] = c
	h.mu.Unlock()
	c.Start(h.logger)
	h.logger.Printf("pad %s connected from %s", c.ID, r.RemoteAddr)

	ctx := r.Context()
	c.ReadLoop(h.logger, func(raw []byte) error {
		cmd, err := Decode(raw)
		if err != nil {
			return err
		}
		select {
		case h.cmds <- cmd:
		case <-ctx.Done():
		}
		return nil
	})

	h.mu.Lock()
	delete(h.conns, c.ID)
	h.mu.Unlock()
	h.logger.Printf("pad %s disconnected", c.ID)
}

// Publish queues f for every connected pad and keeps it for pads that join
// later. It never waits on the network. Safe for concurrent use.
func (h *Hub) Publish(f session.Frame) {
	data, err := json.Marshal(NewStateMsg(f))
	if err != nil {
		h.logger.Printf("encoding frame: %v", err)
		return
	}
	h.mu.Lock()
	h.last = data
	list := make([]*Conn, 0, len(h.conns))
	for _, c := range h.conns {
		list = append(list, c)
	}
	h.mu.Unlock()

	for _, c := range list {
		c.Enqueue(data)
	}
}

// Count returns the number of connected pads.
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.conns)
}
