package remote

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// writeWait bounds a single websocket write. A pad that stops reading is
// disconnected once a write exceeds it.
var writeWait = 10 * time.Second

// sendBuffer is the number of frames queued per pad before the oldest is
// dropped.
const sendBuffer = 4

// Conn manages a single websocket pad. Writes go through a per-connection
// queue drained by its own goroutine, so a slow pad never blocks the
// publisher.
type Conn struct {
	ID   string
	ws   *websocket.Conn
	send chan []byte
	done chan struct{}
	once sync.Once
}

// NewConn creates a new connection wrapper. Call Start once the handshake
// messages written with Send are out.
func NewConn(ws *websocket.Conn) *Conn {
	return &Conn{
		ID:   uuid.New().String(),
		ws:   ws,
		send: make(chan []byte, sendBuffer),
		done: make(chan struct{}),
	}
}

// Send serializes msg to JSON and writes it to the websocket directly. It
// must not be used after Start.
func (c *Conn) Send(msg any) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	return c.write(data)
}

func (c *Conn) write(data []byte) error {
	c.ws.SetWriteDeadline(time.Now().Add(writeWait))
	return c.ws.WriteMessage(websocket.TextMessage, data)
}

// Start runs the writer goroutine.
func (c *Conn) Start(logger *log.Logger) {
	go c.writeLoop(logger)
}

func (c *Conn) writeLoop(logger *log.Logger) {
	for {
		select {
		case <-c.done:
			return
		case data := <-c.send:
			if err := c.write(data); err != nil {
				logger.Printf("ws write error for %s: %v", c.ID, err)
				c.Close()
				return
			}
		}
	}
}

// Enqueue queues data for the writer, discarding the oldest queued frame
// when the queue is full. It reports false once the connection is closed.
func (c *Conn) Enqueue(data []byte) bool {
	for {
		select {
		case <-c.done:
			return false
		default:
		}
		select {
		case c.send <- data:
			return true
		default:
		}
		select {
		case <-c.send:
		default:
		}
	}
}

// Close shuts the connection down. It never blocks and is safe to call more
// than once.
func (c *Conn) Close() {
	c.once.Do(func() {
		close(c.done)
		c.ws.Close()
	})
}

// ReadLoop decodes incoming messages until the pad disconnects. Malformed
// messages are logged and skipped.
func (c *Conn) ReadLoop(logger *log.Logger, onMessage func(raw []byte) error) {
	defer c.Close()
	for {
		_, raw, err := c.ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Printf("ws read error for %s: %v", c.ID, err)
			}
			return
		}
		if err := onMessage(raw); err != nil {
			logger.Printf("message from %s: %v", c.ID, err)
		}
	}
}
