package lead

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
	maxMsgSize = 4 * 1024
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true }, // CORS middleware gates the handshake route
}

// FeedEvent is a real-time inbox event pushed to staff dashboards
type FeedEvent struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload,omitempty"`
}

const (
	EventLeadCreated       = "lead.created"
	EventLeadStatusChanged = "lead.status_changed"
)

// feedConn represents a single connected staff dashboard
type feedConn struct {
	conn *websocket.Conn
	send chan []byte
}

// Feed manages the live admin inbox connections
type Feed struct {
	mu    sync.RWMutex
	conns map[*feedConn]bool
}

func NewFeed() *Feed {
	return &Feed{conns: make(map[*feedConn]bool)}
}

func (f *Feed) register(c *feedConn) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.conns[c] = true
}

func (f *Feed) unregister(c *feedConn) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.conns[c] {
		delete(f.conns, c)
		close(c.send)
	}
}

// PublishLeadCreated broadcasts a freshly submitted lead.
func (f *Feed) PublishLeadCreated(l *Lead) {
	f.broadcast(&FeedEvent{Type: EventLeadCreated, Payload: l})
}

// PublishStatusChanged broadcasts a status transition.
func (f *Feed) PublishStatusChanged(l *Lead) {
	f.broadcast(&FeedEvent{Type: EventLeadStatusChanged, Payload: l})
}

func (f *Feed) broadcast(event *FeedEvent) {
	data, err := json.Marshal(event)
	if err != nil {
		return
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	for c := range f.conns {
		select {
		case c.send <- data:
		default:
			// Client too slow — skip
		}
	}
}

// ServeWS upgrades the request and pumps events until disconnect.
func (f *Feed) ServeWS(w http.ResponseWriter, r *http.Request) error {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return err
	}

	c := &feedConn{conn: conn, send: make(chan []byte, 64)}
	f.register(c)

	go f.writePump(c)
	f.readPump(c) // blocks until disconnect
	return nil
}

func (f *Feed) readPump(c *feedConn) {
	defer func() {
		f.unregister(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMsgSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	// The feed is one-way: inbound frames are drained and dropped
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (f *Feed) writePump(c *feedConn) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
