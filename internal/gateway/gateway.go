package gateway

import (
	"fmt"
	"log"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"campus-crisis/internal/codec"
	"campus-crisis/internal/room"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	CheckOrigin: func(r *http.Request) bool {
		return true // TODO: Restrict in production
	},
}

// Connection represents a WebSocket client connection
type Connection struct {
	ID       string
	Conn     *websocket.Conn
	Send     chan []byte
	Gateway  *Gateway
	LastPing time.Time
}

// Gateway manages WebSocket connections and routes decoded client events
// into the room actor.
type Gateway struct {
	mu          sync.RWMutex
	connections map[string]*Connection
	nextConnID  uint64
	errSeq      uint64
	room        *room.Room
}

// New creates a new Gateway instance. The room is attached afterwards via
// SetRoom because the room's callbacks point back at the gateway.
func New() *Gateway {
	return &Gateway{
		connections: make(map[string]*Connection),
	}
}

func (g *Gateway) SetRoom(r *room.Room) {
	g.mu.Lock()
	g.room = r
	g.mu.Unlock()
}

// HandleWebSocket handles WebSocket upgrade and connection
func (g *Gateway) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[Gateway] Upgrade error: %v", err)
		return
	}

	g.mu.Lock()
	g.nextConnID++
	connID := fmt.Sprintf("conn_%d", g.nextConnID)
	c := &Connection{
		ID:       connID,
		Conn:     conn,
		Send:     make(chan []byte, 256),
		Gateway:  g,
		LastPing: time.Now(),
	}
	g.connections[connID] = c
	total := len(g.connections)
	g.mu.Unlock()

	log.Printf("[Gateway] Client connected: %s, total: %d", connID, total)

	go c.readPump()
	go c.writePump()
}

func (c *Connection) readPump() {
	defer func() {
		c.Gateway.removeConnection(c)
		c.Conn.Close()
	}()

	c.Conn.SetReadLimit(65536)
	c.Conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	c.Conn.SetPongHandler(func(string) error {
		c.Conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		c.LastPing = time.Now()
		return nil
	})

	for {
		messageType, message, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("[Gateway] Read error: %v", err)
			}
			break
		}

		if messageType == websocket.TextMessage {
			c.handleMessage(message)
		}
	}
}

func (c *Connection) handleMessage(data []byte) {
	env, err := codec.DecodeClient(data)
	if err != nil {
		log.Printf("[Gateway] Failed to decode: %v", err)
		c.sendError("invalid message format")
		return
	}

	rm := c.Gateway.Room()
	if rm == nil {
		c.sendError("server not ready")
		return
	}

	switch env.Type {
	case codec.EventJoin:
		req, err := codec.DecodeJoin(env)
		if err != nil {
			c.sendError("invalid join payload")
			return
		}
		// Join failures (full session) are reported by the room itself.
		_ = rm.SubmitEvent(room.Event{
			Type:        room.EventJoin,
			ConnID:      c.ID,
			PlayerID:    req.PlayerID,
			ResumeToken: req.ResumeToken,
		})
	case codec.EventPlayCard:
		req, err := codec.DecodePlayCard(env)
		if err != nil {
			c.sendError("invalid play_card payload")
			return
		}
		if err := rm.SubmitEvent(room.Event{
			Type:      room.EventPlayCard,
			ConnID:    c.ID,
			PlayerID:  req.PlayerID,
			CardIndex: req.CardIndex,
		}); err != nil {
			c.sendError(err.Error())
		}
	case codec.EventRestartGame:
		if err := rm.SubmitEvent(room.Event{
			Type:   room.EventRestart,
			ConnID: c.ID,
		}); err != nil {
			c.sendError(err.Error())
		}
	default:
		log.Printf("[Gateway] Unknown event type: %q", env.Type)
	}
}

// sendError emits a transport-level error frame. These are numbered from
// the gateway's own counter, a separate stream from the room's sequence.
func (c *Connection) sendError(msg string) {
	data, err := codec.EncodeError(atomic.AddUint64(&c.Gateway.errSeq, 1), msg)
	if err != nil {
		return
	}
	select {
	case c.Send <- data:
	default:
	}
}

func (c *Connection) writePump() {
	ticker := time.NewTicker(30 * time.Second)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if !ok {
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (g *Gateway) removeConnection(c *Connection) {
	g.mu.Lock()
	delete(g.connections, c.ID)
	total := len(g.connections)
	rm := g.room
	g.mu.Unlock()

	log.Printf("[Gateway] Client disconnected: %s, total: %d", c.ID, total)
	if rm != nil {
		_ = rm.SubmitEvent(room.Event{
			Type:   room.EventConnLost,
			ConnID: c.ID,
		})
	}
}

// Room returns the attached room (may be nil during startup).
func (g *Gateway) Room() *room.Room {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.room
}

// SendToConn delivers a frame to one connection, dropping it if the
// connection's buffer is full.
func (g *Gateway) SendToConn(connID string, data []byte) {
	g.mu.RLock()
	c := g.connections[connID]
	g.mu.RUnlock()

	if c != nil {
		select {
		case c.Send <- data:
		default:
			// Drop if buffer full
		}
	}
}

// Disconnect force-closes one connection. The close surfaces in the
// connection's readPump, which then reports the loss to the room.
func (g *Gateway) Disconnect(connID string) {
	g.mu.RLock()
	c := g.connections[connID]
	g.mu.RUnlock()

	if c != nil {
		_ = c.Conn.Close()
	}
}
