package ws

import (
	"encoding/json"
	"log"
	"sync"

	"storepulse/internal/model"
)

// MessageType defines the type of WebSocket message
type MessageType string

const (
	MsgDatasetUpdated MessageType = "dataset_updated"
)

// Message is the WebSocket envelope format
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Hub manages dashboard WebSocket connections. Every connected client
// receives dataset_updated events when a new snapshot is published.
type Hub struct {
	conns map[*Connection]bool

	mu sync.RWMutex

	register   chan *Connection
	unregister chan *Connection
	broadcast  chan *Message
}

// Connection represents a dashboard WebSocket connection
type Connection struct {
	Send chan []byte
	Hub  *Hub
}

// NewHub creates a new WebSocket hub
func NewHub() *Hub {
	h := &Hub{
		conns:      make(map[*Connection]bool),
		register:   make(chan *Connection),
		unregister: make(chan *Connection),
		broadcast:  make(chan *Message, 256),
	}
	go h.run()
	return h
}

func (h *Hub) run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			h.conns[conn] = true
			h.mu.Unlock()
			log.Printf("Dashboard client connected (%d active)", h.clientCount())

		case conn := <-h.unregister:
			h.mu.Lock()
			if h.conns[conn] {
				delete(h.conns, conn)
				close(conn.Send)
			}
			h.mu.Unlock()
			log.Printf("Dashboard client disconnected (%d active)", h.clientCount())

		case msg := <-h.broadcast:
			data, _ := json.Marshal(msg)
			h.mu.RLock()
			for conn := range h.conns {
				select {
				case conn.Send <- data:
				default:
					// Drop message if buffer full
				}
			}
			h.mu.RUnlock()
		}
	}
}

func (h *Hub) clientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.conns)
}

// Register adds a connection
func (h *Hub) Register(conn *Connection) {
	h.register <- conn
}

// Unregister removes a connection
func (h *Hub) Unregister(conn *Connection) {
	h.unregister <- conn
}

// BroadcastDatasetUpdated notifies every dashboard client of a new
// published snapshot (implements service.Broadcaster).
func (h *Hub) BroadcastDatasetUpdated(ds *model.SurveyDataset) {
	data, _ := json.Marshal(ds)
	h.broadcast <- &Message{
		Type:    MsgDatasetUpdated,
		Payload: data,
	}
}
