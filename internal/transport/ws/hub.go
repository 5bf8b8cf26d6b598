package ws

import (
	"encoding/json"
	"log"
	"sync"

	"framequiz/internal/model"
)

// MessageType defines the type of WebSocket message
type MessageType string

const (
	MsgLeaderboardUpdate MessageType = "leaderboard_update"
	MsgError             MessageType = "error"
)

// Message is the WebSocket envelope format
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Hub fans leaderboard updates out to connected viewers.
type Hub struct {
	viewers map[string]*Connection // viewerID -> conn

	mu sync.RWMutex

	register   chan *Connection
	unregister chan *Connection
	broadcast  chan *Message
}

// Connection represents one leaderboard viewer.
type Connection struct {
	ViewerID string
	Send     chan []byte
	Hub      *Hub
}

// NewHub creates the hub and starts its run loop.
func NewHub() *Hub {
	h := &Hub{
		viewers:    make(map[string]*Connection),
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
			h.viewers[conn.ViewerID] = conn
			log.Printf("Viewer %s connected to leaderboard feed", conn.ViewerID)
			h.mu.Unlock()

		case conn := <-h.unregister:
			h.mu.Lock()
			if existing, ok := h.viewers[conn.ViewerID]; ok && existing == conn {
				delete(h.viewers, conn.ViewerID)
				close(conn.Send)
				log.Printf("Viewer %s disconnected from leaderboard feed", conn.ViewerID)
			}
			h.mu.Unlock()

		case msg := <-h.broadcast:
			h.mu.RLock()
			data, _ := json.Marshal(msg)
			for _, conn := range h.viewers {
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

// Register adds a connection
func (h *Hub) Register(conn *Connection) {
	h.register <- conn
}

// Unregister removes a connection
func (h *Hub) Unregister(conn *Connection) {
	h.unregister <- conn
}

// BroadcastLeaderboard pushes the latest standings to every viewer
// (implements service.Broadcaster).
func (h *Hub) BroadcastLeaderboard(entries []model.LeaderboardEntry) {
	payload, _ := json.Marshal(map[string]interface{}{"leaderboard": entries})
	h.broadcast <- &Message{
		Type:    MsgLeaderboardUpdate,
		Payload: payload,
	}
}
