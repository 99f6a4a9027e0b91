package api

import (
	"net/http"

	"github.com/gorilla/websocket"
)

// Event is pushed to websocket clients when something changes
type Event struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// Hub manages websocket connections
type Hub struct {
	clients    map[*websocket.Conn]bool
	broadcast  chan Event
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
}

// NewHub creates a new websocket hub
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*websocket.Conn]bool),
		broadcast:  make(chan Event),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
	}
}

// Run starts the hub loop
func (h *Hub) Run() {
	for {
		select {
		case conn := <-h.register:
			h.clients[conn] = true

		case conn := <-h.unregister:
			if _, ok := h.clients[conn]; ok {
				delete(h.clients, conn)
				conn.Close()
			}

		case event := <-h.broadcast:
			for conn := range h.clients {
				if err := conn.WriteJSON(event); err != nil {
					delete(h.clients, conn)
					conn.Close()
				}
			}
		}
	}
}

// Broadcast queues an event for all connected clients
func (h *Hub) Broadcast(event Event) {
	h.broadcast <- event
}

var upgrader = websocket.Upgrader{
	// Local dashboard, all origins accepted
	CheckOrigin: func(r *http.Request) bool { return true },
}

func (s *Server) wsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		s.hub.register <- conn

		// Drain client messages so pings are answered and closes noticed
		go func() {
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					s.hub.unregister <- conn
					return
				}
			}
		}()
	}
}
