package ws

import (
	"fmt"
	"log"
	"net/http"

	"dineboard/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// Hub fans state-change events out to every connected dashboard.
type Hub struct {
	clients    map[*websocket.Conn]bool
	broadcast  chan services.Envelope
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*websocket.Conn]bool),
		broadcast:  make(chan services.Envelope, 256),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
	}
}

// Run owns the client set; all membership changes and writes go through
// this loop.
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

		case env := <-h.broadcast:
			for conn := range h.clients {
				if err := conn.WriteJSON(env); err != nil {
					log.Printf("ws write error: %v", err)
					conn.Close()
					delete(h.clients, conn)
				}
			}
		}
	}
}

// Publish hands the envelope to the broadcast loop. It never blocks the
// caller: when the buffer is full the event is dropped.
func (h *Hub) Publish(env services.Envelope) error {
	select {
	case h.broadcast <- env:
		return nil
	default:
		return fmt.Errorf("broadcast buffer full")
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Serve upgrades the request and keeps the connection registered until the
// client goes away. Dashboards only listen; inbound frames are discarded.
func (h *Hub) Serve(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade failed: %v", err)
		return
	}
	h.register <- conn

	go func() {
		defer func() { h.unregister <- conn }()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
