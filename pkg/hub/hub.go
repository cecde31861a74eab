// Package hub provides a thread-safe websocket broadcast hub using the
// channel-based fan-out pattern. The dashboard uses one hub per stream.
package hub

import (
	"encoding/json"

	"github.com/armlabs/go-d1/internal/log"
)

// Hub maintains the set of active clients and broadcasts JSON messages
// to them.
type Hub struct {
	// Name for logging
	name string

	// Registered clients
	clients map[*Client]bool

	// Inbound messages to broadcast
	broadcast chan []byte

	// Register requests from clients
	register chan *Client

	// Unregister requests from clients
	unregister chan *Client
}

// New creates a new Hub.
func New(name string) *Hub {
	return &Hub{
		name:       name,
		clients:    make(map[*Client]bool),
		broadcast:  make(chan []byte, 64),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

// Run starts the hub's main loop. Call in a goroutine.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.clients[client] = true
			log.Debug("ws client connected", "hub", h.name, "clients", len(h.clients))

		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			log.Debug("ws client disconnected", "hub", h.name, "clients", len(h.clients))

		case message := <-h.broadcast:
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					// Client's buffer is full - drop the slow client.
					close(client.send)
					delete(h.clients, client)
					log.Warn("dropped slow ws client", "hub", h.name)
				}
			}
		}
	}
}

// Broadcast sends pre-encoded JSON to all connected clients.
// Non-blocking: the message is dropped if the broadcast queue is full.
func (h *Hub) Broadcast(data []byte) {
	select {
	case h.broadcast <- data:
	default:
		log.Warn("broadcast queue full, dropping message", "hub", h.name)
	}
}

// BroadcastJSON encodes v and broadcasts it to all connected clients.
func (h *Hub) BroadcastJSON(v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		log.Warn("broadcast marshal failed", "hub", h.name, "error", err)
		return
	}
	h.Broadcast(data)
}
