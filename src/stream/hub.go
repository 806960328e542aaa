package stream

import (
	"context"
	"encoding/json"

	"github.com/sirupsen/logrus"
)

// Hub fans price ticks out to connected WebSocket clients. Clients whose
// send buffer is full are dropped; a reconnect is just a new subscription,
// so no per-client state needs to survive.
type Hub struct {
	clients    map[*Client]bool
	broadcast  chan []byte
	register   chan *Client
	unregister chan *Client
	logger     *logrus.Logger
}

func NewHub(logger *logrus.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan []byte, 64),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		logger:     logger,
	}
}

// Run owns the client set. It exits when ctx is cancelled, closing all
// client send channels.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			for client := range h.clients {
				close(client.send)
				delete(h.clients, client)
			}
			return
		case client := <-h.register:
			h.clients[client] = true
			h.logger.WithField("clientId", client.id).Debug("stream client connected")
		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
				h.logger.WithField("clientId", client.id).Debug("stream client disconnected")
			}
		case message := <-h.broadcast:
			for client := range h.clients {
				select {
				case client.send <- message:
				default:
					delete(h.clients, client)
					close(client.send)
					h.logger.WithField("clientId", client.id).Warn("dropping slow stream client")
				}
			}
		}
	}
}

// Broadcast serializes v and queues it for all clients. Ticks are dropped
// when the broadcast queue is full; the next tick supersedes them anyway.
func (h *Hub) Broadcast(v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		h.logger.WithError(err).Error("failed to serialize stream message")
		return
	}
	h.BroadcastRaw(data)
}

// BroadcastRaw queues an already-serialized message, e.g. one forwarded
// straight from the worker's Redis channel.
func (h *Hub) BroadcastRaw(data []byte) {
	select {
	case h.broadcast <- data:
	default:
	}
}
