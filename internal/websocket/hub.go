package websocket

import (
	"encoding/json"
	"sync"

	"github.com/peaceseal/peaceseal-backend/internal/app/service"
	"github.com/peaceseal/peaceseal-backend/pkg/logger"
)

// Client is one connected live feed subscriber
type Client struct {
	Hub  *Hub
	Conn *Conn
	Send chan []byte
}

// Hub manages live feed connections and fans donation events out to them
type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte
	mu         sync.RWMutex
	log        *logger.Logger
}

func NewHub(log *logger.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client, 256),
		unregister: make(chan *Client, 256),
		broadcast:  make(chan []byte, 1024),
		log:        log,
	}
}

// Run processes register, unregister and broadcast events. Call in a goroutine.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			count := len(h.clients)
			h.mu.Unlock()
			h.log.Debug("Live feed client connected", map[string]interface{}{
				"clients": count,
			})

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.Send)
			}
			count := len(h.clients)
			h.mu.Unlock()
			h.log.Debug("Live feed client disconnected", map[string]interface{}{
				"clients": count,
			})

		case message := <-h.broadcast:
			h.mu.RLock()
			for client := range h.clients {
				select {
				case client.Send <- message:
				default:
					// Slow consumer; drop the message rather than block the hub
				}
			}
			h.mu.RUnlock()
		}
	}
}

// BroadcastDonation pushes a donation event to every connected client
func (h *Hub) BroadcastDonation(event service.DonationEvent) {
	payload, err := json.Marshal(event)
	if err != nil {
		h.log.Error("Failed to marshal donation event", err, map[string]interface{}{
			"campaign_id": event.CampaignID,
		})
		return
	}

	select {
	case h.broadcast <- payload:
	default:
		h.log.Warn("Donation broadcast queue full, dropping event", map[string]interface{}{
			"campaign_id": event.CampaignID,
		})
	}
}

// Register adds a client to the hub
func (h *Hub) Register(client *Client) {
	h.register <- client
}
