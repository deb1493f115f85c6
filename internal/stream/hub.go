package stream

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/FarmCalc_Go/internal/metrics"
)

// Message is the JSON envelope written to websocket clients
type Message struct {
	ID        string      `json:"id"`
	Type      string      `json:"type"`
	Profile   string      `json:"profile"`
	Timestamp int64       `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// Client is one connected websocket, bound to a single profile
type Client struct {
	ID      string
	Profile string
	send    chan Message
}

// Messages is the outbound queue of the client. It is closed when the client is removed.
func (c *Client) Messages() <-chan Message {
	return c.send
}

// Hub tracks connected clients and routes messages to the clients of a profile
type Hub struct {
	clients  map[string]*Client
	stopped  bool
	deliver  chan Message
	mu       sync.RWMutex
	shutdown chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

// NewHub creates a new Hub
func NewHub() *Hub {
	return &Hub{
		clients:  make(map[string]*Client),
		deliver:  make(chan Message, DeliverBufferSize),
		shutdown: make(chan struct{}),
	}
}

// Start starts the hub's delivery loop
func (h *Hub) Start() {
	h.wg.Add(1)
	go h.run()
}

// Stop shuts the hub down and closes every client queue
func (h *Hub) Stop() {
	h.stopOnce.Do(func() {
		close(h.shutdown)
		h.wg.Wait()

		h.mu.Lock()
		h.stopped = true
		for id, client := range h.clients {
			close(client.send)
			delete(h.clients, id)
			metrics.StreamClients.Dec()
		}
		h.mu.Unlock()
	})
}

func (h *Hub) run() {
	defer h.wg.Done()

	for {
		select {
		case msg := <-h.deliver:
			h.mu.RLock()
			for _, client := range h.clients {
				if client.Profile != msg.Profile {
					continue
				}
				select {
				case client.send <- msg:
				default:
					slog.Warn(LogMsgMessageDropped, "client_id", client.ID, "profile", client.Profile)
				}
			}
			h.mu.RUnlock()

		case <-h.shutdown:
			return
		}
	}
}

// Register adds a client for profile. After Stop the returned client is already closed.
func (h *Hub) Register(profile string) *Client {
	client := &Client{
		ID:      uuid.NewString(),
		Profile: profile,
		send:    make(chan Message, ClientMessageBuffer),
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.stopped {
		close(client.send)
		return client
	}
	h.clients[client.ID] = client
	metrics.StreamClients.Inc()
	return client
}

// Unregister removes a client from the hub and closes its queue
func (h *Hub) Unregister(clientID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if client, ok := h.clients[clientID]; ok {
		close(client.send)
		delete(h.clients, clientID)
		metrics.StreamClients.Dec()
	}
}

// SendToProfile queues a message for every client of profile
func (h *Hub) SendToProfile(profile, msgType string, payload interface{}) {
	msg := NewMessage(profile, msgType, payload)
	select {
	case h.deliver <- msg:
	default:
		slog.Warn(LogMsgDeliverDropped, "profile", profile, "type", msgType)
	}
}

// HasProfile reports whether any client of profile is connected
func (h *Hub) HasProfile(profile string) bool {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, c := range h.clients {
		if c.Profile == profile {
			return true
		}
	}
	return false
}

// ClientCount returns the number of connected clients
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// NewMessage builds an envelope with a fresh ID
func NewMessage(profile, msgType string, payload interface{}) Message {
	return Message{
		ID:        uuid.NewString(),
		Type:      msgType,
		Profile:   profile,
		Timestamp: time.Now().Unix(),
		Payload:   payload,
	}
}
