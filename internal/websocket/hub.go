package websocket

import (
	"context"
	"encoding/json"
	"sync"

	"industrial-site-be/internal/pkg/logger"
	"industrial-site-be/pkg/events"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ClusterChannel carries hub broadcasts between instances.
const ClusterChannel = "cluster_events"

type clusterEnvelope struct {
	Origin       string          `json:"origin"`
	TargetUserID string          `json:"target_user_id"`
	Message      json.RawMessage `json:"message"`
}

// Hub tracks connected admin clients and fans messages out to them.
type Hub struct {
	// UserID -> connections (several tabs per admin)
	clients map[uuid.UUID][]*Client

	register   chan *Client
	unregister chan *Client
	// Closed when Run returns.
	done chan struct{}

	mu sync.RWMutex

	// Redis connection for cross-instance fan-out, nil when running alone
	rdb *redis.Client

	instanceID string
	logger     logger.ILogger
}

func NewHub(rdb *redis.Client, log logger.ILogger) *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		done:       make(chan struct{}),
		clients:    make(map[uuid.UUID][]*Client),
		rdb:        rdb,
		instanceID: uuid.NewString(),
		logger:     log,
	}
}

// Run serves registrations until ctx is done. On return every client's Send channel is closed.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	if h.rdb != nil {
		go h.subscribeToRedis(ctx)
	}

	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			return

		case client := <-h.register:
			h.mu.Lock()
			h.clients[client.UserID] = append(h.clients[client.UserID], client)
			h.mu.Unlock()
			h.logger.Info("HUB", "Client registered", map[string]interface{}{"user_id": client.UserID})

		case client := <-h.unregister:
			h.mu.Lock()
			if clients, ok := h.clients[client.UserID]; ok {
				for i, c := range clients {
					if c == client {
						h.clients[client.UserID] = append(clients[:i], clients[i+1:]...)
						close(client.Send)
						break
					}
				}
				if len(h.clients[client.UserID]) == 0 {
					delete(h.clients, client.UserID)
				}
			}
			h.mu.Unlock()
			h.logger.Info("HUB", "Client unregistered", map[string]interface{}{"user_id": client.UserID})
		}
	}
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for userID, clients := range h.clients {
		for _, client := range clients {
			close(client.Send)
		}
		delete(h.clients, userID)
	}
}

// add registers client. It reports false once the hub has stopped.
func (h *Hub) add(client *Client) bool {
	select {
	case h.register <- client:
		return true
	case <-h.done:
		return false
	}
}

// remove unregisters client, or returns at once when the hub has stopped.
func (h *Hub) remove(client *Client) {
	select {
	case h.unregister <- client:
	case <-h.done:
	}
}

// ClientCount reports the number of live connections.
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	n := 0
	for _, clients := range h.clients {
		n += len(clients)
	}
	return n
}

// deliver must be called with h.mu held for reading. A client whose buffer is full is dropped.
func (h *Hub) deliver(client *Client, data []byte) {
	select {
	case client.Send <- data:
	default:
		h.logger.Warn("HUB", "Client send buffer full, dropping client", map[string]interface{}{"user_id": client.UserID})
		go h.remove(client)
	}
}

func (h *Hub) deliverLocal(target string, data []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if target == "*" {
		for _, clients := range h.clients {
			for _, client := range clients {
				h.deliver(client, data)
			}
		}
		return
	}

	uid, err := uuid.Parse(target)
	if err != nil {
		return
	}
	for _, client := range h.clients[uid] {
		h.deliver(client, data)
	}
}

func (h *Hub) publish(target string, data []byte) {
	h.deliverLocal(target, data)

	if h.rdb == nil {
		return
	}
	payload, _ := json.Marshal(clusterEnvelope{
		Origin:       h.instanceID,
		TargetUserID: target,
		Message:      data,
	})
	if err := h.rdb.Publish(context.Background(), ClusterChannel, payload).Err(); err != nil {
		h.logger.Warn("HUB", "Failed to publish cluster event", map[string]interface{}{"error": err.Error()})
	}
}

// Broadcast sends a typed message to every connected admin on every instance.
func (h *Hub) Broadcast(messageType string, data interface{}) {
	msg, err := json.Marshal(map[string]interface{}{
		"type": messageType,
		"data": data,
	})
	if err != nil {
		return
	}
	h.publish("*", msg)
}

// Send delivers a typed message to one admin's connections on every instance.
func (h *Hub) Send(userID uuid.UUID, messageType string, data interface{}) {
	msg, err := json.Marshal(map[string]interface{}{
		"type": messageType,
		"data": data,
	})
	if err != nil {
		return
	}
	h.publish(userID.String(), msg)
}

// NotifyContentChanged lets connected admins refresh stale lists and editors.
func (h *Hub) NotifyContentChanged(evt events.ContentChanged) {
	h.Broadcast("content_changed", evt)
}

// NotifyAccessRevoked tells a user's open editors that their session no longer reaches the admin area.
func (h *Hub) NotifyAccessRevoked(userID uuid.UUID) {
	h.Send(userID, "access_revoked", map[string]string{"redirect": "/login?error=unauthorized"})
}

func (h *Hub) subscribeToRedis(ctx context.Context) {
	pubsub := h.rdb.Subscribe(ctx, ClusterChannel)
	defer pubsub.Close()

	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			var envelope clusterEnvelope
			if err := json.Unmarshal([]byte(msg.Payload), &envelope); err != nil {
				h.logger.Warn("HUB", "Invalid cluster event", map[string]interface{}{"error": err.Error()})
				continue
			}
			// Our own messages were already delivered locally.
			if envelope.Origin == h.instanceID {
				continue
			}
			h.deliverLocal(envelope.TargetUserID, envelope.Message)
		}
	}
}
