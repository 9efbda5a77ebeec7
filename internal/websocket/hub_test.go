package websocket

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"industrial-site-be/internal/pkg/logger"
	"industrial-site-be/pkg/events"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startHub(t *testing.T) *Hub {
	t.Helper()
	hub := NewHub(nil, logger.NewNopLogger())
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go hub.Run(ctx)
	return hub
}

func registerClient(t *testing.T, hub *Hub, userID uuid.UUID) *Client {
	t.Helper()
	client := &Client{Hub: hub, UserID: userID, Send: make(chan []byte, 4)}
	require.True(t, hub.add(client))
	require.Eventually(t, func() bool {
		hub.mu.RLock()
		defer hub.mu.RUnlock()
		for _, c := range hub.clients[userID] {
			if c == client {
				return true
			}
		}
		return false
	}, time.Second, 5*time.Millisecond)
	return client
}

func receive(t *testing.T, c *Client) map[string]any {
	t.Helper()
	select {
	case data := <-c.Send:
		var m map[string]any
		require.NoError(t, json.Unmarshal(data, &m))
		return m
	case <-time.After(time.Second):
		t.Fatal("no message received")
		return nil
	}
}

func TestHubBroadcastsContentChanges(t *testing.T) {
	hub := startHub(t)
	a := registerClient(t, hub, uuid.New())
	b := registerClient(t, hub, uuid.New())

	hub.NotifyContentChanged(events.NewContentChanged("news", uuid.NewString(), "open-house", events.ActionUpdated))

	for _, c := range []*Client{a, b} {
		m := receive(t, c)
		assert.Equal(t, "content_changed", m["type"])
		data := m["data"].(map[string]any)
		assert.Equal(t, "news", data["kind"])
		assert.Equal(t, "open-house", data["slug"])
	}
}

func TestHubSendTargetsOneUser(t *testing.T) {
	hub := startHub(t)
	target := uuid.New()
	a := registerClient(t, hub, target)
	other := registerClient(t, hub, uuid.New())

	hub.Send(target, "notice", map[string]string{"text": "saved"})

	m := receive(t, a)
	assert.Equal(t, "notice", m["type"])
	select {
	case <-other.Send:
		t.Fatal("message delivered to the wrong user")
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHubUnregisterClosesSend(t *testing.T) {
	hub := startHub(t)
	c := registerClient(t, hub, uuid.New())
	assert.Equal(t, 1, hub.ClientCount())

	hub.remove(c)
	require.Eventually(t, func() bool { return hub.ClientCount() == 0 }, time.Second, 5*time.Millisecond)
	_, open := <-c.Send
	assert.False(t, open)
}

func TestHubStopReleasesClients(t *testing.T) {
	hub := NewHub(nil, logger.NewNopLogger())
	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan struct{})
	go func() {
		hub.Run(ctx)
		close(stopped)
	}()
	c := registerClient(t, hub, uuid.New())

	cancel()
	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatal("hub did not stop")
	}

	_, open := <-c.Send
	assert.False(t, open)
	assert.Equal(t, 0, hub.ClientCount())

	// A connection that closes after shutdown must not block on the hub.
	removed := make(chan struct{})
	go func() {
		hub.remove(c)
		close(removed)
	}()
	select {
	case <-removed:
	case <-time.After(time.Second):
		t.Fatal("remove blocked after shutdown")
	}

	assert.False(t, hub.add(&Client{Hub: hub, UserID: uuid.New(), Send: make(chan []byte, 1)}))
}

func TestHubNotifiesRevokedUser(t *testing.T) {
	hub := startHub(t)
	revoked := uuid.New()
	a := registerClient(t, hub, revoked)
	other := registerClient(t, hub, uuid.New())

	hub.NotifyAccessRevoked(revoked)

	m := receive(t, a)
	assert.Equal(t, "access_revoked", m["type"])
	assert.Equal(t, "/login?error=unauthorized", m["data"].(map[string]any)["redirect"])
	select {
	case <-other.Send:
		t.Fatal("notice delivered to another user")
	case <-time.After(50 * time.Millisecond):
	}
}
