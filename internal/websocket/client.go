package websocket

import (
	"time"

	"industrial-site-be/internal/pkg/logger"
	"industrial-site-be/pkg/richtext"

	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
	// Load commands carry whole documents.
	maxMessageSize = 1 << 20
)

// Client is a middleman between the websocket connection and the hub. Each client owns
// one editor session.
type Client struct {
	Hub *Hub

	Conn *websocket.Conn

	UserID uuid.UUID
	Email  string

	// Buffered channel of hub messages, closed by the hub on unregister.
	Send chan []byte

	// Editor replies. Never closed; the read loop is its only writer.
	replies chan []byte

	session *EditorSession
	logger  logger.ILogger
}

// ServeWs runs an editor connection until the peer goes away.
func ServeWs(hub *Hub, c *websocket.Conn, userID uuid.UUID, email string, render func(richtext.Document) string, log logger.ILogger) {
	client := &Client{
		Hub:     hub,
		Conn:    c,
		UserID:  userID,
		Email:   email,
		Send:    make(chan []byte, 256),
		replies: make(chan []byte, 256),
		logger:  log,
	}
	client.session = NewEditorSession(render, client.enqueue)
	if !client.Hub.add(client) {
		c.Close()
		return
	}

	go client.writePump()
	client.readPump()
}

func (c *Client) enqueue(msg []byte) {
	select {
	case c.replies <- msg:
	default:
		c.logger.Warn("EDITOR", "Outbound buffer full, dropping message", map[string]interface{}{"user_id": c.UserID})
	}
}

// readPump feeds client commands into the editor session.
func (c *Client) readPump() {
	defer func() {
		c.session.Close()
		c.Hub.remove(c)
		c.Conn.Close()
	}()
	c.Conn.SetReadLimit(maxMessageSize)
	c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error {
		c.Conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, message, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.logger.Warn("EDITOR", "Unexpected close", map[string]interface{}{"user_id": c.UserID, "error": err.Error()})
			}
			break
		}
		c.session.Handle(message)
	}
}

// writePump pumps messages from the hub and the session to the websocket connection.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.Send:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// The hub closed the channel.
				c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			// One message per frame: clients parse each frame as a single JSON value.
			if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case message := <-c.replies:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
