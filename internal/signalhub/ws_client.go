package signalhub

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"pixelmeet/backend/internal/models"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10

	// SDP offers run to a few KB; leave generous headroom.
	maxMessageSize = 32 * 1024

	sendBufferSize = 256
)

// WebSocketClient implements Client over a gorilla/websocket connection.
type WebSocketClient struct {
	handle string
	roomID string
	role   models.Role

	conn *websocket.Conn
	hub  *Hub
	send chan models.Signal
}

// NewWebSocketClient wraps an upgraded connection and issues its handle.
func NewWebSocketClient(hub *Hub, conn *websocket.Conn) *WebSocketClient {
	return &WebSocketClient{
		handle: uuid.New().String(),
		conn:   conn,
		hub:    hub,
		send:   make(chan models.Signal, sendBufferSize),
	}
}

func (c *WebSocketClient) GetHandle() string { return c.handle }
func (c *WebSocketClient) GetRoomID() string { return c.roomID }
func (c *WebSocketClient) GetRole() models.Role {
	return c.role
}

func (c *WebSocketClient) SetRoom(roomID string, role models.Role) {
	c.roomID = roomID
	c.role = role
}

func (c *WebSocketClient) ClearRoom() {
	c.roomID = ""
	c.role = models.RoleNone
}

func (c *WebSocketClient) GetSendChannel() chan<- models.Signal { return c.send }

// Run starts the read and write pumps.
func (c *WebSocketClient) Run() {
	go c.writePump()
	go c.readPump()
}

// Close closes the send channel, which stops the write pump. Only the hub
// calls this, during unregistration.
func (c *WebSocketClient) Close() {
	close(c.send)
}

// readPump reads envelopes off the wire and hands them to the hub. A
// malformed envelope earns the sender an error reply and the connection
// stays open; a transport error ends the connection and unregisters it.
func (c *WebSocketClient) readPump() {
	defer func() {
		c.hub.UnregisterCh <- c
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logrus.WithField("handle", c.handle).Warnf("read error: %v", err)
			}
			return
		}

		var sig models.Signal
		if err := json.Unmarshal(raw, &sig); err != nil {
			c.replyError("invalid message format")
			continue
		}

		// The server decides who the sender is, not the envelope.
		sig.SenderID = c.handle
		c.hub.InboundCh <- sig
	}
}

// replyError enqueues an error envelope for this connection without going
// through the hub. Best-effort, like any other delivery.
func (c *WebSocketClient) replyError(reason string) {
	select {
	case c.send <- models.ErrorSignal(reason):
	default:
	}
}

// writePump drains the send channel onto the wire and keeps the connection
// alive with pings.
func (c *WebSocketClient) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case sig, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// The hub closed the channel.
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteJSON(sig); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
