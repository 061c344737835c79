package ws

import (
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
	sendBuffer = 16
)

// Client is one websocket connection. Its ID doubles as the player identity
// inside rooms. Writes go through the send channel so the write pump is the
// only goroutine touching the connection's write side.
type Client struct {
	ID   string
	hub  *Hub
	conn *websocket.Conn
	send chan []byte

	// roomCode is the room this connection belongs to, "" while in no room.
	// Guarded by hub.mu.
	roomCode string
}

// readPump consumes intents until the connection drops, then unregisters.
func (c *Client) readPump() {
	defer func() {
		c.hub.unregister(c)
		_ = c.conn.Close()
	}()

	_ = c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		var env Envelope
		if err := c.conn.ReadJSON(&env); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.hub.log.Debug("websocket read failed", zap.String("conn", c.ID), zap.Error(err))
			}
			return
		}
		c.hub.dispatch(c, env)
	}
}

// writePump drains the send channel and keeps the connection alive with
// pings. Closing the send channel terminates it.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// enqueue hands a prepared frame to the write pump. A client whose buffer is
// full is dropped rather than allowed to stall the room.
func (c *Client) enqueue(msg []byte) {
	select {
	case c.send <- msg:
	default:
		c.hub.log.Warn("client send buffer full, dropping connection", zap.String("conn", c.ID))
		_ = c.conn.Close()
	}
}
