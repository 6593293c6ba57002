package chat

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/SmoothBrain-Tech-X/badbuddy-go/structs"
	"github.com/gorilla/websocket"
)

// Connect opens the session socket and keeps it open: read failures close the
// connection and schedule a reconnect per the Retry policy. One socket per
// active session view; call Close on teardown or the connection leaks across
// navigations.
func (c *Client) Connect() {
	go c.dial()
}

func (c *Client) dial() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.mu.Unlock()

	header := http.Header{}
	if c.api.Tokens != nil {
		if token, err := c.api.Tokens.Token(); err == nil && token != "" {
			header.Set("Authorization", "Bearer "+token)
		}
	}

	conn, _, err := websocket.DefaultDialer.Dial(c.wsBase+"/"+c.sessionID, header)
	if err != nil {
		log.Printf("chat %s: dial failed: %v", c.sessionID, err)
		c.mu.Lock()
		c.scheduleReconnect()
		c.mu.Unlock()
		return
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		conn.Close()
		return
	}
	c.conn = conn
	c.connected = true
	c.attempts = 0
	if c.reconnect != nil {
		c.reconnect.stop()
		c.reconnect = nil
	}
	onConn := c.OnConnection
	c.mu.Unlock()

	if onConn != nil {
		onConn(true)
	}
	c.readLoop(conn)
}

func (c *Client) readLoop(conn *websocket.Conn) {
	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			break
		}
		c.handleFrame(data)
	}
	conn.Close()

	c.mu.Lock()
	if c.conn == conn {
		c.conn = nil
	}
	wasConnected := c.connected
	c.connected = false
	if !c.closed {
		c.scheduleReconnect()
	}
	onConn := c.OnConnection
	closed := c.closed
	c.mu.Unlock()

	if wasConnected && !closed && onConn != nil {
		onConn(false)
	}
}

func (c *Client) handleFrame(data []byte) {
	var frame socketFrame
	if err := json.Unmarshal(data, &frame); err != nil || frame.Message == nil {
		// Not a chat-message payload; ignore.
		return
	}
	msg := normalize(*frame.Message, c.selfID)

	c.mu.Lock()
	c.messages = Merge(c.messages, []structs.ChatMessage{msg})
	onMsg := c.OnMessage
	c.mu.Unlock()

	if onMsg != nil {
		onMsg(msg)
	}
}

// caller must hold c.mu
func (c *Client) scheduleReconnect() {
	if c.closed || c.reconnect != nil {
		return
	}
	c.attempts++
	delay, ok := c.Retry.NextDelay(c.attempts)
	if !ok {
		log.Printf("chat %s: giving up after %d reconnect attempts", c.sessionID, c.attempts-1)
		return
	}
	t := time.AfterFunc(delay, func() {
		c.mu.Lock()
		c.reconnect = nil
		closed := c.closed
		c.mu.Unlock()
		if !closed {
			c.dial()
		}
	})
	c.reconnect = &timerHandle{stop: t.Stop}
}

// Close tears the client down: the reconnect timer is cancelled and the
// socket closed. No reconnect may fire afterwards.
func (c *Client) Close() {
	c.mu.Lock()
	c.closed = true
	c.connected = false
	if c.reconnect != nil {
		c.reconnect.stop()
		c.reconnect = nil
	}
	conn := c.conn
	c.conn = nil
	c.mu.Unlock()

	if conn != nil {
		conn.Close()
	}
}
