package web

import (
	"github.com/gorilla/websocket"
)

// Client is a websocket connection attached to a Hub.
type Client struct {
	hub        *Hub
	conn       *websocket.Conn
	Send       chan []byte
	ID         uint8
	RemoteAddr string
}

// ReadPump reads control messages from the client until the
// connection closes.
func (c *Client) ReadPump() {
	// deferred function to handle unregistering client
	// and closing connection
	defer func() {
		select {
		case c.hub.unregister <- c:
		case <-c.hub.done:
		}
		c.conn.Close()
	}()

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			return // connection closed
		}
		if len(message) == 0 {
			continue
		}

		switch message[0] {
		case Closing: // websocket client request close
			return
		case KeepAlive:
		default:
			c.hub.log.Debugf("web: client %d sent unknown message %d", c.ID, message[0])
		}
	}
}

// WritePump writes queued messages to the client until the hub closes
// the Send channel.
func (c *Client) WritePump() {
	defer c.conn.Close()

	for message := range c.Send {
		// try to write message to client
		if err := c.conn.WriteMessage(websocket.BinaryMessage, message); err != nil {
			return
		}
	}

	// connection hub closed the connection
	c.conn.WriteMessage(websocket.CloseMessage, []byte{})
}
