package wire

import (
	"errors"
	"sync"

	"github.com/gorilla/websocket"
)

// ErrNotBinary is returned when a peer sends a non-binary message.
var ErrNotBinary = errors.New("wire: expected binary websocket message")

// Conn carries encoded mutation frames over a websocket. Writes are
// serialised; gorilla permits one concurrent writer only.
type Conn struct {
	ws      *websocket.Conn
	writeMu sync.Mutex
}

// NewConn wraps an established websocket connection.
func NewConn(ws *websocket.Conn) *Conn {
	return &Conn{ws: ws}
}

// WriteFrame sends one encoded frame as a binary message.
func (c *Conn) WriteFrame(frame []byte) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.ws.WriteMessage(websocket.BinaryMessage, frame)
}

// ReadFrame blocks until the peer sends a frame.
func (c *Conn) ReadFrame() ([]byte, error) {
	for {
		msgType, data, err := c.ws.ReadMessage()
		if err != nil {
			return nil, err
		}
		switch msgType {
		case websocket.BinaryMessage:
			return data, nil
		case websocket.PingMessage, websocket.PongMessage:
			continue
		default:
			return nil, ErrNotBinary
		}
	}
}

// Close closes the underlying websocket.
func (c *Conn) Close() error {
	return c.ws.Close()
}
