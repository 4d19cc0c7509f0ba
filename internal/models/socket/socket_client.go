package socket

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Conn is the subset of *websocket.Conn the desk session needs
type Conn interface {
	WriteJSON(v interface{}) error
	SetWriteDeadline(t time.Time) error
	WriteControl(messageType int, data []byte, deadline time.Time) error
	Close() error
}

// SocketClient binds one live connection to a desk member. Writes are
// serialized through the client mutex: the read loop and the fan-out
// goroutine both write to the same connection.
type SocketClient struct {
	mu     sync.Mutex
	Conn   Conn
	UserID uuid.UUID
}

func NewSocketClient(conn Conn, userID uuid.UUID) *SocketClient {
	return &SocketClient{
		Conn:   conn,
		UserID: userID,
	}
}

func (client *SocketClient) Send(event OutboundEvent, timeout time.Duration) error {
	client.mu.Lock()
	defer client.mu.Unlock()
	if err := client.Conn.SetWriteDeadline(time.Now().Add(timeout)); err != nil {
		return err
	}
	return client.Conn.WriteJSON(event)
}

// CloseWithCode sends a typed close frame so the client can tell the
// rejection kinds apart, then drops the connection.
func CloseWithCode(conn Conn, code int, reason string) {
	message := websocket.FormatCloseMessage(code, reason)
	_ = conn.WriteControl(websocket.CloseMessage, message, time.Now().Add(time.Second))
	_ = conn.Close()
}
