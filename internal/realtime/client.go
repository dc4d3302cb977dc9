package realtime

import (
	"log/slog"
	"sync"
	"time"

	"whisper/internal/errors"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

const (
	// writeWait bounds a single write to a peer.
	writeWait = 10 * time.Second

	// pongWait is how long a connection may stay silent before it is
	// considered dead. Abrupt disconnects without a close handshake are
	// reaped by this deadline, so no orphaned "online" entry survives.
	pongWait = 60 * time.Second

	// pingPeriod must be shorter than pongWait.
	pingPeriod = (pongWait * 9) / 10
)

// Push failure conditions. Both are contained by callers; neither is ever
// surfaced to the sending user.
var (
	ErrEndpointClosed = errors.New("endpoint closed")
	ErrSendBufferFull = errors.New("endpoint send buffer full")
)

// Client is a websocket-backed Endpoint. It owns the connection for its
// lifetime: all writes go through the write pump, all reads through the read
// pump, and the registry is released when either pump dies.
type Client struct {
	id     uuid.UUID
	userID uuid.UUID
	conn   *websocket.Conn
	send   chan Event
	done   chan struct{}
	once   sync.Once
	logger *slog.Logger
}

// NewClient wraps an upgraded websocket connection for the given identity.
func NewClient(conn *websocket.Conn, userID uuid.UUID, buffer int, logger *slog.Logger) *Client {
	return &Client{
		id:     uuid.New(),
		userID: userID,
		conn:   conn,
		send:   make(chan Event, buffer),
		done:   make(chan struct{}),
		logger: logger,
	}
}

// ID returns the connection id, distinct from the user identity.
func (c *Client) ID() uuid.UUID {
	return c.id
}

// UserID returns the authenticated identity bound to this connection.
func (c *Client) UserID() uuid.UUID {
	return c.userID
}

// Send queues an event without blocking. A closed endpoint or a full buffer
// fails the push; the event is dropped and the caller decides whether the
// drop is worth logging.
func (c *Client) Send(event Event) error {
	select {
	case <-c.done:
		return ErrEndpointClosed
	default:
	}

	select {
	case c.send <- event:
		return nil
	default:
		return ErrSendBufferFull
	}
}

// Close tears the connection down. Safe to call more than once.
func (c *Client) Close() error {
	c.once.Do(func() {
		close(c.done)
	})

	return c.conn.Close()
}

// ReadPump consumes inbound frames until the connection dies. The transport
// is push-only — client requests travel over HTTP — so inbound payloads are
// discarded; the pump exists to run the pong handler and detect disconnects.
// It blocks until the connection is gone; callers release the registry entry
// afterwards.
func (c *Client) ReadPump() {
	defer func() {
		if err := c.Close(); err != nil {
			c.logger.Debug("connection close failed", slog.String("conn", c.id.String()), slog.Any("error", err))
		}
	}()

	if err := c.conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		c.logger.Debug("failed to set read deadline", slog.String("conn", c.id.String()), slog.Any("error", err))

		return
	}
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.logger.Debug("unexpected websocket close", slog.String("conn", c.id.String()), slog.Any("error", err))
			}

			return
		}
	}
}

// WritePump serializes queued events onto the wire and keeps the connection
// alive with pings. Run it in its own goroutine, one per connection.
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		if err := c.Close(); err != nil {
			c.logger.Debug("connection close failed", slog.String("conn", c.id.String()), slog.Any("error", err))
		}
	}()

	for {
		select {
		case event := <-c.send:
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				return
			}
			if err := c.conn.WriteJSON(event); err != nil {
				c.logger.Debug("event write failed", slog.String("conn", c.id.String()), slog.Any("error", err))

				return
			}

		case <-ticker.C:
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				return
			}
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}

		case <-c.done:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			_ = c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))

			return
		}
	}
}
