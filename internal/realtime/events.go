// Package realtime implements the presence-aware delivery core: the
// connection registry mapping identities to live websocket endpoints, the
// presence broadcaster, and the per-connection read/write pumps.
package realtime

import (
	"whisper/internal/domain/entity"

	"github.com/google/uuid"
)

// Event types pushed over live connections.
const (
	EventNewMessage      = "newMessage"
	EventPresenceChanged = "presenceChanged"
)

// Event is a single out-of-band push to a connected client. It is not a
// reply to any request; clients reconcile ordering via durable history.
type Event struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

// NewMessageEvent wraps a persisted message for live delivery.
func NewMessageEvent(message *entity.Message) Event {
	return Event{Type: EventNewMessage, Payload: message}
}

// PresenceEvent carries the full online-identity set.
func PresenceEvent(online []uuid.UUID) Event {
	ids := make([]string, 0, len(online))
	for _, id := range online {
		ids = append(ids, id.String())
	}

	return Event{Type: EventPresenceChanged, Payload: ids}
}
