package service

import (
	"errors"

	"whisper/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrRecipientOffline is returned by PushMessage when no live connection is
// bound to the recipient. It signals "offline", not a fault; the message is
// already durable and will surface via history.
var ErrRecipientOffline = errors.New("recipient has no live connection")

// LiveGateway is the delivery coordinator's view of the realtime layer.
// All pushes are best-effort: an error means the live delivery did not
// happen, never that the message is lost — it is already durable.
type LiveGateway interface {
	// IsOnline reports whether the user currently has a live connection.
	IsOnline(userID uuid.UUID) bool

	// PushMessage delivers a persisted message to the recipient's live
	// connection, if any. Returns an error when the recipient is offline or
	// the endpoint refuses the event; callers log and move on.
	PushMessage(userID uuid.UUID, message *entity.Message) error

	// Online returns the identities currently connected.
	Online() []uuid.UUID
}
