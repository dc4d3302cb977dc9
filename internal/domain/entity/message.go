package entity

import (
	"time"

	"github.com/google/uuid"
)

// Message is a single direct message between two users. It is immutable once
// persisted; the store assigns ID and CreatedAt on insert. Sender and
// recipient are always distinct, enforced at creation time.
type Message struct {
	ID          uuid.UUID `json:"id"`
	SenderID    uuid.UUID `json:"senderId"`
	RecipientID uuid.UUID `json:"receiverId"`
	Text        string    `json:"text,omitempty"`
	ImageURL    string    `json:"image,omitempty"`
	DocumentURL string    `json:"document,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}
