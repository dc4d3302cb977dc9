// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"whisper/internal/domain/entity"

	"github.com/google/uuid"
)

// MessageRepository is the message store gateway. Persisting a message here
// is the durability checkpoint: once Create returns nil the message is part
// of history regardless of any live-delivery outcome.
type MessageRepository interface {
	// Create persists a new message. The store assigns ID and CreatedAt and
	// writes them back into the entity.
	Create(ctx context.Context, message *entity.Message) error

	// FindConversation returns every message exchanged between the two users,
	// in either direction, ascending by creation time, capped at limit
	// (earliest-first truncation).
	FindConversation(ctx context.Context, userA, userB uuid.UUID, limit int) ([]*entity.Message, error)
}
