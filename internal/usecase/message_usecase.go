package usecase

import (
	"context"

	"whisper/internal/domain/entity"

	"github.com/google/uuid"
)

// SendMessageInput carries the optional text body and optional media payloads
// of an outgoing message. Media arrives as base64 data URIs and leaves the
// coordinator as hosted URLs.
type SendMessageInput struct {
	Text     string `json:"text"`
	Image    string `json:"image"`
	Document string `json:"document"`
}

// MessageUsecase is the delivery coordinator contract: durable persistence
// first, then a best-effort live push to an online recipient, plus the
// conversation history read side.
type MessageUsecase interface {
	// Send validates, persists, and opportunistically pushes a message.
	// The success contract is "message durably recorded", never "message
	// delivered live"; the persisted message is returned regardless of the
	// push outcome.
	Send(ctx context.Context, senderID, recipientID uuid.UUID, input *SendMessageInput) (*entity.Message, error)

	// History returns the conversation between the caller and the other
	// participant, ascending by creation time, capped at the configured
	// maximum (earliest-first truncation).
	History(ctx context.Context, userID, otherID uuid.UUID) ([]*entity.Message, error)
}
