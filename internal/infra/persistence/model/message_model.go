package model

import (
	"time"

	"github.com/google/uuid"
)

// MessageModel is the GORM-specific struct for the 'messages' table. Rows are
// insert-only; a message is never updated after creation.
type MessageModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	SenderID    uuid.UUID `gorm:"type:uuid;not null;index:idx_messages_sender_recipient"`
	RecipientID uuid.UUID `gorm:"type:uuid;not null;index:idx_messages_sender_recipient"`
	Text        string    `gorm:"type:text;not null;default:''"`
	ImageURL    string    `gorm:"type:text;not null;default:''"`
	DocumentURL string    `gorm:"type:text;not null;default:''"`
	CreatedAt   time.Time `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (MessageModel) TableName() string {
	return "messages"
}
