package postgres

import (
	"context"

	"whisper/internal/domain/entity"
	domainerrors "whisper/internal/domain/errors"
	"whisper/internal/domain/repository"
	"whisper/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// messageRepository implements the repository.MessageRepository interface.
// A single-row insert is the durability checkpoint for message delivery.
type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository is the constructor for messageRepository.
func NewMessageRepository(db *gorm.DB) repository.MessageRepository {
	return &messageRepository{db: db}
}

// Create persists a new message and writes the assigned ID and creation
// timestamp back into the entity.
func (repo *messageRepository) Create(ctx context.Context, message *entity.Message) error {
	messageM := fromMessageDomain(message)

	if err := repo.db.WithContext(ctx).Create(messageM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrMessagePersistFailed.WrapMessage("missing required message fields")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create message")
	}

	message.ID = messageM.ID
	message.CreatedAt = messageM.CreatedAt

	return nil
}

// FindConversation returns every message exchanged between the two users in
// either direction, ascending by creation time, capped at limit. The cap
// keeps the earliest rows: large conversations truncate at the tail, they
// never fail.
func (repo *messageRepository) FindConversation(ctx context.Context, userA, userB uuid.UUID, limit int) ([]*entity.Message, error) {
	var messageModels []*model.MessageModel

	query := repo.db.WithContext(ctx).
		Where("(sender_id = ? AND recipient_id = ?) OR (sender_id = ? AND recipient_id = ?)",
			userA, userB, userB, userA).
		Order("created_at ASC")

	if limit > 0 {
		query = query.Limit(limit)
	}

	if err := query.Find(&messageModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find conversation")
	}

	messages := make([]*entity.Message, 0, len(messageModels))
	for _, messageM := range messageModels {
		messages = append(messages, toMessageDomain(messageM))
	}

	return messages, nil
}

// --- Mapper functions ---

func toMessageDomain(data *model.MessageModel) *entity.Message {
	if data == nil {
		return nil
	}

	return &entity.Message{
		ID:          data.ID,
		SenderID:    data.SenderID,
		RecipientID: data.RecipientID,
		Text:        data.Text,
		ImageURL:    data.ImageURL,
		DocumentURL: data.DocumentURL,
		CreatedAt:   data.CreatedAt,
	}
}

func fromMessageDomain(data *entity.Message) *model.MessageModel {
	if data == nil {
		return nil
	}

	return &model.MessageModel{
		ID:          data.ID,
		SenderID:    data.SenderID,
		RecipientID: data.RecipientID,
		Text:        data.Text,
		ImageURL:    data.ImageURL,
		DocumentURL: data.DocumentURL,
	}
}
