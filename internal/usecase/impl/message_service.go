// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	"whisper/config"
	deliverycontext "whisper/internal/delivery/context"
	"whisper/internal/domain/entity"
	domainerrors "whisper/internal/domain/errors"
	"whisper/internal/domain/repository"
	"whisper/internal/domain/service"
	"whisper/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// messageService implements the MessageUsecase interface. It orchestrates the
// dual-path delivery: persist through the message store, then push through
// the live gateway when the recipient is online.
type messageService struct {
	messageRepo  repository.MessageRepository
	userRepo     repository.UserRepository
	media        service.MediaService
	live         service.LiveGateway
	historyLimit int
	logger       *slog.Logger
}

// MessageServiceParams holds dependencies for messageService, injected by Fx.
type MessageServiceParams struct {
	fx.In

	MessageRepo repository.MessageRepository
	UserRepo    repository.UserRepository
	Media       service.MediaService
	Live        service.LiveGateway
	Config      *config.Config
	Logger      *slog.Logger
}

// NewMessageService is the constructor for messageService.
func NewMessageService(params MessageServiceParams) usecase.MessageUsecase {
	return &messageService{
		messageRepo:  params.MessageRepo,
		userRepo:     params.UserRepo,
		media:        params.Media,
		live:         params.Live,
		historyLimit: params.Config.Chat.HistoryLimit,
		logger:       params.Logger,
	}
}

func (srv *messageService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Send validates the request, persists the message, and attempts a live push.
// Persistence is the durability checkpoint: a store failure fails the whole
// operation and no push is ever attempted; a push failure is contained.
func (srv *messageService) Send(ctx context.Context, senderID, recipientID uuid.UUID, input *usecase.SendMessageInput) (*entity.Message, error) {
	if senderID == recipientID {
		return nil, errors.WithStack(domainerrors.ErrSelfMessage)
	}
	if input.Text == "" && input.Image == "" && input.Document == "" {
		return nil, errors.WithStack(domainerrors.ErrEmptyMessage)
	}

	if _, err := srv.userRepo.FindByID(ctx, recipientID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.WithStack(domainerrors.ErrUserNotFound)
		}

		return nil, errors.Wrap(err, "failed to resolve recipient")
	}

	message := &entity.Message{
		SenderID:    senderID,
		RecipientID: recipientID,
		Text:        input.Text,
	}

	if input.Image != "" {
		url, err := srv.media.Store(ctx, input.Image, service.MediaKindImage)
		if err != nil {
			return nil, errors.Wrap(err, "failed to store image attachment")
		}
		message.ImageURL = url
	}
	if input.Document != "" {
		url, err := srv.media.Store(ctx, input.Document, service.MediaKindDocument)
		if err != nil {
			return nil, errors.Wrap(err, "failed to store document attachment")
		}
		message.DocumentURL = url
	}

	if err := srv.messageRepo.Create(ctx, message); err != nil {
		srv.log(ctx).Error("message persistence failed",
			slog.String("senderID", senderID.String()),
			slog.String("recipientID", recipientID.String()),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(err, "failed to persist message")
	}

	// Best-effort live push. The message is durable; a stale endpoint or an
	// offline recipient only means delivery happens via the next history
	// fetch. Nothing from here on can fail the send.
	if err := srv.live.PushMessage(recipientID, message); err != nil {
		if errors.Is(err, service.ErrRecipientOffline) {
			srv.log(ctx).Debug("recipient offline, skipping live push",
				slog.String("recipientID", recipientID.String()),
				slog.String("messageID", message.ID.String()),
			)
		} else {
			srv.log(ctx).Warn("live push failed",
				slog.String("recipientID", recipientID.String()),
				slog.String("messageID", message.ID.String()),
				slog.Any("error", err),
			)
		}
	}

	return message, nil
}

// History returns the conversation between the caller and the other
// participant. Pure read against the message store; no registry interaction.
func (srv *messageService) History(ctx context.Context, userID, otherID uuid.UUID) ([]*entity.Message, error) {
	messages, err := srv.messageRepo.FindConversation(ctx, userID, otherID, srv.historyLimit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load conversation history")
	}

	return messages, nil
}
