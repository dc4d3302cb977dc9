package impl

import (
	"context"
	"testing"

	"whisper/internal/domain/entity"
	domainerrors "whisper/internal/domain/errors"
	"whisper/internal/domain/repository"
	"whisper/internal/domain/service"
	mockRepo "whisper/internal/mocks/repository"
	mockSvc "whisper/internal/mocks/service"
	"whisper/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newMessageServiceForTest(t *testing.T) (usecase.MessageUsecase, *mockRepo.MockMessageRepository, *mockRepo.MockUserRepository, *mockSvc.MockMediaService, *mockSvc.MockLiveGateway) {
	t.Helper()

	messageRepo := mockRepo.NewMockMessageRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	media := mockSvc.NewMockMediaService(t)
	live := mockSvc.NewMockLiveGateway(t)

	svc := NewMessageService(MessageServiceParams{
		MessageRepo: messageRepo,
		UserRepo:    userRepo,
		Media:       media,
		Live:        live,
		Config:      newTestConfig(),
		Logger:      newDiscardLogger(),
	})

	return svc, messageRepo, userRepo, media, live
}

func TestMessageService_Send_RejectsSelfMessage(t *testing.T) {
	svc, _, _, _, _ := newMessageServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()

	// Rejected before any collaborator is touched; the strict mocks verify
	// that nothing else is called.
	message, err := svc.Send(ctx, userID, userID, &usecase.SendMessageInput{Text: "hi"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrSelfMessage)
	assert.Nil(t, message)
}

func TestMessageService_Send_RejectsEmptyMessage(t *testing.T) {
	svc, _, _, _, _ := newMessageServiceForTest(t)

	message, err := svc.Send(context.Background(), uuid.New(), uuid.New(), &usecase.SendMessageInput{})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrEmptyMessage)
	assert.Nil(t, message)
}

func TestMessageService_Send_UnknownRecipient(t *testing.T) {
	svc, _, userRepo, _, _ := newMessageServiceForTest(t)

	ctx := context.Background()
	senderID := uuid.New()
	recipientID := uuid.New()

	userRepo.EXPECT().
		FindByID(ctx, recipientID).
		Return(nil, repository.ErrUserNotFound)

	message, err := svc.Send(ctx, senderID, recipientID, &usecase.SendMessageInput{Text: "hi"})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	assert.Nil(t, message)
}

func TestMessageService_Send_PersistFailureSkipsPush(t *testing.T) {
	svc, messageRepo, userRepo, _, _ := newMessageServiceForTest(t)

	ctx := context.Background()
	senderID := uuid.New()
	recipientID := uuid.New()

	userRepo.EXPECT().
		FindByID(ctx, recipientID).
		Return(&entity.User{ID: recipientID}, nil)

	messageRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Message")).
		Return(errors.New("connection reset"))

	// No PushMessage expectation: a failed persist must never reach the
	// live gateway.
	message, err := svc.Send(ctx, senderID, recipientID, &usecase.SendMessageInput{Text: "hi"})
	require.Error(t, err)
	assert.Nil(t, message)
}

func TestMessageService_Send_OfflineRecipientStillSucceeds(t *testing.T) {
	svc, messageRepo, userRepo, _, live := newMessageServiceForTest(t)

	ctx := context.Background()
	senderID := uuid.New()
	recipientID := uuid.New()

	userRepo.EXPECT().
		FindByID(ctx, recipientID).
		Return(&entity.User{ID: recipientID}, nil)

	messageRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Message")).
		Return(nil)

	live.EXPECT().
		PushMessage(recipientID, mock.AnythingOfType("*entity.Message")).
		Return(service.ErrRecipientOffline)

	message, err := svc.Send(ctx, senderID, recipientID, &usecase.SendMessageInput{Text: "hi"})
	require.NoError(t, err)
	require.NotNil(t, message)
	assert.Equal(t, senderID, message.SenderID)
	assert.Equal(t, recipientID, message.RecipientID)
	assert.Equal(t, "hi", message.Text)
}

func TestMessageService_Send_PushFailureIsContained(t *testing.T) {
	svc, messageRepo, userRepo, _, live := newMessageServiceForTest(t)

	ctx := context.Background()
	senderID := uuid.New()
	recipientID := uuid.New()

	userRepo.EXPECT().
		FindByID(ctx, recipientID).
		Return(&entity.User{ID: recipientID}, nil)

	messageRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Message")).
		Return(nil)

	live.EXPECT().
		PushMessage(recipientID, mock.AnythingOfType("*entity.Message")).
		Return(errors.New("send buffer full"))

	// A stale endpoint fails the push; the send still succeeds because the
	// message is already durable.
	message, err := svc.Send(ctx, senderID, recipientID, &usecase.SendMessageInput{Text: "hi"})
	require.NoError(t, err)
	assert.NotNil(t, message)
}

func TestMessageService_Send_StoresAttachments(t *testing.T) {
	svc, messageRepo, userRepo, media, live := newMessageServiceForTest(t)

	ctx := context.Background()
	senderID := uuid.New()
	recipientID := uuid.New()

	userRepo.EXPECT().
		FindByID(ctx, recipientID).
		Return(&entity.User{ID: recipientID}, nil)

	media.EXPECT().
		Store(ctx, "data:image/png;base64,AAAA", service.MediaKindImage).
		Return("https://cdn.example.com/img.png", nil)

	media.EXPECT().
		Store(ctx, "data:application/pdf;base64,BBBB", service.MediaKindDocument).
		Return("https://cdn.example.com/doc.pdf", nil)

	messageRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Message")).
		Return(nil)

	live.EXPECT().
		PushMessage(recipientID, mock.AnythingOfType("*entity.Message")).
		Return(nil)

	message, err := svc.Send(ctx, senderID, recipientID, &usecase.SendMessageInput{
		Text:     "see attachments",
		Image:    "data:image/png;base64,AAAA",
		Document: "data:application/pdf;base64,BBBB",
	})
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/img.png", message.ImageURL)
	assert.Equal(t, "https://cdn.example.com/doc.pdf", message.DocumentURL)
}

func TestMessageService_Send_MediaFailureAbortsSend(t *testing.T) {
	svc, _, userRepo, media, _ := newMessageServiceForTest(t)

	ctx := context.Background()
	senderID := uuid.New()
	recipientID := uuid.New()

	userRepo.EXPECT().
		FindByID(ctx, recipientID).
		Return(&entity.User{ID: recipientID}, nil)

	media.EXPECT().
		Store(ctx, "data:image/png;base64,notbase64!!", service.MediaKindImage).
		Return("", domainerrors.ErrInvalidMedia)

	message, err := svc.Send(ctx, senderID, recipientID, &usecase.SendMessageInput{
		Image: "data:image/png;base64,notbase64!!",
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidMedia)
	assert.Nil(t, message)
}

func TestMessageService_History_PassesConfiguredLimit(t *testing.T) {
	svc, messageRepo, _, _, _ := newMessageServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()
	otherID := uuid.New()

	expected := []*entity.Message{
		{ID: uuid.New(), SenderID: userID, RecipientID: otherID, Text: "first"},
		{ID: uuid.New(), SenderID: otherID, RecipientID: userID, Text: "second"},
	}

	messageRepo.EXPECT().
		FindConversation(ctx, userID, otherID, 100).
		Return(expected, nil)

	messages, err := svc.History(ctx, userID, otherID)
	require.NoError(t, err)
	assert.Equal(t, expected, messages)
}

func TestMessageService_History_RepositoryFailure(t *testing.T) {
	svc, messageRepo, _, _, _ := newMessageServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()
	otherID := uuid.New()

	messageRepo.EXPECT().
		FindConversation(ctx, userID, otherID, 100).
		Return(nil, errors.New("connection reset"))

	messages, err := svc.History(ctx, userID, otherID)
	require.Error(t, err)
	assert.Nil(t, messages)
}
