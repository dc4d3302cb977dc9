package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"whisper/config"
	"whisper/internal/domain/entity"
	domainerrors "whisper/internal/domain/errors"
	mockRepo "whisper/internal/mocks/repository"
	mockSvc "whisper/internal/mocks/service"
	"whisper/internal/usecase"
	"whisper/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubMessageUsecase records the last call and replays canned results.
type stubMessageUsecase struct {
	sentTo    uuid.UUID
	sentInput *usecase.SendMessageInput
	message   *entity.Message
	messages  []*entity.Message
	err       error
}

func (s *stubMessageUsecase) Send(_ context.Context, _, recipientID uuid.UUID, input *usecase.SendMessageInput) (*entity.Message, error) {
	s.sentTo = recipientID
	s.sentInput = input

	return s.message, s.err
}

func (s *stubMessageUsecase) History(context.Context, uuid.UUID, uuid.UUID) ([]*entity.Message, error) {
	return s.messages, s.err
}

func newMessageTestContext(method, target string, body string, userID any) (echo.Context, *httptest.ResponseRecorder) {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)
	if userID != nil {
		c.Set("userID", userID)
	}

	return c, rec
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestMessageHandler_Send_Created(t *testing.T) {
	senderID := uuid.New()
	recipientID := uuid.New()
	stub := &stubMessageUsecase{
		message: &entity.Message{ID: uuid.New(), SenderID: senderID, RecipientID: recipientID, Text: "hi"},
	}
	h := NewMessageHandler(stub, nil, discardLogger())

	c, rec := newMessageTestContext(http.MethodPost, "/api/messages/send/"+recipientID.String(), `{"text":"hi"}`, senderID)
	c.SetParamNames("id")
	c.SetParamValues(recipientID.String())

	require.NoError(t, h.Send(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, recipientID, stub.sentTo)
	assert.Equal(t, "hi", stub.sentInput.Text)

	var envelope struct {
		Success bool            `json:"success"`
		Data    *entity.Message `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.True(t, envelope.Success)
	assert.Equal(t, "hi", envelope.Data.Text)
}

func TestMessageHandler_Send_InvalidRecipientID(t *testing.T) {
	h := NewMessageHandler(&stubMessageUsecase{}, nil, discardLogger())

	c, rec := newMessageTestContext(http.MethodPost, "/api/messages/send/not-a-uuid", `{"text":"hi"}`, uuid.New())
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	require.NoError(t, h.Send(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMessageHandler_Send_EmptyBody(t *testing.T) {
	// Echo's binder leaves the target untouched for an empty body; the
	// handler must still hand the usecase a usable zero-value input.
	recipientID := uuid.New()
	stub := &stubMessageUsecase{}
	h := NewMessageHandler(stub, nil, discardLogger())

	c, _ := newMessageTestContext(http.MethodPost, "/messages/send/"+recipientID.String(), "", uuid.New())
	c.SetParamNames("id")
	c.SetParamValues(recipientID.String())

	require.NoError(t, h.Send(c))
	require.NotNil(t, stub.sentInput)
	assert.Empty(t, stub.sentInput.Text)
}

func TestMessageHandler_Send_EmptyBodyRejected(t *testing.T) {
	// Through the real usecase, an empty body is a rejected request, not a
	// crash: the empty-message guard fires before any repository call.
	recipientID := uuid.New()
	svc := impl.NewMessageService(impl.MessageServiceParams{
		MessageRepo: mockRepo.NewMockMessageRepository(t),
		UserRepo:    mockRepo.NewMockUserRepository(t),
		Media:       mockSvc.NewMockMediaService(t),
		Live:        mockSvc.NewMockLiveGateway(t),
		Config:      &config.Config{Chat: config.ChatConfig{HistoryLimit: 100, SendBuffer: 256}},
		Logger:      discardLogger(),
	})
	h := NewMessageHandler(svc, nil, discardLogger())

	c, _ := newMessageTestContext(http.MethodPost, "/messages/send/"+recipientID.String(), "", uuid.New())
	c.SetParamNames("id")
	c.SetParamValues(recipientID.String())

	err := h.Send(c)
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrEmptyMessage)
}

func TestMessageHandler_Send_MissingIdentity(t *testing.T) {
	h := NewMessageHandler(&stubMessageUsecase{}, nil, discardLogger())

	c, rec := newMessageTestContext(http.MethodPost, "/api/messages/send/"+uuid.NewString(), `{"text":"hi"}`, nil)

	require.NoError(t, h.Send(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMessageHandler_GetHistory_ReturnsMessages(t *testing.T) {
	userID := uuid.New()
	otherID := uuid.New()
	stub := &stubMessageUsecase{
		messages: []*entity.Message{
			{ID: uuid.New(), SenderID: userID, RecipientID: otherID, Text: "first"},
			{ID: uuid.New(), SenderID: otherID, RecipientID: userID, Text: "second"},
		},
	}
	h := NewMessageHandler(stub, nil, discardLogger())

	c, rec := newMessageTestContext(http.MethodGet, "/api/messages/"+otherID.String(), "", userID)
	c.SetParamNames("id")
	c.SetParamValues(otherID.String())

	require.NoError(t, h.GetHistory(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var envelope struct {
		Data []*entity.Message `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.Len(t, envelope.Data, 2)
	assert.Equal(t, "first", envelope.Data[0].Text)
}
