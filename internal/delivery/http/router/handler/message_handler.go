package handler

import (
	"log/slog"
	"net/http"

	"whisper/internal/delivery/http/response"
	"whisper/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// MessageHandler holds dependencies for conversation handlers.
type MessageHandler struct {
	messageUc usecase.MessageUsecase
	userUc    usecase.UserUsecase
	logger    *slog.Logger
}

// NewMessageHandler is the constructor for MessageHandler, injected by Fx.
func NewMessageHandler(messageUc usecase.MessageUsecase, userUc usecase.UserUsecase, logger *slog.Logger) *MessageHandler {
	return &MessageHandler{
		messageUc: messageUc,
		userUc:    userUc,
		logger:    logger,
	}
}

// ListContacts returns every other user, for the conversation sidebar.
// Presence is not included here; it arrives over the live channel.
func (h *MessageHandler) ListContacts(c echo.Context) error {
	userID, ok := userIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	users, err := h.userUc.ListContacts(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, users, "Contacts retrieved successfully")
}

// GetHistory returns the conversation between the caller and the user in the
// path, oldest first.
func (h *MessageHandler) GetHistory(c echo.Context) error {
	userID, ok := userIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	otherID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_USER_ID", "Invalid user ID in path")
	}

	messages, err := h.messageUc.History(c.Request().Context(), userID, otherID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, messages, "Messages retrieved successfully")
}

// Send accepts an outgoing message addressed to the user in the path. A 201
// means the message is durably recorded; live delivery to the recipient is
// opportunistic and not part of the success contract.
func (h *MessageHandler) Send(c echo.Context) error {
	userID, ok := userIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	recipientID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_USER_ID", "Invalid user ID in path")
	}

	// Bind into a value: echo leaves the target untouched for empty bodies,
	// and the usecase expects a non-nil input either way.
	input := new(usecase.SendMessageInput)
	if err := c.Bind(input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid message input")
	}

	message, err := h.messageUc.Send(c.Request().Context(), userID, recipientID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, message, "Message sent successfully")
}
