package handler

import (
	"log/slog"
	"net/http"

	"whisper/config"
	"whisper/internal/delivery/http/response"
	"whisper/internal/realtime"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

// WSHandler upgrades authenticated requests to websocket connections and
// binds them into the connection registry.
type WSHandler struct {
	registry *realtime.Registry
	cfg      *config.Config
	logger   *slog.Logger
	upgrader websocket.Upgrader
}

// NewWSHandler is the constructor for WSHandler, injected by Fx.
func NewWSHandler(registry *realtime.Registry, cfg *config.Config, logger *slog.Logger) *WSHandler {
	return &WSHandler{
		registry: registry,
		cfg:      cfg,
		logger:   logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(*http.Request) bool {
				// Auth happens via token, not origin.
				return true
			},
		},
	}
}

// Serve turns the request into a live connection. It blocks for the lifetime
// of the connection and releases the registry binding when it dies, so a
// slow teardown can never evict a newer connection for the same user.
func (h *WSHandler) Serve(c echo.Context) error {
	userID, ok := userIDFromContext(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	conn, err := h.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		// Upgrade has already written its own error response.
		h.logger.Debug("websocket upgrade failed",
			slog.String("userID", userID.String()),
			slog.Any("error", err),
		)

		return nil
	}

	client := realtime.NewClient(conn, userID, h.cfg.Chat.SendBuffer, h.logger)
	h.registry.Register(userID, client)

	go client.WritePump()
	client.ReadPump()

	h.registry.Release(userID, client)

	return nil
}
