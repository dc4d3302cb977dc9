package realtime

import (
	"io"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_SendFailsWhenBufferFull(t *testing.T) {
	userID := uuid.New()
	client := NewClient(nil, userID, 1, slog.New(slog.NewTextHandler(io.Discard, nil)))

	assert.Equal(t, userID, client.UserID())
	assert.NotEqual(t, uuid.Nil, client.ID())

	require.NoError(t, client.Send(Event{Type: EventPresenceChanged}))

	// Nothing drains the buffer; the second push must fail fast instead of
	// blocking the caller.
	err := client.Send(Event{Type: EventPresenceChanged})
	assert.ErrorIs(t, err, ErrSendBufferFull)
}

func TestClient_ConnectionIDsAreDistinct(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	userID := uuid.New()

	first := NewClient(nil, userID, 1, logger)
	second := NewClient(nil, userID, 1, logger)

	// Same identity, distinct connections.
	assert.NotEqual(t, first.ID(), second.ID())
	assert.Equal(t, first.UserID(), second.UserID())
}
