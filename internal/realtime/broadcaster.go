package realtime

import (
	"log/slog"

	"github.com/google/uuid"
)

// Broadcaster pushes the current online-identity set to every live endpoint
// after each registry mutation. Delivery to any individual endpoint is
// best-effort: one failing connection never blocks the announcement to the
// others, and no failure ever reaches the caller that mutated the registry.
type Broadcaster struct {
	logger *slog.Logger
}

// NewBroadcaster creates a presence broadcaster.
func NewBroadcaster(logger *slog.Logger) *Broadcaster {
	return &Broadcaster{logger: logger}
}

// Announce implements Announcer.
func (b *Broadcaster) Announce(online []uuid.UUID, endpoints []Endpoint) {
	event := PresenceEvent(online)
	for _, ep := range endpoints {
		if err := ep.Send(event); err != nil {
			b.logger.Debug("presence announcement dropped",
				slog.String("conn", ep.ID().String()),
				slog.Any("error", err),
			)
		}
	}
}
