package realtime

import (
	"log/slog"
	"sort"
	"sync"

	"whisper/internal/domain/entity"
	"whisper/internal/domain/service"

	"github.com/google/uuid"
)

// Endpoint is a live, addressable channel over which events can be pushed to
// a specific connected client. Send must never block.
type Endpoint interface {
	// ID identifies the connection itself, distinct from the user identity.
	ID() uuid.UUID

	// Send queues an event for delivery. It returns an error when the
	// endpoint is closed or its buffer is full; the event is then dropped.
	Send(event Event) error

	// Close tears the connection down. Safe to call more than once.
	Close() error
}

// Announcer receives the online set after every registry mutation.
type Announcer interface {
	Announce(online []uuid.UUID, endpoints []Endpoint)
}

// Registry is the single authority for "is this user online". It owns the
// identity-to-endpoint map; no other component ever sees the raw map. A new
// connection for an already-mapped identity replaces the old entry
// (latest-wins), and every mutation triggers a presence announcement.
type Registry struct {
	mu        sync.RWMutex
	conns     map[uuid.UUID]Endpoint
	announcer Announcer
	logger    *slog.Logger
}

// NewRegistry creates an empty registry. Mutations are announced through the
// given announcer synchronously, after the internal lock is released.
func NewRegistry(logger *slog.Logger, announcer Announcer) *Registry {
	return &Registry{
		conns:     make(map[uuid.UUID]Endpoint),
		announcer: announcer,
		logger:    logger,
	}
}

// Register binds an endpoint to a user identity, unconditionally replacing
// any prior endpoint (no error on collision). The replaced endpoint is left
// open; its own liveness timeout will reap it.
func (r *Registry) Register(userID uuid.UUID, ep Endpoint) {
	r.mu.Lock()
	if old, ok := r.conns[userID]; ok {
		r.logger.Debug("connection replaced",
			slog.String("userID", userID.String()),
			slog.String("oldConn", old.ID().String()),
			slog.String("newConn", ep.ID().String()),
		)
	}
	r.conns[userID] = ep
	r.mu.Unlock()

	r.logger.Info("user connected", slog.String("userID", userID.String()), slog.String("conn", ep.ID().String()))
	r.announce()
}

// Unregister removes the mapping for the identity if present. Unregistering
// an absent identity is a no-op, not an error; a presence announcement is
// triggered either way.
func (r *Registry) Unregister(userID uuid.UUID) {
	r.mu.Lock()
	_, existed := r.conns[userID]
	delete(r.conns, userID)
	r.mu.Unlock()

	if existed {
		r.logger.Info("user disconnected", slog.String("userID", userID.String()))
	}
	r.announce()
}

// Release removes the mapping only while it still points at ep. Disconnect
// handlers use this so a slow teardown of a replaced connection cannot evict
// its successor.
func (r *Registry) Release(userID uuid.UUID, ep Endpoint) {
	r.mu.Lock()
	current, ok := r.conns[userID]
	if ok && current.ID() == ep.ID() {
		delete(r.conns, userID)
	} else {
		ok = false
	}
	r.mu.Unlock()

	if ok {
		r.logger.Info("user disconnected", slog.String("userID", userID.String()), slog.String("conn", ep.ID().String()))
	}
	r.announce()
}

// Lookup returns the endpoint currently bound to the identity. A false
// result means "offline", which is the intended signal, not a fault.
func (r *Registry) Lookup(userID uuid.UUID) (Endpoint, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ep, ok := r.conns[userID]

	return ep, ok
}

// Snapshot returns all currently registered identities. It is the sole
// source of truth for presence.
func (r *Registry) Snapshot() []uuid.UUID {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.snapshotLocked()
}

// IsOnline implements service.LiveGateway.
func (r *Registry) IsOnline(userID uuid.UUID) bool {
	_, ok := r.Lookup(userID)

	return ok
}

// Online implements service.LiveGateway.
func (r *Registry) Online() []uuid.UUID {
	return r.Snapshot()
}

// PushMessage implements service.LiveGateway. It delivers the persisted
// message to the recipient's live endpoint, if any. Failures are reported to
// the caller but never roll back the preceding persistence.
func (r *Registry) PushMessage(userID uuid.UUID, message *entity.Message) error {
	ep, ok := r.Lookup(userID)
	if !ok {
		return service.ErrRecipientOffline
	}

	return ep.Send(NewMessageEvent(message))
}

// CloseAll tears down every live connection, used during shutdown.
func (r *Registry) CloseAll() {
	r.mu.Lock()
	endpoints := make([]Endpoint, 0, len(r.conns))
	for _, ep := range r.conns {
		endpoints = append(endpoints, ep)
	}
	r.conns = make(map[uuid.UUID]Endpoint)
	r.mu.Unlock()

	for _, ep := range endpoints {
		if err := ep.Close(); err != nil {
			r.logger.Debug("endpoint close failed", slog.Any("error", err))
		}
	}
}

func (r *Registry) announce() {
	r.mu.RLock()
	online := r.snapshotLocked()
	endpoints := make([]Endpoint, 0, len(r.conns))
	for _, ep := range r.conns {
		endpoints = append(endpoints, ep)
	}
	r.mu.RUnlock()

	r.announcer.Announce(online, endpoints)
}

func (r *Registry) snapshotLocked() []uuid.UUID {
	online := make([]uuid.UUID, 0, len(r.conns))
	for id := range r.conns {
		online = append(online, id)
	}
	// Stable order keeps broadcast payloads deterministic.
	sort.Slice(online, func(i, j int) bool {
		return online[i].String() < online[j].String()
	})

	return online
}
