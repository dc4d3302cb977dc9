package realtime

import (
	"io"
	"log/slog"
	"sync"
	"testing"

	"whisper/internal/domain/entity"
	"whisper/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEndpoint struct {
	id      uuid.UUID
	mu      sync.Mutex
	events  []Event
	closed  bool
	sendErr error
}

func newFakeEndpoint() *fakeEndpoint {
	return &fakeEndpoint{id: uuid.New()}
}

func (f *fakeEndpoint) ID() uuid.UUID {
	return f.id
}

func (f *fakeEndpoint) Send(event Event) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.sendErr != nil {
		return f.sendErr
	}
	f.events = append(f.events, event)

	return nil
}

func (f *fakeEndpoint) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true

	return nil
}

func (f *fakeEndpoint) received() []Event {
	f.mu.Lock()
	defer f.mu.Unlock()

	return append([]Event(nil), f.events...)
}

// recordingAnnouncer captures every announced online set.
type recordingAnnouncer struct {
	mu    sync.Mutex
	calls [][]uuid.UUID
}

func (a *recordingAnnouncer) Announce(online []uuid.UUID, _ []Endpoint) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.calls = append(a.calls, append([]uuid.UUID(nil), online...))
}

func (a *recordingAnnouncer) callCount() int {
	a.mu.Lock()
	defer a.mu.Unlock()

	return len(a.calls)
}

func (a *recordingAnnouncer) last() []uuid.UUID {
	a.mu.Lock()
	defer a.mu.Unlock()
	if len(a.calls) == 0 {
		return nil
	}

	return a.calls[len(a.calls)-1]
}

func newTestRegistry() (*Registry, *recordingAnnouncer) {
	announcer := &recordingAnnouncer{}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewRegistry(logger, announcer), announcer
}

func TestRegistry_RegisterAnnouncesOnlineSet(t *testing.T) {
	registry, announcer := newTestRegistry()
	userID := uuid.New()

	registry.Register(userID, newFakeEndpoint())

	require.Equal(t, 1, announcer.callCount())
	assert.Equal(t, []uuid.UUID{userID}, announcer.last())
	assert.True(t, registry.IsOnline(userID))
}

func TestRegistry_RegisterLatestWins(t *testing.T) {
	registry, announcer := newTestRegistry()
	userID := uuid.New()
	first := newFakeEndpoint()
	second := newFakeEndpoint()

	registry.Register(userID, first)
	registry.Register(userID, second)

	current, ok := registry.Lookup(userID)
	require.True(t, ok)
	assert.Equal(t, second.ID(), current.ID())

	// The replaced endpoint is left open; its own timeout reaps it.
	assert.False(t, first.closed)

	// Both mutations announced, and the user appears exactly once.
	require.Equal(t, 2, announcer.callCount())
	assert.Equal(t, []uuid.UUID{userID}, announcer.last())
}

func TestRegistry_UnregisterIsIdempotent(t *testing.T) {
	registry, announcer := newTestRegistry()
	userID := uuid.New()

	registry.Register(userID, newFakeEndpoint())
	registry.Unregister(userID)
	registry.Unregister(userID)

	assert.False(t, registry.IsOnline(userID))
	assert.Empty(t, announcer.last())

	// Register + two unregisters: three mutations, three announcements.
	assert.Equal(t, 3, announcer.callCount())
}

func TestRegistry_UnregisterUnknownUserAnnounces(t *testing.T) {
	registry, announcer := newTestRegistry()

	registry.Unregister(uuid.New())

	assert.Equal(t, 1, announcer.callCount())
	assert.Empty(t, announcer.last())
}

func TestRegistry_ReleaseOnlyRemovesCurrentEndpoint(t *testing.T) {
	registry, _ := newTestRegistry()
	userID := uuid.New()
	first := newFakeEndpoint()
	second := newFakeEndpoint()

	registry.Register(userID, first)
	registry.Register(userID, second)

	// The replaced connection tears down late; it must not evict its
	// successor.
	registry.Release(userID, first)
	assert.True(t, registry.IsOnline(userID))

	registry.Release(userID, second)
	assert.False(t, registry.IsOnline(userID))
}

func TestRegistry_SnapshotIsSorted(t *testing.T) {
	registry, _ := newTestRegistry()

	ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
	for _, id := range ids {
		registry.Register(id, newFakeEndpoint())
	}

	snapshot := registry.Snapshot()
	require.Len(t, snapshot, len(ids))
	for i := 1; i < len(snapshot); i++ {
		assert.Less(t, snapshot[i-1].String(), snapshot[i].String())
	}
}

func TestRegistry_PushMessageOfflineRecipient(t *testing.T) {
	registry, _ := newTestRegistry()

	err := registry.PushMessage(uuid.New(), &entity.Message{})
	assert.ErrorIs(t, err, service.ErrRecipientOffline)
}

func TestRegistry_PushMessageDeliversToEndpoint(t *testing.T) {
	registry, _ := newTestRegistry()
	userID := uuid.New()
	ep := newFakeEndpoint()
	registry.Register(userID, ep)

	message := &entity.Message{ID: uuid.New(), RecipientID: userID, Text: "hello"}
	require.NoError(t, registry.PushMessage(userID, message))

	events := ep.received()
	// The registration announcement plus the message push.
	require.Len(t, events, 2)
	assert.Equal(t, EventNewMessage, events[1].Type)
	assert.Equal(t, message, events[1].Payload)
}

func TestRegistry_PushMessageSurfacesEndpointFailure(t *testing.T) {
	registry, _ := newTestRegistry()
	userID := uuid.New()
	ep := newFakeEndpoint()
	registry.Register(userID, ep)

	ep.mu.Lock()
	ep.sendErr = errors.New("buffer full")
	ep.mu.Unlock()

	err := registry.PushMessage(userID, &entity.Message{})
	require.Error(t, err)
	assert.NotErrorIs(t, err, service.ErrRecipientOffline)
}

func TestRegistry_CloseAllClosesEveryEndpoint(t *testing.T) {
	registry, _ := newTestRegistry()

	endpoints := []*fakeEndpoint{newFakeEndpoint(), newFakeEndpoint()}
	for _, ep := range endpoints {
		registry.Register(uuid.New(), ep)
	}

	registry.CloseAll()

	assert.Empty(t, registry.Snapshot())
	for _, ep := range endpoints {
		assert.True(t, ep.closed)
	}
}

func TestRegistry_ConcurrentRegisterUnregister(t *testing.T) {
	registry, _ := newTestRegistry()

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			userID := uuid.New()
			for range 50 {
				ep := newFakeEndpoint()
				registry.Register(userID, ep)
				registry.IsOnline(userID)
				registry.Release(userID, ep)
			}
		}()
	}
	wg.Wait()

	assert.Empty(t, registry.Snapshot())
}
