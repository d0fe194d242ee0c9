package bookings

import (
	"context"
	"testing"
	"time"

	"groomglow/internal/identity"
	"groomglow/internal/notifications"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memorySessionStore struct {
	sessions map[string]identity.Session
}

func newMemorySessionStore() *memorySessionStore {
	return &memorySessionStore{sessions: make(map[string]identity.Session)}
}

func (m *memorySessionStore) Put(ctx context.Context, session identity.Session, ttl time.Duration) error {
	m.sessions[session.UID] = session
	return nil
}

func (m *memorySessionStore) Get(ctx context.Context, uid string) (*identity.Session, error) {
	session, ok := m.sessions[uid]
	if !ok {
		return nil, nil
	}
	return &session, nil
}

func (m *memorySessionStore) Delete(ctx context.Context, uid string) error {
	delete(m.sessions, uid)
	return nil
}

type mockProducer struct {
	events []*notifications.BookingEvent
}

func (m *mockProducer) PublishBookingEvent(ctx context.Context, event *notifications.BookingEvent) error {
	m.events = append(m.events, event)
	return nil
}

func (m *mockProducer) Close() error { return nil }

func serviceFixture(t *testing.T, now time.Time) (Service, *mockRepository, *identity.Provider, *mockProducer, uuid.UUID) {
	t.Helper()

	repo := &mockRepository{}
	sessions := identity.NewProvider(newMemorySessionStore(), time.Hour)
	producer := &mockProducer{}

	userID := uuid.New()
	require.NoError(t, sessions.SignIn(context.Background(), identity.Session{
		UID:   userID.String(),
		Email: "user@example.com",
	}))

	svc := NewService(repo, sessions, producer, nil, time.Minute, fixedClock(now))
	t.Cleanup(svc.Close)

	return svc, repo, sessions, producer, userID
}

func TestServiceSubmitFlow(t *testing.T) {
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	svc, repo, _, producer, userID := serviceFixture(t, now)
	ctx := context.Background()

	_, err := svc.SetDate(ctx, userID, time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	_, err = svc.SetTime(ctx, userID, time.Date(0, 1, 1, 15, 30, 0, 0, time.UTC))
	require.NoError(t, err)
	draft, err := svc.ToggleService(ctx, userID, "1")
	require.NoError(t, err)
	assert.Equal(t, 500, draft.TotalPrice)

	confirmation, err := svc.Submit(ctx, userID)
	require.NoError(t, err)

	assert.Equal(t, "2025-04-10", confirmation.Date)
	assert.Equal(t, "3:30 PM", confirmation.Time)
	assert.Equal(t, []string{"Haircut"}, confirmation.ServiceNames)
	assert.Equal(t, "PENDING", confirmation.Status)
	assert.Equal(t, 1, repo.createCount())

	// a confirmed event went out with the record's snapshot
	require.Len(t, producer.events, 1)
	assert.Equal(t, notifications.EventBookingConfirmed, producer.events[0].Type)
	assert.Equal(t, 500, producer.events[0].TotalPrice)

	// the next draft starts empty
	next, err := svc.GetDraft(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, next.ServiceIDs)
	assert.Equal(t, 0, next.TotalPrice)
}

func TestServiceSubmitRequiresSession(t *testing.T) {
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	svc, repo, sessions, _, userID := serviceFixture(t, now)
	ctx := context.Background()

	_, err := svc.ToggleService(ctx, userID, "1")
	require.NoError(t, err)

	require.NoError(t, sessions.SignOut(ctx, userID.String()))

	_, err = svc.Submit(ctx, userID)
	assert.ErrorIs(t, err, identity.ErrNotAuthenticated)
	assert.Equal(t, 0, repo.createCount())
}

func TestServiceSignOutDiscardsDraft(t *testing.T) {
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	svc, _, sessions, _, userID := serviceFixture(t, now)
	ctx := context.Background()

	draft, err := svc.ToggleService(ctx, userID, "2")
	require.NoError(t, err)
	assert.Equal(t, 300, draft.TotalPrice)

	require.NoError(t, sessions.SignOut(ctx, userID.String()))

	// a fresh session starts from an empty draft
	fresh, err := svc.GetDraft(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, fresh.ServiceIDs)
	assert.Equal(t, 0, fresh.TotalPrice)
}

func TestServiceSubmitCompletionLeavesNewDraftAlone(t *testing.T) {
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	svc, repo, _, _, userID := serviceFixture(t, now)
	ctx := context.Background()

	repo.block = make(chan struct{})
	repo.entered = make(chan struct{}, 1)

	_, err := svc.ToggleService(ctx, userID, "1")
	require.NoError(t, err)

	submitDone := make(chan error, 1)
	go func() {
		_, err := svc.Submit(ctx, userID)
		submitDone <- err
	}()

	// tear down while the store call is in flight, then start composing
	// a fresh draft
	<-repo.entered
	svc.DiscardDraft(userID)
	fresh, err := svc.ToggleService(ctx, userID, "3")
	require.NoError(t, err)
	assert.Equal(t, 800, fresh.TotalPrice)

	close(repo.block)
	require.NoError(t, <-submitDone)

	// the stale completion must not have wiped the new session
	after, err := svc.GetDraft(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, []string{"3"}, after.ServiceIDs)
	assert.Equal(t, 800, after.TotalPrice)
}

func TestServiceGetUpcomingSkipsPastAndMalformed(t *testing.T) {
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	svc, repo, _, _, userID := serviceFixture(t, now)
	ctx := context.Background()

	past := time.Date(2025, 2, 1, 10, 0, 0, 0, time.UTC)
	future := time.Date(2025, 3, 5, 10, 0, 0, 0, time.UTC)
	repo.created = []Booking{
		{ID: uuid.New(), UserID: userID, Date: past.Format(DateLayout), Time: past.Format(TimeLayout), Status: StatusPending},
		{ID: uuid.New(), UserID: userID, Date: "", Time: "", Status: StatusPending},
		{ID: uuid.New(), UserID: userID, Date: future.Format(DateLayout), Time: future.Format(TimeLayout), Status: StatusPending},
	}

	upcoming, err := svc.GetUpcoming(ctx, userID)
	require.NoError(t, err)
	require.Len(t, upcoming, 1)
	assert.Equal(t, "2025-03-05", upcoming[0].Date)
	assert.Equal(t, future, upcoming[0].StartsAt)
}
