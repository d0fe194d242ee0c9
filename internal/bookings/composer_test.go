package bookings

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"groomglow/internal/identity"
	"groomglow/pkg/liveness"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockRepository records create calls and can be told to fail or to
// block until released.
type mockRepository struct {
	mu      sync.Mutex
	created []Booking
	failErr error
	block   chan struct{} // when non-nil, Create waits on it
	entered chan struct{} // when non-nil, Create signals entry once
}

func (m *mockRepository) Create(ctx context.Context, booking *Booking) error {
	if m.entered != nil {
		m.entered <- struct{}{}
	}
	if m.block != nil {
		<-m.block
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failErr != nil {
		return m.failErr
	}
	booking.ID = uuid.New()
	m.created = append(m.created, *booking)
	return nil
}

func (m *mockRepository) GetByUserID(ctx context.Context, userID uuid.UUID) ([]Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []Booking
	for _, b := range m.created {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (m *mockRepository) GetStartingBetween(ctx context.Context, from, to time.Time) ([]Booking, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []Booking
	for _, b := range m.created {
		if b.StartsAt != nil && b.StartsAt.After(from) && !b.StartsAt.After(to) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (m *mockRepository) createCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.created)
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func testSession() *identity.Session {
	return &identity.Session{UID: uuid.NewString(), Email: "user@example.com"}
}

func TestSubmitHappyPath(t *testing.T) {
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	repo := &mockRepository{}
	c := NewComposer(repo, fixedClock(now))

	c.SetDate(time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC))
	c.SetTime(time.Date(0, 1, 1, 15, 30, 0, 0, time.UTC))
	_, err := c.ToggleService("1")
	require.NoError(t, err)
	_, err = c.ToggleService("4")
	require.NoError(t, err)

	who := testSession()
	record, err := c.Submit(context.Background(), liveness.NewScope(), who)
	require.NoError(t, err)

	assert.Equal(t, "2025-04-10", record.Date)
	assert.Equal(t, "3:30 PM", record.Time)
	assert.Equal(t, []string{"Haircut", "Scalp Treatment"}, []string(record.ServiceNames))
	assert.Equal(t, 1200, record.TotalPrice)
	assert.Equal(t, StatusPending, record.Status)
	assert.Equal(t, who.Email, record.UserEmail)
	require.NotNil(t, record.StartsAt)
	assert.Equal(t, time.Date(2025, 4, 10, 15, 30, 0, 0, time.UTC), *record.StartsAt)

	// draft reset after success
	assert.False(t, c.Snapshot().HasSelection())
	assert.Equal(t, 1, repo.createCount())
}

func TestSubmitEmptySelectionNeverReachesStore(t *testing.T) {
	repo := &mockRepository{}
	c := NewComposer(repo, nil)

	_, err := c.Submit(context.Background(), liveness.NewScope(), testSession())
	assert.ErrorIs(t, err, ErrEmptySelection)
	assert.Equal(t, 0, repo.createCount())
}

func TestSubmitWithoutIdentityNeverReachesStore(t *testing.T) {
	repo := &mockRepository{}
	c := NewComposer(repo, nil)
	_, err := c.ToggleService("1")
	require.NoError(t, err)

	_, err = c.Submit(context.Background(), liveness.NewScope(), nil)
	assert.ErrorIs(t, err, ErrNotAuthenticated)

	_, err = c.Submit(context.Background(), liveness.NewScope(), &identity.Session{UID: "not-a-uuid"})
	assert.ErrorIs(t, err, ErrNotAuthenticated)

	assert.Equal(t, 0, repo.createCount())
}

func TestSubmitFailurePreservesDraft(t *testing.T) {
	repo := &mockRepository{failErr: errors.New("connection refused")}
	c := NewComposer(repo, nil)

	_, err := c.ToggleService("2")
	require.NoError(t, err)
	before := c.Snapshot()

	_, err = c.Submit(context.Background(), liveness.NewScope(), testSession())
	require.Error(t, err)

	after := c.Snapshot()
	assert.Equal(t, before.Selected, after.Selected)
	assert.Equal(t, before.TotalPrice, after.TotalPrice)

	// a retry after the store recovers succeeds with the same input
	repo.mu.Lock()
	repo.failErr = nil
	repo.mu.Unlock()

	record, err := c.Submit(context.Background(), liveness.NewScope(), testSession())
	require.NoError(t, err)
	assert.Equal(t, 300, record.TotalPrice)
}

func TestSubmitSerialized(t *testing.T) {
	repo := &mockRepository{
		block:   make(chan struct{}),
		entered: make(chan struct{}, 1),
	}
	c := NewComposer(repo, nil)
	_, err := c.ToggleService("1")
	require.NoError(t, err)

	who := testSession()
	firstDone := make(chan error, 1)
	go func() {
		_, err := c.Submit(context.Background(), liveness.NewScope(), who)
		firstDone <- err
	}()

	// wait until the first submission reaches the store, then try again
	<-repo.entered
	_, err = c.Submit(context.Background(), liveness.NewScope(), who)
	assert.ErrorIs(t, err, ErrSubmitInFlight)

	close(repo.block)
	require.NoError(t, <-firstDone)
	assert.Equal(t, 1, repo.createCount())
}

func TestSubmitCompletionDroppedAfterTeardown(t *testing.T) {
	repo := &mockRepository{}
	c := NewComposer(repo, nil)
	_, err := c.ToggleService("1")
	require.NoError(t, err)

	scope := liveness.NewScope()
	scope.Kill()

	record, err := c.Submit(context.Background(), scope, testSession())
	require.NoError(t, err)
	require.NotNil(t, record)

	// the record was stored, but the dead scope keeps the local draft
	// from being reset
	assert.Equal(t, 1, repo.createCount())
	assert.True(t, c.Snapshot().HasSelection())
}
