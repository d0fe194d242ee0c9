package bookings

import (
	"context"
	"errors"
	"sync"
	"time"

	"groomglow/internal/catalog"
	"groomglow/internal/identity"
	"groomglow/pkg/liveness"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

var (
	// ErrEmptySelection blocks submission with no services selected.
	// Well-formed clients disable the submit action instead of hitting
	// this, but the composer enforces it regardless.
	ErrEmptySelection = errors.New("no services selected")

	// ErrInvalidService is returned for toggles of ids absent from the
	// catalog.
	ErrInvalidService = catalog.ErrUnknownService

	// ErrNotAuthenticated mirrors the identity provider's sentinel so
	// callers can match on either package.
	ErrNotAuthenticated = identity.ErrNotAuthenticated

	// ErrSubmitInFlight rejects a second submission while one is still
	// being persisted.
	ErrSubmitInFlight = errors.New("a submission is already in progress")
)

// Composer owns one Draft for one user session and enforces the
// submission preconditions. Draft mutations are serialized; a submission
// failure leaves the draft intact so a retry loses no input.
type Composer struct {
	repo  Repository
	clock func() time.Time

	mu       sync.Mutex
	draft    Draft
	inFlight bool
}

// NewComposer returns a composer with a fresh draft anchored at the
// current time.
func NewComposer(repo Repository, clock func() time.Time) *Composer {
	if clock == nil {
		clock = time.Now
	}
	return &Composer{
		repo:  repo,
		clock: clock,
		draft: NewDraft(clock()),
	}
}

// SetDate replaces the draft's calendar day, keeping the clock.
func (c *Composer) SetDate(day time.Time) Draft {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.draft = c.draft.WithDate(day)
	return c.draft.clone()
}

// SetTime replaces the draft's clock, keeping the calendar day.
func (c *Composer) SetTime(clock time.Time) Draft {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.draft = c.draft.WithTime(clock)
	return c.draft.clone()
}

// ToggleService flips a service selection and recomputes the total.
func (c *Composer) ToggleService(serviceID string) (Draft, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	next, err := c.draft.WithServiceToggled(serviceID)
	if err != nil {
		return c.draft.clone(), err
	}
	c.draft = next
	return c.draft.clone(), nil
}

// Snapshot returns a copy of the current draft.
func (c *Composer) Snapshot() Draft {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.draft.clone()
}

// Submit validates the draft and issues exactly one create call to the
// store. Preconditions are checked before any I/O: an empty selection or
// a missing identity never reaches the store. On a persistence failure
// the draft is preserved for retry; on success it is discarded, and the
// returned record is the submitted snapshot, not a re-read.
//
// The scope is checked again after the store call: if the owning context
// was torn down while the write was in flight, the completion is not
// applied (the record exists, but no local state changes).
func (c *Composer) Submit(ctx context.Context, scope *liveness.Scope, who *identity.Session) (*Booking, error) {
	c.mu.Lock()
	if c.inFlight {
		c.mu.Unlock()
		return nil, ErrSubmitInFlight
	}

	draft := c.draft.clone()
	if !draft.HasSelection() {
		c.mu.Unlock()
		return nil, ErrEmptySelection
	}
	if who == nil {
		c.mu.Unlock()
		return nil, ErrNotAuthenticated
	}
	userID, err := uuid.Parse(who.UID)
	if err != nil {
		c.mu.Unlock()
		return nil, ErrNotAuthenticated
	}

	c.inFlight = true
	c.mu.Unlock()

	startsAt := draft.When.Truncate(time.Minute)
	record := &Booking{
		UserID:       userID,
		UserEmail:    who.Email,
		ServiceNames: datatypes.NewJSONSlice(draft.ServiceNames()),
		Date:         draft.DateString(),
		Time:         draft.TimeString(),
		TotalPrice:   draft.TotalPrice,
		Status:       StatusPending,
		StartsAt:     &startsAt,
		CreatedAt:    c.clock(),
	}

	err = c.repo.Create(ctx, record)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.inFlight = false

	if err != nil {
		// Draft stays as-is so the user can retry without re-entering
		// their selection.
		return nil, err
	}

	if scope.Alive() {
		c.draft = NewDraft(c.clock())
	}
	return record, nil
}
