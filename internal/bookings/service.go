package bookings

import (
	"context"
	"sync"
	"time"

	"groomglow/internal/identity"
	"groomglow/internal/notifications"
	"groomglow/pkg/cache"
	"groomglow/pkg/liveness"
	"groomglow/pkg/logger"

	"github.com/google/uuid"
)

// Service interface defines the contract for the booking workflow: the
// draft composition operations, submission, and the upcoming list.
type Service interface {
	SetDate(ctx context.Context, userID uuid.UUID, day time.Time) (*DraftResponse, error)
	SetTime(ctx context.Context, userID uuid.UUID, clock time.Time) (*DraftResponse, error)
	ToggleService(ctx context.Context, userID uuid.UUID, serviceID string) (*DraftResponse, error)
	GetDraft(ctx context.Context, userID uuid.UUID) (*DraftResponse, error)
	Submit(ctx context.Context, userID uuid.UUID) (*ConfirmationResponse, error)
	DiscardDraft(userID uuid.UUID)
	GetUpcoming(ctx context.Context, userID uuid.UUID) ([]UpcomingBookingResponse, error)
	Close()
}

// draftSession pairs one live composer with the liveness scope guarding
// its async completions.
type draftSession struct {
	composer *Composer
	scope    *liveness.Scope
}

type service struct {
	repo        Repository
	sessions    *identity.Provider
	producer    notifications.Producer // optional
	cache       cache.Service          // optional
	upcomingTTL time.Duration
	log         *logger.Logger
	clock       func() time.Time

	mu          sync.Mutex
	active      map[uuid.UUID]*draftSession
	unsubscribe func()
}

// NewService creates the booking service. producer and cacheSvc may be
// nil; both concerns degrade to no-ops. A clock of nil means wall time.
func NewService(repo Repository, sessions *identity.Provider, producer notifications.Producer, cacheSvc cache.Service, upcomingTTL time.Duration, clock func() time.Time) Service {
	if clock == nil {
		clock = time.Now
	}
	s := &service{
		repo:        repo,
		sessions:    sessions,
		producer:    producer,
		cache:       cacheSvc,
		upcomingTTL: upcomingTTL,
		log:         logger.GetDefault(),
		clock:       clock,
		active:      make(map[uuid.UUID]*draftSession),
	}

	// Drop the draft when its owner signs out. The unsubscribe is kept
	// so Close does not leak the listener.
	if sessions != nil {
		s.unsubscribe = sessions.OnChange(func(change identity.Change) {
			if change.SignedIn {
				return
			}
			if uid, err := uuid.Parse(change.Session.UID); err == nil {
				s.DiscardDraft(uid)
			}
		})
	}

	return s
}

func (s *service) session(userID uuid.UUID) *draftSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.active[userID]
	if !ok {
		entry = &draftSession{
			composer: NewComposer(s.repo, s.clock),
			scope:    liveness.NewScope(),
		}
		s.active[userID] = entry
	}
	return entry
}

func (s *service) SetDate(ctx context.Context, userID uuid.UUID, day time.Time) (*DraftResponse, error) {
	return newDraftResponse(s.session(userID).composer.SetDate(day)), nil
}

func (s *service) SetTime(ctx context.Context, userID uuid.UUID, clock time.Time) (*DraftResponse, error) {
	return newDraftResponse(s.session(userID).composer.SetTime(clock)), nil
}

func (s *service) ToggleService(ctx context.Context, userID uuid.UUID, serviceID string) (*DraftResponse, error) {
	draft, err := s.session(userID).composer.ToggleService(serviceID)
	if err != nil {
		return nil, err
	}
	return newDraftResponse(draft), nil
}

func (s *service) GetDraft(ctx context.Context, userID uuid.UUID) (*DraftResponse, error) {
	return newDraftResponse(s.session(userID).composer.Snapshot()), nil
}

// Submit resolves the current identity and hands the draft to the
// composer for the single create call. A persistence failure keeps the
// draft; success discards it, invalidates the cached upcoming list and
// publishes a confirmation event.
func (s *service) Submit(ctx context.Context, userID uuid.UUID) (*ConfirmationResponse, error) {
	who, err := s.sessions.Current(ctx, userID.String())
	if err != nil {
		return nil, err
	}

	entry := s.session(userID)
	record, err := entry.composer.Submit(ctx, entry.scope, who)
	if err != nil {
		return nil, err
	}

	s.log.LogBookingSubmitted(ctx, record.ID.String(), record.UserID.String(), record.TotalPrice)

	// The draft is gone; the session is complete. Remove the entry only
	// if it is still the one that submitted: a teardown during the store
	// call may already have replaced it with a fresh session, which this
	// completion must not touch.
	s.mu.Lock()
	if s.active[userID] == entry {
		delete(s.active, userID)
	}
	s.mu.Unlock()

	s.invalidateUpcoming(ctx, userID)
	s.publishConfirmed(ctx, record)

	return newConfirmationResponse(record), nil
}

// DiscardDraft tears down a user's composition context. The scope is
// killed first so any in-flight submission completion is dropped rather
// than applied to a context that no longer exists.
func (s *service) DiscardDraft(userID uuid.UUID) {
	s.mu.Lock()
	entry, ok := s.active[userID]
	if ok {
		delete(s.active, userID)
	}
	s.mu.Unlock()

	if ok {
		entry.scope.Kill()
	}
}

func (s *service) GetUpcoming(ctx context.Context, userID uuid.UUID) ([]UpcomingBookingResponse, error) {
	cacheKey := upcomingCacheKey(userID)
	if s.cache != nil {
		var cached []UpcomingBookingResponse
		// a cached list may include an appointment whose start time passed
		// within the last TTL; the filter reapplies on the next miss
		if err := s.cache.Get(ctx, cacheKey, &cached); err == nil {
			return cached, nil
		}
	}

	records, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	upcoming, malformed := FilterUpcoming(records, s.clock())
	for _, b := range malformed {
		s.log.LogMalformedRecord(ctx, b.ID.String(), b.Date, b.Time)
	}

	result := make([]UpcomingBookingResponse, 0, len(upcoming))
	for _, b := range upcoming {
		instant, _ := DeriveInstant(b)
		result = append(result, UpcomingBookingResponse{
			BookingID:    b.ID.String(),
			Date:         b.Date,
			Time:         b.Time,
			ServiceNames: []string(b.ServiceNames),
			TotalPrice:   b.TotalPrice,
			Status:       b.Status.String(),
			StartsAt:     instant,
		})
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, cacheKey, result, s.upcomingTTL); err != nil {
			s.log.WithError(err).Warn("failed to cache upcoming bookings")
		}
	}

	return result, nil
}

// Close unregisters the auth listener.
func (s *service) Close() {
	if s.unsubscribe != nil {
		s.unsubscribe()
	}
}

func (s *service) invalidateUpcoming(ctx context.Context, userID uuid.UUID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, upcomingCacheKey(userID)); err != nil {
		s.log.WithError(err).Warn("failed to invalidate upcoming cache")
	}
}

// publishConfirmed is fire-and-forget: an event that cannot be
// published never fails the submission that produced it.
func (s *service) publishConfirmed(ctx context.Context, record *Booking) {
	if s.producer == nil {
		return
	}
	event := &notifications.BookingEvent{
		Type:         notifications.EventBookingConfirmed,
		BookingID:    record.ID,
		UserID:       record.UserID,
		UserEmail:    record.UserEmail,
		Date:         record.Date,
		Time:         record.Time,
		ServiceNames: []string(record.ServiceNames),
		TotalPrice:   record.TotalPrice,
	}
	if err := s.producer.PublishBookingEvent(ctx, event); err != nil {
		s.log.WithError(err).Warn("failed to publish booking confirmed event")
	}
}

func upcomingCacheKey(userID uuid.UUID) string {
	return "bookings:upcoming:" + userID.String()
}
