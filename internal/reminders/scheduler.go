package reminders

import (
	"context"
	"time"

	"groomglow/internal/bookings"
	"groomglow/internal/notifications"
	"groomglow/internal/shared/config"
	"groomglow/pkg/logger"

	"github.com/robfig/cron/v3"
)

// Scheduler runs a periodic sweep over bookings starting within the
// configured horizon and publishes a reminder event for each. Reminders
// are advisory: a failed publish is logged and retried on the next
// sweep, never surfaced to the user.
type Scheduler struct {
	repo     bookings.Repository
	producer notifications.Producer
	cfg      config.ReminderConfig
	log      *logger.Logger
	cron     *cron.Cron
	clock    func() time.Time
}

// NewScheduler creates the reminder scheduler. A clock of nil means
// wall time.
func NewScheduler(repo bookings.Repository, producer notifications.Producer, cfg config.ReminderConfig, clock func() time.Time) *Scheduler {
	if clock == nil {
		clock = time.Now
	}
	return &Scheduler{
		repo:     repo,
		producer: producer,
		cfg:      cfg,
		log:      logger.GetDefault(),
		cron:     cron.New(),
		clock:    clock,
	}
}

// Start registers the sweep on the configured cron schedule and starts
// the cron runner.
func (s *Scheduler) Start() error {
	_, err := s.cron.AddFunc(s.cfg.Schedule, func() {
		s.Sweep(context.Background())
	})
	if err != nil {
		return err
	}
	s.cron.Start()
	s.log.Info("reminder scheduler started", "schedule", s.cfg.Schedule, "horizon", s.cfg.Horizon.String())
	return nil
}

// Stop halts the cron runner and waits for a running sweep to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

// Sweep publishes a reminder for every booking starting within the
// horizon. It is safe to call directly, outside the cron schedule.
func (s *Scheduler) Sweep(ctx context.Context) {
	now := s.clock()
	upcoming, err := s.repo.GetStartingBetween(ctx, now, now.Add(s.cfg.Horizon))
	if err != nil {
		s.log.WithError(err).Error("reminder sweep failed to query bookings")
		return
	}

	sent := 0
	for i := range upcoming {
		b := &upcoming[i]
		event := &notifications.BookingEvent{
			Type:         notifications.EventBookingReminder,
			BookingID:    b.ID,
			UserID:       b.UserID,
			UserEmail:    b.UserEmail,
			Date:         b.Date,
			Time:         b.Time,
			ServiceNames: []string(b.ServiceNames),
			TotalPrice:   b.TotalPrice,
		}
		if err := s.producer.PublishBookingEvent(ctx, event); err != nil {
			s.log.WithError(err).Error("failed to publish booking reminder", "booking_id", b.ID.String())
			continue
		}
		sent++
	}

	s.log.Info("reminder sweep completed", "candidates", len(upcoming), "sent", sent)
}
