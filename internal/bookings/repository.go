package bookings

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrPersistenceFailure wraps store/transport errors. It is retry-safe:
// callers surface it to the user without discarding local state.
var ErrPersistenceFailure = errors.New("booking store unavailable")

// Repository is the document-store contract the composer writes through
// and the upcoming filter reads through. Records are create-only.
type Repository interface {
	Create(ctx context.Context, booking *Booking) error
	GetByUserID(ctx context.Context, userID uuid.UUID) ([]Booking, error)
	GetStartingBetween(ctx context.Context, from, to time.Time) ([]Booking, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, booking *Booking) error {
	if err := r.db.WithContext(ctx).Create(booking).Error; err != nil {
		return fmt.Errorf("%w: %v", ErrPersistenceFailure, err)
	}
	return nil
}

// GetByUserID is an equality filter on user_id. No ordering is promised
// here; FilterUpcoming imposes the user-facing order.
func (r *repository) GetByUserID(ctx context.Context, userID uuid.UUID) ([]Booking, error) {
	var records []Booking
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistenceFailure, err)
	}
	return records, nil
}

// GetStartingBetween returns bookings whose derived instant falls in
// (from, to]. Legacy rows without starts_at are skipped; the reminder
// sweep tolerates that, the upcoming filter handles them separately.
func (r *repository) GetStartingBetween(ctx context.Context, from, to time.Time) ([]Booking, error) {
	var records []Booking
	err := r.db.WithContext(ctx).
		Where("starts_at > ? AND starts_at <= ?", from, to).
		Order("starts_at ASC").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPersistenceFailure, err)
	}
	return records, nil
}
