package notifications

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type EventType string

const (
	EventBookingConfirmed EventType = "BOOKING_CONFIRMED"
	EventBookingReminder  EventType = "BOOKING_REMINDER"
)

// BookingEvent is the message published for downstream consumers
// (email/SMS senders) when a booking is persisted or is about to start.
type BookingEvent struct {
	ID           uuid.UUID `json:"id"`
	Type         EventType `json:"type"`
	BookingID    uuid.UUID `json:"booking_id"`
	UserID       uuid.UUID `json:"user_id"`
	UserEmail    string    `json:"user_email"`
	Date         string    `json:"date"`
	Time         string    `json:"time"`
	ServiceNames []string  `json:"service_names"`
	TotalPrice   int       `json:"total_price"`
	OccurredAt   time.Time `json:"occurred_at"`
}

// ToJSON serializes the event for the wire.
func (e *BookingEvent) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// PartitionKey routes all of one user's events to the same partition.
func (e *BookingEvent) PartitionKey() string {
	return e.UserID.String()
}
