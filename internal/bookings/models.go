package bookings

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Booking is the persisted outcome of one successful submission.
// ServiceNames is a denormalized snapshot of the catalog names resolved
// at submission time, not a live reference to the catalog. Rows are
// append-only: the client never updates or deletes them.
type Booking struct {
	ID           uuid.UUID                   `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID       uuid.UUID                   `gorm:"type:uuid;index;not null" json:"user_id"`
	UserEmail    string                      `gorm:"not null" json:"user_email"`
	ServiceNames datatypes.JSONSlice[string] `gorm:"not null" json:"service_names"`
	Date         string                      `gorm:"type:varchar(10);not null" json:"date"`
	Time         string                      `gorm:"type:varchar(8);not null" json:"time"`
	TotalPrice   int                         `gorm:"not null" json:"total_price"`
	Status       Status                      `gorm:"type:varchar(20);default:'PENDING'" json:"status"`
	StartsAt     *time.Time                  `gorm:"index" json:"starts_at,omitempty"`
	CreatedAt    time.Time                   `json:"created_at"`
}

// TableName sets the table name for Booking
func (Booking) TableName() string {
	return "bookings"
}
