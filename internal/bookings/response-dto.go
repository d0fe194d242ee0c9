package bookings

import (
	"time"

	"groomglow/internal/catalog"
)

// DraftResponse is the composer state echoed back after every draft
// mutation so the client can render selection and total together.
type DraftResponse struct {
	Date         string   `json:"date"`
	Time         string   `json:"time"`
	ServiceIDs   []string `json:"service_ids"`
	ServiceNames []string `json:"service_names"`
	TotalPrice   int      `json:"total_price"`
}

// ConfirmationResponse carries the submitted snapshot shown on the
// confirmation screen. It is built from the values that were written,
// never re-read from the store.
type ConfirmationResponse struct {
	BookingID    string    `json:"booking_id"`
	Date         string    `json:"date"`
	Time         string    `json:"time"`
	ServiceNames []string  `json:"service_names"`
	TotalPrice   int       `json:"total_price"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

// UpcomingBookingResponse is one future appointment in the profile list.
type UpcomingBookingResponse struct {
	BookingID    string    `json:"booking_id"`
	Date         string    `json:"date"`
	Time         string    `json:"time"`
	ServiceNames []string  `json:"service_names"`
	TotalPrice   int       `json:"total_price"`
	Status       string    `json:"status"`
	StartsAt     time.Time `json:"starts_at"`
}

func newDraftResponse(d Draft) *DraftResponse {
	ids := make([]string, 0, len(d.Selected))
	for _, s := range catalog.Services() {
		if d.Selected[s.ID] {
			ids = append(ids, s.ID)
		}
	}
	return &DraftResponse{
		Date:         d.DateString(),
		Time:         d.TimeString(),
		ServiceIDs:   ids,
		ServiceNames: d.ServiceNames(),
		TotalPrice:   d.TotalPrice,
	}
}

func newConfirmationResponse(b *Booking) *ConfirmationResponse {
	return &ConfirmationResponse{
		BookingID:    b.ID.String(),
		Date:         b.Date,
		Time:         b.Time,
		ServiceNames: []string(b.ServiceNames),
		TotalPrice:   b.TotalPrice,
		Status:       b.Status.String(),
		CreatedAt:    b.CreatedAt,
	}
}
