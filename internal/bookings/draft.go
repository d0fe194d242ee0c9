package bookings

import (
	"time"

	"groomglow/internal/catalog"
)

// Date and time formats on persisted records. The combined layout is
// what the upcoming filter falls back to when a record carries no
// structured instant.
const (
	DateLayout     = "2006-01-02"
	TimeLayout     = "3:04 PM"
	combinedLayout = DateLayout + " " + TimeLayout
)

// Draft is the in-progress booking being composed in one session.
// It is a value: every operation returns a new Draft, and TotalPrice is
// recomputed from the selection set on every change rather than carried
// forward incrementally, so selection and total can never drift apart.
type Draft struct {
	When       time.Time
	Selected   map[string]bool
	TotalPrice int
}

// NewDraft returns an empty draft anchored at now (current date and time,
// no services selected).
func NewDraft(now time.Time) Draft {
	return Draft{
		When:     now,
		Selected: map[string]bool{},
	}
}

// WithDate replaces the calendar-day component, preserving the clock.
// Past dates are deliberately accepted.
func (d Draft) WithDate(day time.Time) Draft {
	next := d.clone()
	next.When = time.Date(
		day.Year(), day.Month(), day.Day(),
		d.When.Hour(), d.When.Minute(), 0, 0,
		d.When.Location(),
	)
	return next
}

// WithTime replaces the clock component, preserving the calendar day.
func (d Draft) WithTime(clock time.Time) Draft {
	next := d.clone()
	next.When = time.Date(
		d.When.Year(), d.When.Month(), d.When.Day(),
		clock.Hour(), clock.Minute(), 0, 0,
		d.When.Location(),
	)
	return next
}

// WithServiceToggled flips serviceID's membership in the selection and
// recomputes the total atomically with the change. Unknown ids are a
// caller error.
func (d Draft) WithServiceToggled(serviceID string) (Draft, error) {
	if !catalog.Exists(serviceID) {
		return d, ErrInvalidService
	}

	next := d.clone()
	if next.Selected[serviceID] {
		delete(next.Selected, serviceID)
	} else {
		next.Selected[serviceID] = true
	}
	next.TotalPrice = catalog.TotalPrice(next.Selected)
	return next, nil
}

// HasSelection reports whether at least one service is selected.
func (d Draft) HasSelection() bool {
	return len(d.Selected) > 0
}

// DateString is the locale-stable calendar rendering put on records.
func (d Draft) DateString() string {
	return d.When.Format(DateLayout)
}

// TimeString is the locale-stable clock rendering put on records.
func (d Draft) TimeString() string {
	return d.When.Format(TimeLayout)
}

// ServiceNames resolves the selection to display names in catalog order,
// independent of the order services were toggled in.
func (d Draft) ServiceNames() []string {
	return catalog.ResolveNames(d.Selected)
}

func (d Draft) clone() Draft {
	selected := make(map[string]bool, len(d.Selected))
	for id := range d.Selected {
		selected[id] = true
	}
	return Draft{
		When:       d.When,
		Selected:   selected,
		TotalPrice: d.TotalPrice,
	}
}
