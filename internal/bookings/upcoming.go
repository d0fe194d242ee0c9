package bookings

import (
	"errors"
	"sort"
	"time"
)

// ErrMalformedRecord marks a stored record whose date/time combination
// cannot be turned into a comparison instant.
var ErrMalformedRecord = errors.New("malformed booking record")

// DeriveInstant produces the single comparison instant for a record:
// the structured StartsAt when present, otherwise the record's date and
// time strings combined and parsed. Parsed instants are in UTC.
func DeriveInstant(b Booking) (time.Time, error) {
	if b.StartsAt != nil && !b.StartsAt.IsZero() {
		return *b.StartsAt, nil
	}

	instant, err := time.Parse(combinedLayout, b.Date+" "+b.Time)
	if err != nil {
		return time.Time{}, ErrMalformedRecord
	}
	return instant, nil
}

// FilterUpcoming partitions records into those strictly after now and
// those that could not be given an instant at all. It is pure: no I/O,
// no shared state, identical inputs give identical outputs. The result
// is sorted ascending by derived instant; the store promises no order,
// so a stable user-facing one is imposed here. Records exactly at now
// are not upcoming.
func FilterUpcoming(records []Booking, now time.Time) (upcoming []Booking, malformed []Booking) {
	type keyed struct {
		booking Booking
		instant time.Time
	}

	kept := make([]keyed, 0, len(records))
	for _, b := range records {
		instant, err := DeriveInstant(b)
		if err != nil {
			malformed = append(malformed, b)
			continue
		}
		if instant.After(now) {
			kept = append(kept, keyed{booking: b, instant: instant})
		}
	}

	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].instant.Before(kept[j].instant)
	})

	upcoming = make([]Booking, 0, len(kept))
	for _, k := range kept {
		upcoming = append(upcoming, k.booking)
	}
	return upcoming, malformed
}
