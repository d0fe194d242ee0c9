package bookings

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(date, clock string) Booking {
	return Booking{Date: date, Time: clock, Status: StatusPending}
}

func recordAt(instant time.Time) Booking {
	return Booking{
		Date:     instant.Format(DateLayout),
		Time:     instant.Format(TimeLayout),
		StartsAt: &instant,
		Status:   StatusPending,
	}
}

func TestDeriveInstantPrefersStartsAt(t *testing.T) {
	structured := time.Date(2025, 6, 1, 14, 0, 0, 0, time.UTC)
	b := Booking{
		Date:     "1999-01-01", // stale strings must not win
		Time:     "1:00 AM",
		StartsAt: &structured,
	}

	instant, err := DeriveInstant(b)
	require.NoError(t, err)
	assert.Equal(t, structured, instant)
}

func TestDeriveInstantFallsBackToStrings(t *testing.T) {
	instant, err := DeriveInstant(record("2025-03-01", "10:00 AM"))
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC), instant)
}

func TestDeriveInstantMalformed(t *testing.T) {
	cases := []Booking{
		record("", ""),
		record("2025-03-01", ""),
		record("", "10:00 AM"),
		record("03/01/2025", "10:00 AM"),
		record("2025-03-01", "25:00 PM"),
	}
	for _, b := range cases {
		_, err := DeriveInstant(b)
		assert.ErrorIs(t, err, ErrMalformedRecord, "date=%q time=%q", b.Date, b.Time)
	}
}

func TestFilterUpcomingBoundaryIsStrict(t *testing.T) {
	b := record("2025-03-01", "10:00 AM")
	records := []Booking{b}

	// just before the appointment it is upcoming
	upcoming, malformed := FilterUpcoming(records, time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC))
	assert.Len(t, upcoming, 1)
	assert.Empty(t, malformed)

	// exactly at the appointment instant it is not
	upcoming, _ = FilterUpcoming(records, time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC))
	assert.Empty(t, upcoming)

	// and after it, it is gone
	upcoming, _ = FilterUpcoming(records, time.Date(2025, 3, 1, 11, 0, 0, 0, time.UTC))
	assert.Empty(t, upcoming)
}

func TestFilterUpcomingPartitionsMalformed(t *testing.T) {
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	records := []Booking{
		record("2025-03-02", "10:00 AM"),
		record("", ""),
		record("2025-02-01", "10:00 AM"), // past
		record("garbage", "10:00 AM"),
	}

	upcoming, malformed := FilterUpcoming(records, now)
	assert.Len(t, upcoming, 1)
	assert.Len(t, malformed, 2)
	assert.Equal(t, "2025-03-02", upcoming[0].Date)
}

func TestFilterUpcomingSortedAscending(t *testing.T) {
	now := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	records := []Booking{
		record("2025-03-20", "9:00 AM"),
		record("2025-03-05", "3:00 PM"),
		recordAt(time.Date(2025, 3, 10, 11, 0, 0, 0, time.UTC)),
		record("2025-03-05", "9:00 AM"),
	}

	upcoming, malformed := FilterUpcoming(records, now)
	require.Empty(t, malformed)
	require.Len(t, upcoming, 4)

	var last time.Time
	for _, b := range upcoming {
		instant, err := DeriveInstant(b)
		require.NoError(t, err)
		assert.True(t, instant.After(last))
		last = instant
	}
	assert.Equal(t, "9:00 AM", upcoming[0].Time)
	assert.Equal(t, "2025-03-20", upcoming[3].Date)
}

func TestFilterUpcomingIsPure(t *testing.T) {
	now := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	records := []Booking{
		record("2025-03-05", "9:00 AM"),
		record("bad", "bad"),
		record("2025-02-01", "9:00 AM"),
	}

	first, firstMalformed := FilterUpcoming(records, now)
	second, secondMalformed := FilterUpcoming(records, now)

	assert.Equal(t, first, second)
	assert.Equal(t, firstMalformed, secondMalformed)
	// inputs untouched
	assert.Equal(t, "2025-03-05", records[0].Date)
	assert.Len(t, records, 3)
}

func TestFilterUpcomingEmptyInput(t *testing.T) {
	upcoming, malformed := FilterUpcoming(nil, time.Now())
	assert.Empty(t, upcoming)
	assert.Empty(t, malformed)
}
