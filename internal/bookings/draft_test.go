package bookings

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDraftIsEmpty(t *testing.T) {
	now := time.Date(2025, 3, 1, 9, 30, 0, 0, time.UTC)
	d := NewDraft(now)

	assert.False(t, d.HasSelection())
	assert.Equal(t, 0, d.TotalPrice)
	assert.Equal(t, "2025-03-01", d.DateString())
	assert.Equal(t, "9:30 AM", d.TimeString())
}

func TestWithDateKeepsClock(t *testing.T) {
	d := NewDraft(time.Date(2025, 3, 1, 14, 15, 0, 0, time.UTC))

	next := d.WithDate(time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC))

	assert.Equal(t, "2025-04-10", next.DateString())
	assert.Equal(t, "2:15 PM", next.TimeString())
	// original untouched
	assert.Equal(t, "2025-03-01", d.DateString())
}

func TestWithTimeKeepsDay(t *testing.T) {
	d := NewDraft(time.Date(2025, 3, 1, 14, 15, 0, 0, time.UTC))

	next := d.WithTime(time.Date(0, 1, 1, 10, 0, 0, 0, time.UTC))

	assert.Equal(t, "2025-03-01", next.DateString())
	assert.Equal(t, "10:00 AM", next.TimeString())
}

func TestDateTimeCompositionOrderIndependent(t *testing.T) {
	base := NewDraft(time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC))
	day := time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC)
	clock := time.Date(0, 1, 1, 16, 45, 0, 0, time.UTC)

	dateFirst := base.WithDate(day).WithTime(clock)
	timeFirst := base.WithTime(clock).WithDate(day)

	assert.Equal(t, dateFirst.When, timeFirst.When)
	assert.Equal(t, "2025-04-10", dateFirst.DateString())
	assert.Equal(t, "4:45 PM", dateFirst.TimeString())
}

func TestToggleRecomputesTotal(t *testing.T) {
	d := NewDraft(time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC))

	// Haircut 500, then Beard Trim 300, then Haircut off again. The
	// total must always equal the sum over the current selection.
	d, err := d.WithServiceToggled("1")
	require.NoError(t, err)
	assert.Equal(t, 500, d.TotalPrice)

	d, err = d.WithServiceToggled("2")
	require.NoError(t, err)
	assert.Equal(t, 800, d.TotalPrice)

	d, err = d.WithServiceToggled("1")
	require.NoError(t, err)
	assert.Equal(t, 300, d.TotalPrice)
	assert.Equal(t, []string{"Beard Trim"}, d.ServiceNames())
}

func TestToggleTwiceIsIdentity(t *testing.T) {
	d := NewDraft(time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC))

	d, err := d.WithServiceToggled("3")
	require.NoError(t, err)
	d, err = d.WithServiceToggled("3")
	require.NoError(t, err)

	assert.False(t, d.HasSelection())
	assert.Equal(t, 0, d.TotalPrice)
}

func TestToggleUnknownServiceRejected(t *testing.T) {
	d := NewDraft(time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC))

	_, err := d.WithServiceToggled("99")
	assert.ErrorIs(t, err, ErrInvalidService)

	// draft unchanged
	assert.False(t, d.HasSelection())
	assert.Equal(t, 0, d.TotalPrice)
}

func TestServiceNamesInCatalogOrder(t *testing.T) {
	d := NewDraft(time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC))

	// toggle out of catalog order
	for _, id := range []string{"5", "1", "3"} {
		var err error
		d, err = d.WithServiceToggled(id)
		require.NoError(t, err)
	}

	assert.Equal(t, []string{"Haircut", "Hair Coloring", "Hot Towel Shave"}, d.ServiceNames())
	assert.Equal(t, 1700, d.TotalPrice)
}

func TestPastDateAccepted(t *testing.T) {
	d := NewDraft(time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC))

	next := d.WithDate(time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, "2020-01-01", next.DateString())
}
