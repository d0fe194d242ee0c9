package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServicesFixedOrder(t *testing.T) {
	all := Services()
	require.Len(t, all, 5)
	assert.Equal(t, "Haircut", all[0].Name)
	assert.Equal(t, "Hot Towel Shave", all[4].Name)

	// mutating the returned slice must not touch the catalog
	all[0].Price = 1
	assert.Equal(t, 500, Services()[0].Price)
}

func TestByID(t *testing.T) {
	s, err := ByID("3")
	require.NoError(t, err)
	assert.Equal(t, "Hair Coloring", s.Name)
	assert.Equal(t, 800, s.Price)

	_, err = ByID("42")
	assert.ErrorIs(t, err, ErrUnknownService)
}

func TestTotalPrice(t *testing.T) {
	assert.Equal(t, 0, TotalPrice(nil))
	assert.Equal(t, 0, TotalPrice(map[string]bool{}))
	assert.Equal(t, 500, TotalPrice(map[string]bool{"1": true}))
	assert.Equal(t, 1000, TotalPrice(map[string]bool{"2": true, "4": true, "9": true}))
	assert.Equal(t, 2700, TotalPrice(map[string]bool{"1": true, "2": true, "3": true, "4": true, "5": true}))
}

func TestResolveNamesCatalogOrder(t *testing.T) {
	names := ResolveNames(map[string]bool{"5": true, "2": true})
	assert.Equal(t, []string{"Beard Trim", "Hot Towel Shave"}, names)

	assert.Empty(t, ResolveNames(nil))
}

func TestDirectoryIsDisplayOnly(t *testing.T) {
	entries := Directory()
	require.Len(t, entries, 8)

	// the directory carries names the bookable catalog does not
	assert.Equal(t, "Massage Therapy", entries[7].Name)
	assert.False(t, Exists("8"))
}
