package catalog

import "errors"

var ErrUnknownService = errors.New("unknown service id")

// services is the build-time catalog. It is never mutated at runtime;
// every price and selection total in the system derives from this list.
var services = []Service{
	{ID: "1", Name: "Haircut", Price: 500},
	{ID: "2", Name: "Beard Trim", Price: 300},
	{ID: "3", Name: "Hair Coloring", Price: 800},
	{ID: "4", Name: "Scalp Treatment", Price: 700},
	{ID: "5", Name: "Hot Towel Shave", Price: 400},
}

// directory backs the storefront grid. Superset of the bookable catalog by name.
var directory = []DirectoryEntry{
	{ID: "1", Name: "Haircuts", Icon: "cut"},
	{ID: "2", Name: "Beard Trims", Icon: "mustache"},
	{ID: "3", Name: "Styling", Icon: "hair-dryer"},
	{ID: "4", Name: "Hair Coloring", Icon: "palette"},
	{ID: "5", Name: "Scalp Treatment", Icon: "spa"},
	{ID: "6", Name: "Facial & Skin Care", Icon: "face"},
	{ID: "7", Name: "Hot Towel Shaves", Icon: "shower"},
	{ID: "8", Name: "Massage Therapy", Icon: "hands"},
}

// Services returns the bookable catalog in its fixed order.
func Services() []Service {
	out := make([]Service, len(services))
	copy(out, services)
	return out
}

// Directory returns the display-only storefront entries.
func Directory() []DirectoryEntry {
	out := make([]DirectoryEntry, len(directory))
	copy(out, directory)
	return out
}

// ByID looks up a catalog service.
func ByID(id string) (Service, error) {
	for _, s := range services {
		if s.ID == id {
			return s, nil
		}
	}
	return Service{}, ErrUnknownService
}

// Exists reports whether id names a bookable catalog service.
func Exists(id string) bool {
	_, err := ByID(id)
	return err == nil
}

// TotalPrice sums the catalog prices of every selected id. Ids absent from
// the catalog contribute nothing; callers validate membership on selection.
func TotalPrice(selected map[string]bool) int {
	total := 0
	for _, s := range services {
		if selected[s.ID] {
			total += s.Price
		}
	}
	return total
}

// ResolveNames maps selected ids to display names in catalog order,
// regardless of the order the ids were selected in.
func ResolveNames(selected map[string]bool) []string {
	names := make([]string, 0, len(selected))
	for _, s := range services {
		if selected[s.ID] {
			names = append(names, s.Name)
		}
	}
	return names
}
