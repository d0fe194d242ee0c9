package catalog

// Service is one bookable offering from the fixed catalog.
// Price is in the smallest currency unit.
type Service struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price int    `json:"price"`
}

// DirectoryEntry is a display-only row for the storefront service grid.
// Directory entries are not bookable on their own; booking goes through
// the priced catalog.
type DirectoryEntry struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}
