package domain

// ChecklistItem is a recommended or custom piece of gear tied to a trip.
//
// Identity is the canonical name (exact, case- and whitespace-sensitive
// match). All raw IDs sharing an Identity are treated as one unit: marking
// any of them used marks them all used, and the same for un-marking.
type ChecklistItem struct {
	Identity string `json:"name"`
	RawID    string `json:"id"`
	Origin   Origin `json:"origin"`
}

// DefaultItem is a row from the default_items reference table: gear
// recommended for a given main purpose.
type DefaultItem struct {
	ID            int64  `json:"id"`
	MainPurposeID int64  `json:"main_purpose_id"`
	Name          string `json:"name"`
	DisplayOrder  int    `json:"display_order"`
}

// CustomEntry is a free-text item or spot the user added while planning,
// before any snapshot exists. The ID is client-generated and unstable
// across sessions; the name is what identifies the entry.
type CustomEntry struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
