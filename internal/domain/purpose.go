package domain

// PurposeCategory splits travel purposes into primary objectives and
// secondary stops. Main purposes carry more weight in the achievement score.
type PurposeCategory string

const (
	CategoryMain PurposeCategory = "main"
	CategorySub  PurposeCategory = "sub"
)

// Origin distinguishes catalog entries (shared reference tables) from
// custom entries (free text, created per trip).
type Origin string

const (
	OriginCatalog Origin = "catalog"
	OriginCustom  Origin = "custom"
)

// Purpose is a travel goal attached to a trip.
//
// Identity is the canonical name and the true deduplication key: two
// purposes in the same category with the same Identity are the same
// purpose, regardless of how their raw identifiers differ. RawID keeps the
// original record-store identifier (numeric, UUID, or custom-generated) for
// round-tripping to clients.
type Purpose struct {
	Identity string          `json:"name"`
	RawID    string          `json:"id"`
	Category PurposeCategory `json:"category"`
	Origin   Origin          `json:"origin"`
}

// CatalogPurpose is a row from the shared main/sub purpose reference tables.
type CatalogPurpose struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	DisplayOrder int    `json:"display_order"`
}
