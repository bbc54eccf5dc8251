package domain

import (
	"time"

	"github.com/google/uuid"
)

// TravelRule is a destination rule or etiquette entry from the travel_rules
// reference table, keyed to a main purpose. Required rules must be
// confirmed before a trip may leave the planning status.
type TravelRule struct {
	ID            int64     `json:"id"`
	MainPurposeID int64     `json:"main_purpose_id"`
	Category      string    `json:"category"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	IsRequired    bool      `json:"is_required"`
	DisplayOrder  int       `json:"display_order"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// RuleConfirmation records whether the user has acknowledged one rule for
// one trip. Unconfirmed rules simply have no row.
type RuleConfirmation struct {
	TripID      uuid.UUID  `json:"trip_id"`
	RuleID      int64      `json:"rule_id"`
	Confirmed   bool       `json:"confirmed"`
	ConfirmedAt *time.Time `json:"confirmed_at,omitempty"` // nil when unconfirmed
}

// TripRule pairs a rule with its confirmation state for one trip.
type TripRule struct {
	TravelRule
	Confirmed bool `json:"confirmed"`
}
