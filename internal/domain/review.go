package domain

import (
	"time"

	"github.com/google/uuid"
)

// ReviewSnapshot is the persisted self-review outcome for one trip.
//
// The identifier slices hold canonical identities (see the review package):
// stable numeric/UUID IDs as-is, custom entries in custom:<name> form.
// Legacy rows may still contain timestamp-form custom IDs; the review
// service rewrites those on read.
//
// Snapshots are created or overwritten wholesale on every save — no partial
// updates, no history. At most one live snapshot exists per trip, enforced
// by an upsert on trip_id.
type ReviewSnapshot struct {
	TripID       uuid.UUID `json:"trip_id"`
	AchievedMain []string  `json:"achieved_main_purposes"`
	AchievedSub  []string  `json:"achieved_sub_purposes"`
	UsedItems    []string  `json:"used_items"`
	CapturedAt   time.Time `json:"captured_at"`
}

// PlanningState is the planning-phase progress for one trip: which
// recommended items the user checked and which custom items they added,
// recorded before any review snapshot exists.
//
// This is the server-side home of what the original client kept in browser
// local storage; CheckedItems holds raw identifiers, CustomItems holds
// client-generated id/name pairs.
type PlanningState struct {
	TripID       uuid.UUID     `json:"trip_id"`
	CheckedItems []string      `json:"checked_items"`
	CustomItems  []CustomEntry `json:"custom_items"`
	UpdatedAt    time.Time     `json:"updated_at"`
}
