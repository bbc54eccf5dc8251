// Package domain contains the core data types for the Camper Journal API.
// This package has zero external dependencies beyond uuid and is imported by
// every other internal package (review, repo, service, handler).
package domain

import (
	"time"

	"github.com/google/uuid"
)

// TripStatus is the lifecycle state of a trip.
// Review endpoints are only reachable once the trip has left planning.
type TripStatus string

const (
	StatusPlanning  TripStatus = "planning"
	StatusOngoing   TripStatus = "ongoing"
	StatusCompleted TripStatus = "completed"
)

// Valid reports whether s is one of the known trip statuses.
func (s TripStatus) Valid() bool {
	switch s {
	case StatusPlanning, StatusOngoing, StatusCompleted:
		return true
	}
	return false
}

// CanTransitionTo reports whether the status move s → next is allowed.
// The flow is planning → ongoing → completed, with completed → planning
// permitted as a manual re-edit escape hatch.
func (s TripStatus) CanTransitionTo(next TripStatus) bool {
	switch s {
	case StatusPlanning:
		return next == StatusOngoing
	case StatusOngoing:
		return next == StatusCompleted
	case StatusCompleted:
		return next == StatusPlanning
	}
	return false
}

// Trip represents a single campervan trip from start to finish.
// A trip is the top-level aggregate; purposes, checklist items, rule
// confirmations, and the review snapshot all hang off it.
type Trip struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Destination string     `json:"destination,omitempty"`
	StartDate   time.Time  `json:"start_date"`
	EndDate     *time.Time `json:"end_date,omitempty"` // nil when open-ended
	Notes       string     `json:"notes,omitempty"`
	Status      TripStatus `json:"status"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
