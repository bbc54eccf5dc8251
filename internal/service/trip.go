// Package service contains the business logic for the Camper Journal API.
// Services validate inputs, enforce business rules, and orchestrate repo calls.
// No SQL lives here — services depend on repo interfaces, not implementations.
package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/ykondo/camper-journal/internal/domain"
	"github.com/ykondo/camper-journal/internal/repo"
)

// RequiredRuleChecker reports whether every required travel rule for a trip
// has been confirmed. Satisfied by *RuleService; declared as an interface so
// TripService tests can stub the gate.
type RequiredRuleChecker interface {
	AllRequiredConfirmed(ctx context.Context, tripID uuid.UUID) (bool, error)
}

// TripService implements business logic for Trip operations, including the
// status lifecycle (planning → ongoing → completed → planning).
type TripService struct {
	trips repo.TripRepo
	rules RequiredRuleChecker
}

// NewTripService constructs a TripService backed by the provided dependencies.
func NewTripService(trips repo.TripRepo, rules RequiredRuleChecker) *TripService {
	return &TripService{trips: trips, rules: rules}
}

// Create validates and persists a new trip. New trips always start in
// planning regardless of any status in the input.
func (s *TripService) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	if err := validateTrip(trip); err != nil {
		return domain.Trip{}, err
	}
	result, err := s.trips.Create(ctx, trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", err)
	}
	return result, nil
}

// GetByID returns a single trip by ID.
func (s *TripService) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	result, err := s.trips.GetByID(ctx, id)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.GetByID: %w", err)
	}
	return result, nil
}

// ListPaged returns one page of trips plus the total count.
// Always returns a non-nil slice so callers can safely range over it.
func (s *TripService) ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Trip, int64, error) {
	trips, total, err := s.trips.ListPaged(ctx, p)
	if err != nil {
		return nil, 0, fmt.Errorf("service.TripService.ListPaged: %w", err)
	}
	if trips == nil {
		trips = []domain.Trip{}
	}
	return trips, total, nil
}

// Update validates and persists changes to an existing trip.
// The status field is not updatable here — use ChangeStatus.
func (s *TripService) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	if err := validateTrip(trip); err != nil {
		return domain.Trip{}, err
	}
	result, err := s.trips.Update(ctx, trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Update: %w", err)
	}
	return result, nil
}

// ChangeStatus moves a trip through its lifecycle. Illegal transitions fail
// with domain.ErrValidation. Leaving planning additionally requires every
// required travel rule for the trip's main purposes to be confirmed.
func (s *TripService) ChangeStatus(ctx context.Context, id uuid.UUID, next domain.TripStatus) (domain.Trip, error) {
	if !next.Valid() {
		return domain.Trip{}, fmt.Errorf("%w: unknown status %q", domain.ErrValidation, next)
	}

	trip, err := s.trips.GetByID(ctx, id)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.ChangeStatus: %w", err)
	}
	if !trip.Status.CanTransitionTo(next) {
		return domain.Trip{}, fmt.Errorf("%w: cannot move trip from %s to %s", domain.ErrValidation, trip.Status, next)
	}

	if trip.Status == domain.StatusPlanning && next == domain.StatusOngoing {
		ok, err := s.rules.AllRequiredConfirmed(ctx, id)
		if err != nil {
			return domain.Trip{}, fmt.Errorf("service.TripService.ChangeStatus: %w", err)
		}
		if !ok {
			return domain.Trip{}, fmt.Errorf("%w: required travel rules are not confirmed", domain.ErrValidation)
		}
	}

	result, err := s.trips.UpdateStatus(ctx, id, next)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.ChangeStatus: %w", err)
	}
	return result, nil
}

// Delete removes a trip by ID.
func (s *TripService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.trips.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.TripService.Delete: %w", err)
	}
	return nil
}

// validateTrip enforces business rules common to both Create and Update.
//   - Name must be non-empty (whitespace-only names are rejected).
//   - EndDate, if set, must not be before StartDate.
func validateTrip(trip domain.Trip) error {
	if strings.TrimSpace(trip.Name) == "" {
		return fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if trip.StartDate.IsZero() {
		return fmt.Errorf("%w: start_date is required", domain.ErrValidation)
	}
	if trip.EndDate != nil && trip.EndDate.Before(trip.StartDate) {
		return fmt.Errorf("%w: end_date must not be before start_date", domain.ErrValidation)
	}
	return nil
}
