package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/ykondo/camper-journal/internal/domain"
)

// PlanningRepo defines the persistence operations for the planning state —
// the server-side replacement for the browser-local storage the original
// client used for checked and custom items.
type PlanningRepo interface {
	// Get retrieves the planning state for a trip.
	// Returns domain.ErrNotFound if nothing has been recorded yet.
	Get(ctx context.Context, tripID uuid.UUID) (domain.PlanningState, error)

	// Put creates or overwrites the planning state for a trip wholesale.
	Put(ctx context.Context, state domain.PlanningState) (domain.PlanningState, error)
}

// pgPlanningRepo is the Postgres implementation of PlanningRepo.
type pgPlanningRepo struct {
	db db
}

// NewPlanningRepo constructs a PlanningRepo backed by the provided db connection.
func NewPlanningRepo(db db) PlanningRepo {
	return &pgPlanningRepo{db: db}
}

// Get retrieves the planning state for a trip.
func (r *pgPlanningRepo) Get(ctx context.Context, tripID uuid.UUID) (domain.PlanningState, error) {
	const q = `
		SELECT trip_id, checked_items, custom_items, updated_at
		FROM planning_states
		WHERE trip_id = @trip_id`

	state, err := scanPlanningState(r.db.QueryRow(ctx, q, pgx.NamedArgs{"trip_id": tripID}))
	if err != nil {
		return domain.PlanningState{}, fmt.Errorf("repo.PlanningRepo.Get: %w", err)
	}
	return state, nil
}

// Put creates or overwrites the planning state for a trip.
func (r *pgPlanningRepo) Put(ctx context.Context, state domain.PlanningState) (domain.PlanningState, error) {
	const q = `
		INSERT INTO planning_states (trip_id, checked_items, custom_items, updated_at)
		VALUES (@trip_id, @checked_items, @custom_items, now())
		ON CONFLICT (trip_id) DO UPDATE
		SET checked_items = EXCLUDED.checked_items,
		    custom_items  = EXCLUDED.custom_items,
		    updated_at    = now()
		RETURNING trip_id, checked_items, custom_items, updated_at`

	args := pgx.NamedArgs{
		"trip_id":       state.TripID,
		"checked_items": state.CheckedItems,
		"custom_items":  state.CustomItems, // marshalled to jsonb by pgx
	}

	result, err := scanPlanningState(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.PlanningState{}, fmt.Errorf("repo.PlanningRepo.Put: %w", err)
	}
	return result, nil
}

// scanPlanningState maps a single database row into a domain.PlanningState.
// checked_items is text[]; custom_items is jsonb and unmarshals into the
// CustomEntry slice via pgx's JSON codec.
func scanPlanningState(s scanner) (domain.PlanningState, error) {
	var (
		state  domain.PlanningState
		tripID pgtype.UUID
	)
	err := s.Scan(&tripID, &state.CheckedItems, &state.CustomItems, &state.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.PlanningState{}, domain.ErrNotFound
		}
		return domain.PlanningState{}, err
	}
	state.TripID = uuid.UUID(tripID.Bytes)
	return state, nil
}
