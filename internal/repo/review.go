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

// ReviewRepo defines the persistence operations for review snapshots.
// At most one snapshot exists per trip; Upsert keys on trip_id.
type ReviewRepo interface {
	// Get retrieves the snapshot for a trip.
	// Returns domain.ErrNotFound if no review has been saved yet.
	Get(ctx context.Context, tripID uuid.UUID) (domain.ReviewSnapshot, error)

	// Upsert creates or overwrites the snapshot for a trip wholesale.
	Upsert(ctx context.Context, snapshot domain.ReviewSnapshot) (domain.ReviewSnapshot, error)

	// Delete removes the snapshot for a trip.
	// Returns domain.ErrNotFound if none exists.
	Delete(ctx context.Context, tripID uuid.UUID) error
}

// pgReviewRepo is the Postgres implementation of ReviewRepo.
type pgReviewRepo struct {
	db db
}

// NewReviewRepo constructs a ReviewRepo backed by the provided db connection.
func NewReviewRepo(db db) ReviewRepo {
	return &pgReviewRepo{db: db}
}

// Get retrieves the snapshot for a trip.
func (r *pgReviewRepo) Get(ctx context.Context, tripID uuid.UUID) (domain.ReviewSnapshot, error) {
	const q = `
		SELECT trip_id, achieved_main_purposes, achieved_sub_purposes, used_items, captured_at
		FROM trip_reviews
		WHERE trip_id = @trip_id`

	snapshot, err := scanSnapshot(r.db.QueryRow(ctx, q, pgx.NamedArgs{"trip_id": tripID}))
	if err != nil {
		return domain.ReviewSnapshot{}, fmt.Errorf("repo.ReviewRepo.Get: %w", err)
	}
	return snapshot, nil
}

// Upsert creates or overwrites the snapshot for a trip. Saves are wholesale
// by design — no partial updates, no history.
func (r *pgReviewRepo) Upsert(ctx context.Context, snapshot domain.ReviewSnapshot) (domain.ReviewSnapshot, error) {
	const q = `
		INSERT INTO trip_reviews (trip_id, achieved_main_purposes, achieved_sub_purposes, used_items, captured_at)
		VALUES (@trip_id, @achieved_main, @achieved_sub, @used_items, now())
		ON CONFLICT (trip_id) DO UPDATE
		SET achieved_main_purposes = EXCLUDED.achieved_main_purposes,
		    achieved_sub_purposes  = EXCLUDED.achieved_sub_purposes,
		    used_items             = EXCLUDED.used_items,
		    captured_at            = now()
		RETURNING trip_id, achieved_main_purposes, achieved_sub_purposes, used_items, captured_at`

	args := pgx.NamedArgs{
		"trip_id":       snapshot.TripID,
		"achieved_main": snapshot.AchievedMain,
		"achieved_sub":  snapshot.AchievedSub,
		"used_items":    snapshot.UsedItems,
	}

	result, err := scanSnapshot(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.ReviewSnapshot{}, fmt.Errorf("repo.ReviewRepo.Upsert: %w", err)
	}
	return result, nil
}

// Delete removes the snapshot for a trip.
func (r *pgReviewRepo) Delete(ctx context.Context, tripID uuid.UUID) error {
	const q = `DELETE FROM trip_reviews WHERE trip_id = @trip_id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"trip_id": tripID})
	if err != nil {
		return fmt.Errorf("repo.ReviewRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.ReviewRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// scanSnapshot maps a single database row into a domain.ReviewSnapshot.
// The text[] columns scan directly into string slices via pgx.
func scanSnapshot(s scanner) (domain.ReviewSnapshot, error) {
	var (
		snapshot domain.ReviewSnapshot
		tripID   pgtype.UUID
	)
	err := s.Scan(&tripID, &snapshot.AchievedMain, &snapshot.AchievedSub, &snapshot.UsedItems, &snapshot.CapturedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ReviewSnapshot{}, domain.ErrNotFound
		}
		return domain.ReviewSnapshot{}, err
	}
	snapshot.TripID = uuid.UUID(tripID.Bytes)
	return snapshot, nil
}
