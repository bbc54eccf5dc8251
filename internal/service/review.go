package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/ykondo/camper-journal/internal/domain"
	"github.com/ykondo/camper-journal/internal/repo"
	"github.com/ykondo/camper-journal/internal/review"
)

// PlanBuilder supplies the planned side of a trip to the review service.
// Satisfied by *PlanService; declared as an interface so review tests can
// provide a plan directly.
type PlanBuilder interface {
	Plan(ctx context.Context, tripID uuid.UUID) (*review.Plan, error)
}

// ReviewOutcome bundles everything a caller needs to render a trip review:
// the score report, the reconciled detail, and whether a snapshot backs it.
type ReviewOutcome struct {
	Report      review.ScoreReport
	State       review.ReconciledState
	HasSnapshot bool
	Snapshot    *domain.ReviewSnapshot // nil unless a snapshot exists
}

// ReviewService runs the review pipeline for a trip: it assembles plan and
// progress, reconciles them, scores the result, and persists snapshots.
type ReviewService struct {
	trips   repo.TripRepo
	reviews repo.ReviewRepo
	plans   PlanBuilder
}

// NewReviewService constructs a ReviewService backed by the provided dependencies.
func NewReviewService(trips repo.TripRepo, reviews repo.ReviewRepo, plans PlanBuilder) *ReviewService {
	return &ReviewService{trips: trips, reviews: reviews, plans: plans}
}

// Report computes the current review outcome for a trip.
//
// The plan side always comes fresh from storage. The progress side comes
// from the stored snapshot when one exists; legacy custom identifiers in it
// are rewritten to canonical form using the trip's custom purpose names
// before reconciling. With no snapshot the progress is empty and the report
// shows zero achievement over the planned totals.
func (s *ReviewService) Report(ctx context.Context, tripID uuid.UUID) (ReviewOutcome, error) {
	if err := s.reviewableTrip(ctx, tripID); err != nil {
		return ReviewOutcome{}, err
	}

	plan, err := s.plans.Plan(ctx, tripID)
	if err != nil {
		return ReviewOutcome{}, fmt.Errorf("service.ReviewService.Report: %w", err)
	}

	outcome := ReviewOutcome{}
	progress := review.Progress{}

	snapshot, err := s.reviews.Get(ctx, tripID)
	switch {
	case err == nil:
		names := customPurposeNames(plan)
		progress.AchievedMainRaw = review.RewriteLegacyIdentifiers(snapshot.AchievedMain, names)
		progress.AchievedSubRaw = review.RewriteLegacyIdentifiers(snapshot.AchievedSub, names)
		progress.UsedRaw = review.RewriteLegacyIdentifiers(snapshot.UsedItems, customItemNames(plan))
		outcome.HasSnapshot = true
		outcome.Snapshot = &snapshot
	case errors.Is(err, domain.ErrNotFound):
		// No review saved yet — report zero progress against the plan.
	default:
		return ReviewOutcome{}, fmt.Errorf("service.ReviewService.Report: %w", err)
	}

	state, err := review.Reconcile(plan, progress)
	if err != nil {
		return ReviewOutcome{}, fmt.Errorf("service.ReviewService.Report: %w", err)
	}

	outcome.State = state
	outcome.Report = review.Score(state)
	return outcome, nil
}

// Save canonicalizes the submitted achievement lists against the trip's
// plan and overwrites the snapshot wholesale. Entries that cannot be
// resolved to a canonical identifier are dropped rather than failing the
// save — partial progress data never blocks a review.
func (s *ReviewService) Save(ctx context.Context, tripID uuid.UUID, achievedMain, achievedSub, usedItems []string) (domain.ReviewSnapshot, error) {
	if err := s.reviewableTrip(ctx, tripID); err != nil {
		return domain.ReviewSnapshot{}, err
	}

	plan, err := s.plans.Plan(ctx, tripID)
	if err != nil {
		return domain.ReviewSnapshot{}, fmt.Errorf("service.ReviewService.Save: %w", err)
	}

	// Raw IDs submitted by clients may be unstable custom identifiers. The
	// plan still knows the name each one belongs to, so canonicalize with
	// that context now — once stored, the name may no longer be around.
	purposeNames := make(map[string]string, len(plan.Purposes))
	for _, p := range plan.Purposes {
		purposeNames[p.RawID] = p.Identity
	}
	itemNames := make(map[string]string, len(plan.Items))
	for _, it := range plan.Items {
		itemNames[it.RawID] = it.Identity
	}

	snapshot := domain.ReviewSnapshot{
		TripID:       tripID,
		AchievedMain: canonicalize(achievedMain, purposeNames, review.KindPurpose),
		AchievedSub:  canonicalize(achievedSub, purposeNames, review.KindPurpose),
		UsedItems:    canonicalize(usedItems, itemNames, review.KindItem),
	}

	saved, err := s.reviews.Upsert(ctx, snapshot)
	if err != nil {
		return domain.ReviewSnapshot{}, fmt.Errorf("service.ReviewService.Save: %w", err)
	}
	return saved, nil
}

// Reset deletes the trip's snapshot. Returns domain.ErrNotFound if none exists.
func (s *ReviewService) Reset(ctx context.Context, tripID uuid.UUID) error {
	if err := s.reviewableTrip(ctx, tripID); err != nil {
		return err
	}
	if err := s.reviews.Delete(ctx, tripID); err != nil {
		return fmt.Errorf("service.ReviewService.Reset: %w", err)
	}
	return nil
}

// reviewableTrip verifies the trip exists and has left the planning status.
func (s *ReviewService) reviewableTrip(ctx context.Context, tripID uuid.UUID) error {
	trip, err := s.trips.GetByID(ctx, tripID)
	if err != nil {
		return fmt.Errorf("service.ReviewService: %w", err)
	}
	if trip.Status == domain.StatusPlanning {
		return fmt.Errorf("%w: trip is still in planning; review is not available", domain.ErrValidation)
	}
	return nil
}

// canonicalize converts submitted raw identifiers to canonical form, using
// the plan's raw-ID→name mapping as context. Unresolvable entries are
// dropped; duplicates are collapsed.
func canonicalize(raw []string, names map[string]string, kind review.Kind) []string {
	out := make([]string, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))

	for _, id := range raw {
		canonical, err := review.Normalize(id, names[id], kind)
		if err != nil {
			continue
		}
		if _, dup := seen[canonical]; dup {
			continue
		}
		seen[canonical] = struct{}{}
		out = append(out, canonical)
	}
	return out
}

// customPurposeNames collects the names of the plan's custom purposes, used
// as context when rewriting legacy snapshot identifiers.
func customPurposeNames(plan *review.Plan) []string {
	var names []string
	for _, p := range plan.Purposes {
		if p.Origin == domain.OriginCustom {
			names = append(names, p.Identity)
		}
	}
	return names
}

// customItemNames collects the names of the plan's custom checklist items.
func customItemNames(plan *review.Plan) []string {
	var names []string
	for _, it := range plan.Items {
		if it.Origin == domain.OriginCustom {
			names = append(names, it.Identity)
		}
	}
	return names
}
