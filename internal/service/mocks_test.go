package service_test

import (
	"context"

	"github.com/google/uuid"

	"github.com/ykondo/camper-journal/internal/domain"
	"github.com/ykondo/camper-journal/internal/review"
)

// Mock repos for service tests. Each mock delegates to its function fields;
// unset fields return zero values, so tests only wire what they exercise.

type mockTripRepo struct {
	create       func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	getByID      func(ctx context.Context, id uuid.UUID) (domain.Trip, error)
	listPaged    func(ctx context.Context, p domain.PaginationParams) ([]domain.Trip, int64, error)
	update       func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	updateStatus func(ctx context.Context, id uuid.UUID, status domain.TripStatus) (domain.Trip, error)
	delete       func(ctx context.Context, id uuid.UUID) error
}

func (m *mockTripRepo) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	if m.create == nil {
		return trip, nil
	}
	return m.create(ctx, trip)
}

func (m *mockTripRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Trip, error) {
	if m.getByID == nil {
		return domain.Trip{ID: id}, nil
	}
	return m.getByID(ctx, id)
}

func (m *mockTripRepo) ListPaged(ctx context.Context, p domain.PaginationParams) ([]domain.Trip, int64, error) {
	if m.listPaged == nil {
		return nil, 0, nil
	}
	return m.listPaged(ctx, p)
}

func (m *mockTripRepo) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	if m.update == nil {
		return trip, nil
	}
	return m.update(ctx, trip)
}

func (m *mockTripRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.TripStatus) (domain.Trip, error) {
	if m.updateStatus == nil {
		return domain.Trip{ID: id, Status: status}, nil
	}
	return m.updateStatus(ctx, id, status)
}

func (m *mockTripRepo) Delete(ctx context.Context, id uuid.UUID) error {
	if m.delete == nil {
		return nil
	}
	return m.delete(ctx, id)
}

type mockPurposeRepo struct {
	listCatalogMain    func(ctx context.Context) ([]domain.CatalogPurpose, error)
	listCatalogSub     func(ctx context.Context) ([]domain.CatalogPurpose, error)
	listByTrip         func(ctx context.Context, tripID uuid.UUID) ([]domain.Purpose, error)
	listMainPurposeIDs func(ctx context.Context, tripID uuid.UUID) ([]int64, error)
	replaceForTrip     func(ctx context.Context, tripID uuid.UUID, mainIDs, subIDs []int64, customNames []string) error
}

func (m *mockPurposeRepo) ListCatalogMain(ctx context.Context) ([]domain.CatalogPurpose, error) {
	if m.listCatalogMain == nil {
		return nil, nil
	}
	return m.listCatalogMain(ctx)
}

func (m *mockPurposeRepo) ListCatalogSub(ctx context.Context) ([]domain.CatalogPurpose, error) {
	if m.listCatalogSub == nil {
		return nil, nil
	}
	return m.listCatalogSub(ctx)
}

func (m *mockPurposeRepo) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Purpose, error) {
	if m.listByTrip == nil {
		return nil, nil
	}
	return m.listByTrip(ctx, tripID)
}

func (m *mockPurposeRepo) ListMainPurposeIDs(ctx context.Context, tripID uuid.UUID) ([]int64, error) {
	if m.listMainPurposeIDs == nil {
		return nil, nil
	}
	return m.listMainPurposeIDs(ctx, tripID)
}

func (m *mockPurposeRepo) ReplaceForTrip(ctx context.Context, tripID uuid.UUID, mainIDs, subIDs []int64, customNames []string) error {
	if m.replaceForTrip == nil {
		return nil
	}
	return m.replaceForTrip(ctx, tripID, mainIDs, subIDs, customNames)
}

type mockItemRepo struct {
	listByMainPurposes func(ctx context.Context, mainPurposeIDs []int64) ([]domain.DefaultItem, error)
}

func (m *mockItemRepo) ListByMainPurposes(ctx context.Context, mainPurposeIDs []int64) ([]domain.DefaultItem, error) {
	if m.listByMainPurposes == nil {
		return nil, nil
	}
	return m.listByMainPurposes(ctx, mainPurposeIDs)
}

type mockPlanningRepo struct {
	get func(ctx context.Context, tripID uuid.UUID) (domain.PlanningState, error)
	put func(ctx context.Context, state domain.PlanningState) (domain.PlanningState, error)
}

func (m *mockPlanningRepo) Get(ctx context.Context, tripID uuid.UUID) (domain.PlanningState, error) {
	if m.get == nil {
		return domain.PlanningState{}, domain.ErrNotFound
	}
	return m.get(ctx, tripID)
}

func (m *mockPlanningRepo) Put(ctx context.Context, state domain.PlanningState) (domain.PlanningState, error) {
	if m.put == nil {
		return state, nil
	}
	return m.put(ctx, state)
}

type mockReviewRepo struct {
	get    func(ctx context.Context, tripID uuid.UUID) (domain.ReviewSnapshot, error)
	upsert func(ctx context.Context, snapshot domain.ReviewSnapshot) (domain.ReviewSnapshot, error)
	delete func(ctx context.Context, tripID uuid.UUID) error
}

func (m *mockReviewRepo) Get(ctx context.Context, tripID uuid.UUID) (domain.ReviewSnapshot, error) {
	if m.get == nil {
		return domain.ReviewSnapshot{}, domain.ErrNotFound
	}
	return m.get(ctx, tripID)
}

func (m *mockReviewRepo) Upsert(ctx context.Context, snapshot domain.ReviewSnapshot) (domain.ReviewSnapshot, error) {
	if m.upsert == nil {
		return snapshot, nil
	}
	return m.upsert(ctx, snapshot)
}

func (m *mockReviewRepo) Delete(ctx context.Context, tripID uuid.UUID) error {
	if m.delete == nil {
		return nil
	}
	return m.delete(ctx, tripID)
}

type mockRuleRepo struct {
	listByMainPurposes func(ctx context.Context, mainPurposeIDs []int64) ([]domain.TravelRule, error)
	getRule            func(ctx context.Context, ruleID int64) (domain.TravelRule, error)
	listConfirmations  func(ctx context.Context, tripID uuid.UUID) ([]domain.RuleConfirmation, error)
	upsertConfirmation func(ctx context.Context, conf domain.RuleConfirmation) (domain.RuleConfirmation, error)
}

func (m *mockRuleRepo) ListByMainPurposes(ctx context.Context, mainPurposeIDs []int64) ([]domain.TravelRule, error) {
	if m.listByMainPurposes == nil {
		return nil, nil
	}
	return m.listByMainPurposes(ctx, mainPurposeIDs)
}

func (m *mockRuleRepo) GetRule(ctx context.Context, ruleID int64) (domain.TravelRule, error) {
	if m.getRule == nil {
		return domain.TravelRule{ID: ruleID}, nil
	}
	return m.getRule(ctx, ruleID)
}

func (m *mockRuleRepo) ListConfirmations(ctx context.Context, tripID uuid.UUID) ([]domain.RuleConfirmation, error) {
	if m.listConfirmations == nil {
		return nil, nil
	}
	return m.listConfirmations(ctx, tripID)
}

func (m *mockRuleRepo) UpsertConfirmation(ctx context.Context, conf domain.RuleConfirmation) (domain.RuleConfirmation, error) {
	if m.upsertConfirmation == nil {
		return conf, nil
	}
	return m.upsertConfirmation(ctx, conf)
}

// mockRuleChecker stubs the required-rule gate for TripService tests.
type mockRuleChecker struct {
	allRequiredConfirmed func(ctx context.Context, tripID uuid.UUID) (bool, error)
}

func (m *mockRuleChecker) AllRequiredConfirmed(ctx context.Context, tripID uuid.UUID) (bool, error) {
	if m.allRequiredConfirmed == nil {
		return true, nil
	}
	return m.allRequiredConfirmed(ctx, tripID)
}

// stubPlanBuilder returns a fixed plan for ReviewService tests.
type stubPlanBuilder struct {
	plan *review.Plan
	err  error
}

func (s *stubPlanBuilder) Plan(ctx context.Context, tripID uuid.UUID) (*review.Plan, error) {
	return s.plan, s.err
}
