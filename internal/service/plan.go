package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/ykondo/camper-journal/internal/domain"
	"github.com/ykondo/camper-journal/internal/repo"
	"github.com/ykondo/camper-journal/internal/review"
)

// checkedItemPrefix is the key prefix legacy clients put in front of checked
// default-item identifiers (item_<id>). It is stripped on write so the
// stored planning state holds bare raw IDs.
const checkedItemPrefix = "item_"

// PlanService assembles a trip's planned side: purposes from the assignment
// table and catalogs, checklist items from the recommended-gear table
// filtered by the planning state, plus custom entries.
type PlanService struct {
	trips    repo.TripRepo
	purposes repo.PurposeRepo
	items    repo.ItemRepo
	planning repo.PlanningRepo
}

// NewPlanService constructs a PlanService backed by the provided repos.
func NewPlanService(trips repo.TripRepo, purposes repo.PurposeRepo, items repo.ItemRepo, planning repo.PlanningRepo) *PlanService {
	return &PlanService{trips: trips, purposes: purposes, items: items, planning: planning}
}

// Plan builds the review-ready plan for a trip: all planned purposes
// (custom entries with their canonical name-based identifier) and the
// checklist items in scope — checked recommended items plus custom items.
//
// Duplicates are not collapsed here; the review reconciler owns
// deduplication so the same rules apply no matter where a plan comes from.
func (s *PlanService) Plan(ctx context.Context, tripID uuid.UUID) (*review.Plan, error) {
	purposes, err := s.Purposes(ctx, tripID)
	if err != nil {
		return nil, err
	}

	state, err := s.PlanningState(ctx, tripID)
	if err != nil {
		return nil, err
	}

	mainIDs, err := s.purposes.ListMainPurposeIDs(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.PlanService.Plan: %w", err)
	}
	recommended, err := s.items.ListByMainPurposes(ctx, mainIDs)
	if err != nil {
		return nil, fmt.Errorf("service.PlanService.Plan: %w", err)
	}

	checked := make(map[string]struct{}, len(state.CheckedItems))
	for _, id := range state.CheckedItems {
		checked[id] = struct{}{}
	}

	var items []domain.ChecklistItem
	for _, it := range recommended {
		rawID := strconv.FormatInt(it.ID, 10)
		if _, ok := checked[rawID]; !ok {
			continue
		}
		items = append(items, domain.ChecklistItem{
			Identity: it.Name,
			RawID:    rawID,
			Origin:   domain.OriginCatalog,
		})
	}
	for _, entry := range state.CustomItems {
		items = append(items, domain.ChecklistItem{
			Identity: entry.Name,
			RawID:    entry.ID,
			Origin:   domain.OriginCustom,
		})
	}

	return &review.Plan{Purposes: purposes, Items: items}, nil
}

// Purposes returns all purposes assigned to a trip. Custom rows get their
// canonical name-based identifier as RawID, since they have no durable
// record-store key.
func (s *PlanService) Purposes(ctx context.Context, tripID uuid.UUID) ([]domain.Purpose, error) {
	purposes, err := s.purposes.ListByTrip(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.PlanService.Purposes: %w", err)
	}
	for i := range purposes {
		if purposes[i].Origin == domain.OriginCustom && purposes[i].RawID == "" {
			purposes[i].RawID = review.CanonicalCustom(purposes[i].Identity)
		}
	}
	if purposes == nil {
		purposes = []domain.Purpose{}
	}
	return purposes, nil
}

// SetPurposes replaces a trip's purpose assignments wholesale. Custom names
// are trimmed; blank ones are rejected.
func (s *PlanService) SetPurposes(ctx context.Context, tripID uuid.UUID, mainIDs, subIDs []int64, customNames []string) error {
	if _, err := s.trips.GetByID(ctx, tripID); err != nil {
		return fmt.Errorf("service.PlanService.SetPurposes: %w", err)
	}

	trimmed := make([]string, 0, len(customNames))
	for _, name := range customNames {
		name = strings.TrimSpace(name)
		if name == "" {
			return fmt.Errorf("%w: custom purpose name must not be blank", domain.ErrValidation)
		}
		trimmed = append(trimmed, name)
	}

	if err := s.purposes.ReplaceForTrip(ctx, tripID, mainIDs, subIDs, trimmed); err != nil {
		return fmt.Errorf("service.PlanService.SetPurposes: %w", err)
	}
	return nil
}

// PlanningState returns the planning state for a trip, or an empty state if
// nothing has been recorded yet — callers never see ErrNotFound for this.
func (s *PlanService) PlanningState(ctx context.Context, tripID uuid.UUID) (domain.PlanningState, error) {
	state, err := s.planning.Get(ctx, tripID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.PlanningState{
				TripID:       tripID,
				CheckedItems: []string{},
				CustomItems:  []domain.CustomEntry{},
			}, nil
		}
		return domain.PlanningState{}, fmt.Errorf("service.PlanService.PlanningState: %w", err)
	}
	if state.CheckedItems == nil {
		state.CheckedItems = []string{}
	}
	if state.CustomItems == nil {
		state.CustomItems = []domain.CustomEntry{}
	}
	return state, nil
}

// SavePlanningState overwrites the planning state for a trip. Checked item
// identifiers may arrive with the legacy item_ key prefix; it is stripped
// before persisting. Custom entries with blank names are rejected.
func (s *PlanService) SavePlanningState(ctx context.Context, tripID uuid.UUID, checkedItems []string, customItems []domain.CustomEntry) (domain.PlanningState, error) {
	if _, err := s.trips.GetByID(ctx, tripID); err != nil {
		return domain.PlanningState{}, fmt.Errorf("service.PlanService.SavePlanningState: %w", err)
	}

	cleaned := make([]string, 0, len(checkedItems))
	for _, id := range checkedItems {
		id = strings.TrimSpace(strings.TrimPrefix(id, checkedItemPrefix))
		if id == "" {
			continue
		}
		cleaned = append(cleaned, id)
	}

	entries := make([]domain.CustomEntry, 0, len(customItems))
	for _, entry := range customItems {
		entry.Name = strings.TrimSpace(entry.Name)
		if entry.Name == "" {
			return domain.PlanningState{}, fmt.Errorf("%w: custom item name must not be blank", domain.ErrValidation)
		}
		entries = append(entries, entry)
	}

	state, err := s.planning.Put(ctx, domain.PlanningState{
		TripID:       tripID,
		CheckedItems: cleaned,
		CustomItems:  entries,
	})
	if err != nil {
		return domain.PlanningState{}, fmt.Errorf("service.PlanService.SavePlanningState: %w", err)
	}
	return state, nil
}
