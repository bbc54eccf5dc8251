package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ykondo/camper-journal/internal/domain"
	"github.com/ykondo/camper-journal/internal/repo"
)

// RuleService implements business logic for travel rules and their per-trip
// confirmations. Required rules gate the planning → ongoing status move.
type RuleService struct {
	trips    repo.TripRepo
	purposes repo.PurposeRepo
	rules    repo.RuleRepo
}

// NewRuleService constructs a RuleService backed by the provided repos.
func NewRuleService(trips repo.TripRepo, purposes repo.PurposeRepo, rules repo.RuleRepo) *RuleService {
	return &RuleService{trips: trips, purposes: purposes, rules: rules}
}

// ListForTrip returns the rules applicable to a trip (those attached to its
// main purposes) paired with their confirmation state.
//
// The rules catalog contains duplicated rows across purposes; rules with
// identical title and description are collapsed, first occurrence wins.
// Always returns a non-nil slice.
func (s *RuleService) ListForTrip(ctx context.Context, tripID uuid.UUID) ([]domain.TripRule, error) {
	if _, err := s.trips.GetByID(ctx, tripID); err != nil {
		return nil, fmt.Errorf("service.RuleService.ListForTrip: %w", err)
	}

	rules, err := s.tripRules(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.RuleService.ListForTrip: %w", err)
	}

	confs, err := s.rules.ListConfirmations(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.RuleService.ListForTrip: %w", err)
	}
	confirmed := make(map[int64]bool, len(confs))
	for _, c := range confs {
		confirmed[c.RuleID] = c.Confirmed
	}

	out := make([]domain.TripRule, 0, len(rules))
	for _, rule := range rules {
		out = append(out, domain.TripRule{
			TravelRule: rule,
			Confirmed:  confirmed[rule.ID],
		})
	}
	return out, nil
}

// Confirm records (or withdraws) the user's acknowledgement of one rule for
// one trip. ConfirmedAt is set server-side when confirming and cleared when
// withdrawing.
func (s *RuleService) Confirm(ctx context.Context, tripID uuid.UUID, ruleID int64, confirmed bool) (domain.RuleConfirmation, error) {
	if _, err := s.trips.GetByID(ctx, tripID); err != nil {
		return domain.RuleConfirmation{}, fmt.Errorf("service.RuleService.Confirm: %w", err)
	}
	if _, err := s.rules.GetRule(ctx, ruleID); err != nil {
		return domain.RuleConfirmation{}, fmt.Errorf("service.RuleService.Confirm: %w", err)
	}

	conf := domain.RuleConfirmation{
		TripID:    tripID,
		RuleID:    ruleID,
		Confirmed: confirmed,
	}
	if confirmed {
		now := time.Now().UTC()
		conf.ConfirmedAt = &now
	}

	result, err := s.rules.UpsertConfirmation(ctx, conf)
	if err != nil {
		return domain.RuleConfirmation{}, fmt.Errorf("service.RuleService.Confirm: %w", err)
	}
	return result, nil
}

// AllRequiredConfirmed reports whether every required rule applicable to
// the trip has a positive confirmation. Trips with no required rules pass
// trivially.
func (s *RuleService) AllRequiredConfirmed(ctx context.Context, tripID uuid.UUID) (bool, error) {
	rules, err := s.tripRules(ctx, tripID)
	if err != nil {
		return false, fmt.Errorf("service.RuleService.AllRequiredConfirmed: %w", err)
	}

	confs, err := s.rules.ListConfirmations(ctx, tripID)
	if err != nil {
		return false, fmt.Errorf("service.RuleService.AllRequiredConfirmed: %w", err)
	}
	confirmed := make(map[int64]bool, len(confs))
	for _, c := range confs {
		confirmed[c.RuleID] = c.Confirmed
	}

	for _, rule := range rules {
		if rule.IsRequired && !confirmed[rule.ID] {
			return false, nil
		}
	}
	return true, nil
}

// tripRules fetches the deduplicated rules for a trip's main purposes.
func (s *RuleService) tripRules(ctx context.Context, tripID uuid.UUID) ([]domain.TravelRule, error) {
	mainIDs, err := s.purposes.ListMainPurposeIDs(ctx, tripID)
	if err != nil {
		return nil, err
	}

	rules, err := s.rules.ListByMainPurposes(ctx, mainIDs)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(rules))
	out := rules[:0]
	for _, rule := range rules {
		key := rule.Title + "\x00" + rule.Description
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, rule)
	}
	return out, nil
}
