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

// RuleRepo defines the persistence operations for travel rules and the
// per-trip confirmation table.
type RuleRepo interface {
	// ListByMainPurposes returns the rules attached to the given main
	// purpose catalog IDs, ordered by category then display_order.
	ListByMainPurposes(ctx context.Context, mainPurposeIDs []int64) ([]domain.TravelRule, error)

	// GetRule retrieves a single rule by ID.
	// Returns domain.ErrNotFound if it does not exist.
	GetRule(ctx context.Context, ruleID int64) (domain.TravelRule, error)

	// ListConfirmations returns all rule confirmations recorded for a trip.
	ListConfirmations(ctx context.Context, tripID uuid.UUID) ([]domain.RuleConfirmation, error)

	// UpsertConfirmation inserts or overwrites one confirmation, keyed by
	// (trip_id, rule_id).
	UpsertConfirmation(ctx context.Context, conf domain.RuleConfirmation) (domain.RuleConfirmation, error)
}

// pgRuleRepo is the Postgres implementation of RuleRepo.
type pgRuleRepo struct {
	db db
}

// NewRuleRepo constructs a RuleRepo backed by the provided db connection.
func NewRuleRepo(db db) RuleRepo {
	return &pgRuleRepo{db: db}
}

const ruleColumns = `id, main_purpose_id, rule_category, rule_title, rule_description, is_required, display_order, created_at, updated_at`

// ListByMainPurposes returns rules for the given main purposes.
func (r *pgRuleRepo) ListByMainPurposes(ctx context.Context, mainPurposeIDs []int64) ([]domain.TravelRule, error) {
	if len(mainPurposeIDs) == 0 {
		return []domain.TravelRule{}, nil
	}

	const q = `
		SELECT ` + ruleColumns + `
		FROM travel_rules
		WHERE main_purpose_id = ANY(@ids)
		ORDER BY rule_category, display_order, id`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"ids": mainPurposeIDs})
	if err != nil {
		return nil, fmt.Errorf("repo.RuleRepo.ListByMainPurposes: %w", err)
	}
	defer rows.Close()

	var rules []domain.TravelRule
	for rows.Next() {
		rule, err := scanRule(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.RuleRepo.ListByMainPurposes: scan: %w", err)
		}
		rules = append(rules, rule)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.RuleRepo.ListByMainPurposes: rows: %w", err)
	}
	return rules, nil
}

// GetRule retrieves one rule by primary key.
func (r *pgRuleRepo) GetRule(ctx context.Context, ruleID int64) (domain.TravelRule, error) {
	const q = `SELECT ` + ruleColumns + ` FROM travel_rules WHERE id = @id`

	rule, err := scanRule(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": ruleID}))
	if err != nil {
		return domain.TravelRule{}, fmt.Errorf("repo.RuleRepo.GetRule: %w", err)
	}
	return rule, nil
}

// ListConfirmations returns all confirmations recorded for a trip.
func (r *pgRuleRepo) ListConfirmations(ctx context.Context, tripID uuid.UUID) ([]domain.RuleConfirmation, error) {
	const q = `
		SELECT trip_id, rule_id, is_confirmed, confirmed_at
		FROM trip_rule_confirmations
		WHERE trip_id = @trip_id`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"trip_id": tripID})
	if err != nil {
		return nil, fmt.Errorf("repo.RuleRepo.ListConfirmations: %w", err)
	}
	defer rows.Close()

	var confs []domain.RuleConfirmation
	for rows.Next() {
		c, err := scanConfirmation(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.RuleRepo.ListConfirmations: scan: %w", err)
		}
		confs = append(confs, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.RuleRepo.ListConfirmations: rows: %w", err)
	}
	return confs, nil
}

// UpsertConfirmation inserts or overwrites one confirmation row.
// The same ON CONFLICT DO UPDATE shape as the review snapshot upsert: the
// update branch makes RETURNING fire even when the row already exists.
func (r *pgRuleRepo) UpsertConfirmation(ctx context.Context, conf domain.RuleConfirmation) (domain.RuleConfirmation, error) {
	const q = `
		INSERT INTO trip_rule_confirmations (trip_id, rule_id, is_confirmed, confirmed_at)
		VALUES (@trip_id, @rule_id, @is_confirmed, @confirmed_at)
		ON CONFLICT (trip_id, rule_id) DO UPDATE
		SET is_confirmed = EXCLUDED.is_confirmed,
		    confirmed_at = EXCLUDED.confirmed_at
		RETURNING trip_id, rule_id, is_confirmed, confirmed_at`

	args := pgx.NamedArgs{
		"trip_id":      conf.TripID,
		"rule_id":      conf.RuleID,
		"is_confirmed": conf.Confirmed,
		"confirmed_at": conf.ConfirmedAt, // nil becomes NULL
	}

	result, err := scanConfirmation(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.RuleConfirmation{}, fmt.Errorf("repo.RuleRepo.UpsertConfirmation: %w", err)
	}
	return result, nil
}

// scanRule maps a single database row into a domain.TravelRule.
func scanRule(s scanner) (domain.TravelRule, error) {
	var rule domain.TravelRule
	err := s.Scan(&rule.ID, &rule.MainPurposeID, &rule.Category, &rule.Title,
		&rule.Description, &rule.IsRequired, &rule.DisplayOrder, &rule.CreatedAt, &rule.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.TravelRule{}, domain.ErrNotFound
		}
		return domain.TravelRule{}, err
	}
	return rule, nil
}

// scanConfirmation maps a single database row into a domain.RuleConfirmation.
func scanConfirmation(s scanner) (domain.RuleConfirmation, error) {
	var (
		c           domain.RuleConfirmation
		tripID      pgtype.UUID
		confirmedAt pgtype.Timestamptz
	)
	err := s.Scan(&tripID, &c.RuleID, &c.Confirmed, &confirmedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.RuleConfirmation{}, domain.ErrNotFound
		}
		return domain.RuleConfirmation{}, err
	}
	c.TripID = uuid.UUID(tripID.Bytes)
	if confirmedAt.Valid {
		t := confirmedAt.Time
		c.ConfirmedAt = &t
	}
	return c, nil
}
