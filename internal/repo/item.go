package repo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/ykondo/camper-journal/internal/domain"
)

// ItemRepo defines the persistence operations for the default_items
// reference table (recommended gear per main purpose).
type ItemRepo interface {
	// ListByMainPurposes returns the recommended items for the given main
	// purpose catalog IDs, ordered by display_order. An empty ID list
	// returns no rows.
	ListByMainPurposes(ctx context.Context, mainPurposeIDs []int64) ([]domain.DefaultItem, error)
}

// pgItemRepo is the Postgres implementation of ItemRepo.
type pgItemRepo struct {
	db db
}

// NewItemRepo constructs an ItemRepo backed by the provided db connection.
func NewItemRepo(db db) ItemRepo {
	return &pgItemRepo{db: db}
}

// ListByMainPurposes returns recommended items for the given main purposes.
func (r *pgItemRepo) ListByMainPurposes(ctx context.Context, mainPurposeIDs []int64) ([]domain.DefaultItem, error) {
	if len(mainPurposeIDs) == 0 {
		return []domain.DefaultItem{}, nil
	}

	const q = `
		SELECT id, main_purpose_id, name, display_order
		FROM default_items
		WHERE main_purpose_id = ANY(@ids)
		ORDER BY display_order, id`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"ids": mainPurposeIDs})
	if err != nil {
		return nil, fmt.Errorf("repo.ItemRepo.ListByMainPurposes: %w", err)
	}
	defer rows.Close()

	var items []domain.DefaultItem
	for rows.Next() {
		var it domain.DefaultItem
		if err := rows.Scan(&it.ID, &it.MainPurposeID, &it.Name, &it.DisplayOrder); err != nil {
			return nil, fmt.Errorf("repo.ItemRepo.ListByMainPurposes: scan: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.ItemRepo.ListByMainPurposes: rows: %w", err)
	}
	return items, nil
}
