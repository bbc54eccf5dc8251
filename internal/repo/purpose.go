package repo

import (
	"context"
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/ykondo/camper-journal/internal/domain"
)

// PurposeRepo defines the persistence operations for the purpose catalogs
// and the trip_purposes assignment table.
type PurposeRepo interface {
	// ListCatalogMain returns the main purpose catalog ordered by display_order.
	ListCatalogMain(ctx context.Context) ([]domain.CatalogPurpose, error)

	// ListCatalogSub returns the sub purpose catalog ordered by display_order.
	ListCatalogSub(ctx context.Context) ([]domain.CatalogPurpose, error)

	// ListByTrip returns all purposes assigned to a trip, catalog entries
	// joined with their names and custom entries as free text. Custom rows
	// have an empty RawID; the service layer derives their canonical
	// identifier from the name.
	ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Purpose, error)

	// ListMainPurposeIDs returns the catalog IDs of a trip's main purposes.
	ListMainPurposeIDs(ctx context.Context, tripID uuid.UUID) ([]int64, error)

	// ReplaceForTrip replaces a trip's purpose assignments wholesale.
	ReplaceForTrip(ctx context.Context, tripID uuid.UUID, mainIDs, subIDs []int64, customNames []string) error
}

// pgPurposeRepo is the Postgres implementation of PurposeRepo.
type pgPurposeRepo struct {
	db db
}

// NewPurposeRepo constructs a PurposeRepo backed by the provided db connection.
func NewPurposeRepo(db db) PurposeRepo {
	return &pgPurposeRepo{db: db}
}

// ListCatalogMain returns the main purpose catalog.
func (r *pgPurposeRepo) ListCatalogMain(ctx context.Context) ([]domain.CatalogPurpose, error) {
	return r.listCatalog(ctx, "main_purposes")
}

// ListCatalogSub returns the sub purpose catalog.
func (r *pgPurposeRepo) ListCatalogSub(ctx context.Context) ([]domain.CatalogPurpose, error) {
	return r.listCatalog(ctx, "sub_purposes")
}

// listCatalog reads one of the two identically-shaped catalog tables.
// The table name is compile-time constant at both call sites, never user input.
func (r *pgPurposeRepo) listCatalog(ctx context.Context, table string) ([]domain.CatalogPurpose, error) {
	q := `SELECT id, name, display_order FROM ` + table + ` ORDER BY display_order, id`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.PurposeRepo.listCatalog %s: %w", table, err)
	}
	defer rows.Close()

	var out []domain.CatalogPurpose
	for rows.Next() {
		var p domain.CatalogPurpose
		if err := rows.Scan(&p.ID, &p.Name, &p.DisplayOrder); err != nil {
			return nil, fmt.Errorf("repo.PurposeRepo.listCatalog %s: scan: %w", table, err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.PurposeRepo.listCatalog %s: rows: %w", table, err)
	}
	return out, nil
}

// ListByTrip returns all purposes assigned to a trip.
func (r *pgPurposeRepo) ListByTrip(ctx context.Context, tripID uuid.UUID) ([]domain.Purpose, error) {
	const q = `
		SELECT tp.purpose_type,
		       COALESCE(mp.id, 0), COALESCE(mp.name, ''),
		       COALESCE(sp.id, 0), COALESCE(sp.name, ''),
		       COALESCE(tp.custom_purpose, '')
		FROM trip_purposes tp
		LEFT JOIN main_purposes mp ON mp.id = tp.main_purpose_id
		LEFT JOIN sub_purposes sp ON sp.id = tp.sub_purpose_id
		WHERE tp.trip_id = @trip_id
		ORDER BY tp.id`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"trip_id": tripID})
	if err != nil {
		return nil, fmt.Errorf("repo.PurposeRepo.ListByTrip: %w", err)
	}
	defer rows.Close()

	var out []domain.Purpose
	for rows.Next() {
		var (
			purposeType       string
			mainID, subID     int64
			mainName, subName string
			customName        string
		)
		if err := rows.Scan(&purposeType, &mainID, &mainName, &subID, &subName, &customName); err != nil {
			return nil, fmt.Errorf("repo.PurposeRepo.ListByTrip: scan: %w", err)
		}

		switch purposeType {
		case "main":
			out = append(out, domain.Purpose{
				Identity: mainName,
				RawID:    strconv.FormatInt(mainID, 10),
				Category: domain.CategoryMain,
				Origin:   domain.OriginCatalog,
			})
		case "sub":
			out = append(out, domain.Purpose{
				Identity: subName,
				RawID:    strconv.FormatInt(subID, 10),
				Category: domain.CategorySub,
				Origin:   domain.OriginCatalog,
			})
		case "custom":
			out = append(out, domain.Purpose{
				Identity: customName,
				Category: domain.CategorySub,
				Origin:   domain.OriginCustom,
			})
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.PurposeRepo.ListByTrip: rows: %w", err)
	}
	return out, nil
}

// ListMainPurposeIDs returns the catalog IDs of the trip's main purposes.
func (r *pgPurposeRepo) ListMainPurposeIDs(ctx context.Context, tripID uuid.UUID) ([]int64, error) {
	const q = `
		SELECT main_purpose_id
		FROM trip_purposes
		WHERE trip_id = @trip_id AND purpose_type = 'main' AND main_purpose_id IS NOT NULL
		ORDER BY main_purpose_id`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"trip_id": tripID})
	if err != nil {
		return nil, fmt.Errorf("repo.PurposeRepo.ListMainPurposeIDs: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("repo.PurposeRepo.ListMainPurposeIDs: scan: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.PurposeRepo.ListMainPurposeIDs: rows: %w", err)
	}
	return ids, nil
}

// ReplaceForTrip deletes the trip's current purpose assignments and inserts
// the new set. Run it inside a transaction when atomicity matters.
func (r *pgPurposeRepo) ReplaceForTrip(ctx context.Context, tripID uuid.UUID, mainIDs, subIDs []int64, customNames []string) error {
	const deleteQ = `DELETE FROM trip_purposes WHERE trip_id = @trip_id`
	if _, err := r.db.Exec(ctx, deleteQ, pgx.NamedArgs{"trip_id": tripID}); err != nil {
		return fmt.Errorf("repo.PurposeRepo.ReplaceForTrip: delete: %w", err)
	}

	const mainQ = `
		INSERT INTO trip_purposes (trip_id, purpose_type, main_purpose_id)
		VALUES (@trip_id, 'main', @id)`
	for _, id := range mainIDs {
		if _, err := r.db.Exec(ctx, mainQ, pgx.NamedArgs{"trip_id": tripID, "id": id}); err != nil {
			return fmt.Errorf("repo.PurposeRepo.ReplaceForTrip: insert main %d: %w", id, err)
		}
	}

	const subQ = `
		INSERT INTO trip_purposes (trip_id, purpose_type, sub_purpose_id)
		VALUES (@trip_id, 'sub', @id)`
	for _, id := range subIDs {
		if _, err := r.db.Exec(ctx, subQ, pgx.NamedArgs{"trip_id": tripID, "id": id}); err != nil {
			return fmt.Errorf("repo.PurposeRepo.ReplaceForTrip: insert sub %d: %w", id, err)
		}
	}

	const customQ = `
		INSERT INTO trip_purposes (trip_id, purpose_type, custom_purpose)
		VALUES (@trip_id, 'custom', @name)`
	for _, name := range customNames {
		if _, err := r.db.Exec(ctx, customQ, pgx.NamedArgs{"trip_id": tripID, "name": name}); err != nil {
			return fmt.Errorf("repo.PurposeRepo.ReplaceForTrip: insert custom %q: %w", name, err)
		}
	}

	return nil
}
