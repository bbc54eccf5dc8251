package repo_test

import (
	"context"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ykondo/camper-journal/internal/domain"
	"github.com/ykondo/camper-journal/internal/repo"
)

func TestPurposeRepo_ListCatalogs(t *testing.T) {
	tx := newTestTx(t)
	r := repo.NewPurposeRepo(tx)
	ctx := context.Background()

	seedMainPurpose(t, tx, "Hiking")
	seedSubPurpose(t, tx, "Hot Spring")

	mains, err := r.ListCatalogMain(ctx)
	require.NoError(t, err)
	subs, err := r.ListCatalogSub(ctx)
	require.NoError(t, err)

	require.NotEmpty(t, mains)
	assert.Equal(t, "Hiking", mains[len(mains)-1].Name)
	require.NotEmpty(t, subs)
	assert.Equal(t, "Hot Spring", subs[len(subs)-1].Name)
}

func TestPurposeRepo_ReplaceAndListByTrip(t *testing.T) {
	tx := newTestTx(t)
	purposes := repo.NewPurposeRepo(tx)
	trips := repo.NewTripRepo(tx)
	ctx := context.Background()

	trip, err := trips.Create(ctx, tripFixture())
	require.NoError(t, err)

	mainID := seedMainPurpose(t, tx, "Hiking")
	subID := seedSubPurpose(t, tx, "Stargazing")

	err = purposes.ReplaceForTrip(ctx, trip.ID, []int64{mainID}, []int64{subID}, []string{"Lake Viewpoint"})
	require.NoError(t, err)

	got, err := purposes.ListByTrip(ctx, trip.ID)
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, domain.Purpose{
		Identity: "Hiking",
		RawID:    strconv.FormatInt(mainID, 10),
		Category: domain.CategoryMain,
		Origin:   domain.OriginCatalog,
	}, got[0])
	assert.Equal(t, domain.CategorySub, got[1].Category)
	assert.Equal(t, "Stargazing", got[1].Identity)

	// Custom rows carry no durable raw ID; identity is the name.
	assert.Equal(t, domain.Purpose{
		Identity: "Lake Viewpoint",
		Category: domain.CategorySub,
		Origin:   domain.OriginCustom,
	}, got[2])
}

func TestPurposeRepo_ReplaceForTrip_ReplacesWholesale(t *testing.T) {
	tx := newTestTx(t)
	purposes := repo.NewPurposeRepo(tx)
	trips := repo.NewTripRepo(tx)
	ctx := context.Background()

	trip, err := trips.Create(ctx, tripFixture())
	require.NoError(t, err)

	mainID := seedMainPurpose(t, tx, "Hiking")
	require.NoError(t, purposes.ReplaceForTrip(ctx, trip.ID, []int64{mainID}, nil, []string{"Old Spot"}))
	require.NoError(t, purposes.ReplaceForTrip(ctx, trip.ID, []int64{mainID}, nil, nil))

	got, err := purposes.ListByTrip(ctx, trip.ID)
	require.NoError(t, err)
	assert.Len(t, got, 1, "old custom entry must be gone")
}

func TestPurposeRepo_ListMainPurposeIDs(t *testing.T) {
	tx := newTestTx(t)
	purposes := repo.NewPurposeRepo(tx)
	trips := repo.NewTripRepo(tx)
	ctx := context.Background()

	trip, err := trips.Create(ctx, tripFixture())
	require.NoError(t, err)

	mainA := seedMainPurpose(t, tx, "Hiking")
	mainB := seedMainPurpose(t, tx, "Fishing")
	require.NoError(t, purposes.ReplaceForTrip(ctx, trip.ID, []int64{mainA, mainB}, nil, nil))

	ids, err := purposes.ListMainPurposeIDs(ctx, trip.ID)

	require.NoError(t, err)
	assert.ElementsMatch(t, []int64{mainA, mainB}, ids)
}
