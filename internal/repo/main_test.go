package repo_test

import (
	"context"
	"log"
	"os"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/require"

	"github.com/ykondo/camper-journal/migrations"
	"github.com/ykondo/camper-journal/testutil"
)

// TestMain runs before any test in the repo_test package.
// It applies all pending migrations to the test database so individual tests
// never need to think about schema state.
//
// This is the Go equivalent of a JUnit @BeforeAll — it runs once for the
// entire test binary, not once per test function.
func TestMain(m *testing.M) {
	if os.Getenv("TEST_DATABASE_URL") == "" {
		// No test DB configured — skip all tests in this package cleanly.
		os.Exit(m.Run())
	}

	// Use a plain *sql.DB for goose (it needs database/sql, not pgx pool).
	// We construct it manually here rather than through testutil.NewPool
	// because TestMain doesn't have a *testing.T to pass.
	db := testutil.MustOpenSQLDB(os.Getenv("TEST_DATABASE_URL"))
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		log.Fatalf("TestMain: create goose provider: %v", err)
	}

	if _, err := provider.Up(context.Background()); err != nil {
		log.Fatalf("TestMain: run migrations: %v", err)
	}

	os.Exit(m.Run())
}

// newTestTx opens a transaction against the test database that is rolled
// back when the test finishes. All repos under test share it, so catalog
// rows seeded by one helper are visible to every repo in the same test.
func newTestTx(t *testing.T) pgx.Tx {
	t.Helper()
	pool := testutil.NewPool(t)

	tx, err := pool.Begin(context.Background())
	require.NoError(t, err, "begin transaction")

	t.Cleanup(func() {
		// Rollback discards all changes made during the test — no cleanup SQL needed.
		_ = tx.Rollback(context.Background())
	})

	return tx
}

// seedMainPurpose inserts a catalog main purpose and returns its ID.
func seedMainPurpose(t *testing.T, tx pgx.Tx, name string) int64 {
	t.Helper()
	var id int64
	err := tx.QueryRow(context.Background(),
		`INSERT INTO main_purposes (name) VALUES ($1) RETURNING id`, name).Scan(&id)
	require.NoError(t, err, "seed main purpose")
	return id
}

// seedSubPurpose inserts a catalog sub purpose and returns its ID.
func seedSubPurpose(t *testing.T, tx pgx.Tx, name string) int64 {
	t.Helper()
	var id int64
	err := tx.QueryRow(context.Background(),
		`INSERT INTO sub_purposes (name) VALUES ($1) RETURNING id`, name).Scan(&id)
	require.NoError(t, err, "seed sub purpose")
	return id
}

// seedDefaultItem inserts a recommended item for a main purpose.
func seedDefaultItem(t *testing.T, tx pgx.Tx, mainPurposeID int64, name string) int64 {
	t.Helper()
	var id int64
	err := tx.QueryRow(context.Background(),
		`INSERT INTO default_items (main_purpose_id, name) VALUES ($1, $2) RETURNING id`,
		mainPurposeID, name).Scan(&id)
	require.NoError(t, err, "seed default item")
	return id
}

// seedRule inserts a travel rule for a main purpose.
func seedRule(t *testing.T, tx pgx.Tx, mainPurposeID int64, title string, required bool) int64 {
	t.Helper()
	var id int64
	err := tx.QueryRow(context.Background(),
		`INSERT INTO travel_rules (main_purpose_id, rule_category, rule_title, rule_description, is_required)
		 VALUES ($1, 'etiquette', $2, 'description', $3) RETURNING id`,
		mainPurposeID, title, required).Scan(&id)
	require.NoError(t, err, "seed rule")
	return id
}
