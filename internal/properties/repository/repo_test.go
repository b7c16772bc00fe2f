package repository

import (
	"context"
	"database/sql"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spacia-app/property-backend/internal/properties/domain"
)

const propertiesSchema = `
create table if not exists properties (
    id uuid primary key,
    name text not null default '',
    address text not null default '',
    eircode text not null default '',
    postal_code text not null default '',
    description text not null default '',
    rent double precision not null default 0,
    deposit double precision not null default 0,
    area double precision not null default 0,
    available_from text not null default '',
    energy_rating text not null default '',
    bedrooms int not null default 0,
    bathrooms int not null default 0,
    amenities text[] not null default '{}',
    images text[] not null default '{}',
    property_type text not null default '',
    status text not null default 'A',
    posted_by text not null default '',
    posted_on timestamptz not null default now(),
    modified_on timestamptz not null default now()
);`

// setupTestRepo connects to the database named by TEST_DB_DSN and
// prepares the schema; the test is skipped when the variable is unset.
func setupTestRepo(t *testing.T) *Repo {
	t.Helper()

	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		t.Skip("TEST_DB_DSN not set, skipping PostgreSQL integration test")
	}

	migrator, err := sql.Open("postgres", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { migrator.Close() })

	_, err = migrator.Exec(propertiesSchema)
	require.NoError(t, err)
	_, err = migrator.Exec(`truncate properties`)
	require.NoError(t, err)

	pool, err := pgxpool.New(context.Background(), dsn)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	return NewRepo(pool)
}

func testProperty(owner string) *domain.Property {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &domain.Property{
		ID:            uuid.NewString(),
		Name:          "Harbour View",
		Address:       "3 Quay Road, Galway",
		Eircode:       "H91 AB12",
		PostalCode:    "H91",
		Description:   "Two-bed overlooking the harbour",
		Rent:          1400,
		Deposit:       1400,
		Area:          72,
		AvailableFrom: "2025-05-01",
		EnergyRating:  "B3",
		Bedrooms:      2,
		Bathrooms:     1,
		Amenities:     []string{"parking", "wifi"},
		Images:        []string{},
		PropertyType:  "apartment",
		Status:        domain.StatusActive,
		PostedBy:      owner,
		PostedOn:      now,
		ModifiedOn:    now,
	}
}

func TestRepo_SaveAndFindByID(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	p := testProperty("alice")
	require.NoError(t, repo.Save(ctx, p))

	got, err := repo.FindByID(ctx, p.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, p.Name, got.Name)
	assert.Equal(t, p.Rent, got.Rent)
	assert.Equal(t, p.Amenities, got.Amenities)
	assert.Equal(t, p.PostedBy, got.PostedBy)
}

func TestRepo_FindByID_MissingReturnsNil(t *testing.T) {
	repo := setupTestRepo(t)

	got, err := repo.FindByID(context.Background(), uuid.NewString())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRepo_SaveIsUpsert(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	p := testProperty("alice")
	require.NoError(t, repo.Save(ctx, p))

	p.Rent = 1550
	p.Status = domain.StatusInactive
	p.ModifiedOn = time.Now().UTC().Truncate(time.Microsecond)
	require.NoError(t, repo.Save(ctx, p))

	got, err := repo.FindByID(ctx, p.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 1550.0, got.Rent)
	assert.Equal(t, domain.StatusInactive, got.Status)
}

func TestRepo_FindByStatusAndOwner(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	active := testProperty("alice")
	require.NoError(t, repo.Save(ctx, active))

	inactive := testProperty("alice")
	inactive.Status = domain.StatusInactive
	require.NoError(t, repo.Save(ctx, inactive))

	other := testProperty("bob")
	require.NoError(t, repo.Save(ctx, other))

	all, err := repo.FindByStatus(ctx, domain.StatusActive)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	mine, err := repo.FindByStatusAndOwner(ctx, domain.StatusActive, "alice")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, active.ID, mine[0].ID)
}

func TestRepo_AppendImage(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	p := testProperty("alice")
	require.NoError(t, repo.Save(ctx, p))

	require.NoError(t, repo.AppendImage(ctx, p.ID, "https://img.example/a.jpg"))
	require.NoError(t, repo.AppendImage(ctx, p.ID, "https://img.example/b.jpg"))

	got, err := repo.FindByID(ctx, p.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, []string{"https://img.example/a.jpg", "https://img.example/b.jpg"}, got.Images)

	// unknown id is ignored
	require.NoError(t, repo.AppendImage(ctx, uuid.NewString(), "https://img.example/c.jpg"))
}
