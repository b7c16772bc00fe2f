package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spacia-app/property-backend/internal/properties/domain"
)

func setupCache(t *testing.T) (*Listings, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewListings(client, time.Minute), mr
}

func TestListings_RoundTrip(t *testing.T) {
	c, _ := setupCache(t)
	ctx := context.Background()

	_, ok := c.GetActive(ctx)
	assert.False(t, ok, "empty cache must miss")

	items := []domain.Property{
		{ID: "l1", Name: "Harbour View", Status: domain.StatusActive, PostedBy: "alice"},
		{ID: "l2", Name: "City Loft", Status: domain.StatusActive, PostedBy: "bob"},
	}
	c.SetActive(ctx, items)

	got, ok := c.GetActive(ctx)
	require.True(t, ok)
	require.Len(t, got, 2)
	assert.Equal(t, "l1", got[0].ID)
	assert.Equal(t, "City Loft", got[1].Name)
}

func TestListings_Invalidate(t *testing.T) {
	c, _ := setupCache(t)
	ctx := context.Background()

	c.SetActive(ctx, []domain.Property{{ID: "l1"}})
	c.Invalidate(ctx)

	_, ok := c.GetActive(ctx)
	assert.False(t, ok)
}

func TestListings_ExpiresWithTTL(t *testing.T) {
	c, mr := setupCache(t)
	ctx := context.Background()

	c.SetActive(ctx, []domain.Property{{ID: "l1"}})
	mr.FastForward(2 * time.Minute)

	_, ok := c.GetActive(ctx)
	assert.False(t, ok)
}

func TestListings_CorruptEntryDegradesToMiss(t *testing.T) {
	c, mr := setupCache(t)
	ctx := context.Background()

	require.NoError(t, mr.Set(activeListingsKey, "not json"))

	_, ok := c.GetActive(ctx)
	assert.False(t, ok)

	// the corrupt entry is dropped so the next write starts clean
	assert.False(t, mr.Exists(activeListingsKey))
}

func TestListings_EmptySliceIsAHit(t *testing.T) {
	c, _ := setupCache(t)
	ctx := context.Background()

	c.SetActive(ctx, []domain.Property{})

	got, ok := c.GetActive(ctx)
	assert.True(t, ok)
	assert.Empty(t, got)
}
