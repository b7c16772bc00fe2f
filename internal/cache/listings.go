package cache

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/spacia-app/property-backend/internal/properties/domain"
)

const activeListingsKey = "property:listings:active"

// DefaultTTL bounds staleness between invalidations; writes on other
// instances are visible after at most this long.
const DefaultTTL = 5 * time.Minute

// Listings caches the active-listing slice as a single JSON value.
// Every failure degrades to a cache miss.
type Listings struct {
	client *redis.Client
	ttl    time.Duration
}

func NewListings(client *redis.Client, ttl time.Duration) *Listings {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Listings{client: client, ttl: ttl}
}

func (l *Listings) GetActive(ctx context.Context) ([]domain.Property, bool) {
	data, err := l.client.Get(ctx, activeListingsKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			log.Printf("[cache] get active listings: %v", err)
		}
		return nil, false
	}

	var items []domain.Property
	if err := json.Unmarshal(data, &items); err != nil {
		log.Printf("[cache] corrupt active listings entry, dropping: %v", err)
		l.Invalidate(ctx)
		return nil, false
	}
	return items, true
}

func (l *Listings) SetActive(ctx context.Context, items []domain.Property) {
	data, err := json.Marshal(items)
	if err != nil {
		return
	}
	if err := l.client.Set(ctx, activeListingsKey, data, l.ttl).Err(); err != nil {
		log.Printf("[cache] set active listings: %v", err)
	}
}

func (l *Listings) Invalidate(ctx context.Context) {
	if err := l.client.Del(ctx, activeListingsKey).Err(); err != nil {
		log.Printf("[cache] invalidate active listings: %v", err)
	}
}
