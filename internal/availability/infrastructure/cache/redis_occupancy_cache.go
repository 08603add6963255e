package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/felixgeelhaar/pawsit/internal/availability/application/services"
	"github.com/felixgeelhaar/pawsit/internal/availability/domain"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// DefaultTTL bounds how stale a cached occupancy can be.
const DefaultTTL = 30 * time.Second

// RedisOccupancyCache stores occupancy under
// pawsit:occupancy:{sitter_id}:{from}:{to}.
type RedisOccupancyCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisOccupancyCache creates a cache. A nil client disables caching.
func NewRedisOccupancyCache(client *redis.Client, ttl time.Duration) *RedisOccupancyCache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisOccupancyCache{client: client, ttl: ttl}
}

type cachedOccupancy struct {
	Blocked []domain.Date `json:"blocked"`
	Booked  []domain.Date `json:"booked"`
	Pending []domain.Date `json:"pending"`
}

// Key returns the cache key for a sitter and window.
func Key(sitterID uuid.UUID, window domain.DateRange) string {
	return fmt.Sprintf("pawsit:occupancy:%s:%s:%s", sitterID, window.Start, window.End)
}

// Get returns the cached occupancy, reporting false on a miss.
func (c *RedisOccupancyCache) Get(ctx context.Context, sitterID uuid.UUID, window domain.DateRange) (domain.Occupancy, bool, error) {
	if c == nil || c.client == nil {
		return domain.Occupancy{}, false, nil
	}

	val, err := c.client.Get(ctx, Key(sitterID, window)).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.Occupancy{}, false, nil
	}
	if err != nil {
		return domain.Occupancy{}, false, err
	}

	occ, err := decode(val)
	if err != nil {
		return domain.Occupancy{}, false, err
	}
	return occ, true, nil
}

// Set stores occupancy with the configured TTL.
func (c *RedisOccupancyCache) Set(ctx context.Context, sitterID uuid.UUID, window domain.DateRange, occ domain.Occupancy) error {
	if c == nil || c.client == nil {
		return nil
	}

	val, err := encode(occ)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, Key(sitterID, window), val, c.ttl).Err()
}

func encode(occ domain.Occupancy) ([]byte, error) {
	return json.Marshal(cachedOccupancy{
		Blocked: occ.Blocked.Sorted(),
		Booked:  occ.Booked.Sorted(),
		Pending: occ.Pending.Sorted(),
	})
}

func decode(val []byte) (domain.Occupancy, error) {
	var cached cachedOccupancy
	if err := json.Unmarshal(val, &cached); err != nil {
		return domain.Occupancy{}, fmt.Errorf("decode cached occupancy: %w", err)
	}
	return domain.Occupancy{
		Blocked: domain.NewDateSet(cached.Blocked...),
		Booked:  domain.NewDateSet(cached.Booked...),
		Pending: domain.NewDateSet(cached.Pending...),
	}, nil
}

var _ services.OccupancyCache = (*RedisOccupancyCache)(nil)
