package cache

import (
	"context"
	"testing"
	"time"

	"github.com/felixgeelhaar/pawsit/internal/availability/domain"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKey(t *testing.T) {
	sitterID := uuid.MustParse("6f1c2a7e-3b1d-4c55-9a0e-2d8f4b7c9e10")
	window, err := domain.ParseDateRange("2025-06-01", "2025-08-29")
	require.NoError(t, err)

	assert.Equal(t,
		"pawsit:occupancy:6f1c2a7e-3b1d-4c55-9a0e-2d8f4b7c9e10:2025-06-01:2025-08-29",
		Key(sitterID, window))
}

func TestEncodeDecode(t *testing.T) {
	occ := domain.EmptyOccupancy()
	occ.Blocked.Add(domain.MustParseDate("2025-06-12"))
	occ.Booked.Add(domain.MustParseDate("2025-06-21"))
	occ.Booked.Add(domain.MustParseDate("2025-06-20"))

	val, err := encode(occ)
	require.NoError(t, err)
	assert.JSONEq(t, `{"blocked":["2025-06-12"],"booked":["2025-06-20","2025-06-21"],"pending":[]}`, string(val))

	decoded, err := decode(val)
	require.NoError(t, err)
	assert.Equal(t, occ.Blocked.Strings(), decoded.Blocked.Strings())
	assert.Equal(t, occ.Booked.Strings(), decoded.Booked.Strings())
	assert.NotNil(t, decoded.Pending)
	assert.Equal(t, 0, decoded.Pending.Len())
}

func TestDecode_Invalid(t *testing.T) {
	_, err := decode([]byte(`{"blocked":["06/12/2025"]}`))
	assert.ErrorIs(t, err, domain.ErrInvalidDate)
}

func TestRedisOccupancyCache_NilClient(t *testing.T) {
	c := NewRedisOccupancyCache(nil, 0)
	window, err := domain.ParseDateRange("2025-06-01", "2025-06-30")
	require.NoError(t, err)

	_, ok, err := c.Get(context.Background(), uuid.New(), window)
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, c.Set(context.Background(), uuid.New(), window, domain.EmptyOccupancy()))
	assert.Equal(t, DefaultTTL, c.ttl)
}

func TestRedisOccupancyCache_Unreachable(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	defer client.Close()

	c := NewRedisOccupancyCache(client, time.Minute)
	window, err := domain.ParseDateRange("2025-06-01", "2025-06-30")
	require.NoError(t, err)

	_, ok, err := c.Get(context.Background(), uuid.New(), window)
	assert.Error(t, err)
	assert.False(t, ok)
}
