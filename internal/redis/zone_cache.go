package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/Laura-Munoz/Emergency-coordination-Valencia/internal/domain"
)

const zoneViewKey = "zones:view"

// ZoneCache keeps the last zone listing served to volunteers. A miss is
// (nil, nil).
type ZoneCache struct {
	client *goredis.Client
	key    string
}

func NewZoneCache(r *Redis) *ZoneCache {
	return &ZoneCache{
		client: r.Client,
		key:    zoneViewKey,
	}
}

func (c *ZoneCache) Get(ctx context.Context) ([]domain.Zone, error) {
	data, err := c.client.Get(ctx, c.key).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	zones := []domain.Zone{}
	if err := json.Unmarshal(data, &zones); err != nil {
		return nil, err
	}
	return zones, nil
}

func (c *ZoneCache) Set(ctx context.Context, zones []domain.Zone, ttl time.Duration) error {
	if zones == nil {
		zones = []domain.Zone{}
	}
	b, err := json.Marshal(zones)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key, b, ttl).Err()
}

func (c *ZoneCache) Invalidate(ctx context.Context) error {
	return c.client.Del(ctx, c.key).Err()
}
