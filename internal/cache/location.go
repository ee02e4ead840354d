package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v9"
	"github.com/umalmyha/imaging-leads/internal/model"
)

const cachedLocationsTimeToLive = 30 * time.Minute

type locations struct {
	Items []model.ScanLocation `msgpack:"items"`
}

// LocationCache represents behavior for imaging centers lookup cache
type LocationCache interface {
	Find(context.Context, string, model.ImagingType) ([]model.ScanLocation, bool, error)
	Cache(context.Context, string, model.ImagingType, []model.ScanLocation) error
}

type redisLocationCache struct {
	client *redis.Client
}

// NewRedisLocationCache builds redis LocationCache
func NewRedisLocationCache(client *redis.Client) LocationCache {
	return &redisLocationCache{client: client}
}

func (r *redisLocationCache) Find(ctx context.Context, zip string, t model.ImagingType) ([]model.ScanLocation, bool, error) {
	l, err := getDecoded[locations](ctx, r.client, r.key(zip, t))
	if err != nil || l == nil {
		return nil, false, err
	}
	return l.Items, true, nil
}

func (r *redisLocationCache) Cache(ctx context.Context, zip string, t model.ImagingType, items []model.ScanLocation) error {
	return setEncoded(ctx, r.client, r.key(zip, t), &locations{Items: items}, cachedLocationsTimeToLive)
}

func (r *redisLocationCache) key(zip string, t model.ImagingType) string {
	return fmt.Sprintf("locations:%s:%s", zip, t)
}
