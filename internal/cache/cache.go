package cache

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v9"
	"github.com/vmihailenco/msgpack/v5"
)

func getDecoded[T any](ctx context.Context, client *redis.Client, key string) (*T, error) {
	res, err := client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var v T
	if err := msgpack.Unmarshal(res, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

func setEncoded(ctx context.Context, client *redis.Client, key string, v any, ttl time.Duration) error {
	encoded, err := msgpack.Marshal(v)
	if err != nil {
		return err
	}
	return client.SetNX(ctx, key, encoded, ttl).Err()
}
