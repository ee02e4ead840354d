package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v9"
	"github.com/umalmyha/imaging-leads/internal/model"
)

const cachedSubmissionTimeToLive = 10 * time.Minute

// SubmissionCache represents behavior for single submission cache
type SubmissionCache interface {
	FindByID(context.Context, int64) (*model.Submission, error)
	EvictByID(context.Context, int64) error
	Cache(context.Context, *model.Submission) error
}

type redisSubmissionCache struct {
	client *redis.Client
}

// NewRedisSubmissionCache builds redis SubmissionCache
func NewRedisSubmissionCache(client *redis.Client) SubmissionCache {
	return &redisSubmissionCache{client: client}
}

func (r *redisSubmissionCache) FindByID(ctx context.Context, id int64) (*model.Submission, error) {
	return getDecoded[model.Submission](ctx, r.client, r.key(id))
}

func (r *redisSubmissionCache) EvictByID(ctx context.Context, id int64) error {
	return r.client.Del(ctx, r.key(id)).Err()
}

func (r *redisSubmissionCache) Cache(ctx context.Context, s *model.Submission) error {
	return setEncoded(ctx, r.client, r.key(s.ID), s, cachedSubmissionTimeToLive)
}

func (r *redisSubmissionCache) key(id int64) string {
	return fmt.Sprintf("submission:%d", id)
}
