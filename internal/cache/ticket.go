package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v9"
	"github.com/google/uuid"
)

// DeletionTicket confirms pending removal of single submission
type DeletionTicket struct {
	ID           string    `json:"ticket"`
	SubmissionID int64     `json:"submissionId"`
	ExpiresAt    time.Time `json:"expiresAt"`
}

// DeletionTicketStore keeps short-living deletion tickets
type DeletionTicketStore interface {
	Issue(context.Context, int64) (*DeletionTicket, error)
	Consume(context.Context, int64, string) (bool, error)
	Cancel(context.Context, int64, string) error
}

// ticket is removed only when it was issued for provided submission
var consumeTicketScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

type redisDeletionTicketStore struct {
	client     *redis.Client
	timeToLive time.Duration
}

// NewRedisDeletionTicketStore builds redis DeletionTicketStore
func NewRedisDeletionTicketStore(client *redis.Client, ttl time.Duration) DeletionTicketStore {
	return &redisDeletionTicketStore{client: client, timeToLive: ttl}
}

func (r *redisDeletionTicketStore) Issue(ctx context.Context, submissionID int64) (*DeletionTicket, error) {
	t := &DeletionTicket{
		ID:           uuid.NewString(),
		SubmissionID: submissionID,
		ExpiresAt:    time.Now().UTC().Add(r.timeToLive),
	}

	if err := r.client.Set(ctx, r.key(t.ID), submissionID, r.timeToLive).Err(); err != nil {
		return nil, err
	}
	return t, nil
}

// Consume removes ticket and reports whether it was issued for provided submission.
// Ticket issued for another submission is left untouched.
func (r *redisDeletionTicketStore) Consume(ctx context.Context, submissionID int64, ticket string) (bool, error) {
	removed, err := consumeTicketScript.Run(ctx, r.client, []string{r.key(ticket)}, strconv.FormatInt(submissionID, 10)).Int()
	if err != nil {
		return false, err
	}
	return removed == 1, nil
}

func (r *redisDeletionTicketStore) Cancel(ctx context.Context, submissionID int64, ticket string) error {
	_, err := r.Consume(ctx, submissionID, ticket)
	return err
}

func (r *redisDeletionTicketStore) key(ticket string) string {
	return fmt.Sprintf("deletion-ticket:%s", ticket)
}
