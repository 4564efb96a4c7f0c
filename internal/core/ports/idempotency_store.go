package ports

import (
	"context"
	"time"
)

// StoredResponse is a response captured for replay.
type StoredResponse struct {
	Status      int    `json:"status"`
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
}

// IdempotencyStore keeps the first successful response per idempotency key.
// Get reports found=false when nothing is stored under key.
type IdempotencyStore interface {
	Get(ctx context.Context, key string) (resp *StoredResponse, found bool, err error)
	Save(ctx context.Context, key string, resp StoredResponse, ttl time.Duration) error
}
