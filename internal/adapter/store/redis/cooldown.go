// Package redis holds the Redis-backed cool-down marker store.
package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const cooldownPrefix = "eval:cooldown:"

// CooldownStore implements service.Cooldowns with SET NX EX: the key lives
// for exactly one cool-down window, so concurrent consumers racing on the
// same link get a single winner without read-then-write.
type CooldownStore struct {
	rdb *redis.Client
}

func NewCooldownStore(rdb *redis.Client) *CooldownStore {
	return &CooldownStore{rdb: rdb}
}

func (s *CooldownStore) Acquire(ctx context.Context, linkID string, window time.Duration) (bool, error) {
	ok, err := s.rdb.SetNX(ctx, cooldownPrefix+linkID, time.Now().UTC().Format(time.RFC3339), window).Result()
	if err != nil {
		return false, fmt.Errorf("cool-down marker for link %s: %w", linkID, err)
	}
	return ok, nil
}
