// Package lock keeps overlapping ticks from running the dispatch pipeline concurrently.
package lock

import (
	"context"
	"time"

	"athan/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

// releaseScript deletes the key only while it still holds our token, so a
// tick that outlived its TTL cannot release a lock taken by the next one.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

type redisTickLock struct {
	client *redis.Client
	key    string
	ttl    time.Duration
}

// NewRedisTickLock creates a lock shared by every replica using the same Redis key.
func NewRedisTickLock(client *redis.Client, key string, ttl time.Duration) repository.TickLock {
	return &redisTickLock{
		client: client,
		key:    key,
		ttl:    ttl,
	}
}

// TryAcquire sets the key with NX and a TTL. The TTL frees the lock if the holder dies.
func (l *redisTickLock) TryAcquire(ctx context.Context) (repository.ReleaseFunc, bool, error) {
	token := uuid.NewString()

	acquired, err := l.client.SetNX(ctx, l.key, token, l.ttl).Result()
	if err != nil {
		return nil, false, errors.Wrap(err, "failed to set tick lock key")
	}
	if !acquired {
		return nil, false, nil
	}

	release := func(ctx context.Context) error {
		if err := releaseScript.Run(ctx, l.client, []string{l.key}, token).Err(); err != nil {
			return errors.Wrap(err, "failed to release tick lock key")
		}

		return nil
	}

	return release, true, nil
}
