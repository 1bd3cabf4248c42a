package runlock

import (
	"context"
	"time"

	"parking-allocator/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

var ErrAlreadyRunning = errs.New("allocation run already in progress")

// releaseScript deletes the lock only when it still holds our token, so a
// run that outlives its TTL cannot release a lock another process took over.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

const lockKey = "parking-allocator:allocation-run-lock"

// RedisRunLock serialises allocation runs across processes with a keyed
// SETNX lease. The TTL bounds how long a crashed run can block the next one.
type RedisRunLock struct {
	client *redis.Client
	ttl    time.Duration
	token  string
}

func New(client *redis.Client, ttl time.Duration) *RedisRunLock {
	return &RedisRunLock{client: client, ttl: ttl}
}

func (l *RedisRunLock) Acquire(ctx context.Context) error {
	token := uuid.New().String()
	ok, err := l.client.SetNX(ctx, lockKey, token, l.ttl).Result()
	if err != nil {
		return errs.Wrap(err, "failed to acquire run lock")
	}
	if !ok {
		return ErrAlreadyRunning
	}
	l.token = token
	return nil
}

func (l *RedisRunLock) Release(ctx context.Context) error {
	if l.token == "" {
		return nil
	}
	token := l.token
	l.token = ""
	if err := releaseScript.Run(ctx, l.client, []string{lockKey}, token).Err(); err != nil {
		return errs.Wrap(err, "failed to release run lock")
	}
	return nil
}
