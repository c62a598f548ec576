// package submitlimit is a Redis-backed fixed-window counter capping judged
// submissions per user.
package submitlimit

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"

	"gitlab.com/leetlab-2025.net/internal/core/ports/primary"
	"gitlab.com/leetlab-2025.net/internal/core/ports/secondary"
)

const submitCountPrefix = "submit:count:user:"

var _ secondary.SubmitLimiter = (*Limiter)(nil)

type Limiter struct {
	redisClient *redis.Client
	logger      primary.Logger
	limit       int
	window      time.Duration
}

func NewLimiter(redisClient *redis.Client, logger primary.Logger, limit int, window time.Duration) *Limiter {
	return &Limiter{
		redisClient: redisClient,
		logger:      logger,
		limit:       limit,
		window:      window,
	}
}

// Allow counts the submission against the user's current window and reports
// whether it is within the cap. Fails open on Redis trouble: a broken
// limiter must not block judging.
func (l *Limiter) Allow(ctx context.Context, userID string) (bool, error) {
	if l.limit <= 0 {
		return true, nil
	}

	key := submitCountPrefix + userID
	count, err := l.redisClient.Incr(ctx, key).Result()
	if err != nil {
		l.logger.Warn("Failed to increment submit counter", "key", key, "error", err)
		return true, nil
	}

	if count == 1 {
		if err := l.redisClient.Expire(ctx, key, l.window).Err(); err != nil {
			l.logger.Warn("Failed to set submit counter expiry", "key", key, "error", err)
		}
	}

	return count <= int64(l.limit), nil
}
