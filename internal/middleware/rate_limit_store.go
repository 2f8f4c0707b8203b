package middleware

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

const rateLimitKeyPrefix = "catalog:ratelimit:"

// fixedWindowScript increments the window counter and sets its TTL on the
// first hit, atomically. KEYS[1] is the window key, ARGV[1] the TTL in ms.
var fixedWindowScript = redis.NewScript(`
local current = redis.call('INCR', KEYS[1])
if current == 1 then
	redis.call('PEXPIRE', KEYS[1], ARGV[1])
end
return current
`)

// RedisRateLimiterStore implements echo's middleware.RateLimiterStore with
// a fixed-window counter in Redis, so the limit holds across instances.
//
// It fails open: when Redis cannot be reached the request is allowed and
// the error is logged.
type RedisRateLimiterStore struct {
	client  redis.Scripter
	limit   int
	window  time.Duration
	timeout time.Duration
	logger  *zerolog.Logger
	now     func() time.Time
}

func NewRedisRateLimiterStore(client redis.Scripter, limit int, window time.Duration, logger *zerolog.Logger) *RedisRateLimiterStore {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	return &RedisRateLimiterStore{
		client:  client,
		limit:   limit,
		window:  window,
		timeout: rateLimitStoreTimeout,
		logger:  logger,
		now:     time.Now,
	}
}

// Allow reports whether identifier still has budget in the current window.
func (s *RedisRateLimiterStore) Allow(identifier string) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	windowStart := s.now().UnixNano() / int64(s.window)
	key := fmt.Sprintf("%s%s:%d", rateLimitKeyPrefix, identifier, windowStart)

	count, err := fixedWindowScript.Run(ctx, s.client, []string{key}, s.window.Milliseconds()).Int64()
	if err != nil {
		s.logger.Warn().Err(err).Str("client", identifier).Msg("rate limit store unavailable, allowing request")
		return true, nil
	}

	return count <= int64(s.limit), nil
}
