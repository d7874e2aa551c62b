package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

type LoginChecker struct {
	ttl         time.Duration
	redisClient *redis.Client
}

func NewLoginChecker(ttl time.Duration, redisClient *redis.Client) *LoginChecker {
	return &LoginChecker{
		ttl:         ttl,
		redisClient: redisClient,
	}
}

// IsLogged resolves the token to the logged user id. Unknown, expired or
// malformed sessions are reported as not logged, without an error.
func (c *LoginChecker) IsLogged(ctx context.Context, token string) (int, bool, error) {
	val, err := c.redisClient.Get(ctx, sessionKeyPrefix+token).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("get session: %w", err)
	}

	session, err := parseSession(val)
	if err != nil {
		return 0, false, nil
	}

	if time.Since(session.CreatedAt) > c.ttl {
		return 0, false, nil
	}

	return session.UserID, true, nil
}
