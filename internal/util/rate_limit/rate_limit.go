package rate_limit

import (
	"context"
	"fmt"
	"math"
	"time"

	"fieldlog/internal/cache"

	"github.com/valkey-io/valkey-go"
)

type RateLimiter struct {
	client valkey.Client
}

type RateLimitResult struct {
	Allowed       bool      `json:"allowed"`
	Remaining     int       `json:"remaining"`
	ResetTime     time.Time `json:"resetTime"`
	RetryAfterSec int       `json:"retryAfterSec,omitempty"`
}

const (
	defaultTimeout = 5 * time.Second
	keyPrefix      = "rate_limit:workspace:"
)

// Lua script for token bucket rate limiting.
// Atomically refills tokens based on elapsed time, takes one token
// if available, and updates bucket state with a cleanup TTL.
const tokenBucketLuaScript = `
local key = KEYS[1]
local now = tonumber(ARGV[1])
local rps_limit = tonumber(ARGV[2])
local burst_limit = tonumber(ARGV[3])
local ttl = tonumber(ARGV[4])

local current = redis.call('HMGET', key, 'tokens', 'last_refill')
local tokens = tonumber(current[1]) or burst_limit
local last_refill = tonumber(current[2]) or now

local elapsed = math.max(0, now - last_refill)
local tokens_to_add = math.floor(elapsed * rps_limit / 1000)
tokens = math.min(burst_limit, tokens + tokens_to_add)

local allowed = 0
local remaining = tokens
if tokens >= 1 then
    allowed = 1
    tokens = tokens - 1
    remaining = tokens
end

redis.call('HMSET', key, 'tokens', tokens, 'last_refill', now)
redis.call('EXPIRE', key, ttl)

local time_to_full = 0
if tokens < burst_limit then
    time_to_full = math.ceil((burst_limit - tokens) * 1000 / rps_limit)
end

return {allowed, remaining, time_to_full}
`

func NewRateLimiter() *RateLimiter {
	return &RateLimiter{
		client: cache.GetCache(),
	}
}

// CheckRateLimit consumes one token from the workspace's bucket. Used to
// throttle join attempts so a shared join secret cannot be brute forced.
func (r *RateLimiter) CheckRateLimit(workspaceID string, rpsLimit, burstLimit int) (*RateLimitResult, error) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	if rpsLimit <= 0 {
		rpsLimit = 10
	}
	if burstLimit <= 0 {
		burstLimit = max(rpsLimit*5, 50)
	}

	key := keyPrefix + workspaceID
	now := time.Now().UnixMilli()
	ttl := int64(300)

	result := r.client.Do(ctx, r.client.B().Eval().
		Script(tokenBucketLuaScript).
		Numkeys(1).
		Key(key).
		Arg(fmt.Sprintf("%d", now)).
		Arg(fmt.Sprintf("%d", rpsLimit)).
		Arg(fmt.Sprintf("%d", burstLimit)).
		Arg(fmt.Sprintf("%d", ttl)).
		Build())

	if result.Error() != nil {
		return nil, fmt.Errorf("rate limit check failed: %w", result.Error())
	}

	values, err := result.AsIntSlice()
	if err != nil {
		return nil, fmt.Errorf("failed to parse rate limit result: %w", err)
	}

	if len(values) < 3 {
		return nil, fmt.Errorf("invalid rate limit result: expected 3 values, got %d", len(values))
	}

	allowed := values[0] == 1
	remaining := int(values[1])
	timeToFullMs := values[2]

	resetTime := time.Now().Add(time.Duration(timeToFullMs) * time.Millisecond)

	var retryAfterSec int
	if !allowed {
		retryAfterMs := 1000.0 / float64(rpsLimit)
		retryAfterSec = int(math.Ceil(retryAfterMs / 1000.0))
		if retryAfterSec < 1 {
			retryAfterSec = 1
		}
	}

	return &RateLimitResult{
		Allowed:       allowed,
		Remaining:     remaining,
		ResetTime:     resetTime,
		RetryAfterSec: retryAfterSec,
	}, nil
}

func (r *RateLimiter) ResetRateLimit(workspaceID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	key := keyPrefix + workspaceID

	result := r.client.Do(ctx, r.client.B().Del().Key(key).Build())
	return result.Error()
}
