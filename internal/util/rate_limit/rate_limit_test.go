package rate_limit

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func Test_CheckRateLimit_WithinLimits_AllowsRequest(t *testing.T) {
	rateLimiter := NewRateLimiter()
	workspaceID := "ws-" + uuid.New().String()
	rpsLimit := 10
	burstLimit := 20

	rateLimiter.ResetRateLimit(workspaceID)

	result, err := rateLimiter.CheckRateLimit(workspaceID, rpsLimit, burstLimit)

	assert.NoError(t, err)
	assert.True(t, result.Allowed)
	assert.Equal(t, burstLimit-1, result.Remaining)
	assert.Equal(t, 0, result.RetryAfterSec)
	assert.True(t, result.ResetTime.After(time.Now().Add(-time.Second)))
}

func Test_CheckRateLimit_ExceedsBurstLimit_DeniesRequest(t *testing.T) {
	rateLimiter := NewRateLimiter()
	workspaceID := "ws-" + uuid.New().String()
	rpsLimit := 1
	burstLimit := 3

	rateLimiter.ResetRateLimit(workspaceID)

	for range burstLimit {
		result, err := rateLimiter.CheckRateLimit(workspaceID, rpsLimit, burstLimit)
		assert.NoError(t, err)
		assert.True(t, result.Allowed)
	}

	result, err := rateLimiter.CheckRateLimit(workspaceID, rpsLimit, burstLimit)

	assert.NoError(t, err)
	assert.False(t, result.Allowed)
	assert.Equal(t, 0, result.Remaining)
	assert.GreaterOrEqual(t, result.RetryAfterSec, 1)
}

func Test_ResetRateLimit_AfterExhaustion_RefillsBucket(t *testing.T) {
	rateLimiter := NewRateLimiter()
	workspaceID := "ws-" + uuid.New().String()
	rpsLimit := 1
	burstLimit := 2

	rateLimiter.ResetRateLimit(workspaceID)

	for range burstLimit {
		rateLimiter.CheckRateLimit(workspaceID, rpsLimit, burstLimit)
	}

	err := rateLimiter.ResetRateLimit(workspaceID)
	assert.NoError(t, err)

	result, err := rateLimiter.CheckRateLimit(workspaceID, rpsLimit, burstLimit)
	assert.NoError(t, err)
	assert.True(t, result.Allowed)
}
