package gemini

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func testLimiterConfig() RateLimiterConfig {
	return RateLimiterConfig{
		RequestsPerSecond: 0.001, // effectively no refill during the test
		BurstSize:         2,
		MinInterval:       0,
		WaitTimeout:       time.Second,
	}
}

func TestRateLimiter(t *testing.T) {
	t.Run("allows burst up to bucket size", func(t *testing.T) {
		rl := NewRateLimiter(testLimiterConfig())

		assert.True(t, rl.TryAllow())
		assert.True(t, rl.TryAllow())
		assert.False(t, rl.TryAllow())
	})

	t.Run("reset refills the bucket", func(t *testing.T) {
		rl := NewRateLimiter(testLimiterConfig())
		rl.TryAllow()
		rl.TryAllow()

		rl.Reset()
		assert.True(t, rl.TryAllow())
	})

	t.Run("quota hit empties the bucket", func(t *testing.T) {
		rl := NewRateLimiter(testLimiterConfig())
		rl.RecordQuotaHit()

		assert.False(t, rl.TryAllow())
		status := rl.Status()
		assert.Less(t, status.AvailableTokens, 1.0)
		assert.Positive(t, status.ConsecutiveWaits)
	})

	t.Run("min interval spaces consecutive requests", func(t *testing.T) {
		cfg := testLimiterConfig()
		cfg.MinInterval = time.Hour
		rl := NewRateLimiter(cfg)

		assert.True(t, rl.TryAllow())
		assert.False(t, rl.TryAllow())
	})
}
