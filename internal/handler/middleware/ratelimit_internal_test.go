//go:build unit

package middleware

import (
	"testing"
	"time"

	"grocery-pool/internal/pkg/clock"
	"grocery-pool/internal/pkg/config"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiter_EvictIdle(t *testing.T) {
	start := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	clk := clock.NewMockClock(start)
	l := NewRateLimiter(config.RateLimitConfig{Enabled: true, RPS: 10, Burst: 10}, clk)

	l.Allow("10.0.0.1")
	clk.Advance(50 * time.Second)
	l.Allow("10.0.0.2")
	assert.Len(t, l.clients, 2)

	clk.Advance(4*time.Minute + 40*time.Second)
	l.Allow("10.0.0.3")
	assert.NotContains(t, l.clients, "10.0.0.1", "idle client swept on insert")
	assert.Len(t, l.clients, 2)
	assert.Equal(t, start.Add(5*time.Minute+30*time.Second), l.lastSweep)

	// 10.0.0.2 is now idle past expiry, but the last sweep was 30s ago
	clk.Advance(30 * time.Second)
	l.Allow("10.0.0.4")
	assert.Len(t, l.clients, 3)
	assert.Contains(t, l.clients, "10.0.0.2")

	clk.Advance(30 * time.Second)
	l.Allow("10.0.0.5")
	assert.NotContains(t, l.clients, "10.0.0.2")
	assert.Len(t, l.clients, 3)
}
