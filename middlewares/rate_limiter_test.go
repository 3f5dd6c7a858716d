package middlewares

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimiter_PerClient(t *testing.T) {
	rl := NewRateLimiter(1, time.Minute)
	handler := rl.RateLimit()

	assert.Equal(t, http.StatusOK, serve(t, handler, "192.0.2.1:1000").Code)
	assert.Equal(t, http.StatusTooManyRequests, serve(t, handler, "192.0.2.1:1001").Code)
	assert.Equal(t, http.StatusOK, serve(t, handler, "192.0.2.2:1000").Code)
}

func TestRateLimiter_EvictsIdleClients(t *testing.T) {
	rl := NewRateLimiter(2, time.Minute)
	clock := rl.lastSweep
	rl.now = func() time.Time { return clock }

	rl.limiter("192.0.2.1")
	rl.limiter("192.0.2.2")
	require.Len(t, rl.visitors, 2)

	clock = clock.Add(30 * time.Second)
	rl.limiter("192.0.2.2")
	assert.Len(t, rl.visitors, 2)

	clock = clock.Add(45 * time.Second)
	rl.limiter("192.0.2.3")
	assert.Len(t, rl.visitors, 2)
	assert.NotContains(t, rl.visitors, "192.0.2.1")
	assert.Contains(t, rl.visitors, "192.0.2.2")
	assert.Contains(t, rl.visitors, "192.0.2.3")
}
