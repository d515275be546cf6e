package middleware

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/stitts-dev/franchise-sim/pkg/utils"
)

// SimRateLimiter throttles the expensive simulation endpoints per client.
// Each client gets a token bucket refilling at ratePerMinute with a small
// burst allowance; idle buckets are dropped after an hour.
type SimRateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*clientLimiter
	limit    rate.Limit
	burst    int
}

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func NewSimRateLimiter(ratePerMinute int) *SimRateLimiter {
	if ratePerMinute < 1 {
		ratePerMinute = 1
	}
	rl := &SimRateLimiter{
		limiters: make(map[string]*clientLimiter),
		limit:    rate.Every(time.Minute / time.Duration(ratePerMinute)),
		burst:    5,
	}
	go rl.cleanupLoop()
	return rl
}

// Middleware keys the bucket on session ID when present, client IP
// otherwise
func (rl *SimRateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.Param("id")
		if key == "" {
			key = c.ClientIP()
		}

		if !rl.allow(key) {
			utils.SendRateLimited(c, "Simulation rate limit exceeded, slow down")
			c.Abort()
			return
		}
		c.Next()
	}
}

func (rl *SimRateLimiter) allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cl, ok := rl.limiters[key]
	if !ok {
		cl = &clientLimiter{limiter: rate.NewLimiter(rl.limit, rl.burst)}
		rl.limiters[key] = cl
	}
	cl.lastSeen = time.Now()
	return cl.limiter.Allow()
}

func (rl *SimRateLimiter) cleanupLoop() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		cutoff := time.Now().Add(-time.Hour)
		rl.mu.Lock()
		for key, cl := range rl.limiters {
			if cl.lastSeen.Before(cutoff) {
				delete(rl.limiters, key)
			}
		}
		rl.mu.Unlock()
	}
}
