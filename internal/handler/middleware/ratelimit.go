package middleware

import (
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"grocery-pool/internal/handler/httperr"
	"grocery-pool/internal/pkg/clock"
	"grocery-pool/internal/pkg/config"
	"grocery-pool/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

var errRateLimited = errs.New("rate limit exceeded")

const (
	clientIdleExpiry = 5 * time.Minute
	sweepInterval    = time.Minute
)

type clientLimiter struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

// RateLimiter keeps one token bucket per client IP.
type RateLimiter struct {
	rps       rate.Limit
	burst     int
	clock     clock.Clock
	clients   map[string]*clientLimiter
	lastSweep time.Time
	mu        sync.Mutex
}

func NewRateLimiter(cfg config.RateLimitConfig, clk clock.Clock) *RateLimiter {
	return &RateLimiter{
		rps:     rate.Limit(cfg.RPS),
		burst:   cfg.Burst,
		clock:   clk,
		clients: make(map[string]*clientLimiter),
	}
}

func (l *RateLimiter) Allow(id string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.clock.Now()
	cl, ok := l.clients[id]
	if !ok {
		if now.Sub(l.lastSweep) >= sweepInterval {
			l.evictIdle(now)
			l.lastSweep = now
		}
		cl = &clientLimiter{limiter: rate.NewLimiter(l.rps, l.burst)}
		l.clients[id] = cl
	}
	cl.lastAccess = now
	return cl.limiter.AllowN(now, 1)
}

// evictIdle runs on the insert path at most once per sweepInterval, so the
// map stays bounded without a background goroutine. Caller holds mu.
func (l *RateLimiter) evictIdle(now time.Time) {
	for id, cl := range l.clients {
		if now.Sub(cl.lastAccess) > clientIdleExpiry {
			delete(l.clients, id)
		}
	}
}

func (l *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !l.Allow(c.ClientIP()) {
			c.Header("Retry-After", l.retryAfter())
			httperr.AbortWithError(c, http.StatusTooManyRequests, errRateLimited, "Too many requests", nil)
			return
		}
		c.Next()
	}
}

// retryAfter is the whole seconds until one token refills.
func (l *RateLimiter) retryAfter() string {
	secs := 1
	if l.rps > 0 {
		secs = max(1, int(math.Ceil(1/float64(l.rps))))
	}
	return strconv.Itoa(secs)
}

func RateLimit(cfg config.RateLimitConfig) gin.HandlerFunc {
	if !cfg.Enabled {
		return func(c *gin.Context) { c.Next() }
	}
	return NewRateLimiter(cfg, clock.NewRealClock()).Middleware()
}
