package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/dzhusipov/fleet-core/internal/apierror"
)

// slidingWindow tracks request counts per IP within a fixed window.
type slidingWindow struct {
	count     int
	windowEnd time.Time
	mu        sync.Mutex
}

type limiter struct {
	entries map[string]*slidingWindow
	mu      sync.Mutex
}

func newLimiter() *limiter {
	return &limiter{entries: make(map[string]*slidingWindow)}
}

func (l *limiter) allow(ip string, limit int, window time.Duration) bool {
	l.mu.Lock()
	entry, exists := l.entries[ip]
	if !exists {
		entry = &slidingWindow{}
		l.entries[ip] = entry
	}
	l.mu.Unlock()

	entry.mu.Lock()
	defer entry.mu.Unlock()

	now := time.Now()
	if now.After(entry.windowEnd) {
		entry.count = 0
		entry.windowEnd = now.Add(window)
	}
	entry.count++
	return entry.count <= limit
}

func (l *limiter) purge(now time.Time) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	purged := 0
	for ip, entry := range l.entries {
		entry.mu.Lock()
		if now.After(entry.windowEnd) {
			delete(l.entries, ip)
			purged++
		}
		entry.mu.Unlock()
	}
	return purged
}

var (
	loginLimiter = newLimiter()
	apiLimiter   = newLimiter()
)

// LoginRateLimiter limits login attempts to 20 per minute per IP.
func LoginRateLimiter() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !loginLimiter.allow(c.ClientIP(), 20, time.Minute) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apierror.New("Too many login attempts. Try again in a minute."))
			return
		}
		c.Next()
	}
}

// RateLimiter returns a general-purpose sliding-window rate limiter.
func RateLimiter(limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !apiLimiter.allow(c.ClientIP(), limit, window) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apierror.New("Too many requests. Try again shortly."))
			return
		}
		c.Next()
	}
}

// Expired entries are purged periodically so IPs that never return do not
// accumulate.
const purgeInterval = 5 * time.Minute

func init() {
	go func() {
		ticker := time.NewTicker(purgeInterval)
		defer ticker.Stop()
		for range ticker.C {
			now := time.Now()
			n := loginLimiter.purge(now) + apiLimiter.purge(now)
			if n > 0 {
				log.Debug().Int("purged", n).Msg("rate limiter maps purged")
			}
		}
	}()
}
