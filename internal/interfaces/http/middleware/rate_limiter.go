package middleware

import (
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// IPRateLimiter holds rate limiters for each IP address
type IPRateLimiter struct {
	limiters map[string]*rate.Limiter
	mu       sync.RWMutex
	rps      rate.Limit
	burst    int
	cleanup  time.Duration
}

// NewIPRateLimiter creates a new IP-based rate limiter.
// rps is requests per second allowed per IP, burst the maximum burst size.
func NewIPRateLimiter(rps float64, burst int) *IPRateLimiter {
	limiter := &IPRateLimiter{
		limiters: make(map[string]*rate.Limiter),
		rps:      rate.Limit(rps),
		burst:    burst,
		cleanup:  5 * time.Minute,
	}

	// Start cleanup goroutine to remove old limiters
	go limiter.cleanupRoutine()

	return limiter
}

// getLimiter returns the rate limiter for an IP address
func (i *IPRateLimiter) getLimiter(ip string) *rate.Limiter {
	i.mu.Lock()
	defer i.mu.Unlock()

	limiter, exists := i.limiters[ip]
	if !exists {
		limiter = rate.NewLimiter(i.rps, i.burst)
		i.limiters[ip] = limiter
	}

	return limiter
}

// cleanupRoutine caps the limiter map so it cannot grow unbounded
func (i *IPRateLimiter) cleanupRoutine() {
	ticker := time.NewTicker(i.cleanup)
	defer ticker.Stop()

	for range ticker.C {
		i.mu.Lock()
		if len(i.limiters) > 10000 {
			newMap := make(map[string]*rate.Limiter, len(i.limiters)/2)
			count := 0
			for k, v := range i.limiters {
				if count < len(i.limiters)/2 {
					newMap[k] = v
					count++
				}
			}
			i.limiters = newMap
		}
		i.mu.Unlock()
	}
}

// RateLimit middleware limits requests per IP address
func RateLimit(limiter *IPRateLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Get client IP from X-Forwarded-For or RemoteAddr
			ip := r.Header.Get("X-Forwarded-For")
			if ip == "" {
				ip = r.Header.Get("X-Real-IP")
			}
			if ip == "" {
				ip = r.RemoteAddr
			}

			ipLimiter := limiter.getLimiter(ip)

			if !ipLimiter.Allow() {
				http.Error(w, "Rate limit exceeded. Please try again later.", http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
