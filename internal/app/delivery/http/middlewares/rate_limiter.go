package middlewares

import (
	"net"
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// RateLimiter bounds expensive hosted-model calls per client IP with a token
// bucket.
type RateLimiter struct {
	limiters map[string]*rate.Limiter
	mu       sync.Mutex
	requests int
	per      time.Duration
}

// NewQuestionRateLimiter builds a limiter sized for hosted-model questions.
func (m *Middlewares) NewQuestionRateLimiter(requests int, per time.Duration) *RateLimiter {
	return NewRateLimiter(requests, per)
}

func NewRateLimiter(requests int, per time.Duration) *RateLimiter {
	return &RateLimiter{
		limiters: make(map[string]*rate.Limiter),
		requests: requests,
		per:      per,
	}
}

func (r *RateLimiter) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		ip, _, err := net.SplitHostPort(req.RemoteAddr)
		if err != nil {
			ip = req.RemoteAddr
		}

		r.mu.Lock()
		limiter, exists := r.limiters[ip]
		if !exists {
			limiter = rate.NewLimiter(rate.Every(r.per/time.Duration(r.requests)), r.requests)
			r.limiters[ip] = limiter
		}
		r.mu.Unlock()

		if !limiter.Allow() {
			http.Error(w, "Too many questions, please slow down.", http.StatusTooManyRequests)
			return
		}

		next.ServeHTTP(w, req)
	})
}
