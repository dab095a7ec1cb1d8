package v1

import (
	"net/http"

	"github.com/vmunix/screenpairs/internal/ratelimit"
)

// RateLimitedMessage is returned when a client exceeds its request budget.
const RateLimitedMessage = "Too many requests. Try again later."

// requirePopular wraps a handler and returns 503 if the popular pairs store is not configured.
func (s *Server) requirePopular(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.deps.Popular == nil {
			writeError(w, http.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "Popular pairs not configured")
			return
		}
		next(w, r)
	}
}

// limitByIP wraps a handler and returns 429 once the client IP has spent its budget.
// A nil limiter lets everything through.
func (s *Server) limitByIP(l *ratelimit.Limiter, next http.HandlerFunc) http.HandlerFunc {
	if l == nil {
		return next
	}
	return func(w http.ResponseWriter, r *http.Request) {
		ip := ratelimit.ClientIP(r)
		if ok, wait := l.Allow(ip); !ok {
			s.log.Warn("rate limited", "client", ip, "path", r.URL.Path)
			w.Header().Set("Retry-After", ratelimit.RetryAfter(wait))
			writeError(w, http.StatusTooManyRequests, "RATE_LIMITED", RateLimitedMessage)
			return
		}
		next(w, r)
	}
}
