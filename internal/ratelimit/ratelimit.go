// Package ratelimit throttles requests per client IP.
package ratelimit

import (
	"fmt"
	"math"
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/time/rate"
)

// Off disables a limit.
const Off = "off"

// defaultClients bounds how many client IPs are tracked at once.
const defaultClients = 10000

var units = map[string]time.Duration{
	"s": time.Second,
	"m": time.Minute,
	"h": time.Hour,
	"d": 24 * time.Hour,
}

// Rate is a request budget per client: Requests every Per.
// The zero Rate is unlimited.
type Rate struct {
	Requests int
	Per      time.Duration
}

// Parse reads "N/unit" where unit is s, m, h or d, e.g. "30/m".
// "" and "off" yield the unlimited Rate.
func Parse(s string) (Rate, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" || s == Off {
		return Rate{}, nil
	}
	count, unit, ok := strings.Cut(s, "/")
	if !ok {
		return Rate{}, fmt.Errorf("rate %q: want N/unit", s)
	}
	n, err := strconv.Atoi(count)
	if err != nil || n < 1 {
		return Rate{}, fmt.Errorf("rate %q: count must be a positive integer", s)
	}
	per, ok := units[unit]
	if !ok {
		return Rate{}, fmt.Errorf("rate %q: unit must be one of s, m, h, d", s)
	}
	return Rate{Requests: n, Per: per}, nil
}

// Unlimited reports whether r lets every request through.
func (r Rate) Unlimited() bool {
	return r.Requests == 0
}

func (r Rate) String() string {
	if r.Unlimited() {
		return Off
	}
	for unit, d := range units {
		if d == r.Per {
			return fmt.Sprintf("%d/%s", r.Requests, unit)
		}
	}
	return fmt.Sprintf("%d/%s", r.Requests, r.Per)
}

// Limiter hands out a token bucket per client key. The bucket holds
// Requests tokens and refills one every Per/Requests. Keys beyond the
// tracked capacity evict the least recently seen client.
type Limiter struct {
	rate    Rate
	mu      sync.Mutex
	clients *lru.Cache[string, *rate.Limiter]
}

// New creates a Limiter for r. A nil *Limiter allows everything.
func New(r Rate) *Limiter {
	if r.Unlimited() {
		return nil
	}
	clients, err := lru.New[string, *rate.Limiter](defaultClients)
	if err != nil {
		panic(err) // only on a non-positive size
	}
	return &Limiter{rate: r, clients: clients}
}

// Allow consumes a token for key. When the budget is spent it returns
// false and how long until the next token.
func (l *Limiter) Allow(key string) (bool, time.Duration) {
	if l == nil {
		return true, 0
	}

	l.mu.Lock()
	lim, ok := l.clients.Get(key)
	if !ok {
		lim = rate.NewLimiter(rate.Every(l.rate.Per/time.Duration(l.rate.Requests)), l.rate.Requests)
		l.clients.Add(key, lim)
	}
	l.mu.Unlock()

	now := time.Now()
	res := lim.ReserveN(now, 1)
	if delay := res.DelayFrom(now); delay > 0 {
		res.CancelAt(now)
		return false, delay
	}
	return true, 0
}

// ClientIP returns the address the request came from, without the port.
// Forwarding headers are not trusted.
func ClientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// RetryAfter formats d as whole seconds for the Retry-After header.
func RetryAfter(d time.Duration) string {
	return strconv.Itoa(int(math.Ceil(d.Seconds())))
}
