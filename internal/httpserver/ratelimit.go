package httpserver

import (
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/rs/zerolog/hlog"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

const (
	limiterIdle  = 10 * time.Minute
	limiterSweep = time.Minute
)

// rateLimiter hands out one token bucket per client IP. Buckets unused for
// limiterIdle are dropped by sweep.
type rateLimiter struct {
	mu       sync.Mutex
	limiters map[string]*clientLimiter
	limit    rate.Limit
	burst    int
}

type clientLimiter struct {
	lim  *rate.Limiter
	seen time.Time
}

// newRateLimiter returns nil (no limiting) when rps <= 0.
func newRateLimiter(rps, burst int) *rateLimiter {
	if rps <= 0 {
		return nil
	}
	if burst <= 0 {
		burst = rps
	}
	return &rateLimiter{
		limiters: make(map[string]*clientLimiter),
		limit:    rate.Every(time.Second / time.Duration(rps)),
		burst:    burst,
	}
}

func (rl *rateLimiter) get(key string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	now := time.Now()
	if cl, ok := rl.limiters[key]; ok {
		cl.seen = now
		return cl.lim
	}
	cl := &clientLimiter{lim: rate.NewLimiter(rl.limit, rl.burst), seen: now}
	rl.limiters[key] = cl
	return cl.lim
}

// prune drops buckets last used before cutoff and returns how many went.
func (rl *rateLimiter) prune(cutoff time.Time) int {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	n := 0
	for key, cl := range rl.limiters {
		if cl.seen.Before(cutoff) {
			delete(rl.limiters, key)
			n++
		}
	}
	return n
}

// sweep prunes idle buckets every interval until stop is closed.
func (rl *rateLimiter) sweep(stop <-chan struct{}, interval, idle time.Duration) {
	if rl == nil {
		return
	}
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-stop:
			return
		case now := <-t.C:
			if n := rl.prune(now.Add(-idle)); n > 0 {
				log.Debug().Int("removed", n).Msg("pruned rate limiters")
			}
		}
	}
}

func (rl *rateLimiter) middleware(next http.Handler) http.Handler {
	if rl == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := clientIP(r)
		if !rl.get(key).Allow() {
			hlog.FromRequest(r).Warn().Str("client", key).Msg("rate limited")
			writeError(w, http.StatusTooManyRequests, "too_many_requests", nil)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// clientIP strips the port from RemoteAddr (already rewritten by RealIP).
func clientIP(r *http.Request) string {
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
		return host
	}
	return r.RemoteAddr
}
