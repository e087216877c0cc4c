// Package ratelimiter keeps one token bucket per identity.
package ratelimiter

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// Decision is the outcome of a single Take.
type Decision struct {
	Allowed    bool
	Limit      int
	Remaining  int
	RetryAfter time.Duration // zero when allowed
}

type entry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// UserRateLimiter manages rate limiting for multiple identities. Buckets
// idle for longer than expirationTime are dropped.
type UserRateLimiter struct {
	mu             sync.Mutex
	limiters       map[string]*entry
	limit          rate.Limit
	burst          int
	expirationTime time.Duration
	lastSweep      time.Time
	now            func() time.Time
}

// New creates a limiter refilling at limit tokens per second with room for
// burst requests.
func New(limit rate.Limit, burst int, expirationTime time.Duration) *UserRateLimiter {
	return &UserRateLimiter{
		limiters:       make(map[string]*entry),
		limit:          limit,
		burst:          burst,
		expirationTime: expirationTime,
		lastSweep:      time.Now(),
		now:            time.Now,
	}
}

// PerWindow allows n requests per window. Returns nil when n <= 0, which
// callers treat as "no limit".
func PerWindow(n int, window time.Duration) *UserRateLimiter {
	if n <= 0 || window <= 0 {
		return nil
	}
	return New(rate.Every(window/time.Duration(n)), n, 2*window)
}

func (u *UserRateLimiter) getLimiter(identity string, now time.Time) *rate.Limiter {
	u.mu.Lock()
	defer u.mu.Unlock()

	if now.Sub(u.lastSweep) > u.expirationTime {
		for id, e := range u.limiters {
			if now.Sub(e.lastSeen) > u.expirationTime {
				delete(u.limiters, id)
			}
		}
		u.lastSweep = now
	}

	e, ok := u.limiters[identity]
	if !ok {
		e = &entry{limiter: rate.NewLimiter(u.limit, u.burst)}
		u.limiters[identity] = e
	}
	e.lastSeen = now
	return e.limiter
}

// Take consumes one token for identity if one is available.
func (u *UserRateLimiter) Take(identity string) Decision {
	now := u.now()
	limiter := u.getLimiter(identity, now)

	reservation := limiter.ReserveN(now, 1)
	if !reservation.OK() {
		return Decision{Limit: u.burst}
	}
	if delay := reservation.DelayFrom(now); delay > 0 {
		reservation.CancelAt(now)
		return Decision{Limit: u.burst, RetryAfter: delay}
	}

	remaining := int(limiter.TokensAt(now))
	if remaining < 0 {
		remaining = 0
	}
	return Decision{Allowed: true, Limit: u.burst, Remaining: remaining}
}
