package middleware

import (
	"fmt"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/forumapi-dev/forumapi/internal/logger"
	"github.com/forumapi-dev/forumapi/internal/middleware/ratelimiter"
	"github.com/forumapi-dev/forumapi/internal/utils"
)

// RateLimit charges each request to the identity returned by getIdentity.
// A nil limiter disables the middleware.
func RateLimit(rl *ratelimiter.UserRateLimiter, getIdentity func(r *http.Request) (string, error)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if rl == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, err := getIdentity(r)
			if err != nil {
				utils.WriteErrorAndStatusCode(w, err)
				return
			}

			decision := rl.Take(identity)
			headers := w.Header()
			headers.Set("X-RateLimit-Limit", strconv.Itoa(decision.Limit))
			headers.Set("X-RateLimit-Remaining", strconv.Itoa(decision.Remaining))
			if !decision.Allowed {
				retryAfter := int(math.Ceil(decision.RetryAfter.Seconds()))
				headers.Set("X-RateLimit-Reset", time.Now().Add(decision.RetryAfter).UTC().Format(time.RFC3339))
				headers.Set("Retry-After", strconv.Itoa(retryAfter))
				logger.Log.Warn("rate limit exceeded", "identity", identity, "path", r.URL.Path, "retry_after", retryAfter)
				utils.WriteFail(w, http.StatusTooManyRequests,
					fmt.Sprintf("Too Many Requests. Rate limit: %d requests exceeded, try again in %d seconds.", decision.Limit, retryAfter))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// GlobalRateLimit shares one budget between every caller.
func GlobalRateLimit(rl *ratelimiter.UserRateLimiter) func(http.Handler) http.Handler {
	return RateLimit(rl, func(r *http.Request) (string, error) { return "global", nil })
}
