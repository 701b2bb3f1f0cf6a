package argilla

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"golang.org/x/time/rate"
)

const (
	// ProactiveRate is the proactive throttle rate in requests per second.
	// The backend publishes no quota headers, so throttling is purely
	// client-side with a small burst for the aggregation fan-out.
	ProactiveRate = 10

	// Burst is the token bucket burst size.
	Burst = 5

	// HeaderRetryAfter is the retry-after header (seconds).
	HeaderRetryAfter = "Retry-After"
)

// RateLimiter throttles outgoing requests with a token bucket.
type RateLimiter struct {
	bucket *rate.Limiter
}

// NewRateLimiter creates a rate limiter with proactive throttling.
func NewRateLimiter() *RateLimiter {
	return &RateLimiter{
		bucket: rate.NewLimiter(rate.Limit(ProactiveRate), Burst),
	}
}

// Wait blocks until it's safe to make a request.
func (r *RateLimiter) Wait(ctx context.Context) error {
	return r.bucket.Wait(ctx)
}

// CheckResponse inspects a response for throttling. Returns a
// RateLimitError on 429, honouring the Retry-After header when present.
func (r *RateLimiter) CheckResponse(resp *http.Response) error {
	if resp == nil || resp.StatusCode != http.StatusTooManyRequests {
		return nil
	}

	retryAfter := time.Second
	if header := resp.Header.Get(HeaderRetryAfter); header != "" {
		if seconds, err := strconv.Atoi(header); err == nil {
			retryAfter = time.Duration(seconds) * time.Second
		}
	}
	return &RateLimitError{RetryAfter: retryAfter}
}
