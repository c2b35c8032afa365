package llm

import (
	"context"
	"errors"
	"time"
)

// maxRetries is how many times a rate-limited call is retried.
const maxRetries = 3

// backoffUnit is the first retry delay; it doubles per attempt.
var backoffUnit = time.Second

type rateLimitError struct {
	message string
}

func (e *rateLimitError) Error() string {
	if e.message == "" {
		return "rate limited"
	}
	return "rate limited: " + e.message
}

type authError struct {
	message string
}

func (e *authError) Error() string {
	return "authentication error: " + e.message
}

// IsAuthError checks if an error is an authentication error.
func IsAuthError(err error) bool {
	var ae *authError
	return errors.As(err, &ae)
}

// IsRateLimited checks if an error is a rate limit error.
func IsRateLimited(err error) bool {
	var re *rateLimitError
	return errors.As(err, &re)
}

func retryWithBackoff(ctx context.Context, retries int, fn func() error) error {
	var lastErr error
	for attempt := 0; attempt <= retries; attempt++ {
		lastErr = fn()
		if lastErr == nil {
			return nil
		}

		// Only rate limits are retried; auth errors fall out here too.
		if !IsRateLimited(lastErr) {
			return lastErr
		}

		if attempt < retries {
			backoff := time.Duration(1<<uint(attempt)) * backoffUnit
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(backoff):
			}
		}
	}
	return lastErr
}
