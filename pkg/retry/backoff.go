package retry

import (
	"math"
	"time"
)

// Backoff provides the amount of time to wait before the next attempt.
// attempts starts at 1.
type Backoff func(attempts uint) time.Duration

// Constant always waits interval.
func Constant(interval time.Duration) Backoff {
	return func(uint) time.Duration {
		return interval
	}
}

// Exponential waits baseDelay * base^(attempts - 1).
//
// Ex. Exponential(2*time.Second, 3) = 2s, 6s, 18s, 54s, ...
func Exponential(baseDelay time.Duration, base float64) Backoff {
	return func(attempts uint) time.Duration {
		if delay := baseDelay * time.Duration(math.Pow(base, float64(attempts-1))); delay >= 0 {
			return delay
		}

		return math.MaxInt64
	}
}

// BinaryExponential is Exponential with a base of 2.
func BinaryExponential(baseDelay time.Duration) Backoff {
	return Exponential(baseDelay, 2)
}
