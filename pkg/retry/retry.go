// Package retry runs actions until they succeed or a strategy gives up.
package retry

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"time"
)

// Action is a function to be performed in a retriable manner.
type Action func() error

// Strategy determines whether an action should be retried. Strategies may
// block, for example to back off between attempts.
type Strategy func(ctx context.Context, attempts uint, err error) bool

// Retrier retries the provided action.
type Retrier interface {
	Retry(ctx context.Context, action Action) (uint, error)
}

type retrier struct {
	strategies []Strategy
}

// NewRetrier returns a Retrier that evaluates the strategies in order after
// every failed attempt. With no strategies it retries until the action
// succeeds or the context is done.
func NewRetrier(strategies ...Strategy) Retrier {
	return &retrier{
		strategies: strategies,
	}
}

func (r *retrier) Retry(ctx context.Context, action Action) (uint, error) {
	return Retry(ctx, action, r.strategies...)
}

// Retry executes the action until it succeeds, a strategy declines another
// attempt, or ctx is done. Strategies that sleep should be listed last.
func Retry(ctx context.Context, action Action, strategies ...Strategy) (uint, error) {
	for i := uint(1); ; i++ {
		err := action()
		if err == nil {
			return i, nil
		}

		for _, s := range strategies {
			if !s(ctx, i, err) {
				return i, err
			}
		}

		if ctx.Err() != nil {
			return i, err
		}
	}
}

// Limit caps the total number of attempts. maxAttempts should be >= 1.
func Limit(maxAttempts uint) Strategy {
	return func(_ context.Context, attempts uint, _ error) bool {
		return attempts < maxAttempts
	}
}

// RetriableErrors only retries errors matching one of retriableErrors.
func RetriableErrors(retriableErrors ...error) Strategy {
	return func(_ context.Context, _ uint, err error) bool {
		for _, e := range retriableErrors {
			if errors.Is(err, e) {
				return true
			}
		}

		return false
	}
}

// BackoffWithJitter delays the next attempt by the backoff delay, capped at
// maxBackoff, +/- jitter percent. It stops retrying if ctx is done while
// waiting.
func BackoffWithJitter(backoff Backoff, maxBackoff time.Duration, jitter float64) Strategy {
	return func(ctx context.Context, attempts uint, _ error) bool {
		delay := time.Duration(math.Min(float64(maxBackoff), float64(backoff(attempts))))

		//     <------delay------>
		//  jitter             jitter
		delay = time.Duration(float64(delay) * (1 + (rand.Float64()*jitter*2 - jitter)))
		return sleeperImpl.Sleep(ctx, delay)
	}
}

type sleeper interface {
	Sleep(ctx context.Context, d time.Duration) bool
}

type realSleeper struct{}

func (realSleeper) Sleep(ctx context.Context, d time.Duration) bool {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
		return true
	case <-ctx.Done():
		return false
	}
}

var sleeperImpl sleeper = realSleeper{}
